package gen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/model"
	"github.com/seedworks/taskgen/internal/refdata"
)

// generateProjects creates projects for each team along with their default
// sections and project memberships. Project timelines sit inside the
// simulation window; an archived project always has archived_at set and a
// completed one completed_at.
func (r *run) generateProjects(context.Context) error {
	statusDist, err := r.lib.Weighted(dist.ProjectStatus)
	if err != nil {
		return err
	}
	typeDist, err := r.lib.Weighted(dist.ProjectType)
	if err != nil {
		return err
	}
	priorityDist, err := r.lib.Weighted(dist.Priority)
	if err != nil {
		return err
	}

	total := r.cfg.Projects
	if total == 0 {
		total = len(r.ds.Teams) * r.cfg.ProjectsPerTeam
	}

	for i := 0; i < total; i++ {
		team := r.ds.Teams[i%len(r.ds.Teams)]
		if err := r.addProject(team, statusDist, typeDist, priorityDist); err != nil {
			return err
		}
	}

	r.log.Info().
		Int("projects", len(r.ds.Projects)).
		Int("sections", len(r.ds.Sections)).
		Int("project_members", len(r.ds.ProjectMembers)).
		Msg("generated projects")

	return nil
}

func (r *run) addProject(team *model.Team, statusDist, typeDist, priorityDist dist.Weighted) error {
	members := r.teamMembers[team.TeamID]
	if len(members) == 0 {
		return fmt.Errorf("team %s has no members", team.TeamID)
	}

	// Created inside the window with enough room left for a timeline.
	// A window longer than the org's lifetime clamps to org creation.
	createdMax := r.win.Now.AddDate(0, 0, -14)
	createdMin := maxTime(minTime(r.win.Start, createdMax), r.ds.Org.CreatedAt)
	created := timeBetween(r.rng, createdMin, createdMax)

	owner := r.memberHiredBefore(members, created)
	if owner == nil {
		owner = earliestHire(members)
		created = maxTime(created, owner.CreatedAt)
	}

	start := minTime(created.AddDate(0, 0, r.rng.Intn(15)), r.win.Now.AddDate(0, 0, -1))
	start = maxTime(start, created)
	due := start.AddDate(0, 0, 14+r.rng.Intn(167))

	status := statusDist.Sample(r.rng)
	projectType := typeDist.Sample(r.rng)

	var completedAt, archivedAt *time.Time
	modified := timeBetween(r.rng, created, r.win.Now)
	switch status {
	case "completed":
		end := minTime(due, r.win.Now)
		c := timeBetween(r.rng, start.Add(time.Hour), end)
		c = maxTime(c, start.Add(time.Minute))
		completedAt = &c
		modified = c
	case "archived":
		a := timeBetween(r.rng, maxTime(created, start), r.win.Now)
		archivedAt = &a
		modified = a
	}

	keyword := pick(r.rng, refdata.ProjectKeywords)
	pattern := pick(r.rng, refdata.ProjectNamePatterns)
	var name string
	if pattern == "Q%d %s Push" {
		name = fmt.Sprintf(pattern, 1+r.rng.Intn(4), keyword)
	} else {
		name = fmt.Sprintf(pattern, keyword)
	}

	p := &model.Project{
		ProjectID:   newID(r.rng),
		OrgID:       r.ds.Org.OrgID,
		TeamID:      ptr(team.TeamID),
		OwnerID:     owner.UserID,
		Name:        name,
		Description: fmt.Sprintf("%s owned by %s.", name, team.Name),
		ProjectType: projectType,
		Status:      status,
		Priority:    priorityDist.Sample(r.rng),
		Color:       refdata.Color(name),
		StartDate:   start,
		DueDate:     due,
		CreatedAt:   created,
		ModifiedAt:  modified,
		CompletedAt: completedAt,
		ArchivedAt:  archivedAt,
	}
	r.ds.Projects = append(r.ds.Projects, p)
	r.projectsByID[p.ProjectID] = p
	r.projectsByTeam[team.TeamID] = append(r.projectsByTeam[team.TeamID], p)

	r.addSections(p)
	r.addProjectMembers(p, members)
	return nil
}

func (r *run) addSections(p *model.Project) {
	names := []string{"To Do", "In Progress", "Done"}
	if r.rng.Float64() < 0.3 {
		names = append([]string{"Backlog"}, names...)
	}
	if r.rng.Float64() < 0.2 {
		names = append(names[:len(names)-1], "In Review", "Done")
	}

	for i, name := range names {
		s := &model.Section{
			SectionID: newID(r.rng),
			ProjectID: p.ProjectID,
			Name:      name,
			Position:  i,
			CreatedAt: p.CreatedAt,
		}
		r.ds.Sections = append(r.ds.Sections, s)
		r.sectionsByProject[p.ProjectID] = append(r.sectionsByProject[p.ProjectID], s)
	}
}

// addProjectMembers enrolls the owning team plus a few cross-team users.
func (r *run) addProjectMembers(p *model.Project, teamMembers []*model.User) {
	members := append([]*model.User{}, teamMembers...)
	for _, u := range sample(r.rng, r.ds.Users, r.rng.Intn(4)) {
		members = append(members, u)
	}

	seen := make(map[uuid.UUID]bool, len(members))
	for _, m := range members {
		if seen[m.UserID] {
			continue
		}
		seen[m.UserID] = true

		r.ds.ProjectMembers = append(r.ds.ProjectMembers, &model.ProjectMember{
			ProjectMemberID: newID(r.rng),
			ProjectID:       p.ProjectID,
			UserID:          m.UserID,
			JoinedAt:        maxTime(p.CreatedAt, m.CreatedAt),
		})
		r.projectMembers[p.ProjectID] = append(r.projectMembers[p.ProjectID], m)
		r.userProjects[m.UserID] = append(r.userProjects[m.UserID], p)
	}
}

// memberHiredBefore returns a random member hired at or before t, or nil.
func (r *run) memberHiredBefore(members []*model.User, t time.Time) *model.User {
	eligible := make([]*model.User, 0, len(members))
	for _, m := range members {
		if !m.CreatedAt.After(t) {
			eligible = append(eligible, m)
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	return pick(r.rng, eligible)
}

func earliestHire(members []*model.User) *model.User {
	first := members[0]
	for _, m := range members[1:] {
		if m.CreatedAt.Before(first.CreatedAt) {
			first = m
		}
	}
	return first
}

// activeEnd is the upper bound for activity inside a project: its
// completion or archival instant, else the window's now.
func (r *run) activeEnd(p *model.Project) time.Time {
	switch {
	case p.CompletedAt != nil:
		return *p.CompletedAt
	case p.ArchivedAt != nil:
		return *p.ArchivedAt
	default:
		return r.win.Now
	}
}
