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

// generateTeams creates department teams sized by department population,
// tops up with project and cross-functional teams, and writes the
// memberships. Every team owner is one of its members.
func (r *run) generateTeams(context.Context) error {
	teamTypeDist, err := r.lib.Weighted(dist.TeamType)
	if err != nil {
		return err
	}
	sizeDist, err := r.lib.Normal(dist.TeamSize)
	if err != nil {
		return err
	}

	target := r.cfg.Teams
	if target == 0 {
		target = max(1, len(r.ds.Users)/8)
	}

	usersByDept := make(map[string][]*model.User)
	for _, u := range r.ds.Users {
		usersByDept[u.Department] = append(usersByDept[u.Department], u)
	}

	// Standing department teams first, in fixed department order.
	for _, dept := range refdata.Departments {
		if len(r.ds.Teams) >= target {
			break
		}
		deptUsers := usersByDept[dept]
		if len(deptUsers) == 0 {
			continue
		}

		names := refdata.DepartmentTeams[dept]
		numTeams := min(len(names), max(1, len(deptUsers)/8))
		for i := 0; i < numTeams && len(r.ds.Teams) < target; i++ {
			members := sample(r.rng, deptUsers, sizeDist.SampleInt(r.rng))
			r.addTeam(names[i], fmt.Sprintf("%s focused on %s initiatives", names[i], dept), "department", members)
		}
	}

	// Project and cross-functional teams make up the remainder.
	for len(r.ds.Teams) < target {
		teamType := teamTypeDist.Sample(r.rng)
		if teamType == "department" {
			teamType = "project"
		}

		word := pick(r.rng, refdata.InitiativeWords)
		var name string
		switch teamType {
		case "cross_functional":
			name = fmt.Sprintf("%s Initiative", word)
		case "working_group":
			name = fmt.Sprintf("%s Working Group", word)
		default:
			name = fmt.Sprintf("Project %s", word)
		}

		members := sample(r.rng, r.ds.Users, sizeDist.SampleInt(r.rng))
		r.addTeam(name, fmt.Sprintf("%s (%s)", name, teamType), teamType, members)
	}

	r.log.Info().
		Int("teams", len(r.ds.Teams)).
		Int("memberships", len(r.ds.Memberships)).
		Msg("generated teams")

	return nil
}

func (r *run) addTeam(name, description, teamType string, members []*model.User) {
	// Creation skews toward the first half of the company's lifetime.
	orgCreated := r.ds.Org.CreatedAt
	half := r.win.Now.Sub(orgCreated) / 2
	created := orgCreated.Add(time.Duration(r.rng.Int63n(int64(half))))
	if r.rng.Float64() >= 0.7 {
		created = created.Add(half)
	}

	owner := members[0]
	for _, m := range members {
		if m.Role == "admin" {
			owner = m
			break
		}
	}

	team := &model.Team{
		TeamID:      newID(r.rng),
		OrgID:       r.ds.Org.OrgID,
		Name:        name,
		Description: description,
		TeamType:    teamType,
		OwnerID:     owner.UserID,
		IsArchived:  teamType != "department" && r.rng.Float64() < 0.05,
		CreatedAt:   created,
	}
	r.ds.Teams = append(r.ds.Teams, team)
	r.teamMembers[team.TeamID] = members

	seen := make(map[uuid.UUID]bool, len(members))
	for _, m := range members {
		if seen[m.UserID] {
			continue
		}
		seen[m.UserID] = true

		role := "member"
		if m.UserID == owner.UserID {
			role = "lead"
		}
		r.ds.Memberships = append(r.ds.Memberships, &model.TeamMembership{
			MembershipID: newID(r.rng),
			TeamID:       team.TeamID,
			UserID:       m.UserID,
			Role:         role,
			JoinedAt:     maxTime(created, m.CreatedAt),
		})
		if r.teamsOfUser[m.UserID] == nil {
			r.teamsOfUser[m.UserID] = make(map[uuid.UUID]bool)
		}
		r.teamsOfUser[m.UserID][team.TeamID] = true
	}
}
