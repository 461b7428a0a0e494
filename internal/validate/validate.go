// Package validate checks a generated dataset for referential, temporal and
// statistical consistency before it is persisted. All checks run over the
// in-memory dataset; a clean run returns no violations.
package validate

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/seedworks/taskgen/internal/config"
	"github.com/seedworks/taskgen/internal/gen"
	"github.com/seedworks/taskgen/internal/model"
)

// minSampleSize is the per-project-type task count below which the
// completion rate check is skipped; tiny samples make the rate meaningless.
const minSampleSize = 50

// Violation is one failed consistency check, tied to the entity that
// triggered it.
type Violation struct {
	Rule   string
	Entity string
	ID     string
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s %s: %s", v.Rule, v.Entity, v.ID, v.Detail)
}

// Validator runs the full check suite against one dataset.
type Validator struct {
	cfg *config.Config
	win gen.Window
	log zerolog.Logger
}

func New(cfg *config.Config, win gen.Window, log zerolog.Logger) *Validator {
	return &Validator{cfg: cfg, win: win, log: log}
}

// Run executes every check and returns all violations found.
func (v *Validator) Run(ds *gen.Dataset) []Violation {
	c := &checker{ds: ds, cfg: v.cfg, win: v.win}

	c.index()
	c.checkUsers()
	c.checkTeams()
	c.checkProjects()
	c.checkSections()
	c.checkTasks()
	c.checkComments()
	c.checkStories()
	c.checkAttachments()
	c.checkCustomFields()
	c.checkTags()
	c.checkDependencies()
	c.checkWorkload()
	c.checkCompletionRates()

	v.log.Info().
		Int("violations", len(c.violations)).
		Msg("validation finished")
	return c.violations
}

type checker struct {
	ds  *gen.Dataset
	cfg *config.Config
	win gen.Window

	users    map[uuid.UUID]*model.User
	teams    map[uuid.UUID]*model.Team
	projects map[uuid.UUID]*model.Project
	sections map[uuid.UUID]*model.Section
	tasks    map[uuid.UUID]*model.Task
	fields   map[uuid.UUID]*model.CustomFieldDefinition
	options  map[uuid.UUID]*model.CustomFieldEnumOption
	tags     map[uuid.UUID]*model.Tag

	violations []Violation
}

func (c *checker) index() {
	c.users = make(map[uuid.UUID]*model.User, len(c.ds.Users))
	for _, u := range c.ds.Users {
		c.users[u.UserID] = u
	}
	c.teams = make(map[uuid.UUID]*model.Team, len(c.ds.Teams))
	for _, t := range c.ds.Teams {
		c.teams[t.TeamID] = t
	}
	c.projects = make(map[uuid.UUID]*model.Project, len(c.ds.Projects))
	for _, p := range c.ds.Projects {
		c.projects[p.ProjectID] = p
	}
	c.sections = make(map[uuid.UUID]*model.Section, len(c.ds.Sections))
	for _, s := range c.ds.Sections {
		c.sections[s.SectionID] = s
	}
	c.tasks = make(map[uuid.UUID]*model.Task, len(c.ds.Tasks))
	for _, t := range c.ds.Tasks {
		c.tasks[t.TaskID] = t
	}
	c.fields = make(map[uuid.UUID]*model.CustomFieldDefinition, len(c.ds.FieldDefs))
	for _, f := range c.ds.FieldDefs {
		c.fields[f.FieldID] = f
	}
	c.options = make(map[uuid.UUID]*model.CustomFieldEnumOption, len(c.ds.FieldOptions))
	for _, o := range c.ds.FieldOptions {
		c.options[o.OptionID] = o
	}
	c.tags = make(map[uuid.UUID]*model.Tag, len(c.ds.Tags))
	for _, t := range c.ds.Tags {
		c.tags[t.TagID] = t
	}
}

func (c *checker) add(rule, entity string, id uuid.UUID, format string, args ...any) {
	c.violations = append(c.violations, Violation{
		Rule:   rule,
		Entity: entity,
		ID:     id.String(),
		Detail: fmt.Sprintf(format, args...),
	})
}

func (c *checker) checkUsers() {
	org := c.ds.Org
	emails := make(map[string]uuid.UUID, len(c.ds.Users))
	for _, u := range c.ds.Users {
		if u.OrgID != org.OrgID {
			c.add("fk", "user", u.UserID, "org %s does not exist", u.OrgID)
		}
		if u.CreatedAt.Before(org.CreatedAt) {
			c.add("temporal", "user", u.UserID, "hired before the organization existed")
		}
		if u.CreatedAt.After(c.win.Now) {
			c.add("temporal", "user", u.UserID, "hired in the future")
		}
		if u.LastActiveAt.Before(u.CreatedAt) {
			c.add("temporal", "user", u.UserID, "last active before hire date")
		}
		if prev, dup := emails[u.Email]; dup {
			c.add("unique", "user", u.UserID, "email %s already used by %s", u.Email, prev)
		}
		emails[u.Email] = u.UserID
	}
}

func (c *checker) checkTeams() {
	for _, t := range c.ds.Teams {
		if _, ok := c.users[t.OwnerID]; !ok {
			c.add("fk", "team", t.TeamID, "owner %s does not exist", t.OwnerID)
		}
		if t.CreatedAt.Before(c.ds.Org.CreatedAt) || t.CreatedAt.After(c.win.Now) {
			c.add("temporal", "team", t.TeamID, "created outside the organization's lifetime")
		}
	}

	seen := make(map[[2]uuid.UUID]bool, len(c.ds.Memberships))
	for _, m := range c.ds.Memberships {
		if _, ok := c.teams[m.TeamID]; !ok {
			c.add("fk", "team_membership", m.MembershipID, "team %s does not exist", m.TeamID)
			continue
		}
		u, ok := c.users[m.UserID]
		if !ok {
			c.add("fk", "team_membership", m.MembershipID, "user %s does not exist", m.UserID)
			continue
		}
		if m.JoinedAt.Before(u.CreatedAt) {
			c.add("temporal", "team_membership", m.MembershipID, "user joined before being hired")
		}
		key := [2]uuid.UUID{m.TeamID, m.UserID}
		if seen[key] {
			c.add("unique", "team_membership", m.MembershipID, "duplicate membership for user %s", m.UserID)
		}
		seen[key] = true
	}
}

func (c *checker) checkProjects() {
	for _, p := range c.ds.Projects {
		if p.TeamID != nil {
			if _, ok := c.teams[*p.TeamID]; !ok {
				c.add("fk", "project", p.ProjectID, "team %s does not exist", *p.TeamID)
			}
		}
		owner, ok := c.users[p.OwnerID]
		if !ok {
			c.add("fk", "project", p.ProjectID, "owner %s does not exist", p.OwnerID)
		} else if p.CreatedAt.Before(owner.CreatedAt) {
			c.add("temporal", "project", p.ProjectID, "created before its owner was hired")
		}
		if p.CreatedAt.Before(c.ds.Org.CreatedAt) || p.CreatedAt.After(c.win.Now) {
			c.add("temporal", "project", p.ProjectID, "created outside the organization's lifetime")
		}
		if p.ModifiedAt.Before(p.CreatedAt) {
			c.add("temporal", "project", p.ProjectID, "modified before creation")
		}
		if p.ModifiedAt.After(c.win.Now) {
			c.add("temporal", "project", p.ProjectID, "modified in the future")
		}
		if p.CompletedAt != nil && !p.CompletedAt.After(p.CreatedAt) {
			c.add("temporal", "project", p.ProjectID, "completed at or before creation")
		}
		if p.ArchivedAt != nil && p.ArchivedAt.Before(p.CreatedAt) {
			c.add("temporal", "project", p.ProjectID, "archived before creation")
		}
		if p.Status == "completed" && p.CompletedAt == nil {
			c.add("state", "project", p.ProjectID, "completed status without a completion time")
		}
		if p.Status == "archived" && p.ArchivedAt == nil {
			c.add("state", "project", p.ProjectID, "archived status without an archival time")
		}
	}

	seen := make(map[[2]uuid.UUID]bool, len(c.ds.ProjectMembers))
	for _, m := range c.ds.ProjectMembers {
		if _, ok := c.projects[m.ProjectID]; !ok {
			c.add("fk", "project_member", m.ProjectMemberID, "project %s does not exist", m.ProjectID)
			continue
		}
		u, ok := c.users[m.UserID]
		if !ok {
			c.add("fk", "project_member", m.ProjectMemberID, "user %s does not exist", m.UserID)
			continue
		}
		if m.JoinedAt.Before(u.CreatedAt) {
			c.add("temporal", "project_member", m.ProjectMemberID, "user joined before being hired")
		}
		key := [2]uuid.UUID{m.ProjectID, m.UserID}
		if seen[key] {
			c.add("unique", "project_member", m.ProjectMemberID, "duplicate membership for user %s", m.UserID)
		}
		seen[key] = true
	}
}

func (c *checker) checkSections() {
	positions := make(map[[2]any]bool, len(c.ds.Sections))
	for _, s := range c.ds.Sections {
		if _, ok := c.projects[s.ProjectID]; !ok {
			c.add("fk", "section", s.SectionID, "project %s does not exist", s.ProjectID)
			continue
		}
		key := [2]any{s.ProjectID, s.Position}
		if positions[key] {
			c.add("unique", "section", s.SectionID, "position %d reused within project %s", s.Position, s.ProjectID)
		}
		positions[key] = true
	}
}

func (c *checker) checkTasks() {
	for _, t := range c.ds.Tasks {
		if t.ProjectID == nil {
			c.add("fk", "task", t.TaskID, "no project")
			continue
		}
		p, ok := c.projects[*t.ProjectID]
		if !ok {
			c.add("fk", "task", t.TaskID, "project %s does not exist", *t.ProjectID)
			continue
		}
		if t.SectionID != nil {
			s, ok := c.sections[*t.SectionID]
			if !ok {
				c.add("fk", "task", t.TaskID, "section %s does not exist", *t.SectionID)
			} else if s.ProjectID != p.ProjectID {
				c.add("fk", "task", t.TaskID, "section belongs to project %s", s.ProjectID)
			}
		}

		creator, ok := c.users[t.CreatedByID]
		if !ok {
			c.add("fk", "task", t.TaskID, "creator %s does not exist", t.CreatedByID)
		} else if t.CreatedAt.Before(creator.CreatedAt) {
			c.add("temporal", "task", t.TaskID, "created before its creator was hired")
		}
		if t.AssigneeID != nil {
			a, ok := c.users[*t.AssigneeID]
			if !ok {
				c.add("fk", "task", t.TaskID, "assignee %s does not exist", *t.AssigneeID)
			} else if t.CreatedAt.Before(a.CreatedAt) {
				c.add("temporal", "task", t.TaskID, "assigned to a user hired after the task was created")
			}
		}

		if t.CreatedAt.Before(c.ds.Org.CreatedAt) || t.CreatedAt.After(c.win.Now) {
			c.add("temporal", "task", t.TaskID, "created outside the organization's lifetime")
		}
		if t.ModifiedAt.Before(t.CreatedAt) {
			c.add("temporal", "task", t.TaskID, "modified before creation")
		}
		if t.ModifiedAt.After(c.win.Now) {
			c.add("temporal", "task", t.TaskID, "modified in the future")
		}
		if t.Completed {
			if t.CompletedAt == nil {
				c.add("state", "task", t.TaskID, "completed without a completion time")
			} else {
				if !t.CompletedAt.After(t.CreatedAt) {
					c.add("temporal", "task", t.TaskID, "completed at or before creation")
				}
				if t.CompletedAt.After(c.win.Now) {
					c.add("temporal", "task", t.TaskID, "completed in the future")
				}
			}
			if t.CompletedBy != nil {
				if _, ok := c.users[*t.CompletedBy]; !ok {
					c.add("fk", "task", t.TaskID, "completer %s does not exist", *t.CompletedBy)
				}
			}
		} else if t.CompletedAt != nil || t.CompletedBy != nil {
			c.add("state", "task", t.TaskID, "open task carries completion details")
		}

		if t.ParentTaskID != nil {
			parent, ok := c.tasks[*t.ParentTaskID]
			switch {
			case !ok:
				c.add("fk", "task", t.TaskID, "parent %s does not exist", *t.ParentTaskID)
			case parent.ParentTaskID != nil:
				c.add("hierarchy", "task", t.TaskID, "parent %s is itself a subtask", parent.TaskID)
			case parent.ProjectID == nil || *parent.ProjectID != *t.ProjectID:
				c.add("hierarchy", "task", t.TaskID, "parent lives in project %s", *parent.ProjectID)
			}
		}
	}

	c.checkSubtaskCounters()
	c.checkFollowers()
}

func (c *checker) checkSubtaskCounters() {
	type counts struct{ total, completed int }
	byParent := make(map[uuid.UUID]counts)
	for _, t := range c.ds.Tasks {
		if t.ParentTaskID == nil {
			continue
		}
		cc := byParent[*t.ParentTaskID]
		cc.total++
		if t.Completed {
			cc.completed++
		}
		byParent[*t.ParentTaskID] = cc
	}
	for _, t := range c.ds.Tasks {
		cc := byParent[t.TaskID]
		if t.NumSubtasks != cc.total {
			c.add("counter", "task", t.TaskID, "num_subtasks %d, actual %d", t.NumSubtasks, cc.total)
		}
		if t.NumCompletedSubtasks != cc.completed {
			c.add("counter", "task", t.TaskID, "num_completed_subtasks %d, actual %d", t.NumCompletedSubtasks, cc.completed)
		}
	}
}

func (c *checker) checkFollowers() {
	seen := make(map[[2]uuid.UUID]bool, len(c.ds.Followers))
	for _, f := range c.ds.Followers {
		if _, ok := c.tasks[f.TaskID]; !ok {
			c.add("fk", "task_follower", f.TaskFollowerID, "task %s does not exist", f.TaskID)
			continue
		}
		if _, ok := c.users[f.UserID]; !ok {
			c.add("fk", "task_follower", f.TaskFollowerID, "user %s does not exist", f.UserID)
			continue
		}
		key := [2]uuid.UUID{f.TaskID, f.UserID}
		if seen[key] {
			c.add("unique", "task_follower", f.TaskFollowerID, "duplicate follower %s", f.UserID)
		}
		seen[key] = true
	}
}

func (c *checker) checkComments() {
	type counts struct{ comments, likes int }
	byTask := make(map[uuid.UUID]counts)

	for _, cm := range c.ds.Comments {
		t, ok := c.tasks[cm.TaskID]
		if !ok {
			c.add("fk", "comment", cm.CommentID, "task %s does not exist", cm.TaskID)
			continue
		}
		author, ok := c.users[cm.AuthorID]
		if !ok {
			c.add("fk", "comment", cm.CommentID, "author %s does not exist", cm.AuthorID)
		} else if cm.CreatedAt.Before(author.CreatedAt) {
			c.add("temporal", "comment", cm.CommentID, "written before its author was hired")
		}
		if cm.CreatedAt.Before(t.CreatedAt) {
			c.add("temporal", "comment", cm.CommentID, "written before its task existed")
		}
		if cm.CreatedAt.After(c.win.Now) {
			c.add("temporal", "comment", cm.CommentID, "written in the future")
		}
		if cm.Body == "" {
			c.add("state", "comment", cm.CommentID, "empty body")
		}

		cc := byTask[cm.TaskID]
		cc.comments++
		cc.likes += cm.NumLikes
		byTask[cm.TaskID] = cc
	}

	for _, t := range c.ds.Tasks {
		cc := byTask[t.TaskID]
		if t.NumComments != cc.comments {
			c.add("counter", "task", t.TaskID, "num_comments %d, actual %d", t.NumComments, cc.comments)
		}
		if t.NumLikes != cc.likes {
			c.add("counter", "task", t.TaskID, "num_likes %d, actual %d", t.NumLikes, cc.likes)
		}
	}
}

func (c *checker) checkStories() {
	for _, s := range c.ds.Stories {
		if (s.TaskID == nil) == (s.ProjectID == nil) {
			c.add("state", "story", s.StoryID, "must reference exactly one of task or project")
			continue
		}
		actor, ok := c.users[s.ActorID]
		if !ok {
			c.add("fk", "story", s.StoryID, "actor %s does not exist", s.ActorID)
		} else if s.CreatedAt.Before(actor.CreatedAt) {
			c.add("temporal", "story", s.StoryID, "acted before the actor was hired")
		}
		if s.CreatedAt.After(c.win.Now) {
			c.add("temporal", "story", s.StoryID, "created in the future")
		}

		if s.TaskID != nil {
			t, ok := c.tasks[*s.TaskID]
			if !ok {
				c.add("fk", "story", s.StoryID, "task %s does not exist", *s.TaskID)
				continue
			}
			if s.CreatedAt.Before(t.CreatedAt) {
				c.add("temporal", "story", s.StoryID, "predates its task")
			}
		}
		if s.ProjectID != nil {
			p, ok := c.projects[*s.ProjectID]
			if !ok {
				c.add("fk", "story", s.StoryID, "project %s does not exist", *s.ProjectID)
				continue
			}
			if s.CreatedAt.Before(p.CreatedAt) {
				c.add("temporal", "story", s.StoryID, "predates its project")
			}
		}
	}
}

func (c *checker) checkAttachments() {
	for _, a := range c.ds.Attachments {
		t, ok := c.tasks[a.TaskID]
		if !ok {
			c.add("fk", "attachment", a.AttachmentID, "task %s does not exist", a.TaskID)
			continue
		}
		uploader, ok := c.users[a.UploadedByID]
		if !ok {
			c.add("fk", "attachment", a.AttachmentID, "uploader %s does not exist", a.UploadedByID)
		} else if a.CreatedAt.Before(uploader.CreatedAt) {
			c.add("temporal", "attachment", a.AttachmentID, "uploaded before the uploader was hired")
		}
		if a.CreatedAt.Before(t.CreatedAt) || a.CreatedAt.After(c.win.Now) {
			c.add("temporal", "attachment", a.AttachmentID, "uploaded outside the task's lifetime")
		}
		if a.FileSize <= 0 {
			c.add("state", "attachment", a.AttachmentID, "non-positive file size")
		}
	}
}

func (c *checker) checkCustomFields() {
	for _, f := range c.ds.FieldDefs {
		if _, ok := c.projects[f.ProjectID]; !ok {
			c.add("fk", "custom_field", f.FieldID, "project %s does not exist", f.ProjectID)
		}
	}
	for _, o := range c.ds.FieldOptions {
		if _, ok := c.fields[o.FieldID]; !ok {
			c.add("fk", "enum_option", o.OptionID, "field %s does not exist", o.FieldID)
		}
	}

	seen := make(map[[2]uuid.UUID]bool, len(c.ds.FieldValues))
	for _, v := range c.ds.FieldValues {
		if _, ok := c.tasks[v.TaskID]; !ok {
			c.add("fk", "field_value", v.ValueID, "task %s does not exist", v.TaskID)
			continue
		}
		if _, ok := c.fields[v.FieldID]; !ok {
			c.add("fk", "field_value", v.ValueID, "field %s does not exist", v.FieldID)
			continue
		}
		if v.EnumOptionID != nil {
			opt, ok := c.options[*v.EnumOptionID]
			if !ok {
				c.add("fk", "field_value", v.ValueID, "option %s does not exist", *v.EnumOptionID)
			} else if opt.FieldID != v.FieldID {
				c.add("fk", "field_value", v.ValueID, "option belongs to field %s", opt.FieldID)
			}
		}
		key := [2]uuid.UUID{v.TaskID, v.FieldID}
		if seen[key] {
			c.add("unique", "field_value", v.ValueID, "duplicate value for field %s", v.FieldID)
		}
		seen[key] = true
	}
}

func (c *checker) checkTags() {
	names := make(map[string]bool, len(c.ds.Tags))
	for _, t := range c.ds.Tags {
		if t.OrgID != c.ds.Org.OrgID {
			c.add("fk", "tag", t.TagID, "org %s does not exist", t.OrgID)
		}
		if names[t.Name] {
			c.add("unique", "tag", t.TagID, "duplicate tag name %q", t.Name)
		}
		names[t.Name] = true
	}

	seen := make(map[[2]uuid.UUID]bool, len(c.ds.TaskTags))
	for _, tt := range c.ds.TaskTags {
		if _, ok := c.tasks[tt.TaskID]; !ok {
			c.add("fk", "task_tag", tt.TaskTagID, "task %s does not exist", tt.TaskID)
			continue
		}
		if _, ok := c.tags[tt.TagID]; !ok {
			c.add("fk", "task_tag", tt.TaskTagID, "tag %s does not exist", tt.TagID)
			continue
		}
		key := [2]uuid.UUID{tt.TaskID, tt.TagID}
		if seen[key] {
			c.add("unique", "task_tag", tt.TaskTagID, "duplicate tag %s", tt.TagID)
		}
		seen[key] = true
	}
}

func (c *checker) checkDependencies() {
	adj := make(map[uuid.UUID][]uuid.UUID, len(c.ds.Dependencies))
	seen := make(map[[2]uuid.UUID]bool, len(c.ds.Dependencies))

	for _, d := range c.ds.Dependencies {
		t, ok := c.tasks[d.TaskID]
		if !ok {
			c.add("fk", "dependency", d.DependencyID, "task %s does not exist", d.TaskID)
			continue
		}
		on, ok := c.tasks[d.DependsOnTaskID]
		if !ok {
			c.add("fk", "dependency", d.DependencyID, "task %s does not exist", d.DependsOnTaskID)
			continue
		}
		if d.TaskID == d.DependsOnTaskID {
			c.add("cycle", "dependency", d.DependencyID, "task depends on itself")
			continue
		}
		if t.ProjectID != nil && on.ProjectID != nil && *t.ProjectID != *on.ProjectID {
			c.add("state", "dependency", d.DependencyID, "links tasks across projects")
		}
		key := [2]uuid.UUID{d.TaskID, d.DependsOnTaskID}
		if seen[key] {
			c.add("unique", "dependency", d.DependencyID, "duplicate edge")
		}
		seen[key] = true
		adj[d.TaskID] = append(adj[d.TaskID], d.DependsOnTaskID)
	}

	// Iterative DFS; 0 unvisited, 1 on the current path, 2 done.
	color := make(map[uuid.UUID]int, len(adj))
	for _, t := range c.ds.Tasks {
		if color[t.TaskID] != 0 {
			continue
		}
		if node := findCycle(adj, color, t.TaskID); node != uuid.Nil {
			c.add("cycle", "task", node, "participates in a dependency cycle")
		}
	}
}

// findCycle colors nodes reachable from start and returns a node on a cycle,
// or uuid.Nil when none is found.
func findCycle(adj map[uuid.UUID][]uuid.UUID, color map[uuid.UUID]int, start uuid.UUID) uuid.UUID {
	type frame struct {
		node uuid.UUID
		next int
	}
	stack := []frame{{node: start}}
	color[start] = 1

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		edges := adj[f.node]
		if f.next >= len(edges) {
			color[f.node] = 2
			stack = stack[:len(stack)-1]
			continue
		}
		next := edges[f.next]
		f.next++
		switch color[next] {
		case 0:
			color[next] = 1
			stack = append(stack, frame{node: next})
		case 1:
			return next
		}
	}
	return uuid.Nil
}

func (c *checker) checkWorkload() {
	open := make(map[uuid.UUID]int)
	for _, t := range c.ds.Tasks {
		if t.AssigneeID != nil && !t.Completed {
			open[*t.AssigneeID]++
		}
	}
	for _, u := range c.ds.Users {
		if open[u.UserID] > c.cfg.WorkloadCap {
			c.add("workload", "user", u.UserID,
				"%d open tasks exceeds the cap of %d", open[u.UserID], c.cfg.WorkloadCap)
		}
	}
}

func (c *checker) checkCompletionRates() {
	type counts struct{ total, completed int }
	byType := make(map[string]counts)
	for _, t := range c.ds.Tasks {
		if t.ProjectID == nil {
			continue
		}
		p, ok := c.projects[*t.ProjectID]
		if !ok {
			continue
		}
		cc := byType[p.ProjectType]
		cc.total++
		if t.Completed {
			cc.completed++
		}
		byType[p.ProjectType] = cc
	}

	types := make([]string, 0, len(c.cfg.CompletionTargets))
	for ptype := range c.cfg.CompletionTargets {
		types = append(types, ptype)
	}
	sort.Strings(types)

	for _, ptype := range types {
		target := c.cfg.CompletionTargets[ptype]
		cc := byType[ptype]
		if cc.total < minSampleSize {
			continue
		}
		rate := float64(cc.completed) / float64(cc.total)
		if math.Abs(rate-target) > c.cfg.CompletionTolerance {
			c.add("statistical", "project_type", c.ds.Org.OrgID,
				"%s completion rate %.2f outside %.2f +/- %.2f",
				ptype, rate, target, c.cfg.CompletionTolerance)
		}
	}
}
