package gen

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/model"
	"github.com/seedworks/taskgen/internal/refdata"
	"github.com/seedworks/taskgen/internal/textgen"
)

// generateTasks runs the two task passes: top-level tasks per user, then
// subtasks keyed by parent. Only the first pass's output is eligible as a
// parent, so the hierarchy depth never exceeds one by construction. Names
// and descriptions are filled by the text service, with the
// template-derived hint as fallback.
func (r *run) generateTasks(ctx context.Context) error {
	countDist, err := r.lib.Normal(dist.TasksPerUser)
	if err != nil {
		return err
	}
	subtaskDist, err := r.lib.Weighted(dist.SubtasksPerTask)
	if err != nil {
		return err
	}
	priorityDist, err := r.lib.Weighted(dist.Priority)
	if err != nil {
		return err
	}
	completerDist, err := r.lib.Bernoulli(dist.CompletedByIsAssignee)
	if err != nil {
		return err
	}

	// Pass one: top-level tasks, owner-weighted per user.
	var parents []*model.Task
	for _, u := range r.ds.Users {
		projects := r.userProjects[u.UserID]
		if len(projects) == 0 {
			continue
		}

		for i := 0; i < countDist.SampleInt(r.rng); i++ {
			p := r.pickProjectFor(u, projects)
			task, err := r.addTask(p, u, nil, priorityDist, completerDist)
			if err != nil {
				return err
			}
			parents = append(parents, task)
		}
	}

	// Pass two: subtasks. Parents come exclusively from pass one.
	for _, parent := range parents {
		n, err := strconv.Atoi(subtaskDist.Sample(r.rng))
		if err != nil {
			return fmt.Errorf("invalid subtask count: %w", err)
		}
		p := r.projectByID(*parent.ProjectID)
		for i := 0; i < n; i++ {
			creator := r.usersByID[parent.CreatedByID]
			if _, err := r.addTask(p, creator, parent, priorityDist, completerDist); err != nil {
				return err
			}
		}
	}

	r.fillTaskText(ctx)

	r.log.Info().
		Int("tasks", len(r.ds.Tasks)).
		Int("top_level", len(parents)).
		Msg("generated tasks")

	return nil
}

// pickProjectFor picks one of the user's projects, weighted three to one
// toward projects owned by a team the user belongs to.
func (r *run) pickProjectFor(u *model.User, projects []*model.Project) *model.Project {
	var total int
	weights := make([]int, len(projects))
	for i, p := range projects {
		w := 1
		if p.TeamID != nil && r.teamsOfUser[u.UserID][*p.TeamID] {
			w = 3
		}
		weights[i] = w
		total += w
	}

	target := r.rng.Intn(total)
	for i, w := range weights {
		target -= w
		if target < 0 {
			return projects[i]
		}
	}
	return projects[len(projects)-1]
}

// addTask creates one task inside the project's active window. A nil
// parent makes a top-level task; a non-nil one a subtask created at or
// after its parent.
func (r *run) addTask(p *model.Project, requester *model.User, parent *model.Task, priorityDist dist.Weighted, completerDist dist.Bernoulli) (*model.Task, error) {
	end := r.activeEnd(p)

	low := p.StartDate
	if parent != nil {
		low = parent.CreatedAt
	}
	// Leave room before now so a completion instant can follow strictly.
	created := maxTime(low, minTime(timeBetween(r.rng, low, end), r.win.Now.Add(-time.Minute)))

	// The creator must exist by the creation instant.
	creator := requester
	if creator.CreatedAt.After(created) {
		if m := r.memberHiredBefore(r.projectMembers[p.ProjectID], created); m != nil {
			creator = m
		} else {
			creator = earliestHire(r.projectMembers[p.ProjectID])
			created = maxTime(created, creator.CreatedAt)
		}
	}

	rate, ok := r.cfg.CompletionTargets[p.ProjectType]
	if !ok {
		return nil, fmt.Errorf("no completion target for project type %q", p.ProjectType)
	}
	completed := r.rng.Float64() < rate

	var completedAt *time.Time
	modified := timeBetween(r.rng, created, maxTime(created, end))
	if completed {
		c := timeBetween(r.rng, created.Add(time.Second), minTime(maxTime(created.Add(time.Second), end), r.win.Now))
		completedAt = &c
		modified = c
	}

	assignee := r.assign(p, created, completed)

	var completedBy *uuid.UUID
	if completed {
		switch {
		case assignee != nil && completerDist.Sample(r.rng):
			completedBy = assignee
		default:
			if m := r.memberHiredBefore(r.projectMembers[p.ProjectID], created); m != nil {
				completedBy = ptr(m.UserID)
			} else {
				completedBy = ptr(creator.UserID)
			}
		}
	}

	var dueDate *time.Time
	if r.rng.Float64() < 0.6 {
		dueDate = ptr(created.AddDate(0, 0, 1+r.rng.Intn(30)))
	}

	hint, descHint := r.taskHints(p)

	task := &model.Task{
		TaskID:      newID(r.rng),
		ProjectID:   ptr(p.ProjectID),
		SectionID:   ptr(r.sectionFor(p, completed)),
		Name:        hint,
		Description: descHint,
		AssigneeID:  assignee,
		CreatedByID: creator.UserID,
		Priority:    priorityDist.Sample(r.rng),
		Completed:   completed,
		CompletedAt: completedAt,
		CompletedBy: completedBy,
		DueDate:     dueDate,
		CreatedAt:   created,
		ModifiedAt:  maxTime(modified, created),
	}
	if parent != nil {
		task.ParentTaskID = ptr(parent.TaskID)
	}

	r.ds.Tasks = append(r.ds.Tasks, task)
	r.tasksByProject[p.ProjectID] = append(r.tasksByProject[p.ProjectID], task)
	r.addFollowers(task)

	return task, nil
}

// assign picks an assignee from the project members hired by the creation
// instant. Assigning an open task to a user already at the workload cap is
// not allowed: saturated users are excluded and, with nobody eligible, the
// task stays unassigned.
func (r *run) assign(p *model.Project, created time.Time, completed bool) *uuid.UUID {
	var eligible []*model.User
	for _, m := range r.projectMembers[p.ProjectID] {
		if m.CreatedAt.After(created) {
			continue
		}
		if !completed && r.openTasks[m.UserID] >= r.cfg.WorkloadCap {
			continue
		}
		eligible = append(eligible, m)
	}
	if len(eligible) == 0 {
		return nil
	}

	chosen := pick(r.rng, eligible)
	if !completed {
		r.openTasks[chosen.UserID]++
	}
	return ptr(chosen.UserID)
}

// sectionFor places completed tasks in the final section and the rest in
// one of the earlier ones.
func (r *run) sectionFor(p *model.Project, completed bool) uuid.UUID {
	sections := r.sectionsByProject[p.ProjectID]
	if completed {
		return sections[len(sections)-1].SectionID
	}
	return sections[r.rng.Intn(len(sections)-1)].SectionID
}

func (r *run) addFollowers(task *model.Task) {
	seen := make(map[uuid.UUID]bool, 2)
	for _, id := range []*uuid.UUID{task.AssigneeID, ptr(task.CreatedByID)} {
		if id == nil || seen[*id] {
			continue
		}
		seen[*id] = true
		r.ds.Followers = append(r.ds.Followers, &model.TaskFollower{
			TaskFollowerID: newID(r.rng),
			TaskID:         task.TaskID,
			UserID:         *id,
			CreatedAt:      task.CreatedAt,
		})
	}
}

// taskHints builds the template name and description for a task. These are
// both the fallback text and the draft handed to the text service.
func (r *run) taskHints(p *model.Project) (string, string) {
	patterns, ok := refdata.TaskNamePatterns[p.ProjectType]
	if !ok {
		patterns = refdata.TaskNamePatterns["software_development"]
	}
	name := fmt.Sprintf(pick(r.rng, patterns), pick(r.rng, refdata.TaskKeywords))
	desc := fmt.Sprintf("Part of %s. %s.", p.Name, name)
	return name, desc
}

// fillTaskText resolves names and descriptions through the text service.
// Responses are matched back by request ID; anything unresolved keeps its
// template hint.
func (r *run) fillTaskText(ctx context.Context) {
	reqs := make([]textgen.Request, 0, len(r.ds.Tasks)*2)
	for _, t := range r.ds.Tasks {
		p := r.projectByID(*t.ProjectID)
		tctx := textgen.Context{
			ProjectName: p.Name,
			ProjectType: p.ProjectType,
			TaskName:    t.Name,
			Hint:        t.Name,
		}
		reqs = append(reqs, textgen.Request{ID: t.TaskID.String() + "/name", Kind: textgen.KindTaskName, Context: tctx})

		dctx := tctx
		dctx.Hint = t.Description
		reqs = append(reqs, textgen.Request{ID: t.TaskID.String() + "/desc", Kind: textgen.KindTaskDescription, Context: dctx})
	}

	texts := r.text.Generate(ctx, reqs)
	for _, t := range r.ds.Tasks {
		if s, ok := texts[t.TaskID.String()+"/name"]; ok && s != "" {
			t.Name = s
		}
		if s, ok := texts[t.TaskID.String()+"/desc"]; ok && s != "" {
			t.Description = s
		}
	}
}

func (r *run) projectByID(id uuid.UUID) *model.Project {
	return r.projectsByID[id]
}
