package gen

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/model"
	"github.com/seedworks/taskgen/internal/refdata"
)

// generateStories writes the activity feed. Every task opens with a
// task_created story at its creation instant; completed tasks close with a
// task_completed story at the completion instant. Events in between follow
// a sub-linear progress curve so activity clusters early in a task's life.
func (r *run) generateStories(ctx context.Context) error {
	perTask, err := r.lib.Range(dist.StoriesPerTask)
	if err != nil {
		return err
	}
	typeDist, err := r.lib.Weighted(dist.StoryType)
	if err != nil {
		return err
	}

	for _, t := range r.ds.Tasks {
		r.taskStories(t, perTask, typeDist)
	}
	r.projectStories()

	r.log.Info().Int("stories", len(r.ds.Stories)).Msg("generated stories")
	return nil
}

func (r *run) taskStories(t *model.Task, perTask dist.Range, typeDist dist.Weighted) {
	end := r.win.Now
	if t.CompletedAt != nil {
		end = *t.CompletedAt
	}

	n := perTask.Sample(r.rng)
	if n < 1 {
		n = 1
	}

	creator := r.usersByID[t.CreatedByID]
	r.addStory(t, "task_created", creator, t.CreatedAt)

	middle := n - 1
	if t.Completed {
		middle--
	}
	span := end.Sub(t.CreatedAt)
	for i := 0; i < middle; i++ {
		frac := float64(i+1) / float64(middle+1)
		at := t.CreatedAt.Add(time.Duration(math.Pow(frac, 0.6) * float64(span)))

		st := typeDist.Sample(r.rng)
		if st == "project_updated" || st == "task_created" || st == "task_completed" {
			st = "task_updated"
		}
		r.addStory(t, st, r.storyActor(t, at), at)
	}

	if t.Completed {
		by := creator
		if t.CompletedBy != nil {
			by = r.usersByID[*t.CompletedBy]
		}
		r.addStory(t, "task_completed", by, *t.CompletedAt)
	}
}

// storyActor favours the assignee, falling back to any project member who
// was already hired at the story's timestamp, then the creator.
func (r *run) storyActor(t *model.Task, at time.Time) *model.User {
	if t.AssigneeID != nil && r.rng.Float64() < 0.5 {
		if a := r.usersByID[*t.AssigneeID]; !a.CreatedAt.After(at) {
			return a
		}
	}
	if m := r.memberHiredBefore(r.projectMembers[*t.ProjectID], at); m != nil {
		return m
	}
	return r.usersByID[t.CreatedByID]
}

func (r *run) addStory(t *model.Task, storyType string, actor *model.User, at time.Time) {
	r.ds.Stories = append(r.ds.Stories, &model.Story{
		StoryID:   newID(r.rng),
		TaskID:    ptr(t.TaskID),
		ActorID:   actor.UserID,
		StoryType: storyType,
		StoryText: r.storyText(storyType, t),
		CreatedAt: at,
	})
}

func (r *run) storyText(storyType string, t *model.Task) string {
	tmpl := pick(r.rng, refdata.StoryTemplates[storyType])
	if !strings.Contains(tmpl, "%s") {
		return tmpl
	}

	var filler string
	switch storyType {
	case "task_assigned":
		who := r.usersByID[t.CreatedByID]
		if t.AssigneeID != nil {
			who = r.usersByID[*t.AssigneeID]
		}
		filler = who.Name
	case "attachment_added":
		filler = pick(r.rng, refdata.AttachmentNames)
	case "task_moved":
		filler = pick(r.rng, r.sectionsByProject[*t.ProjectID]).Name
	default:
		filler = t.Name
	}
	return fmt.Sprintf(tmpl, filler)
}

// projectStories sprinkles project_updated entries on a tenth of projects,
// acted by the project owner.
func (r *run) projectStories() {
	for _, p := range r.ds.Projects {
		if r.rng.Float64() >= 0.10 {
			continue
		}
		n := 1 + r.rng.Intn(3)
		for i := 0; i < n; i++ {
			at := timeBetween(r.rng, p.CreatedAt, r.activeEnd(p))
			r.ds.Stories = append(r.ds.Stories, &model.Story{
				StoryID:   newID(r.rng),
				ProjectID: ptr(p.ProjectID),
				ActorID:   p.OwnerID,
				StoryType: "project_updated",
				StoryText: pick(r.rng, refdata.StoryTemplates["project_updated"]),
				CreatedAt: at,
			})
		}
	}
}
