package gen

import (
	"context"
	"strconv"

	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/model"
	"github.com/seedworks/taskgen/internal/textgen"
)

// generateComments attaches discussion threads to a sampled share of
// tasks. Comments land between the task's creation and its completion (or
// now), authored by project members who existed at the time. Bodies come
// from the text service with template fallback.
func (r *run) generateComments(ctx context.Context) error {
	hasComments, err := r.lib.Bernoulli(dist.HasComments)
	if err != nil {
		return err
	}
	perTask, err := r.lib.Range(dist.CommentsPerTask)
	if err != nil {
		return err
	}
	likesDist, err := r.lib.Weighted(dist.LikesPerComment)
	if err != nil {
		return err
	}

	for _, t := range r.ds.Tasks {
		if !hasComments.Sample(r.rng) {
			continue
		}

		p := r.projectByID(*t.ProjectID)
		upper := r.win.Now
		if t.CompletedAt != nil {
			upper = *t.CompletedAt
		}

		n := perTask.Sample(r.rng)
		for i := 0; i < n; i++ {
			created := timeBetween(r.rng, t.CreatedAt, upper)

			author := r.memberHiredBefore(r.projectMembers[p.ProjectID], created)
			if author == nil {
				author = r.usersByID[t.CreatedByID]
			}
			// Assignees dominate their own task's thread.
			if t.AssigneeID != nil && r.rng.Float64() < 0.5 {
				if a := r.usersByID[*t.AssigneeID]; !a.CreatedAt.After(created) {
					author = a
				}
			}

			likes, err := strconv.Atoi(likesDist.Sample(r.rng))
			if err != nil {
				return err
			}

			r.ds.Comments = append(r.ds.Comments, &model.Comment{
				CommentID: newID(r.rng),
				TaskID:    t.TaskID,
				AuthorID:  author.UserID,
				NumLikes:  likes,
				CreatedAt: created,
			})
		}
	}

	r.fillCommentText(ctx)

	r.log.Info().Int("comments", len(r.ds.Comments)).Msg("generated comments")
	return nil
}

func (r *run) fillCommentText(ctx context.Context) {
	taskName := make(map[string]string, len(r.ds.Tasks))
	for _, t := range r.ds.Tasks {
		taskName[t.TaskID.String()] = t.Name
	}

	reqs := make([]textgen.Request, 0, len(r.ds.Comments))
	for _, c := range r.ds.Comments {
		reqs = append(reqs, textgen.Request{
			ID:   c.CommentID.String(),
			Kind: textgen.KindComment,
			Context: textgen.Context{
				TaskName:   taskName[c.TaskID.String()],
				AuthorName: r.usersByID[c.AuthorID].Name,
			},
		})
	}

	texts := r.text.Generate(ctx, reqs)
	for _, c := range r.ds.Comments {
		c.Body = texts[c.CommentID.String()]
	}
}
