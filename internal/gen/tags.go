package gen

import (
	"context"
	"strconv"

	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/model"
	"github.com/seedworks/taskgen/internal/refdata"
)

// generateTags creates the org-wide tag pool and labels tasks with up to a
// few distinct tags each.
func (r *run) generateTags(context.Context) error {
	perTask, err := r.lib.Weighted(dist.TagsPerTask)
	if err != nil {
		return err
	}

	tags := make([]*model.Tag, 0, len(refdata.TagNames))
	for _, name := range refdata.TagNames {
		tag := &model.Tag{
			TagID:     newID(r.rng),
			OrgID:     r.ds.Org.OrgID,
			Name:      name,
			Color:     refdata.Color(name),
			CreatedAt: r.ds.Org.CreatedAt,
		}
		tags = append(tags, tag)
		r.ds.Tags = append(r.ds.Tags, tag)
	}

	for _, t := range r.ds.Tasks {
		n, err := strconv.Atoi(perTask.Sample(r.rng))
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}
		for _, tag := range sample(r.rng, tags, n) {
			r.ds.TaskTags = append(r.ds.TaskTags, &model.TaskTag{
				TaskTagID: newID(r.rng),
				TaskID:    t.TaskID,
				TagID:     tag.TagID,
				CreatedAt: t.CreatedAt,
			})
		}
	}

	r.log.Info().
		Int("tags", len(r.ds.Tags)).
		Int("task_tags", len(r.ds.TaskTags)).
		Msg("generated tags")
	return nil
}
