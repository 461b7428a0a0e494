package gen

import (
	"context"

	"github.com/google/uuid"
)

// finalize recomputes the denormalized counters on tasks from the entities
// generated after them.
func (r *run) finalize(context.Context) error {
	tasks := make(map[uuid.UUID]int, len(r.ds.Tasks))
	for i, t := range r.ds.Tasks {
		tasks[t.TaskID] = i
		t.NumSubtasks = 0
		t.NumCompletedSubtasks = 0
		t.NumComments = 0
		t.NumLikes = 0
	}

	for _, t := range r.ds.Tasks {
		if t.ParentTaskID == nil {
			continue
		}
		parent := r.ds.Tasks[tasks[*t.ParentTaskID]]
		parent.NumSubtasks++
		if t.Completed {
			parent.NumCompletedSubtasks++
		}
	}

	for _, c := range r.ds.Comments {
		t := r.ds.Tasks[tasks[c.TaskID]]
		t.NumComments++
		t.NumLikes += c.NumLikes
	}

	r.log.Info().Msg("finalized task counters")
	return nil
}
