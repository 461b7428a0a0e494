package gen

import (
	"context"

	"github.com/google/uuid"
	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/model"
)

// generateDependencies links a fraction of tasks to another task in the
// same project. Edges point from the dependent task to its blocker; each
// candidate edge is rejected if it would introduce a self-loop, a
// duplicate, or a cycle.
func (r *run) generateDependencies(context.Context) error {
	rate, err := r.lib.Bernoulli(dist.DependencyRate)
	if err != nil {
		return err
	}

	// adjacency: task -> set of tasks it depends on, for the edges
	// accepted so far.
	adj := make(map[uuid.UUID][]uuid.UUID)
	seen := make(map[[2]uuid.UUID]bool)

	for _, t := range r.ds.Tasks {
		if !rate.Sample(r.rng) {
			continue
		}

		candidates := r.tasksByProject[*t.ProjectID]
		if len(candidates) < 2 {
			continue
		}

		other := pick(r.rng, candidates)
		if other.TaskID == t.TaskID {
			continue
		}
		edge := [2]uuid.UUID{t.TaskID, other.TaskID}
		if seen[edge] {
			continue
		}
		if reachable(adj, other.TaskID, t.TaskID) {
			continue
		}

		seen[edge] = true
		adj[t.TaskID] = append(adj[t.TaskID], other.TaskID)
		r.ds.Dependencies = append(r.ds.Dependencies, &model.TaskDependency{
			DependencyID:    newID(r.rng),
			TaskID:          t.TaskID,
			DependsOnTaskID: other.TaskID,
			CreatedAt:       maxTime(t.CreatedAt, other.CreatedAt),
		})
	}

	r.log.Info().Int("dependencies", len(r.ds.Dependencies)).Msg("generated dependencies")
	return nil
}

// reachable reports whether to can be reached from from by following
// depends-on edges.
func reachable(adj map[uuid.UUID][]uuid.UUID, from, to uuid.UUID) bool {
	if from == to {
		return true
	}
	visited := map[uuid.UUID]bool{from: true}
	stack := []uuid.UUID{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range adj[cur] {
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}
