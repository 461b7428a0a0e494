package gen_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seedworks/taskgen/internal/config"
	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/gen"
	"github.com/seedworks/taskgen/internal/logger"
	"github.com/seedworks/taskgen/internal/model"
	"github.com/seedworks/taskgen/internal/textgen"
	"github.com/seedworks/taskgen/internal/validate"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Config{
		MinUsers:        10,
		MaxUsers:        10,
		MonthsOfHistory: 3,
		Teams:           2,
		Projects:        3,
		TasksPerUser:    5,
		Seed:            42,
		ReferenceTime:   time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
		OutputPath:      "unused.sqlite",
	}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())
	return cfg
}

func generate(t *testing.T, cfg config.Config) *gen.Dataset {
	t.Helper()
	log := logger.Setup(false)
	pipe := gen.New(cfg, dist.DefaultLibrary(cfg.TasksPerUser), textgen.Fallback{}, log)

	ds, err := pipe.Run(context.Background())
	require.NoError(t, err)
	return ds
}

func TestPipelineScenarioCounts(t *testing.T) {
	cfg := testConfig(t)
	ds := generate(t, cfg)

	require.NotNil(t, ds.Org)
	require.Len(t, ds.Users, 10)
	require.Len(t, ds.Teams, 2)
	require.Len(t, ds.Projects, 3)
	require.NotEmpty(t, ds.Tasks)
	require.NotEmpty(t, ds.Sections)
	require.NotEmpty(t, ds.Stories)

	for _, task := range ds.Tasks {
		require.NotEmpty(t, task.Name)
		require.NotEmpty(t, task.Description)
	}
}

func TestPipelineIsDeterministic(t *testing.T) {
	cfg := testConfig(t)

	first := generate(t, cfg)
	second := generate(t, cfg)
	require.Equal(t, first, second)
}

func TestDifferentSeedsDiverge(t *testing.T) {
	cfg := testConfig(t)
	first := generate(t, cfg)

	cfg.Seed = 43
	second := generate(t, cfg)
	require.NotEqual(t, first.Org.OrgID, second.Org.OrgID)
}

func TestPipelinePassesValidation(t *testing.T) {
	cfg := testConfig(t)
	log := logger.Setup(false)
	pipe := gen.New(cfg, dist.DefaultLibrary(cfg.TasksPerUser), textgen.Fallback{}, log)

	ds, err := pipe.Run(context.Background())
	require.NoError(t, err)

	violations := validate.New(&cfg, pipe.Window(), log).Run(ds)
	require.Empty(t, violations)
}

func TestLargeRunPassesValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large generation run")
	}

	cfg := config.Config{
		MinUsers:        200,
		MaxUsers:        250,
		MonthsOfHistory: 6,
		TasksPerUser:    8,
		Seed:            7,
		ReferenceTime:   time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
		OutputPath:      "unused.sqlite",
	}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())

	log := logger.Setup(false)
	pipe := gen.New(cfg, dist.DefaultLibrary(cfg.TasksPerUser), textgen.Fallback{}, log)

	ds, err := pipe.Run(context.Background())
	require.NoError(t, err)

	violations := validate.New(&cfg, pipe.Window(), log).Run(ds)
	for _, v := range violations {
		t.Log(v.String())
	}
	require.Empty(t, violations)
}

func TestSubtaskDepth(t *testing.T) {
	ds := generate(t, testConfig(t))

	byID := make(map[string]*model.Task, len(ds.Tasks))
	for _, task := range ds.Tasks {
		byID[task.TaskID.String()] = task
	}

	subtasks := 0
	for _, task := range ds.Tasks {
		if task.ParentTaskID == nil {
			continue
		}
		subtasks++
		parent := byID[task.ParentTaskID.String()]
		require.NotNil(t, parent)
		require.Nil(t, parent.ParentTaskID, "subtask parent must be a top-level task")
	}
	require.NotZero(t, subtasks, "scenario should produce at least one subtask")
}

func TestTimestampsWithinWindow(t *testing.T) {
	cfg := testConfig(t)
	log := logger.Setup(false)
	pipe := gen.New(cfg, dist.DefaultLibrary(cfg.TasksPerUser), textgen.Fallback{}, log)

	ds, err := pipe.Run(context.Background())
	require.NoError(t, err)
	now := pipe.Window().Now

	orgCreated := ds.Org.CreatedAt
	require.True(t, orgCreated.Before(now))

	for _, task := range ds.Tasks {
		require.False(t, task.CreatedAt.Before(orgCreated))
		require.False(t, task.CreatedAt.After(now))
		if task.CompletedAt != nil {
			require.True(t, task.CompletedAt.After(task.CreatedAt))
			require.False(t, task.CompletedAt.After(now))
		}
	}
	for _, c := range ds.Comments {
		require.False(t, c.CreatedAt.After(now))
	}
	for _, s := range ds.Stories {
		require.False(t, s.CreatedAt.After(now))
	}
}

func TestWorkloadCap(t *testing.T) {
	cfg := testConfig(t)
	cfg.WorkloadCap = 4
	ds := generate(t, cfg)

	open := map[string]int{}
	for _, task := range ds.Tasks {
		if task.AssigneeID != nil && !task.Completed {
			open[task.AssigneeID.String()]++
		}
	}
	for user, n := range open {
		require.LessOrEqual(t, n, 4, "user %s over the cap", user)
	}
}

func TestEveryTaskHasCreationStory(t *testing.T) {
	ds := generate(t, testConfig(t))

	created := map[string]time.Time{}
	completed := map[string]bool{}
	for _, s := range ds.Stories {
		if s.TaskID == nil {
			continue
		}
		switch s.StoryType {
		case "task_created":
			created[s.TaskID.String()] = s.CreatedAt
		case "task_completed":
			completed[s.TaskID.String()] = true
		}
	}

	for _, task := range ds.Tasks {
		at, ok := created[task.TaskID.String()]
		require.True(t, ok, "task %s has no creation story", task.TaskID)
		require.Equal(t, task.CreatedAt, at)
		if task.Completed {
			require.True(t, completed[task.TaskID.String()], "completed task %s has no completion story", task.TaskID)
		}
	}
}

func TestDependenciesStayAcyclic(t *testing.T) {
	cfg := testConfig(t)
	cfg.MinUsers = 40
	cfg.MaxUsers = 40
	cfg.Projects = 4
	ds := generate(t, cfg)

	adj := map[string][]string{}
	for _, d := range ds.Dependencies {
		require.NotEqual(t, d.TaskID, d.DependsOnTaskID)
		adj[d.TaskID.String()] = append(adj[d.TaskID.String()], d.DependsOnTaskID.String())
	}

	var visit func(node string, path map[string]bool) bool
	visit = func(node string, path map[string]bool) bool {
		if path[node] {
			return false
		}
		path[node] = true
		for _, next := range adj[node] {
			if !visit(next, path) {
				return false
			}
		}
		delete(path, node)
		return true
	}
	for node := range adj {
		require.True(t, visit(node, map[string]bool{}), "cycle through %s", node)
	}
}
