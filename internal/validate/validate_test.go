package validate_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/seedworks/taskgen/internal/config"
	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/gen"
	"github.com/seedworks/taskgen/internal/logger"
	"github.com/seedworks/taskgen/internal/model"
	"github.com/seedworks/taskgen/internal/textgen"
	"github.com/seedworks/taskgen/internal/validate"
)

type fixture struct {
	cfg config.Config
	win gen.Window
	ds  *gen.Dataset
}

func newFixture(t *testing.T) *fixture {
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

	pipe := gen.New(cfg, dist.DefaultLibrary(cfg.TasksPerUser), textgen.Fallback{}, logger.Setup(false))
	ds, err := pipe.Run(context.Background())
	require.NoError(t, err)

	return &fixture{cfg: cfg, win: pipe.Window(), ds: ds}
}

func (f *fixture) run(t *testing.T) []validate.Violation {
	t.Helper()
	return validate.New(&f.cfg, f.win, logger.Setup(false)).Run(f.ds)
}

func rulesOf(violations []validate.Violation) map[string]bool {
	out := map[string]bool{}
	for _, v := range violations {
		out[v.Rule] = true
	}
	return out
}

func TestCleanDatasetPasses(t *testing.T) {
	f := newFixture(t)
	require.Empty(t, f.run(t))
}

func TestDetectsDanglingReference(t *testing.T) {
	f := newFixture(t)
	f.ds.Comments[0].AuthorID = uuid.New()

	violations := f.run(t)
	require.NotEmpty(t, violations)
	require.True(t, rulesOf(violations)["fk"])
	require.Equal(t, f.ds.Comments[0].CommentID.String(), violations[0].ID)
}

func TestDetectsTimestampInversion(t *testing.T) {
	f := newFixture(t)

	var completed *model.Task
	for _, task := range f.ds.Tasks {
		if task.Completed {
			completed = task
			break
		}
	}
	require.NotNil(t, completed)
	bad := completed.CreatedAt.Add(-time.Hour)
	completed.CompletedAt = &bad

	require.True(t, rulesOf(f.run(t))["temporal"])
}

func TestDetectsTaskModifiedBeforeCreation(t *testing.T) {
	f := newFixture(t)

	task := f.ds.Tasks[0]
	task.ModifiedAt = task.CreatedAt.Add(-48 * time.Hour)

	violations := f.run(t)
	require.NotEmpty(t, violations)
	require.True(t, rulesOf(violations)["temporal"])
	require.Equal(t, task.TaskID.String(), violations[0].ID)
}

func TestDetectsProjectModifiedBeforeCreation(t *testing.T) {
	f := newFixture(t)

	p := f.ds.Projects[0]
	p.ModifiedAt = p.CreatedAt.Add(-time.Hour)

	violations := f.run(t)
	require.NotEmpty(t, violations)
	require.True(t, rulesOf(violations)["temporal"])
	require.Equal(t, p.ProjectID.String(), violations[0].ID)
}

func TestDetectsModifiedInFuture(t *testing.T) {
	f := newFixture(t)
	f.ds.Tasks[0].ModifiedAt = f.win.Now.Add(time.Hour)

	require.True(t, rulesOf(f.run(t))["temporal"])
}

func TestDetectsDeepHierarchy(t *testing.T) {
	f := newFixture(t)

	var subtask *model.Task
	for _, task := range f.ds.Tasks {
		if task.ParentTaskID != nil {
			subtask = task
			break
		}
	}
	require.NotNil(t, subtask)

	// Hang a new task off the subtask, making a three-level chain.
	child := *subtask
	child.TaskID = uuid.New()
	child.ParentTaskID = &subtask.TaskID
	f.ds.Tasks = append(f.ds.Tasks, &child)

	require.True(t, rulesOf(f.run(t))["hierarchy"])
}

func TestDetectsDependencyCycle(t *testing.T) {
	f := newFixture(t)

	var a, b, c *model.Task
	for _, task := range f.ds.Tasks {
		if task.ParentTaskID != nil {
			continue
		}
		switch {
		case a == nil:
			a = task
		case b == nil && *task.ProjectID == *a.ProjectID:
			b = task
		case c == nil && *task.ProjectID == *a.ProjectID:
			c = task
		}
	}
	require.NotNil(t, c, "expected three tasks in one project")

	f.ds.Dependencies = nil
	for _, edge := range [][2]*model.Task{{a, b}, {b, c}, {c, a}} {
		f.ds.Dependencies = append(f.ds.Dependencies, &model.TaskDependency{
			DependencyID:    uuid.New(),
			TaskID:          edge[0].TaskID,
			DependsOnTaskID: edge[1].TaskID,
			CreatedAt:       f.win.Now,
		})
	}

	require.True(t, rulesOf(f.run(t))["cycle"])
}

func TestDetectsSelfDependency(t *testing.T) {
	f := newFixture(t)

	task := f.ds.Tasks[0]
	f.ds.Dependencies = append(f.ds.Dependencies, &model.TaskDependency{
		DependencyID:    uuid.New(),
		TaskID:          task.TaskID,
		DependsOnTaskID: task.TaskID,
		CreatedAt:       f.win.Now,
	})

	require.True(t, rulesOf(f.run(t))["cycle"])
}

func TestDetectsWorkloadOverflow(t *testing.T) {
	f := newFixture(t)
	f.cfg.WorkloadCap = 1

	open := 0
	for _, task := range f.ds.Tasks {
		if task.AssigneeID != nil && !task.Completed {
			open++
		}
	}
	require.Greater(t, open, 10, "scenario should have more open tasks than users")

	require.True(t, rulesOf(f.run(t))["workload"])
}

func TestDetectsCounterDrift(t *testing.T) {
	f := newFixture(t)
	f.ds.Tasks[0].NumComments += 5

	require.True(t, rulesOf(f.run(t))["counter"])
}

func TestDetectsDuplicatePairs(t *testing.T) {
	f := newFixture(t)

	m := *f.ds.Memberships[0]
	m.MembershipID = uuid.New()
	f.ds.Memberships = append(f.ds.Memberships, &m)

	require.True(t, rulesOf(f.run(t))["unique"])
}

func TestDetectsSectionPositionClash(t *testing.T) {
	f := newFixture(t)

	var first, second *model.Section
	for _, s := range f.ds.Sections {
		if first == nil {
			first = s
			continue
		}
		if s.ProjectID == first.ProjectID {
			second = s
			break
		}
	}
	require.NotNil(t, second)
	second.Position = first.Position

	require.True(t, rulesOf(f.run(t))["unique"])
}

func TestDetectsCompletionRateDrift(t *testing.T) {
	cfg := config.Config{
		MinUsers:        200,
		MaxUsers:        200,
		MonthsOfHistory: 6,
		TasksPerUser:    8,
		Seed:            7,
		ReferenceTime:   time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
		OutputPath:      "unused.sqlite",
	}
	cfg.ApplyDefaults()

	pipe := gen.New(cfg, dist.DefaultLibrary(cfg.TasksPerUser), textgen.Fallback{}, logger.Setup(false))
	ds, err := pipe.Run(context.Background())
	require.NoError(t, err)

	// Force every task open; the observed rates collapse to zero, far
	// outside every target band.
	for _, task := range ds.Tasks {
		task.Completed = false
		task.CompletedAt = nil
		task.CompletedBy = nil
		task.NumCompletedSubtasks = 0
	}

	violations := validate.New(&cfg, pipe.Window(), logger.Setup(false)).Run(ds)
	require.True(t, rulesOf(violations)["statistical"])
}

func TestDetectsStoryWithBothReferences(t *testing.T) {
	f := newFixture(t)

	s := f.ds.Stories[0]
	require.NotNil(t, s.TaskID)
	pid := f.ds.Projects[0].ProjectID
	s.ProjectID = &pid

	require.True(t, rulesOf(f.run(t))["state"])
}
