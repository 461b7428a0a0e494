package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seedworks/taskgen/internal/config"
	"github.com/seedworks/taskgen/internal/dist"
	"github.com/seedworks/taskgen/internal/gen"
	"github.com/seedworks/taskgen/internal/logger"
	"github.com/seedworks/taskgen/internal/store"
	"github.com/seedworks/taskgen/internal/textgen"
)

func testDataset(t *testing.T) *gen.Dataset {
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
	return ds
}

func TestPersistAndCount(t *testing.T) {
	ds := testDataset(t)
	path := filepath.Join(t.TempDir(), "test.sqlite")

	st, err := store.Open(path, logger.Setup(false))
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	require.NoError(t, st.Persist(ctx, ds))

	counts, err := st.Counts(ctx)
	require.NoError(t, err)

	expected := ds.Counts()
	for table, want := range expected {
		require.Equal(t, int64(want), counts[table], table)
	}
}

func TestPersistIsAllOrNothing(t *testing.T) {
	ds := testDataset(t)
	path := filepath.Join(t.TempDir(), "test.sqlite")

	st, err := store.Open(path, logger.Setup(false))
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	require.NoError(t, st.Persist(ctx, ds))

	// A second persist of the same dataset trips the primary keys and
	// must leave the first copy intact.
	err = st.Persist(ctx, ds)
	require.Error(t, err)

	counts, err := st.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), counts["organizations"])
	require.Equal(t, int64(len(ds.Users)), counts["users"])
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")

	st, err := store.Open(path, logger.Setup(false))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// Reopening an existing file must not fail on the schema.
	st, err = store.Open(path, logger.Setup(false))
	require.NoError(t, err)
	require.NoError(t, st.Close())
}

func TestTopWorkloads(t *testing.T) {
	ds := testDataset(t)
	path := filepath.Join(t.TempDir(), "test.sqlite")

	st, err := store.Open(path, logger.Setup(false))
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	require.NoError(t, st.Persist(ctx, ds))

	rows, err := st.TopWorkloads(ctx, 5)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i := 1; i < len(rows); i++ {
		require.GreaterOrEqual(t, rows[i-1].OpenTasks, rows[i].OpenTasks)
	}
}
