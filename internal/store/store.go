// Package store persists generated datasets to SQLite. A dataset lands in a
// single transaction so a constraint failure leaves the database untouched.
package store

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/seedworks/taskgen/internal/gen"
)

//go:embed schema.sql
var schemaSQL string

const insertBatchSize = 500

// tableNames in insert order: every table appears after the tables its
// foreign keys reference.
var tableNames = []string{
	"organizations",
	"users",
	"teams",
	"team_memberships",
	"projects",
	"project_members",
	"sections",
	"tasks",
	"task_followers",
	"task_dependencies",
	"comments",
	"stories",
	"attachments",
	"custom_field_definitions",
	"custom_field_enum_options",
	"custom_field_values",
	"tags",
	"task_tags",
}

// Store wraps one SQLite database file.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open opens or creates the database at path with foreign key enforcement
// on and applies the schema.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := db.Exec(schemaSQL).Error; err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Persist writes the whole dataset inside one transaction, in foreign key
// order. Any failure rolls the run back completely.
func (s *Store) Persist(ctx context.Context, ds *gen.Dataset) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ds.Org).Error; err != nil {
			return fmt.Errorf("organizations: %w", err)
		}
		if err := batchInsert(tx, "users", ds.Users); err != nil {
			return err
		}
		if err := batchInsert(tx, "teams", ds.Teams); err != nil {
			return err
		}
		if err := batchInsert(tx, "team_memberships", ds.Memberships); err != nil {
			return err
		}
		if err := batchInsert(tx, "projects", ds.Projects); err != nil {
			return err
		}
		if err := batchInsert(tx, "project_members", ds.ProjectMembers); err != nil {
			return err
		}
		if err := batchInsert(tx, "sections", ds.Sections); err != nil {
			return err
		}
		if err := batchInsert(tx, "tasks", ds.Tasks); err != nil {
			return err
		}
		if err := batchInsert(tx, "task_followers", ds.Followers); err != nil {
			return err
		}
		if err := batchInsert(tx, "task_dependencies", ds.Dependencies); err != nil {
			return err
		}
		if err := batchInsert(tx, "comments", ds.Comments); err != nil {
			return err
		}
		if err := batchInsert(tx, "stories", ds.Stories); err != nil {
			return err
		}
		if err := batchInsert(tx, "attachments", ds.Attachments); err != nil {
			return err
		}
		if err := batchInsert(tx, "custom_field_definitions", ds.FieldDefs); err != nil {
			return err
		}
		if err := batchInsert(tx, "custom_field_enum_options", ds.FieldOptions); err != nil {
			return err
		}
		if err := batchInsert(tx, "custom_field_values", ds.FieldValues); err != nil {
			return err
		}
		if err := batchInsert(tx, "tags", ds.Tags); err != nil {
			return err
		}
		if err := batchInsert(tx, "task_tags", ds.TaskTags); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("persist failed: %w", err)
	}

	s.log.Info().Msg("dataset persisted")
	return nil
}

func batchInsert[T any](tx *gorm.DB, table string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("%s: %w", table, err)
	}
	return nil
}

// Counts returns the row count of every table.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(tableNames))
	for _, name := range tableNames {
		var n int64
		if err := s.db.WithContext(ctx).Table(name).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}

// TableNames returns the persisted tables in insert order.
func TableNames() []string {
	out := make([]string, len(tableNames))
	copy(out, tableNames)
	return out
}

// WorkloadRow is one line of the user_workload view.
type WorkloadRow struct {
	UserID     string `gorm:"column:user_id"`
	Name       string `gorm:"column:name"`
	Department string `gorm:"column:department"`
	OpenTasks  int    `gorm:"column:open_tasks"`
}

// TopWorkloads returns the busiest users by open task count.
func (s *Store) TopWorkloads(ctx context.Context, limit int) ([]WorkloadRow, error) {
	var rows []WorkloadRow
	err := s.db.WithContext(ctx).
		Table("user_workload").
		Order("open_tasks DESC, name ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query user_workload: %w", err)
	}
	return rows, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
