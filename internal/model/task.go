package model

import (
	"time"

	"github.com/google/uuid"
)

// Task is the central entity. ParentTaskID forms a two-level hierarchy:
// a task referenced as a parent never has a parent itself. The Num* fields
// are denormalized counts recomputed once all children exist.
type Task struct {
	TaskID       uuid.UUID  `gorm:"column:task_id;primaryKey"`
	ProjectID    *uuid.UUID `gorm:"column:project_id"`
	SectionID    *uuid.UUID `gorm:"column:section_id"`
	ParentTaskID *uuid.UUID `gorm:"column:parent_task_id"`
	Name         string     `gorm:"column:name"`
	Description  string     `gorm:"column:description"`
	AssigneeID   *uuid.UUID `gorm:"column:assignee_id"`
	CreatedByID  uuid.UUID  `gorm:"column:created_by"`
	Priority     string     `gorm:"column:priority"`
	Completed    bool       `gorm:"column:completed"`
	CompletedAt  *time.Time `gorm:"column:completed_at"`
	CompletedBy  *uuid.UUID `gorm:"column:completed_by"`
	DueDate      *time.Time `gorm:"column:due_date"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	ModifiedAt   time.Time  `gorm:"column:modified_at"`

	NumSubtasks          int `gorm:"column:num_subtasks"`
	NumCompletedSubtasks int `gorm:"column:num_completed_subtasks"`
	NumComments          int `gorm:"column:num_comments"`
	NumLikes             int `gorm:"column:num_likes"`
}

func (Task) TableName() string { return "tasks" }

// TaskFollower joins users to the tasks they follow, unique per
// (task, user).
type TaskFollower struct {
	TaskFollowerID uuid.UUID `gorm:"column:task_follower_id;primaryKey"`
	TaskID         uuid.UUID `gorm:"column:task_id"`
	UserID         uuid.UUID `gorm:"column:user_id"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (TaskFollower) TableName() string { return "task_followers" }

// TaskDependency is a directed edge: TaskID depends on DependsOnTaskID.
// The generator guarantees the edge set stays acyclic and self-loop free.
type TaskDependency struct {
	DependencyID    uuid.UUID `gorm:"column:dependency_id;primaryKey"`
	TaskID          uuid.UUID `gorm:"column:task_id"`
	DependsOnTaskID uuid.UUID `gorm:"column:depends_on_task_id"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (TaskDependency) TableName() string { return "task_dependencies" }
