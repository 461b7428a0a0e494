package model

import (
	"time"

	"github.com/google/uuid"
)

// Project belongs to one organization and optionally one team. An archived
// project always carries ArchivedAt >= CreatedAt.
type Project struct {
	ProjectID   uuid.UUID  `gorm:"column:project_id;primaryKey"`
	OrgID       uuid.UUID  `gorm:"column:org_id"`
	TeamID      *uuid.UUID `gorm:"column:team_id"`
	OwnerID     uuid.UUID  `gorm:"column:owner_id"`
	Name        string     `gorm:"column:name"`
	Description string     `gorm:"column:description"`
	ProjectType string     `gorm:"column:project_type"`
	Status      string     `gorm:"column:status"`
	Priority    string     `gorm:"column:priority"`
	Color       string     `gorm:"column:color"`
	StartDate   time.Time  `gorm:"column:start_date"`
	DueDate     time.Time  `gorm:"column:due_date"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	ModifiedAt  time.Time  `gorm:"column:modified_at"`
	CompletedAt *time.Time `gorm:"column:completed_at"`
	ArchivedAt  *time.Time `gorm:"column:archived_at"`
}

func (Project) TableName() string { return "projects" }

// ProjectMember joins users to projects, unique per (project, user).
type ProjectMember struct {
	ProjectMemberID uuid.UUID `gorm:"column:project_member_id;primaryKey"`
	ProjectID       uuid.UUID `gorm:"column:project_id"`
	UserID          uuid.UUID `gorm:"column:user_id"`
	JoinedAt        time.Time `gorm:"column:joined_at"`
}

func (ProjectMember) TableName() string { return "project_members" }

// Section is a column within a project board. Position is a total order
// unique within the project.
type Section struct {
	SectionID uuid.UUID `gorm:"column:section_id;primaryKey"`
	ProjectID uuid.UUID `gorm:"column:project_id"`
	Name      string    `gorm:"column:name"`
	Position  int       `gorm:"column:position"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Section) TableName() string { return "sections" }
