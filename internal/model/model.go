// Package model defines the entity records emitted by the generators and
// persisted by the store. Field tags map structs onto the SQLite schema in
// internal/store/schema.sql; every ID is a UUID assigned once at creation.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the root entity. One per run; it owns all teams, users
// and tags.
type Organization struct {
	OrgID         uuid.UUID `gorm:"column:org_id;primaryKey"`
	Name          string    `gorm:"column:name"`
	Domain        string    `gorm:"column:domain"`
	Industry      string    `gorm:"column:industry"`
	EmployeeCount int       `gorm:"column:employee_count"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (Organization) TableName() string { return "organizations" }

// User belongs to exactly one organization. CreatedAt is the hire date and
// precedes any activity attributed to the user.
type User struct {
	UserID       uuid.UUID `gorm:"column:user_id;primaryKey"`
	OrgID        uuid.UUID `gorm:"column:org_id"`
	Email        string    `gorm:"column:email"`
	Name         string    `gorm:"column:name"`
	Role         string    `gorm:"column:role"`
	JobTitle     string    `gorm:"column:job_title"`
	Department   string    `gorm:"column:department"`
	Timezone     string    `gorm:"column:timezone"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	LastActiveAt time.Time `gorm:"column:last_active_at"`
}

func (User) TableName() string { return "users" }

// Team belongs to exactly one organization.
type Team struct {
	TeamID      uuid.UUID `gorm:"column:team_id;primaryKey"`
	OrgID       uuid.UUID `gorm:"column:org_id"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	TeamType    string    `gorm:"column:team_type"`
	OwnerID     uuid.UUID `gorm:"column:owner_id"`
	IsArchived  bool      `gorm:"column:is_archived"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Team) TableName() string { return "teams" }

// TeamMembership joins users to teams, unique per (team, user).
type TeamMembership struct {
	MembershipID uuid.UUID `gorm:"column:membership_id;primaryKey"`
	TeamID       uuid.UUID `gorm:"column:team_id"`
	UserID       uuid.UUID `gorm:"column:user_id"`
	Role         string    `gorm:"column:role"`
	JoinedAt     time.Time `gorm:"column:joined_at"`
}

func (TeamMembership) TableName() string { return "team_memberships" }
