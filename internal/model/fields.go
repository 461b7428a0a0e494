package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomFieldDefinition declares a custom field on a project.
type CustomFieldDefinition struct {
	FieldID   uuid.UUID `gorm:"column:field_id;primaryKey"`
	ProjectID uuid.UUID `gorm:"column:project_id"`
	Name      string    `gorm:"column:name"`
	FieldType string    `gorm:"column:field_type"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (CustomFieldDefinition) TableName() string { return "custom_field_definitions" }

// CustomFieldEnumOption is one selectable value of an enum definition.
type CustomFieldEnumOption struct {
	OptionID  uuid.UUID `gorm:"column:option_id;primaryKey"`
	FieldID   uuid.UUID `gorm:"column:field_id"`
	Label     string    `gorm:"column:label"`
	Position  int       `gorm:"column:position"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (CustomFieldEnumOption) TableName() string { return "custom_field_enum_options" }

// CustomFieldValue assigns a value to a (task, definition) pair, unique per
// pair. EnumOptionID, when set, references an option of the same definition.
type CustomFieldValue struct {
	ValueID      uuid.UUID  `gorm:"column:value_id;primaryKey"`
	TaskID       uuid.UUID  `gorm:"column:task_id"`
	FieldID      uuid.UUID  `gorm:"column:field_id"`
	EnumOptionID *uuid.UUID `gorm:"column:enum_option_id"`
	NumberValue  *float64   `gorm:"column:number_value"`
	TextValue    *string    `gorm:"column:text_value"`
	DateValue    *time.Time `gorm:"column:date_value"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
}

func (CustomFieldValue) TableName() string { return "custom_field_values" }

// Tag is unique per (org, name).
type Tag struct {
	TagID     uuid.UUID `gorm:"column:tag_id;primaryKey"`
	OrgID     uuid.UUID `gorm:"column:org_id"`
	Name      string    `gorm:"column:name"`
	Color     string    `gorm:"column:color"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Tag) TableName() string { return "tags" }

// TaskTag joins tags to tasks, unique per (task, tag).
type TaskTag struct {
	TaskTagID uuid.UUID `gorm:"column:task_tag_id;primaryKey"`
	TaskID    uuid.UUID `gorm:"column:task_id"`
	TagID     uuid.UUID `gorm:"column:tag_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (TaskTag) TableName() string { return "task_tags" }
