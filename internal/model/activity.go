package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to exactly one task and is never created before it.
type Comment struct {
	CommentID uuid.UUID `gorm:"column:comment_id;primaryKey"`
	TaskID    uuid.UUID `gorm:"column:task_id"`
	AuthorID  uuid.UUID `gorm:"column:author_id"`
	Body      string    `gorm:"column:body"`
	NumLikes  int       `gorm:"column:num_likes"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Comment) TableName() string { return "comments" }

// Story is an activity-feed entry. It attaches to a task or, for
// project_updated stories, directly to a project; exactly one of the two
// references is set.
type Story struct {
	StoryID   uuid.UUID  `gorm:"column:story_id;primaryKey"`
	TaskID    *uuid.UUID `gorm:"column:task_id"`
	ProjectID *uuid.UUID `gorm:"column:project_id"`
	ActorID   uuid.UUID  `gorm:"column:actor_id"`
	StoryType string     `gorm:"column:story_type"`
	StoryText string     `gorm:"column:story_text"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (Story) TableName() string { return "stories" }

// Attachment is a file uploaded to a task.
type Attachment struct {
	AttachmentID uuid.UUID `gorm:"column:attachment_id;primaryKey"`
	TaskID       uuid.UUID `gorm:"column:task_id"`
	UploadedByID uuid.UUID `gorm:"column:uploaded_by"`
	FileName     string    `gorm:"column:file_name"`
	FileSize     int64     `gorm:"column:file_size"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (Attachment) TableName() string { return "attachments" }
