package gen

import (
	"github.com/seedworks/taskgen/internal/model"
)

// Dataset is the full generated entity graph, in persistence dependency
// order. It is append-only during generation; only the denormalized task
// counters are recomputed afterwards in the finalize pass.
type Dataset struct {
	Org            *model.Organization
	Users          []*model.User
	Teams          []*model.Team
	Memberships    []*model.TeamMembership
	Projects       []*model.Project
	ProjectMembers []*model.ProjectMember
	Sections       []*model.Section
	Tasks          []*model.Task
	Followers      []*model.TaskFollower
	Comments       []*model.Comment
	Stories        []*model.Story
	Attachments    []*model.Attachment
	FieldDefs      []*model.CustomFieldDefinition
	FieldOptions   []*model.CustomFieldEnumOption
	FieldValues    []*model.CustomFieldValue
	Tags           []*model.Tag
	TaskTags       []*model.TaskTag
	Dependencies   []*model.TaskDependency
}

// Counts reports per-entity totals for logging and the stats command.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		"organizations":             1,
		"users":                     len(d.Users),
		"teams":                     len(d.Teams),
		"team_memberships":          len(d.Memberships),
		"projects":                  len(d.Projects),
		"project_members":           len(d.ProjectMembers),
		"sections":                  len(d.Sections),
		"tasks":                     len(d.Tasks),
		"task_followers":            len(d.Followers),
		"comments":                  len(d.Comments),
		"stories":                   len(d.Stories),
		"attachments":               len(d.Attachments),
		"custom_field_definitions":  len(d.FieldDefs),
		"custom_field_enum_options": len(d.FieldOptions),
		"custom_field_values":       len(d.FieldValues),
		"tags":                      len(d.Tags),
		"task_tags":                 len(d.TaskTags),
		"task_dependencies":         len(d.Dependencies),
	}
}
