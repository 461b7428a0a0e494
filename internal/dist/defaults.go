package dist

import "github.com/seedworks/taskgen/internal/refdata"

// Distribution names used by the generators.
const (
	Role                  = "role"
	Department            = "department"
	Timezone              = "timezone"
	TeamType              = "team_type"
	TeamSize              = "team_size"
	ProjectStatus         = "project_status"
	ProjectType           = "project_type"
	Priority              = "priority"
	TasksPerUser          = "tasks_per_user"
	SubtasksPerTask       = "subtasks_per_task"
	HasComments           = "has_comments"
	CommentsPerTask       = "comments_per_task"
	StoriesPerTask        = "stories_per_task"
	StoryType             = "story_type"
	LastActiveBucket      = "last_active_bucket"
	CompletedByIsAssignee = "completed_by_is_assignee"
	TagsPerTask           = "tags_per_task"
	HasAttachment         = "has_attachment"
	AttachmentsPerTask    = "attachments_per_task"
	FieldsPerProject      = "fields_per_project"
	DependencyRate        = "dependency_rate"
	LikesPerComment       = "likes_per_comment"
)

// DefaultLibrary registers the research-derived constants the pipeline runs
// with. tasksPerUser is the configured average; the sampled count is a
// clipped Gaussian around it.
func DefaultLibrary(tasksPerUser int) *Library {
	l := NewLibrary()

	l.RegisterWeighted(Role, NewWeighted(
		Choice{"member", 0.85},
		Choice{"admin", 0.12},
		Choice{"guest", 0.02},
		Choice{"limited_access", 0.01},
	))

	deptChoices := make([]Choice, len(refdata.Departments))
	for i, d := range refdata.Departments {
		deptChoices[i] = Choice{Value: d, Weight: refdata.DepartmentWeights[i]}
	}
	l.RegisterWeighted(Department, NewWeighted(deptChoices...))

	tzChoices := make([]Choice, len(refdata.Timezones))
	for i, tz := range refdata.Timezones {
		tzChoices[i] = Choice{Value: tz, Weight: refdata.TimezoneWeights[i]}
	}
	l.RegisterWeighted(Timezone, NewWeighted(tzChoices...))

	l.RegisterWeighted(TeamType, NewWeighted(
		Choice{"department", 0.40},
		Choice{"project", 0.30},
		Choice{"cross_functional", 0.20},
		Choice{"working_group", 0.10},
	))
	l.RegisterNormal(TeamSize, Normal{Mean: 9, StdDev: 3, Min: 3, Max: 15})

	l.RegisterWeighted(ProjectStatus, NewWeighted(
		Choice{"active", 0.55},
		Choice{"on_hold", 0.12},
		Choice{"completed", 0.25},
		Choice{"archived", 0.08},
	))
	l.RegisterWeighted(ProjectType, NewWeighted(
		Choice{"software_development", 0.35},
		Choice{"marketing_campaign", 0.15},
		Choice{"product_launch", 0.12},
		Choice{"operations", 0.15},
		Choice{"design", 0.13},
		Choice{"research", 0.10},
	))
	l.RegisterWeighted(Priority, NewWeighted(
		Choice{"low", 0.20},
		Choice{"medium", 0.45},
		Choice{"high", 0.25},
		Choice{"critical", 0.10},
	))

	l.RegisterNormal(TasksPerUser, Normal{
		Mean: float64(tasksPerUser), StdDev: 4, Min: 0, Max: float64(tasksPerUser) * 3,
	})
	l.RegisterWeighted(SubtasksPerTask, NewWeighted(
		Choice{"0", 0.55},
		Choice{"1", 0.15},
		Choice{"2", 0.12},
		Choice{"3", 0.10},
		Choice{"4", 0.05},
		Choice{"5", 0.03},
	))

	l.RegisterBernoulli(HasComments, Bernoulli{P: 0.45})
	l.RegisterRange(CommentsPerTask, Range{Min: 1, Max: 6})
	l.RegisterRange(StoriesPerTask, Range{Min: 2, Max: 8})
	l.RegisterWeighted(StoryType, NewWeighted(
		Choice{"task_updated", 0.35},
		Choice{"task_assigned", 0.20},
		Choice{"comment_added", 0.15},
		Choice{"attachment_added", 0.08},
		Choice{"task_moved", 0.12},
		Choice{"project_updated", 0.10},
	))

	l.RegisterWeighted(LastActiveBucket, NewWeighted(
		Choice{"recent", 0.90},
		Choice{"month", 0.05},
		Choice{"stale", 0.05},
	))
	l.RegisterBernoulli(CompletedByIsAssignee, Bernoulli{P: 0.70})

	l.RegisterWeighted(TagsPerTask, NewWeighted(
		Choice{"0", 0.45},
		Choice{"1", 0.30},
		Choice{"2", 0.17},
		Choice{"3", 0.08},
	))
	l.RegisterBernoulli(HasAttachment, Bernoulli{P: 0.12})
	l.RegisterRange(AttachmentsPerTask, Range{Min: 1, Max: 2})
	l.RegisterRange(FieldsPerProject, Range{Min: 0, Max: 3})
	l.RegisterBernoulli(DependencyRate, Bernoulli{P: 0.08})
	l.RegisterWeighted(LikesPerComment, NewWeighted(
		Choice{"0", 0.60},
		Choice{"1", 0.22},
		Choice{"2", 0.10},
		Choice{"3", 0.05},
		Choice{"4", 0.03},
	))

	return l
}
