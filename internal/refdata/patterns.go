package refdata

// ProjectNamePatterns are formatted with a keyword from ProjectKeywords.
var ProjectNamePatterns = []string{
	"%s Initiative",
	"%s Revamp",
	"%s Migration",
	"%s Optimization",
	"%s Platform",
	"%s Rollout",
	"%s Redesign",
	"Q%d %s Push",
}

// ProjectKeywords seed project names.
var ProjectKeywords = []string{
	"Onboarding", "Checkout", "Billing", "Search", "Notifications",
	"Dashboard", "Reporting", "Mobile", "API", "Auth", "Payments",
	"Analytics", "Localization", "Performance", "Infrastructure",
	"Compliance", "Partner", "Growth", "Retention", "Pricing",
	"Integrations", "Accessibility", "Data Warehouse", "Brand",
}

// TaskNamePatterns maps project type to task-name templates. Templates with
// one %s slot take a keyword; the rest are used verbatim.
var TaskNamePatterns = map[string][]string{
	"software_development": {
		"Fix flaky %s tests",
		"Refactor %s module",
		"Add unit tests for %s",
		"Investigate %s latency regression",
		"Update %s documentation",
		"Review %s pull request",
		"Migrate %s to new schema",
		"Implement %s endpoint",
		"Resolve %s production incident",
		"Upgrade %s dependencies",
	},
	"marketing_campaign": {
		"Draft %s announcement copy",
		"Schedule %s social posts",
		"Review %s landing page",
		"Localize %s campaign assets",
		"Analyze %s funnel metrics",
		"Brief design on %s creative",
		"Set up %s A/B test",
		"Finalize %s email sequence",
	},
	"product_launch": {
		"Finalize %s launch checklist",
		"Coordinate %s beta feedback",
		"Prepare %s press kit",
		"Write %s release notes",
		"Align support on %s FAQ",
		"Dry run %s demo",
		"Confirm %s pricing page",
	},
	"operations": {
		"Update %s runbook",
		"Audit %s vendor contracts",
		"Renew %s license",
		"Document %s process",
		"Schedule %s review meeting",
		"Reconcile %s budget line",
	},
	"design": {
		"Explore %s concepts",
		"Polish %s empty states",
		"Run %s usability session",
		"Update %s component library",
		"Annotate %s handoff specs",
		"Audit %s accessibility",
	},
	"research": {
		"Summarize %s interview notes",
		"Recruit %s study participants",
		"Draft %s survey questions",
		"Synthesize %s findings",
		"Present %s readout",
	},
}

// TaskKeywords fill the slot in TaskNamePatterns.
var TaskKeywords = []string{
	"onboarding", "checkout", "billing", "search", "notification",
	"dashboard", "export", "import", "login", "signup", "settings",
	"reporting", "webhook", "sync", "cache", "queue", "mobile",
	"integration", "pricing", "permissions", "audit log", "profile",
}

// CommentTemplates are the deterministic fallback bodies for comments. They
// are formatted with the author and task name where a slot exists.
var CommentTemplates = []string{
	"Looking into this now, will update by EOD.",
	"Blocked on the upstream change, following up in the other thread.",
	"Done, ready for review.",
	"Can we split this into two tasks? Scope grew quite a bit.",
	"Pushed a fix, keeping this open until the metrics recover.",
	"Synced with the team, we're going with option B.",
	"Bumping this, it's blocking the release.",
	"Added repro steps to the description.",
	"This is stale, closing unless anyone objects.",
	"Great catch, patching now.",
	"Moved the due date out a week after the planning call.",
	"Attached the latest numbers for context.",
}

// StoryTemplates maps story type to its display texts. A %s slot takes a
// contextual filler (user name, file name or section name).
var StoryTemplates = map[string][]string{
	"task_created":     {"created task", "added new task", "created this task"},
	"task_updated":     {"updated task", "changed task details", "modified task", "updated description", "updated due date"},
	"task_completed":   {"completed this task", "marked task as complete", "finished this task"},
	"task_assigned":    {"assigned to %s", "reassigned to %s", "assigned this to %s"},
	"comment_added":    {"added a comment", "commented on this task", "left a comment"},
	"attachment_added": {"attached %s", "added attachment %s", "uploaded %s"},
	"task_moved":       {"moved task to %s", "changed section to %s", "moved to %s"},
	"project_updated":  {"updated project", "changed project details", "modified project"},
}

// AttachmentNames are plausible uploaded file names.
var AttachmentNames = []string{
	"screenshot.png", "mockup_v2.fig", "metrics_export.csv", "spec.pdf",
	"notes.docx", "diagram.svg", "recording.mp4", "budget.xlsx",
	"wireframe.png", "error_log.txt", "roadmap.pdf", "deck_final.pptx",
}

// CustomFieldSpec is a catalog entry for project custom fields.
type CustomFieldSpec struct {
	Name    string
	Type    string // enum, number, text, date
	Options []string
}

// CustomFieldCatalog is the pool of custom field definitions projects draw
// from.
var CustomFieldCatalog = []CustomFieldSpec{
	{Name: "Priority", Type: "enum", Options: []string{"P0", "P1", "P2", "P3"}},
	{Name: "Effort", Type: "number"},
	{Name: "Sprint", Type: "text"},
	{Name: "Stage", Type: "enum", Options: []string{"Triage", "Scoped", "In Flight", "Shipped"}},
	{Name: "Target Date", Type: "date"},
	{Name: "Risk", Type: "enum", Options: []string{"Low", "Medium", "High"}},
	{Name: "Story Points", Type: "number"},
	{Name: "Component", Type: "enum", Options: []string{"Web", "Mobile", "API", "Infra", "Docs"}},
}

// TagNames is the org-level tag pool.
var TagNames = []string{
	"bug", "feature", "urgent", "blocked", "design", "backend",
	"frontend", "mobile", "data", "documentation", "tech-debt",
	"customer-request", "quick-win", "needs-review", "security",
	"performance", "q3", "q4", "launch", "experiment",
}

// InitiativeWords seed cross-functional team and initiative names.
var InitiativeWords = []string{
	"Apollo", "Atlas", "Beacon", "Cascade", "Compass", "Drift",
	"Ember", "Falcon", "Horizon", "Lighthouse", "Meridian", "Nimbus",
	"Orbit", "Pulse", "Quasar", "Summit", "Tidal", "Vector",
}
