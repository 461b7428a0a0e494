package refdata

// Departments in descending headcount order. Weights live in the
// distribution library; the order here matches them by index.
var Departments = []string{
	"Engineering", "Product", "Sales", "Marketing", "Operations",
	"Design", "Data", "HR", "Finance", "Legal",
}

// DepartmentWeights matches Departments by index.
var DepartmentWeights = []float64{0.40, 0.12, 0.15, 0.10, 0.08, 0.05, 0.05, 0.02, 0.02, 0.01}

// WeightedTitle is a job title with its within-department share.
type WeightedTitle struct {
	Title  string
	Weight float64
}

// JobTitles maps department to its title ladder.
var JobTitles = map[string][]WeightedTitle{
	"Engineering": {
		{"Software Engineer", 0.35},
		{"Senior Software Engineer", 0.25},
		{"Staff Engineer", 0.10},
		{"Principal Engineer", 0.05},
		{"Engineering Manager", 0.15},
		{"Senior Engineering Manager", 0.07},
		{"Director of Engineering", 0.03},
	},
	"Product": {
		{"Product Manager", 0.40},
		{"Senior Product Manager", 0.30},
		{"Principal Product Manager", 0.10},
		{"Director of Product", 0.15},
		{"VP of Product", 0.05},
	},
	"Design": {
		{"Product Designer", 0.40},
		{"Senior Product Designer", 0.30},
		{"Lead Designer", 0.15},
		{"Design Manager", 0.10},
		{"Head of Design", 0.05},
	},
	"Marketing": {
		{"Marketing Manager", 0.30},
		{"Senior Marketing Manager", 0.25},
		{"Content Marketing Manager", 0.15},
		{"Growth Marketing Manager", 0.15},
		{"Director of Marketing", 0.10},
		{"VP of Marketing", 0.05},
	},
	"Sales": {
		{"Account Executive", 0.40},
		{"Senior Account Executive", 0.25},
		{"Sales Manager", 0.15},
		{"Director of Sales", 0.12},
		{"VP of Sales", 0.08},
	},
	"Data": {
		{"Data Analyst", 0.35},
		{"Data Scientist", 0.30},
		{"Senior Data Scientist", 0.20},
		{"Data Engineering Manager", 0.10},
		{"Head of Data", 0.05},
	},
	"Operations": {
		{"Operations Manager", 0.40},
		{"Senior Operations Manager", 0.25},
		{"Operations Analyst", 0.20},
		{"Director of Operations", 0.10},
		{"VP of Operations", 0.05},
	},
	"HR": {
		{"HR Manager", 0.35},
		{"Senior HR Manager", 0.25},
		{"HR Business Partner", 0.20},
		{"Director of People", 0.15},
		{"Chief People Officer", 0.05},
	},
	"Finance": {
		{"Financial Analyst", 0.35},
		{"Senior Financial Analyst", 0.25},
		{"Finance Manager", 0.20},
		{"Director of Finance", 0.15},
		{"CFO", 0.05},
	},
	"Legal": {
		{"Legal Counsel", 0.40},
		{"Senior Legal Counsel", 0.30},
		{"General Counsel", 0.20},
		{"Legal Operations Manager", 0.10},
	},
}

// DepartmentTeams maps department to the standing team names created for it.
var DepartmentTeams = map[string][]string{
	"Engineering": {
		"Backend Team", "Frontend Team", "Mobile Team", "Infrastructure Team",
		"DevOps Team", "Platform Team", "Security Team",
	},
	"Product":    {"Product Team", "Growth Team", "Analytics Team"},
	"Design":     {"Design Team", "UX Research Team"},
	"Marketing":  {"Marketing Team", "Content Team", "Growth Marketing Team", "Brand Team"},
	"Sales":      {"Sales Team", "Sales Engineering Team", "Account Management Team"},
	"Operations": {"Operations Team", "Business Operations Team"},
	"Data":       {"Data Team", "Data Engineering Team", "Data Science Team"},
	"HR":         {"People Operations Team"},
	"Finance":    {"Finance Team"},
	"Legal":      {"Legal Team"},
}
