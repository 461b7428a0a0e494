// Package config holds the immutable run configuration for the generator.
// A run is a pure function of its Config: the random seed, the reference
// clock and every scaling knob live here, so two runs with the same Config
// produce the same dataset.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default project types and their target completion rates. The rates are
// research-derived soft targets; the validator checks the generated dataset
// stays within CompletionTolerance of them.
var DefaultCompletionTargets = map[string]float64{
	"software_development": 0.45,
	"marketing_campaign":   0.62,
	"product_launch":       0.55,
	"operations":           0.70,
	"design":               0.58,
	"research":             0.40,
}

// TextConfig configures the external text-generation service.
type TextConfig struct {
	// APIKey authenticates against the text service. Empty means the
	// deterministic fallback templates are used for all content.
	APIKey string `yaml:"-"`

	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`

	// BatchSize is the number of content requests bundled into one
	// service call.
	BatchSize int `yaml:"batch_size"`

	// Concurrency bounds the number of in-flight service calls.
	Concurrency int `yaml:"concurrency"`

	// MaxElapsed bounds the total retry window for a single batch before
	// falling back to templates.
	MaxElapsed time.Duration `yaml:"max_elapsed"`
}

// Config is the full configuration surface consumed by the pipeline.
type Config struct {
	// Organization size range (users generated for the single org).
	MinUsers int `yaml:"min_users"`
	MaxUsers int `yaml:"max_users"`

	// MonthsOfHistory is the simulation window: all activity timestamps
	// fall within the last MonthsOfHistory months before ReferenceTime.
	MonthsOfHistory int `yaml:"months_of_history"`

	ProjectsPerTeam int `yaml:"projects_per_team"`
	TasksPerUser    int `yaml:"tasks_per_user"`

	// Teams and Projects pin exact counts when non-zero; zero derives
	// them from the user population and ProjectsPerTeam.
	Teams    int `yaml:"teams"`
	Projects int `yaml:"projects"`

	// WorkloadCap is the hard limit on open (incomplete) tasks assigned
	// to a single user.
	WorkloadCap int `yaml:"workload_cap"`

	// CompletionTargets maps project type to its target completion rate.
	CompletionTargets map[string]float64 `yaml:"completion_targets"`

	// CompletionTolerance is the allowed absolute deviation from a
	// completion target before the validator fails the run.
	CompletionTolerance float64 `yaml:"completion_tolerance"`

	// Seed drives every random decision in the pipeline.
	Seed int64 `yaml:"seed"`

	// ReferenceTime is the simulated "now". Zero means wall clock at
	// startup; pin it for reproducible runs.
	ReferenceTime time.Time `yaml:"reference_time"`

	// OutputPath is the SQLite file the sink writes to.
	OutputPath string `yaml:"output_path"`

	Text TextConfig `yaml:"text"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	c := Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills unset fields with default values.
func (c *Config) ApplyDefaults() {
	if c.MinUsers == 0 {
		c.MinUsers = 2000
	}
	if c.MaxUsers == 0 {
		c.MaxUsers = 5000
	}
	if c.MonthsOfHistory == 0 {
		c.MonthsOfHistory = 6
	}
	if c.ProjectsPerTeam == 0 {
		c.ProjectsPerTeam = 6
	}
	if c.TasksPerUser == 0 {
		c.TasksPerUser = 12
	}
	if c.WorkloadCap == 0 {
		c.WorkloadCap = 30
	}
	if c.CompletionTargets == nil {
		c.CompletionTargets = DefaultCompletionTargets
	}
	if c.CompletionTolerance == 0 {
		c.CompletionTolerance = 0.15
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	if c.ReferenceTime.IsZero() {
		c.ReferenceTime = time.Now().UTC().Truncate(time.Second)
	}
	if c.OutputPath == "" {
		c.OutputPath = "output/taskgen.sqlite"
	}
	if c.Text.BaseURL == "" {
		c.Text.BaseURL = "https://api.anthropic.com"
	}
	if c.Text.Model == "" {
		c.Text.Model = "claude-sonnet-4-20250514"
	}
	if c.Text.Temperature == 0 {
		c.Text.Temperature = 0.7
	}
	if c.Text.MaxTokens == 0 {
		c.Text.MaxTokens = 150
	}
	if c.Text.BatchSize == 0 {
		c.Text.BatchSize = 20
	}
	if c.Text.Concurrency == 0 {
		c.Text.Concurrency = 4
	}
	if c.Text.MaxElapsed == 0 {
		c.Text.MaxElapsed = 30 * time.Second
	}
	if c.Text.APIKey == "" {
		c.Text.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
}

// Validate checks the configuration is usable. Configuration errors are
// fatal at startup and never recovered.
func (c *Config) Validate() error {
	if c.MinUsers < 1 {
		return fmt.Errorf("min_users must be at least 1, got %d", c.MinUsers)
	}
	if c.MaxUsers < c.MinUsers {
		return fmt.Errorf("max_users (%d) must be >= min_users (%d)", c.MaxUsers, c.MinUsers)
	}
	if c.MonthsOfHistory < 1 || c.MonthsOfHistory > 120 {
		return fmt.Errorf("months_of_history must be in [1,120], got %d", c.MonthsOfHistory)
	}
	if c.ProjectsPerTeam < 1 {
		return fmt.Errorf("projects_per_team must be at least 1, got %d", c.ProjectsPerTeam)
	}
	if c.TasksPerUser < 0 {
		return fmt.Errorf("tasks_per_user must not be negative, got %d", c.TasksPerUser)
	}
	if c.Teams < 0 || c.Projects < 0 {
		return fmt.Errorf("teams and projects overrides must not be negative")
	}
	if c.WorkloadCap < 1 {
		return fmt.Errorf("workload_cap must be at least 1, got %d", c.WorkloadCap)
	}
	if c.CompletionTolerance <= 0 || c.CompletionTolerance >= 1 {
		return fmt.Errorf("completion_tolerance must be in (0,1), got %g", c.CompletionTolerance)
	}
	if len(c.CompletionTargets) == 0 {
		return fmt.Errorf("completion_targets must not be empty")
	}
	for typ, rate := range c.CompletionTargets {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("completion target for %q must be in [0,1], got %g", typ, rate)
		}
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path is required")
	}
	if c.Text.BatchSize < 1 {
		return fmt.Errorf("text.batch_size must be at least 1, got %d", c.Text.BatchSize)
	}
	if c.Text.Concurrency < 1 {
		return fmt.Errorf("text.concurrency must be at least 1, got %d", c.Text.Concurrency)
	}
	return nil
}

// Load reads a YAML config file and merges it over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	c.ApplyDefaults()
	return c, nil
}
