package refdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorIsStable(t *testing.T) {
	require.Equal(t, Color("bug"), Color("bug"))
	require.Contains(t, Palette, Color("anything at all"))
}

func TestEmailFor(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		last     string
		n        int
		expected string
	}{
		{name: "simple", first: "Ada", last: "Okafor", expected: "ada.okafor@example.com"},
		{name: "suffix", first: "Ada", last: "Okafor", n: 2, expected: "ada.okafor2@example.com"},
		{name: "strips punctuation", first: "Mary-Jane", last: "O'Brien", expected: "maryjane.obrien@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, EmailFor(tt.first, tt.last, "example.com", tt.n))
		})
	}
}

func TestWeightTablesAligned(t *testing.T) {
	require.Len(t, DepartmentWeights, len(Departments))
	require.Len(t, TimezoneWeights, len(Timezones))

	for _, dept := range Departments {
		require.NotEmpty(t, JobTitles[dept], dept)
		require.NotEmpty(t, DepartmentTeams[dept], dept)
	}
}

func TestTaskPatternsCoverEveryProjectType(t *testing.T) {
	for _, ptype := range []string{
		"software_development", "marketing_campaign", "product_launch",
		"operations", "design", "research",
	} {
		require.NotEmpty(t, TaskNamePatterns[ptype], ptype)
	}
}

func TestCustomFieldCatalog(t *testing.T) {
	names := map[string]bool{}
	for _, spec := range CustomFieldCatalog {
		require.False(t, names[spec.Name], "duplicate field %s", spec.Name)
		names[spec.Name] = true

		switch spec.Type {
		case "enum":
			require.NotEmpty(t, spec.Options, spec.Name)
		case "number", "text", "date":
			require.Empty(t, spec.Options, spec.Name)
		default:
			t.Fatalf("unknown field type %q", spec.Type)
		}
	}
}

func TestStoryTemplatesPlaceholders(t *testing.T) {
	// Types whose templates take a contextual filler.
	withSlot := map[string]bool{"task_assigned": true, "attachment_added": true, "task_moved": true}

	for storyType, templates := range StoryTemplates {
		require.NotEmpty(t, templates, storyType)
		for _, tmpl := range templates {
			require.Equal(t, withSlot[storyType], strings.Contains(tmpl, "%s"),
				"%s template %q", storyType, tmpl)
		}
	}
}
