// Package refdata supplies the static reference pools consumed by the
// generators: company profiles, person names, job titles, team and project
// naming patterns, and the color palette. Everything here is read-only.
package refdata

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Company is a B2B SaaS company profile used for the generated organization.
type Company struct {
	Name     string
	Domain   string
	Industry string
}

// Companies is the pool the organization generator picks from.
var Companies = []Company{
	{Name: "DataFlow Analytics", Domain: "dataflow.io", Industry: "Analytics"},
	{Name: "SecureStack", Domain: "securestack.com", Industry: "Security"},
	{Name: "DevTools Pro", Domain: "devtools.pro", Industry: "Developer Tools"},
	{Name: "CloudSync Platform", Domain: "cloudsync.io", Industry: "Infrastructure"},
	{Name: "CollabSpace", Domain: "collabspace.com", Industry: "Collaboration"},
	{Name: "APIverse", Domain: "apiverse.dev", Industry: "Developer Tools"},
	{Name: "MetricsHub", Domain: "metricshub.io", Industry: "Analytics"},
	{Name: "CodeGuard", Domain: "codeguard.io", Industry: "Security"},
	{Name: "TeamFlow", Domain: "teamflow.app", Industry: "Collaboration"},
	{Name: "InfraMesh", Domain: "inframesh.io", Industry: "Infrastructure"},
	{Name: "LedgerWorks", Domain: "ledgerworks.com", Industry: "Fintech"},
	{Name: "PipelineIQ", Domain: "pipelineiq.io", Industry: "Analytics"},
	{Name: "ShipRight", Domain: "shipright.dev", Industry: "Developer Tools"},
	{Name: "VaultPoint", Domain: "vaultpoint.io", Industry: "Security"},
	{Name: "SignalDesk", Domain: "signaldesk.app", Industry: "Collaboration"},
}

// Palette is the product color palette used for projects and tags.
var Palette = []string{
	"#4573D2", // blue
	"#E362E3", // purple
	"#E8384F", // red
	"#FDA82F", // orange
	"#FCAB10", // yellow
	"#8DA954", // green
	"#14C2D8", // teal
	"#AA62E3", // violet
}

// Color maps a string to a palette color. The same input always yields the
// same color so entity colors are stable across runs.
func Color(s string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return Palette[h.Sum32()%uint32(len(Palette))]
}

// Timezones and their weights for a remote-first SaaS workforce.
var Timezones = []string{
	"America/Los_Angeles",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"Europe/London",
	"Europe/Berlin",
	"Europe/Paris",
	"Asia/Singapore",
	"Asia/Tokyo",
	"Australia/Sydney",
}

// TimezoneWeights matches Timezones by index.
var TimezoneWeights = []float64{0.30, 0.20, 0.07, 0.03, 0.12, 0.08, 0.05, 0.06, 0.05, 0.04}

// EmailFor builds a first.last style address. A positive n appends a numeric
// suffix so callers can deduplicate collisions.
func EmailFor(first, last, domain string, n int) string {
	clean := func(s string) string {
		var b strings.Builder
		for _, r := range strings.ToLower(s) {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			}
		}
		return b.String()
	}
	local := clean(first) + "." + clean(last)
	if n > 0 {
		local = fmt.Sprintf("%s%d", local, n)
	}
	return local + "@" + domain
}
