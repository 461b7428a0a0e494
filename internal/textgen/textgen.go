// Package textgen produces human-like task names, descriptions and comment
// bodies. The Client implementation talks to an external completion service
// in batches; the Fallback implementation is deterministic templating and is
// also what every failed request degrades to, so the pipeline never blocks
// on the external dependency.
package textgen

import "context"

// Kind identifies what content a request wants.
type Kind string

const (
	KindTaskName        Kind = "task_name"
	KindTaskDescription Kind = "task_description"
	KindComment         Kind = "comment"
)

// Context carries the entity fields a request is generated from.
type Context struct {
	ProjectName string
	ProjectType string
	Department  string
	TaskName    string
	AuthorName  string

	// Hint is the template-derived text the requesting generator already
	// produced. The service may improve on it; the fallback returns it
	// (or a template built from the other fields) verbatim.
	Hint string
}

// Request asks for one piece of content. ID is the correlation key:
// responses are matched back to requests by ID, never by arrival order.
type Request struct {
	ID      string
	Kind    Kind
	Context Context
}

// Service generates text for a set of requests. Implementations must return
// an entry for every request, substituting fallback text where the external
// call failed; external-service errors are never surfaced to callers.
type Service interface {
	Generate(ctx context.Context, reqs []Request) map[string]string
}
