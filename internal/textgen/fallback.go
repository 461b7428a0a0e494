package textgen

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/seedworks/taskgen/internal/refdata"
)

// Fallback is the deterministic template implementation of Service. It is
// used directly when no API key is configured, injected in tests, and
// backs every request the Client gives up on.
type Fallback struct{}

var _ Service = (*Fallback)(nil)

// Generate returns template text for every request.
func (Fallback) Generate(_ context.Context, reqs []Request) map[string]string {
	out := make(map[string]string, len(reqs))
	for _, req := range reqs {
		out[req.ID] = FallbackText(req)
	}
	return out
}

// FallbackText builds deterministic text for one request. The same request
// always yields the same text: template selection hashes the request ID.
func FallbackText(req Request) string {
	switch req.Kind {
	case KindTaskName:
		if req.Context.Hint != "" {
			return req.Context.Hint
		}
		return fmt.Sprintf("Follow up on %s", req.Context.ProjectName)
	case KindTaskDescription:
		if req.Context.Hint != "" {
			return req.Context.Hint
		}
		return fmt.Sprintf("Work item for the %s project: %s.", req.Context.ProjectName, req.Context.TaskName)
	case KindComment:
		return refdata.CommentTemplates[hashIndex(req.ID, len(refdata.CommentTemplates))]
	default:
		return req.Context.Hint
	}
}

func hashIndex(s string, n int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return int(h.Sum32() % uint32(n))
}
