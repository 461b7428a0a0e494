package textgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seedworks/taskgen/internal/config"
	"github.com/seedworks/taskgen/internal/logger"
)

func testRequests(n int) []Request {
	reqs := make([]Request, 0, n)
	for i := 0; i < n; i++ {
		reqs = append(reqs, Request{
			ID:   fmt.Sprintf("req-%d", i),
			Kind: KindComment,
			Context: Context{
				ProjectName: "Website Redesign",
				TaskName:    fmt.Sprintf("Task %d", i),
				AuthorName:  "Dana Field",
			},
		})
	}
	return reqs
}

func TestFallbackCoversEveryRequest(t *testing.T) {
	reqs := testRequests(25)

	out := Fallback{}.Generate(context.Background(), reqs)
	require.Len(t, out, len(reqs))
	for _, req := range reqs {
		require.NotEmpty(t, out[req.ID])
	}
}

func TestFallbackIsDeterministic(t *testing.T) {
	reqs := testRequests(50)

	first := Fallback{}.Generate(context.Background(), reqs)
	second := Fallback{}.Generate(context.Background(), reqs)
	require.Equal(t, first, second)
}

func TestFallbackTextByKind(t *testing.T) {
	name := FallbackText(Request{
		ID:      "a",
		Kind:    KindTaskName,
		Context: Context{Hint: "Fix login timeout"},
	})
	require.Equal(t, "Fix login timeout", name)

	desc := FallbackText(Request{
		ID:      "b",
		Kind:    KindTaskDescription,
		Context: Context{ProjectName: "Checkout", TaskName: "Fix login timeout"},
	})
	require.Contains(t, desc, "Checkout")
	require.Contains(t, desc, "Fix login timeout")

	comment := FallbackText(Request{ID: "c", Kind: KindComment})
	require.NotEmpty(t, comment)
}

func testConfig(baseURL string) config.TextConfig {
	return config.TextConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "test-model",
		Temperature: 0.7,
		MaxTokens:   100,
		BatchSize:   10,
		Concurrency: 2,
		MaxElapsed:  2 * time.Second,
	}
}

func apiResponse(t *testing.T, texts []string) []byte {
	t.Helper()
	payload, err := json.Marshal(texts)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"content": []map[string]string{{"type": "text", "text": string(payload)}},
	})
	require.NoError(t, err)
	return body
}

func TestClientGenerate(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "test-key", r.Header.Get("x-api-key"))
		require.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)

		// One numbered line per request in the batch.
		texts := make([]string, 0, 10)
		for i := 0; i < 10; i++ {
			texts = append(texts, fmt.Sprintf("generated %d", i))
		}
		_, _ = w.Write(apiResponse(t, texts))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), logger.Setup(false))
	reqs := testRequests(30)

	out := c.Generate(context.Background(), reqs)
	require.Len(t, out, 30)
	require.Equal(t, int32(3), calls.Load())
	for _, req := range reqs {
		require.Contains(t, out[req.ID], "generated")
	}
}

func TestClientFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), logger.Setup(false))
	reqs := testRequests(5)

	out := c.Generate(context.Background(), reqs)
	require.Len(t, out, 5)
	expected := Fallback{}.Generate(context.Background(), reqs)
	require.Equal(t, expected, out)
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), logger.Setup(false))
	out := c.Generate(context.Background(), testRequests(3))

	require.Len(t, out, 3)
	require.Equal(t, int32(1), calls.Load())
}

func TestClientRetriesRateLimits(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write(apiResponse(t, []string{"after retry", "after retry", "after retry"}))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), logger.Setup(false))
	out := c.Generate(context.Background(), testRequests(3))

	require.GreaterOrEqual(t, calls.Load(), int32(2))
	require.Equal(t, "after retry", out["req-0"])
}

func TestClientFallsBackOnCountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(apiResponse(t, []string{"only one"}))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), logger.Setup(false))
	reqs := testRequests(4)

	out := c.Generate(context.Background(), reqs)
	require.Equal(t, Fallback{}.Generate(context.Background(), reqs), out)
}
