package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/seedworks/taskgen/internal/config"
)

// Client calls the Anthropic messages API. Requests are bundled into
// batches, batches run through a bounded worker pool, transient failures
// are retried with exponential backoff, and a batch that exhausts its
// retries is filled from the fallback templates instead.
type Client struct {
	cfg    config.TextConfig
	client *http.Client
	log    zerolog.Logger
}

// NewClient builds a client from the text configuration.
func NewClient(cfg config.TextConfig, log zerolog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
		log:    log,
	}
}

var _ Service = (*Client)(nil)

// Generate resolves every request, falling back to templates for any batch
// the external service could not serve. Cancellation stops new batches from
// being issued; in-flight ones run to completion or time out.
func (c *Client) Generate(ctx context.Context, reqs []Request) map[string]string {
	results := make(map[string]string, len(reqs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency)

	for start := 0; start < len(reqs); start += c.cfg.BatchSize {
		end := min(start+c.cfg.BatchSize, len(reqs))
		batch := reqs[start:end]

		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			texts, err := c.generateBatch(gctx, batch)
			if err != nil {
				c.log.Warn().Err(err).Int("batch_size", len(batch)).
					Msg("text service failed, using fallback templates")
				texts = Fallback{}.Generate(gctx, batch)
			}

			mu.Lock()
			for id, text := range texts {
				results[id] = text
			}
			mu.Unlock()
			return nil
		})
	}

	// Workers only return nil; the group is used for pool limits.
	_ = g.Wait()

	// Backfill anything not covered, including batches skipped on cancel.
	for _, req := range reqs {
		if _, ok := results[req.ID]; !ok {
			results[req.ID] = FallbackText(req)
		}
	}

	return results
}

// generateBatch issues one service call for a batch, retrying transient
// failures until the configured elapsed budget runs out.
func (c *Client) generateBatch(ctx context.Context, batch []Request) (map[string]string, error) {
	return backoff.Retry(ctx, func() (map[string]string, error) {
		texts, err := c.call(ctx, batch)
		if err != nil {
			return nil, err
		}
		return texts, nil
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(c.cfg.MaxElapsed),
	)
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

const systemPrompt = "You write short, realistic workplace project-management content. " +
	"Respond with a JSON array of strings, one per numbered item, in order, with no other text."

// call makes a single messages-API request for the batch and parses the
// numbered results back out by position, then re-keys them by request ID.
func (c *Client) call(ctx context.Context, batch []Request) (map[string]string, error) {
	var prompt bytes.Buffer
	for i, req := range batch {
		fmt.Fprintf(&prompt, "%d. kind=%s project=%q type=%s", i+1, req.Kind, req.Context.ProjectName, req.Context.ProjectType)
		if req.Context.TaskName != "" {
			fmt.Fprintf(&prompt, " task=%q", req.Context.TaskName)
		}
		if req.Context.Hint != "" {
			fmt.Fprintf(&prompt, " draft=%q", req.Context.Hint)
		}
		prompt.WriteByte('\n')
	}

	body, err := json.Marshal(messagesRequest{
		Model:       c.cfg.Model,
		MaxTokens:   c.cfg.MaxTokens * len(batch),
		Temperature: c.cfg.Temperature,
		System:      systemPrompt,
		Messages:    []message{{Role: "user", Content: prompt.String()}},
	})
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.cfg.APIKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("text service request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to parsing
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, fmt.Errorf("text service returned %d", resp.StatusCode)
	default:
		return nil, backoff.Permanent(fmt.Errorf("text service returned %d: %s", resp.StatusCode, respBody))
	}

	var mr messagesResponse
	if err := json.Unmarshal(respBody, &mr); err != nil {
		return nil, fmt.Errorf("malformed response envelope: %w", err)
	}
	if len(mr.Content) == 0 {
		return nil, fmt.Errorf("empty response content")
	}

	var texts []string
	if err := json.Unmarshal([]byte(mr.Content[0].Text), &texts); err != nil {
		return nil, fmt.Errorf("malformed response payload: %w", err)
	}
	if len(texts) != len(batch) {
		return nil, fmt.Errorf("got %d results for %d requests", len(texts), len(batch))
	}

	out := make(map[string]string, len(batch))
	for i, req := range batch {
		if texts[i] == "" {
			out[req.ID] = FallbackText(req)
			continue
		}
		out[req.ID] = texts[i]
	}
	return out, nil
}
