package modelserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
)

const (
	engagementPath        = "/engagement"
	clusterPath           = "/cluster"
	maxResponseBytes      = 64 << 10
	defaultRequestTimeout = 5 * time.Second
)

// Client talks to the scoring service hosting the engagement regressor and
// the skill clustering model.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var (
	_ ports.EngagementModel = (*Client)(nil)
	_ ports.SkillClusterer  = (*Client)(nil)
)

type engagementRequest struct {
	Text string `json:"text"`
}

type engagementResponse struct {
	Score *float64 `json:"score"`
}

type clusterRequest struct {
	Features []int `json:"features"`
}

type clusterResponse struct {
	Cluster *int `json:"cluster"`
}

func (c *Client) PredictEngagement(ctx context.Context, text string) (float64, error) {
	var resp engagementResponse
	if err := c.post(ctx, engagementPath, engagementRequest{Text: text}, &resp); err != nil {
		return 0, err
	}
	if resp.Score == nil {
		return 0, fmt.Errorf("%w: engagement response missing score", domain.ErrModelUnavailable)
	}

	score := *resp.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score, nil
}

func (c *Client) PredictCluster(ctx context.Context, features []int) (int, error) {
	var resp clusterResponse
	if err := c.post(ctx, clusterPath, clusterRequest{Features: features}, &resp); err != nil {
		return 0, err
	}
	if resp.Cluster == nil {
		return 0, fmt.Errorf("%w: cluster response missing cluster", domain.ErrModelUnavailable)
	}

	return *resp.Cluster, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		return fmt.Errorf("%w: model server url not configured", domain.ErrModelUnavailable)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode model request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, base+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create model request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d", domain.ErrModelUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return errors.Join(domain.ErrModelUnavailable, fmt.Errorf("decode model response: %w", err))
	}

	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, timeout)
}
