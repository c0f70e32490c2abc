package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
	"golang.org/x/time/rate"
)

const (
	providerName          = "serper"
	DefaultBaseURL        = "https://google.serper.dev"
	searchPath            = "/search"
	maxSearchResponseSize = 1 << 20
	defaultRequestTimeout = 20 * time.Second
)

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	// Limiter throttles outbound searches across every key; nil means unthrottled.
	Limiter *rate.Limiter
}

var _ ports.SearchClient = (*Client)(nil)

type searchRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num,omitempty"`
}

type searchResponse struct {
	Organic []domain.SearchResult `json:"organic"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *Client) Search(ctx context.Context, apiKey string, query string, num int) ([]domain.SearchResult, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &domain.ProviderError{Provider: providerName, Err: errors.New("api key is empty")}
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for search slot: %w", err)
		}
	}

	body, err := json.Marshal(searchRequest{Query: query, Num: num})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", apiKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var netErr net.Error
		retryable := errors.As(err, &netErr) && netErr.Timeout()
		return nil, &domain.ProviderError{Provider: providerName, Retryable: retryable, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.ProviderError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Retryable:  domain.RetryableStatus(resp.StatusCode),
			Err:        errors.New(decodeError(resp)),
		}
	}

	var payload searchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxSearchResponseSize)).Decode(&payload); err != nil {
		return nil, &domain.ProviderError{Provider: providerName, Err: fmt.Errorf("decode search response: %w", err)}
	}

	return payload.Organic, nil
}

func (c *Client) endpoint() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return base + searchPath
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

func decodeError(resp *http.Response) string {
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxSearchResponseSize)).Decode(&payload); err != nil || payload.Message == "" {
		return http.StatusText(resp.StatusCode)
	}
	return payload.Message
}
