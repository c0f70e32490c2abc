package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
	"google.golang.org/genai"
)

const (
	providerName          = "gemini"
	DefaultModel          = "gemini-2.5-flash-lite"
	defaultRequestTimeout = 60 * time.Second
)

type Options struct {
	Model string
	// BaseURL overrides the Gemini API endpoint.
	BaseURL string
	// RequestTimeout bounds one Generate call when ctx has no deadline.
	RequestTimeout time.Duration
}

// Client calls Gemini with whichever key the caller hands it. One SDK client is
// kept per key.
type Client struct {
	model          string
	baseURL        string
	requestTimeout time.Duration

	mu      sync.Mutex
	clients map[string]*genai.Client
}

var _ ports.GenerationClient = (*Client)(nil)

func New(opts Options) *Client {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		model:          model,
		baseURL:        strings.TrimSpace(opts.BaseURL),
		requestTimeout: timeout,
		clients:        map[string]*genai.Client{},
	}
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) Generate(ctx context.Context, apiKey string, req ports.GenerateRequest) (string, error) {
	client, err := c.clientFor(ctx, apiKey)
	if err != nil {
		return "", err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	config := &genai.GenerateContentConfig{Temperature: genai.Ptr(req.Temperature)}
	resp, err := client.Models.GenerateContent(requestCtx, c.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", classify(ctx, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", &domain.ProviderError{Provider: providerName, Err: errors.New("empty response")}
	}

	return text, nil
}

func (c *Client) clientFor(ctx context.Context, apiKey string) (*genai.Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &domain.ProviderError{Provider: providerName, Err: errors.New("api key is empty")}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[apiKey]; ok {
		return client, nil
	}

	config := &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	if c.baseURL != "" {
		config.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c.clients[apiKey] = client

	return client, nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.requestTimeout)
}

// classify maps err to a ProviderError. ctx is the caller's context: its own
// cancellation is returned as is, while the per-request timeout counts as a
// retryable provider failure.
func classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &domain.ProviderError{Provider: providerName, StatusCode: apiErr.Code, Retryable: domain.RetryableStatus(apiErr.Code), Err: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return &domain.ProviderError{Provider: providerName, StatusCode: apiErrPtr.Code, Retryable: domain.RetryableStatus(apiErrPtr.Code), Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &domain.ProviderError{Provider: providerName, Retryable: true, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &domain.ProviderError{Provider: providerName, Retryable: true, Err: err}
	}

	return &domain.ProviderError{Provider: providerName, Err: err}
}
