package serper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestSearchSendsQueryAndDecodesOrganicResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get("X-API-KEY"))

		var body searchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, searchRequest{Query: "site:linkedin.com/in/ golang", Num: 3}, body)

		_, _ = w.Write([]byte(`{"organic":[{"title":"Ada - LinkedIn","link":"https://linkedin.com/in/ada","snippet":"Staff engineer","position":1}]}`))
	}))
	t.Cleanup(server.Close)

	client := &Client{BaseURL: server.URL}

	results, err := client.Search(context.Background(), "key-1", "site:linkedin.com/in/ golang", 3)

	require.NoError(t, err)
	assert.Equal(t, []domain.SearchResult{{Title: "Ada - LinkedIn", Link: "https://linkedin.com/in/ada", Snippet: "Staff engineer"}}, results)
}

func TestSearchClassifiesStatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, retryable: true},
		{name: "bad gateway", status: http.StatusBadGateway, retryable: true},
		{name: "unauthorized", status: http.StatusUnauthorized, retryable: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			}))
			t.Cleanup(server.Close)

			_, err := (&Client{BaseURL: server.URL}).Search(context.Background(), "key-1", "q", 1)

			var providerErr *domain.ProviderError
			require.ErrorAs(t, err, &providerErr)
			assert.Equal(t, tc.status, providerErr.StatusCode)
			assert.Equal(t, tc.retryable, providerErr.Retryable)
			assert.ErrorContains(t, err, "nope")
		})
	}
}

func TestSearchMissingOrganicIsEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"searchParameters":{"q":"x"}}`))
	}))
	t.Cleanup(server.Close)

	results, err := (&Client{BaseURL: server.URL}).Search(context.Background(), "key-1", "x", 1)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchRespectsLimiterCancellation(t *testing.T) {
	t.Parallel()

	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	require.True(t, limiter.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := (&Client{BaseURL: "http://127.0.0.1:1", Limiter: limiter}).Search(ctx, "key-1", "q", 1)

	assert.ErrorContains(t, err, "wait for search slot")
}

func TestSearchRejectsEmptyKey(t *testing.T) {
	t.Parallel()

	_, err := (&Client{}).Search(context.Background(), " ", "q", 1)
	assert.ErrorContains(t, err, "api key is empty")
}
