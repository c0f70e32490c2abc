package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
	"github.com/bnema/careerhub/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPools(t *testing.T) *KeyPool {
	t.Helper()

	return newTestKeyPool(t,
		domain.KeyPool{Name: domain.PoolGeneration, Keys: []string{"g1", "g2", "g3"}},
		domain.KeyPool{Name: domain.PoolSearch, Keys: []string{"s1", "s2"}},
	)
}

func TestGeneratorUsesDefaultTemperatureAndStripsFences(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockGenerationClient(t)
	client.EXPECT().
		Generate(mock.Anything, "g1", ports.GenerateRequest{Prompt: "hello", Temperature: DefaultTemperature}).
		Return("```markdown\n**hi**\n```", nil).
		Once()

	generator := NewGenerator(newTestPools(t), client, nil)

	text, err := generator.Generate(context.Background(), "s-1", "hello")

	require.NoError(t, err)
	assert.Equal(t, "**hi**", text)
}

func TestGeneratorRotatesKeysAcrossCalls(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockGenerationClient(t)
	var keys []string
	client.EXPECT().
		Generate(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, apiKey string, _ ports.GenerateRequest) {
			keys = append(keys, apiKey)
		}).
		Return("text", nil).
		Times(4)

	generator := NewGenerator(newTestPools(t), client, nil)
	for i := 0; i < 4; i++ {
		_, err := generator.Generate(context.Background(), "s-1", "prompt")
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"g1", "g2", "g3", "g1"}, keys)
}

func TestGeneratorRetriesRateLimitedKey(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockGenerationClient(t)
	client.EXPECT().
		Generate(mock.Anything, "g1", mock.Anything).
		Return("", &domain.ProviderError{Provider: "gemini", StatusCode: 429, Retryable: true, Err: errors.New("quota")}).
		Once()
	client.EXPECT().
		Generate(mock.Anything, "g2", mock.Anything).
		Return("recovered", nil).
		Once()

	generator := NewGenerator(newTestPools(t), client, nil)

	text, err := generator.Generate(context.Background(), "s-1", "prompt")

	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
}

func TestGeneratorReturnsProviderFailureAsError(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockGenerationClient(t)
	client.EXPECT().
		Generate(mock.Anything, mock.Anything, mock.Anything).
		Return("", &domain.ProviderError{Provider: "gemini", StatusCode: 403, Err: errors.New("key revoked")}).
		Once()

	generator := NewGenerator(newTestPools(t), client, nil)

	text, err := generator.Generate(context.Background(), "s-1", "prompt")

	assert.Empty(t, text)
	assert.ErrorContains(t, err, "generate text: gemini: status 403: key revoked")
}

func TestGeneratorRejectsEmptyPrompt(t *testing.T) {
	t.Parallel()

	generator := NewGenerator(newTestPools(t), mocks.NewMockGenerationClient(t), nil)

	_, err := generator.Generate(context.Background(), "s-1", "  ")
	assert.EqualError(t, err, "prompt is empty")
}

func TestSearcherDrawsFromSearchPool(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockSearchClient(t)
	want := []domain.SearchResult{{Title: "Jane Doe - LinkedIn", Link: "https://linkedin.com/in/jane"}}
	client.EXPECT().Search(mock.Anything, "s1", "site:linkedin.com/in/", 3).Return(want, nil).Once()

	searcher := NewSearcher(newTestPools(t), client, nil)

	got, err := searcher.Search(context.Background(), "s-1", "site:linkedin.com/in/", 3)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
