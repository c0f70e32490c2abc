package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
	"go.uber.org/zap"
)

const DefaultTemperature float32 = 0.7

// TextGenerator is what feature services need from the generation provider.
type TextGenerator interface {
	Generate(ctx context.Context, sessionID, prompt string) (string, error)
}

type Generator struct {
	keys        KeySource
	client      ports.GenerationClient
	logger      *zap.Logger
	temperature float32
}

var _ TextGenerator = (*Generator)(nil)

func NewGenerator(keys KeySource, client ports.GenerationClient, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{keys: keys, client: client, logger: logger, temperature: DefaultTemperature}
}

func (g *Generator) Generate(ctx context.Context, sessionID, prompt string) (string, error) {
	return g.GenerateWithTemperature(ctx, sessionID, prompt, g.temperature)
}

func (g *Generator) GenerateWithTemperature(ctx context.Context, sessionID, prompt string, temperature float32) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt is empty")
	}

	text, err := CallWithRotation(ctx, g.keys, sessionID, domain.PoolGeneration, g.logger,
		func(ctx context.Context, apiKey string) (string, error) {
			return g.client.Generate(ctx, apiKey, ports.GenerateRequest{Prompt: prompt, Temperature: temperature})
		},
	)
	if err != nil {
		return "", fmt.Errorf("generate text: %w", err)
	}

	return domain.StripFences(text), nil
}

type Searcher struct {
	keys   KeySource
	client ports.SearchClient
	logger *zap.Logger
}

func NewSearcher(keys KeySource, client ports.SearchClient, logger *zap.Logger) *Searcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Searcher{keys: keys, client: client, logger: logger}
}

func (s *Searcher) Search(ctx context.Context, sessionID, query string, num int) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("search query is empty")
	}

	results, err := CallWithRotation(ctx, s.keys, sessionID, domain.PoolSearch, s.logger,
		func(ctx context.Context, apiKey string) ([]domain.SearchResult, error) {
			return s.client.Search(ctx, apiKey, query, num)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	return results, nil
}
