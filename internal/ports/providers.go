package ports

import (
	"context"

	"github.com/bnema/careerhub/internal/domain"
)

type GenerateRequest struct {
	Prompt      string
	Temperature float32
}

// GenerationClient performs exactly one call with the given credential.
type GenerationClient interface {
	Generate(ctx context.Context, apiKey string, req GenerateRequest) (string, error)
}

type SearchClient interface {
	Search(ctx context.Context, apiKey string, query string, num int) ([]domain.SearchResult, error)
}

// EngagementModel predicts a 0-100 engagement score for post text.
type EngagementModel interface {
	PredictEngagement(ctx context.Context, text string) (float64, error)
}

// SkillClusterer assigns a skill vector to a cohort cluster.
type SkillClusterer interface {
	PredictCluster(ctx context.Context, features []int) (int, error)
}
