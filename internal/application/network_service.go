package application

import (
	"context"
	"fmt"

	"github.com/bnema/careerhub/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMentorLimit = 3
	pitchConcurrency   = 3
)

type MentorSearcher interface {
	Search(ctx context.Context, sessionID, query string, num int) ([]domain.SearchResult, error)
}

type NetworkService struct {
	profiles  ProfileReader
	generator TextGenerator
	searcher  MentorSearcher
}

func NewNetworkService(profiles ProfileReader, generator TextGenerator, searcher MentorSearcher) *NetworkService {
	return &NetworkService{profiles: profiles, generator: generator, searcher: searcher}
}

// FindMentors asks the model for a search query, runs it, and writes one pitch per result.
func (s *NetworkService) FindMentors(ctx context.Context, cmd FindMentorsCommand) (NetworkResult, error) {
	limit := cmd.Limit
	if limit <= 0 {
		limit = DefaultMentorLimit
	}

	profile, err := s.profiles.Get(ctx, cmd.ProfileID)
	if err != nil {
		return NetworkResult{}, err
	}

	rawQuery, err := s.generator.Generate(ctx, cmd.SessionID,
		fmt.Sprintf(mentorQueryPrompt, profile.TargetRole, profile.TargetEcosystem))
	if err != nil {
		return NetworkResult{}, fmt.Errorf("build search query: %w", err)
	}
	query := domain.CleanSearchQuery(rawQuery)

	results, err := s.searcher.Search(ctx, cmd.SessionID, query, limit)
	if err != nil {
		return NetworkResult{}, fmt.Errorf("search mentors: %w", err)
	}
	if len(results) > limit {
		results = results[:limit]
	}

	mentors := make([]domain.Mentor, len(results))
	for i, result := range results {
		mentors[i] = domain.MentorFromResult(result)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pitchConcurrency)
	for i := range mentors {
		i := i
		g.Go(func() error {
			pitch, err := s.generator.Generate(gctx, cmd.SessionID,
				fmt.Sprintf(pitchPrompt, mentors[i].Snippet, profile.TargetRole))
			if err != nil {
				return fmt.Errorf("pitch %s: %w", mentors[i].Name, err)
			}
			mentors[i].Pitch = pitch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return NetworkResult{}, err
	}

	return NetworkResult{Query: query, Mentors: mentors}, nil
}
