package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
)

const DefaultProfileCacheTTL = 10 * time.Minute

type cachedProfile struct {
	profile   domain.Profile
	expiresAt time.Time
}

// ProfileService reads profiles through a short-lived per-process cache.
type ProfileService struct {
	repo  ports.ProfileRepository
	clock ports.Clock
	ttl   time.Duration

	mu    sync.Mutex
	cache map[domain.ProfileID]cachedProfile
}

func NewProfileService(repo ports.ProfileRepository, clock ports.Clock, ttl time.Duration) *ProfileService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ProfileService{repo: repo, clock: clock, ttl: ttl, cache: map[domain.ProfileID]cachedProfile{}}
}

func (s *ProfileService) Get(ctx context.Context, id domain.ProfileID) (domain.Profile, error) {
	now := s.clock.Now()

	s.mu.Lock()
	entry, ok := s.cache[id]
	s.mu.Unlock()
	if ok && now.Before(entry.expiresAt) {
		return entry.profile, nil
	}

	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get profile by id: %w", err)
	}

	if s.ttl > 0 {
		s.mu.Lock()
		s.cache[id] = cachedProfile{profile: profile, expiresAt: now.Add(s.ttl)}
		s.mu.Unlock()
	}

	return profile, nil
}

func (s *ProfileService) Save(ctx context.Context, profile domain.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	profile.UpdatedAt = s.clock.Now()
	if err := s.repo.Save(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	s.Invalidate(profile.ID)
	return nil
}

func (s *ProfileService) Invalidate(id domain.ProfileID) {
	s.mu.Lock()
	delete(s.cache, id)
	s.mu.Unlock()
}
