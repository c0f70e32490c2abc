package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
	"go.uber.org/zap"
)

var errSessionIDRequired = errors.New("session id is required")

// KeySource hands out one credential per outbound call.
type KeySource interface {
	NextKey(ctx context.Context, sessionID string, pool domain.PoolName) (string, error)
}

// KeyPool rotates credentials round-robin with one cursor per session and pool.
type KeyPool struct {
	pools    map[domain.PoolName]domain.KeyPool
	sessions ports.SessionRepository
	clock    ports.Clock
	logger   *zap.Logger

	// mu makes load-advance-save a single step for every caller in this process.
	mu sync.Mutex
}

var _ KeySource = (*KeyPool)(nil)

type PoolStatus struct {
	Name      domain.PoolName
	Size      int
	Cursor    uint64
	NextIndex int
}

func NewKeyPool(pools []domain.KeyPool, sessions ports.SessionRepository, clock ports.Clock, logger *zap.Logger) (*KeyPool, error) {
	if sessions == nil {
		return nil, errors.New("session repository is nil")
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	byName := make(map[domain.PoolName]domain.KeyPool, len(pools))
	for _, pool := range pools {
		pool.NormalizeKeys()
		if err := pool.Validate(); err != nil {
			return nil, err
		}
		if _, ok := byName[pool.Name]; ok {
			return nil, fmt.Errorf("pool %q configured twice", pool.Name)
		}
		byName[pool.Name] = pool
	}

	return &KeyPool{pools: byName, sessions: sessions, clock: clock, logger: logger}, nil
}

// NextKey returns pool[cursor mod len(pool)] for the session and advances the cursor.
// An unknown pool fails with a ConfigurationError and leaves every cursor untouched.
func (p *KeyPool) NextKey(ctx context.Context, sessionID string, name domain.PoolName) (string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", errSessionIDRequired
	}

	pool, ok := p.pools[name]
	if !ok {
		return "", &domain.ConfigurationError{Pool: name, Reason: "no credentials configured"}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	session, err := p.loadSession(ctx, sessionID)
	if err != nil {
		return "", err
	}

	cursor := session.Cursor(name)
	key, err := session.Advance(pool, p.clock.Now())
	if err != nil {
		return "", err
	}

	if err := p.sessions.Save(ctx, session); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	p.logger.Debug("credential selected",
		zap.String("session", sessionID),
		zap.String("pool", string(name)),
		zap.Uint64("cursor", cursor),
		zap.String("key", domain.MaskKey(key)),
	)

	return key, nil
}

// EndSession drops every cursor held for the session.
func (p *KeyPool) EndSession(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return errSessionIDRequired
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	p.logger.Debug("session ended", zap.String("session", sessionID))
	return nil
}

func (p *KeyPool) Status(ctx context.Context, sessionID string) ([]PoolStatus, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, errSessionIDRequired
	}

	p.mu.Lock()
	session, err := p.loadSession(ctx, sessionID)
	p.mu.Unlock()
	if err != nil {
		return nil, err
	}

	statuses := make([]PoolStatus, 0, len(p.pools))
	for _, name := range p.PoolNames() {
		pool := p.pools[name]
		cursor := session.Cursor(name)
		statuses = append(statuses, PoolStatus{
			Name:      name,
			Size:      pool.Len(),
			Cursor:    cursor,
			NextIndex: int(cursor % uint64(pool.Len())),
		})
	}

	return statuses, nil
}

func (p *KeyPool) PoolNames() []domain.PoolName {
	names := make([]domain.PoolName, 0, len(p.pools))
	for name := range p.pools {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (p *KeyPool) loadSession(ctx context.Context, sessionID string) (domain.Session, error) {
	session, err := p.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return domain.Session{}, fmt.Errorf("load session: %w", err)
		}
		session = domain.NewSession(sessionID, p.clock.Now())
	}
	if session.Cursors == nil {
		session.Cursors = map[domain.PoolName]uint64{}
	}

	return session, nil
}
