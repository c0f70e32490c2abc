package memory

import (
	"context"
	"sync"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
)

// SessionRepository keeps cursors for the lifetime of the process.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: map[string]domain.Session{}}
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	return cloneSession(session), nil
}

func (r *SessionRepository) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

func cloneSession(session domain.Session) domain.Session {
	cursors := make(map[domain.PoolName]uint64, len(session.Cursors))
	for pool, cursor := range session.Cursors {
		cursors[pool] = cursor
	}
	session.Cursors = cursors
	return session
}
