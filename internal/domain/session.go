package domain

import "time"

// Session carries one rotation cursor per pool for a single user session.
type Session struct {
	ID         string
	Cursors    map[PoolName]uint64
	StartedAt  time.Time
	LastUsedAt time.Time
}

func NewSession(id string, now time.Time) Session {
	return Session{
		ID:         id,
		Cursors:    map[PoolName]uint64{},
		StartedAt:  now,
		LastUsedAt: now,
	}
}

func (s Session) Cursor(pool PoolName) uint64 {
	return s.Cursors[pool]
}

// Advance selects the next credential from pool and moves the pool cursor by one.
// The cursor is left untouched when the pool cannot serve a key.
func (s *Session) Advance(pool KeyPool, now time.Time) (string, error) {
	key, err := pool.Select(s.Cursor(pool.Name))
	if err != nil {
		return "", err
	}

	if s.Cursors == nil {
		s.Cursors = map[PoolName]uint64{}
	}
	s.Cursors[pool.Name]++
	s.LastUsedAt = now

	return key, nil
}
