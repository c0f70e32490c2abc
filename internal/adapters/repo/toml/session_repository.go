package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	sessionsPathKey  = "sessions.path"
	sessionsFileName = "sessions.toml"
)

// SessionRepository keeps rotation cursors across CLI invocations.
// Writers in one process are serialized; separate processes may race.
type SessionRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(cfg *viper.Viper) (*SessionRepository, error) {
	path, err := resolvePath(cfg, sessionsPathKey, sessionsFileName)
	if err != nil {
		return nil, err
	}

	return &SessionRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Session{}, err
	}

	for _, entry := range file.Sessions {
		if entry.ID == id {
			return fromSessionSchema(entry), nil
		}
	}

	return domain.Session{}, domain.ErrSessionNotFound
}

func (r *SessionRepository) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSessionSchema(session)
	updated := false
	for i := range file.Sessions {
		if file.Sessions[i].ID == encoded.ID {
			file.Sessions[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Sessions = append(file.Sessions, encoded)
	}

	return writeTOMLFile(r.path, file)
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Sessions[:0]
	for _, entry := range file.Sessions {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(file.Sessions) {
		return nil
	}
	file.Sessions = kept

	return writeTOMLFile(r.path, file)
}

func (r *SessionRepository) readSchema() (sessionsFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := sessionsFileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return sessionsFileSchema{}, fmt.Errorf("read sessions file: %w", err)
	}

	var file sessionsFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return sessionsFileSchema{}, fmt.Errorf("decode sessions file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return sessionsFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toSessionSchema(session domain.Session) sessionSchema {
	cursors := make([]cursorSchema, 0, len(session.Cursors))
	for pool, cursor := range session.Cursors {
		cursors = append(cursors, cursorSchema{Pool: string(pool), Cursor: int64(cursor)})
	}
	sort.Slice(cursors, func(i, j int) bool { return cursors[i].Pool < cursors[j].Pool })

	return sessionSchema{
		ID:         session.ID,
		StartedAt:  formatTime(session.StartedAt),
		LastUsedAt: formatTime(session.LastUsedAt),
		Cursors:    cursors,
	}
}

func fromSessionSchema(schema sessionSchema) domain.Session {
	cursors := make(map[domain.PoolName]uint64, len(schema.Cursors))
	for _, entry := range schema.Cursors {
		cursors[domain.PoolName(entry.Pool)] = uint64(entry.Cursor)
	}

	return domain.Session{
		ID:         schema.ID,
		Cursors:    cursors,
		StartedAt:  parseTime(schema.StartedAt),
		LastUsedAt: parseTime(schema.LastUsedAt),
	}
}
