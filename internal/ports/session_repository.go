package ports

import (
	"context"

	"github.com/bnema/careerhub/internal/domain"
)

type SessionRepository interface {
	GetByID(ctx context.Context, id string) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, id string) error
}
