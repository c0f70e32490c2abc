package ports

import (
	"context"

	"github.com/bnema/careerhub/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id domain.ProfileID) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
}
