package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
)

const secretRefPrefix = "secret:"

// RequiredPools are the pools every process must have before it serves a request.
var RequiredPools = []domain.PoolName{domain.PoolGeneration, domain.PoolSearch}

// CredentialLoader turns configured credential entries into key pools.
type CredentialLoader struct {
	secrets ports.SecretStore
}

func NewCredentialLoader(secrets ports.SecretStore) *CredentialLoader {
	return &CredentialLoader{secrets: secrets}
}

// Load resolves "secret:<ref>" entries through the secret store and returns one
// pool per name in required order. Literal keys pass through unchanged.
func (l *CredentialLoader) Load(ctx context.Context, entries map[domain.PoolName][]string, required []domain.PoolName) ([]domain.KeyPool, error) {
	pools := make([]domain.KeyPool, 0, len(required))
	for _, name := range required {
		keys := make([]string, 0, len(entries[name]))
		for _, entry := range entries[name] {
			key, err := l.resolve(ctx, entry)
			if err != nil {
				return nil, fmt.Errorf("load %s credentials: %w", name, err)
			}
			keys = append(keys, key)
		}

		pool := domain.KeyPool{Name: name, Keys: keys}
		pool.NormalizeKeys()
		if err := pool.Validate(); err != nil {
			return nil, err
		}
		pools = append(pools, pool)
	}

	return pools, nil
}

func (l *CredentialLoader) resolve(ctx context.Context, entry string) (string, error) {
	entry = strings.TrimSpace(entry)
	if !strings.HasPrefix(entry, secretRefPrefix) {
		return entry, nil
	}

	ref := strings.TrimSpace(strings.TrimPrefix(entry, secretRefPrefix))
	if ref == "" {
		return "", &domain.ValidationError{Field: "credential", Reason: "secret reference is empty"}
	}
	if l.secrets == nil {
		return "", fmt.Errorf("resolve %q: no secret store configured", ref)
	}

	value, err := l.secrets.Get(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", ref, err)
	}

	return strings.TrimSpace(value), nil
}
