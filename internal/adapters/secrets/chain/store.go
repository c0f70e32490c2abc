package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/careerhub/internal/adapters/secrets/file"
	passstore "github.com/bnema/careerhub/internal/adapters/secrets/pass"
	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
)

// Store resolves credentials from an ordered list of backends. Reads return
// the first hit; writes land in the first backend that accepts them.
type Store struct {
	backends []ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var errNoBackends = errors.New("secret chain has no backends")

func NewStore(backends ...ports.SecretStore) (*Store, error) {
	kept := make([]ports.SecretStore, 0, len(backends))
	for i, backend := range backends {
		if backend == nil {
			return nil, fmt.Errorf("secret backend %d is nil", i)
		}
		kept = append(kept, backend)
	}
	if len(kept) == 0 {
		return nil, errNoBackends
	}

	return &Store{backends: kept}, nil
}

// NewPassFirstWithFileFallback looks in pass under prefix, then in plain files under fileRoot.
func NewPassFirstWithFileFallback(passPrefix, fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(passPrefix), filestore.NewStore(fileRoot))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	for _, backend := range s.backends {
		value, err := backend.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if isContextError(err) {
			return "", err
		}
		errs = append(errs, err)
	}

	return "", fmt.Errorf("get secret %q: %w", key, joinBackendErrors(errs))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error
	for _, backend := range s.backends {
		err := backend.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if isContextError(err) {
			return err
		}
		errs = append(errs, err)
	}

	return fmt.Errorf("put secret %q: %w", key, errors.Join(errs...))
}

// Delete removes key from every backend so a stale copy cannot shadow a later Put.
func (s *Store) Delete(ctx context.Context, key string) error {
	var errs []error
	for _, backend := range s.backends {
		if err := backend.Delete(ctx, key); err != nil {
			if isContextError(err) {
				return err
			}
			errs = append(errs, err)
		}
	}
	if len(errs) == len(s.backends) {
		return fmt.Errorf("delete secret %q: %w", key, errors.Join(errs...))
	}

	return nil
}

// joinBackendErrors keeps ErrSecretNotFound visible only when no backend failed for another reason.
func joinBackendErrors(errs []error) error {
	for _, err := range errs {
		if !errors.Is(err, domain.ErrSecretNotFound) && !errors.Is(err, passstore.ErrUnavailable) {
			return errors.Join(errs...)
		}
	}

	return errors.Join(append([]error{domain.ErrSecretNotFound}, errs...)...)
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
