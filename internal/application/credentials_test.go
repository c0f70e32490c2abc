package application

import (
	"context"
	"testing"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCredentialLoaderResolvesSecretRefsInOrder(t *testing.T) {
	t.Parallel()

	secrets := mocks.NewMockSecretStore(t)
	secrets.EXPECT().Get(mock.Anything, "keys/generation/2").Return("g2\n", nil).Once()

	pools, err := NewCredentialLoader(secrets).Load(context.Background(), map[domain.PoolName][]string{
		domain.PoolGeneration: {"g1", "secret:keys/generation/2", "g1", " "},
		domain.PoolSearch:     {"s1"},
	}, RequiredPools)

	require.NoError(t, err)
	assert.Equal(t, []domain.KeyPool{
		{Name: domain.PoolGeneration, Keys: []string{"g1", "g2", "g1"}},
		{Name: domain.PoolSearch, Keys: []string{"s1"}},
	}, pools)
}

func TestCredentialLoaderFailsClosedOnMissingPool(t *testing.T) {
	t.Parallel()

	_, err := NewCredentialLoader(nil).Load(context.Background(), map[domain.PoolName][]string{
		domain.PoolGeneration: {"g1"},
	}, RequiredPools)

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, domain.PoolSearch, cfgErr.Pool)
}

func TestCredentialLoaderSurfacesUnresolvedSecret(t *testing.T) {
	t.Parallel()

	secrets := mocks.NewMockSecretStore(t)
	secrets.EXPECT().Get(mock.Anything, "keys/search/1").Return("", domain.ErrSecretNotFound).Once()

	_, err := NewCredentialLoader(secrets).Load(context.Background(), map[domain.PoolName][]string{
		domain.PoolGeneration: {"g1"},
		domain.PoolSearch:     {"secret:keys/search/1"},
	}, RequiredPools)

	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, "load search credentials")
}

func TestCredentialLoaderRejectsEmptyRef(t *testing.T) {
	t.Parallel()

	_, err := NewCredentialLoader(mocks.NewMockSecretStore(t)).Load(context.Background(), map[domain.PoolName][]string{
		domain.PoolGeneration: {"secret: "},
	}, []domain.PoolName{domain.PoolGeneration})

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
