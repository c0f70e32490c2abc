package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetReadsFirstLineUnderPrefix(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: DefaultPrefix,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "careerhub/keys/generation/1"}, args)
			assert.Empty(t, input)
			return "AIza-secret\nnote: team key\n", "", nil
		},
	}

	value, err := store.Get(context.Background(), "/keys/generation/1")
	require.NoError(t, err)
	assert.Equal(t, "AIza-secret", value)
}

func TestStorePutUsesPassInsert(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		prefix: "team",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, []string{"insert", "-m", "-f", "team/keys/search/1"}, args)
			assert.Equal(t, "serper-secret\n", input)
			return "", "", nil
		},
	}

	require.NoError(t, store.Put(context.Background(), "keys/search/1", "serper-secret"))
	assert.True(t, called)
}

func TestStoreDeleteUsesPassRemoveWithoutPrefix(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"rm", "-f", "keys/search/1"}, args)
			return "", "", nil
		},
	}

	require.NoError(t, store.Delete(context.Background(), "keys/search/1"))
}

func TestStoreGetMapsMissingEntryToNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: DefaultPrefix,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: careerhub/keys/generation/9 is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), "keys/generation/9")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "gpg: decryption failed", errors.New("exit status 2")
		},
	}

	_, err := store.Get(context.Background(), "keys/generation/1")
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, "gpg: decryption failed")
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetEmptyEntryIsNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "\n", "", nil
		},
	}

	_, err := store.Get(context.Background(), "keys/generation/1")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}
