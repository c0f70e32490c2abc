package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidRefs(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		ref     string
		wantErr string
	}{
		{name: "empty", ref: "", wantErr: "secret ref is empty"},
		{name: "whitespace", ref: "   ", wantErr: "secret ref is empty"},
		{name: "absolute", ref: "/etc/passwd", wantErr: "invalid secret ref"},
		{name: "traversal", ref: "../escape", wantErr: "invalid secret ref"},
		{name: "deep traversal", ref: "../../secret", wantErr: "invalid secret ref"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Get(context.Background(), tc.ref)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	ref := "keys/generation/1"

	require.NoError(t, store.Put(context.Background(), ref, "AIza-secret"))

	got, err := store.Get(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, "AIza-secret", got)

	info, err := os.Stat(filepath.Join(root, ref))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(secretFileMod), info.Mode().Perm())
}

func TestStoreGetTrimsHandWrittenFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "keys"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(root, "keys", "search"), []byte("  serper-secret \r\n"), 0o600))

	got, err := NewStore(root).Get(context.Background(), "keys/search")
	require.NoError(t, err)
	assert.Equal(t, "serper-secret", got)
}

func TestStoreGetMissingIsNotFound(t *testing.T) {
	t.Parallel()

	_, err := NewStore(t.TempDir()).Get(context.Background(), "keys/generation/404")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteIsIdempotentWhenSecretMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Delete(context.Background(), "keys/generation/1"))
	require.NoError(t, store.Delete(context.Background(), "keys/generation/1"))
}
