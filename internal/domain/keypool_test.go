package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPoolValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pool    KeyPool
		wantErr string
	}{
		{name: "valid", pool: KeyPool{Name: PoolGeneration, Keys: []string{"k1"}}},
		{name: "missing name", pool: KeyPool{Keys: []string{"k1"}}, wantErr: "pool name is required"},
		{name: "no keys", pool: KeyPool{Name: PoolSearch}, wantErr: "no credentials configured"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.pool.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestKeyPoolValidateEmptyIsConfigurationError(t *testing.T) {
	t.Parallel()

	err := KeyPool{Name: PoolSearch}.Validate()

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, PoolSearch, cfgErr.Pool)
	assert.ErrorIs(t, err, ErrPoolNotConfigured)
}

func TestKeyPoolSelectWrapsModuloLength(t *testing.T) {
	t.Parallel()

	pool := KeyPool{Name: PoolGeneration, Keys: []string{"k1", "k2", "k3"}}

	for cursor, want := range map[uint64]string{0: "k1", 1: "k2", 2: "k3", 3: "k1", 7: "k2", 1 << 40: pool.Keys[(1<<40)%3]} {
		got, err := pool.Select(cursor)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cursor %d", cursor)
	}
}

func TestKeyPoolNormalizeKeysDropsEmptyAndKeepsRepeats(t *testing.T) {
	t.Parallel()

	pool := KeyPool{Keys: []string{" k1 ", "", "k2", "k1", "  ", "k3"}}
	pool.NormalizeKeys()

	assert.Equal(t, []string{"k1", "k2", "k1", "k3"}, pool.Keys)
}

func TestMaskKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "****", MaskKey("abcd"))
	assert.Equal(t, "******7890", MaskKey("sk-abc7890"))
	assert.Equal(t, "", MaskKey(""))
}

func TestSessionAdvanceRoundRobin(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	pool := KeyPool{Name: PoolGeneration, Keys: []string{"k1", "k2", "k3"}}
	session := NewSession("s-1", now)

	got := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		key, err := session.Advance(pool, now.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		got = append(got, key)
	}

	assert.Equal(t, []string{"k1", "k2", "k3", "k1", "k2"}, got)
	assert.Equal(t, uint64(5), session.Cursor(PoolGeneration))
	assert.Equal(t, now.Add(4*time.Minute), session.LastUsedAt)
}

func TestSessionAdvanceLeavesCursorOnEmptyPool(t *testing.T) {
	t.Parallel()

	session := Session{ID: "s-1"}

	_, err := session.Advance(KeyPool{Name: PoolSearch}, time.Now())
	require.ErrorIs(t, err, ErrPoolNotConfigured)
	assert.Zero(t, session.Cursor(PoolSearch))
	assert.Nil(t, session.Cursors)
}
