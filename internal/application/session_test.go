package application

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLogicalSessionIDIsStablePerWindow(t *testing.T) {
	t.Parallel()

	first := ResolveLogicalSessionID("/home/dev/project", "tty-1")

	assert.Equal(t, first, ResolveLogicalSessionID(" /home/dev/project ", "tty-1"))
	assert.NotEqual(t, first, ResolveLogicalSessionID("/home/dev/project", "tty-2"))
	assert.Len(t, first, 40)
}

func TestNewSessionIDIsUUID(t *testing.T) {
	t.Parallel()

	id := NewSessionID()

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, NewSessionID())
}
