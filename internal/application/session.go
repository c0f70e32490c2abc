package application

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// ResolveLogicalSessionID derives a stable session id for one terminal window in one workspace.
func ResolveLogicalSessionID(workspaceRoot, windowFingerprint string) string {
	raw := strings.TrimSpace(workspaceRoot) + "|" + strings.TrimSpace(windowFingerprint)
	hash := sha1.Sum([]byte(raw))
	return hex.EncodeToString(hash[:])
}

func NewSessionID() string {
	return uuid.NewString()
}
