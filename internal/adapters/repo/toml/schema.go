package toml

import "fmt"

const (
	currentProfilesSchemaVersion = 1
	currentSessionsSchemaVersion = 1
)

type profilesFileSchema struct {
	Version  int             `toml:"version"`
	Profiles []profileSchema `toml:"profiles"`
}

func (s *profilesFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentProfilesSchemaVersion
	}
}

func (s profilesFileSchema) validateVersion() error {
	if s.Version > currentProfilesSchemaVersion {
		return fmt.Errorf("unsupported profiles schema version %d (current %d)", s.Version, currentProfilesSchemaVersion)
	}

	return nil
}

type profileSchema struct {
	ID              string            `toml:"id"`
	Email           string            `toml:"email,omitempty"`
	TargetRole      string            `toml:"target_role"`
	TargetEcosystem string            `toml:"target_ecosystem"`
	VoiceTone       string            `toml:"voice_tone,omitempty"`
	Skills          skillMatrixSchema `toml:"skills"`
	UpdatedAt       string            `toml:"updated_at"`
}

type skillMatrixSchema struct {
	DSA          int `toml:"dsa"`
	OOPS         int `toml:"oops"`
	DBMS         int `toml:"dbms"`
	OS           int `toml:"os"`
	SystemDesign int `toml:"system_design"`
}

type sessionsFileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
}

func (s *sessionsFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSessionsSchemaVersion
	}
}

func (s sessionsFileSchema) validateVersion() error {
	if s.Version > currentSessionsSchemaVersion {
		return fmt.Errorf("unsupported sessions schema version %d (current %d)", s.Version, currentSessionsSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	ID         string         `toml:"id"`
	StartedAt  string         `toml:"started_at"`
	LastUsedAt string         `toml:"last_used_at"`
	Cursors    []cursorSchema `toml:"cursors"`
}

// cursorSchema stores the cursor's bits as int64 since TOML integers are signed
// 64-bit. Cursors past MaxInt64 are written negative and read back unchanged.
type cursorSchema struct {
	Pool   string `toml:"pool"`
	Cursor int64  `toml:"cursor"`
}
