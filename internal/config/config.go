package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/spf13/viper"
)

const (
	DirName     = ".careerhub"
	configName  = "config"
	secretsName = "secrets"
	configType  = "toml"
	envPrefix   = "CAREERHUB"
)

const (
	SessionStoreTOML   = "toml"
	SessionStoreSQLite = "sqlite"
	SessionStoreMemory = "memory"
)

// Config keys; each may be overridden by CAREERHUB_<KEY> with dots as underscores.
const (
	KeyGenerationModel   = "generation.model"
	KeyGenerationBaseURL = "generation.base_url"
	KeyGenerationTimeout = "generation.timeout"
	KeySearchBaseURL     = "search.base_url"
	KeySearchRate        = "search.requests_per_second"
	KeyModelServerURL    = "models.base_url"
	KeySessionStore      = "sessions.store"
	KeySessionsPath      = "sessions.path"
	KeySQLitePath        = "sessions.sqlite_path"
	KeyProfilesPath      = "profiles.path"
	KeyDefaultProfile    = "profiles.default"
	KeyPassPrefix        = "secrets.pass_prefix"
	KeySecretsDir        = "secrets.dir"
	KeyDatabaseURL       = "database_url"
)

// credentialNames lists the variables holding each pool's keys; later names are aliases.
var credentialNames = map[domain.PoolName][]string{
	domain.PoolGeneration: {"GENERATION_API_KEYS", "GEMINI_API_KEYS"},
	domain.PoolSearch:     {"SEARCH_API_KEYS", "SERPER_API_KEYS"},
}

type Settings struct {
	Dir string

	GenerationModel   string
	GenerationBaseURL string
	GenerationTimeout time.Duration
	SearchBaseURL     string
	SearchRate        float64
	ModelServerURL    string

	SessionStore   string
	SessionsPath   string
	SQLitePath     string
	ProfilesPath   string
	DefaultProfile domain.ProfileID
	DatabaseURL    string

	PassPrefix string
	SecretsDir string

	// Credentials holds raw entries per pool in configured order; "secret:" refs are still unresolved.
	Credentials map[domain.PoolName][]string
}

// DefaultDir returns ~/.careerhub.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, DirName), nil
}

// Load reads config.toml and secrets.toml from dir and overlays environment variables.
// The returned viper instance carries the data file paths for the TOML repositories.
func Load(dir string) (*viper.Viper, Settings, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, Settings{}, err
		}
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	applyDefaults(cfg, dir)

	if err := readOptional(cfg); err != nil {
		return nil, Settings{}, fmt.Errorf("read config file: %w", err)
	}
	if err := cfg.BindEnv(KeyDatabaseURL, "DATABASE_URL", envPrefix+"_DATABASE_URL"); err != nil {
		return nil, Settings{}, fmt.Errorf("bind database url: %w", err)
	}

	secrets := viper.New()
	secrets.SetConfigName(secretsName)
	secrets.SetConfigType(configType)
	secrets.AddConfigPath(dir)
	if err := readOptional(secrets); err != nil {
		return nil, Settings{}, fmt.Errorf("read secrets file: %w", err)
	}

	settings := Settings{
		Dir:               dir,
		GenerationModel:   cfg.GetString(KeyGenerationModel),
		GenerationBaseURL: cfg.GetString(KeyGenerationBaseURL),
		GenerationTimeout: cfg.GetDuration(KeyGenerationTimeout),
		SearchBaseURL:     cfg.GetString(KeySearchBaseURL),
		SearchRate:        cfg.GetFloat64(KeySearchRate),
		ModelServerURL:    cfg.GetString(KeyModelServerURL),
		SessionStore:      strings.ToLower(strings.TrimSpace(cfg.GetString(KeySessionStore))),
		SessionsPath:      cfg.GetString(KeySessionsPath),
		SQLitePath:        cfg.GetString(KeySQLitePath),
		ProfilesPath:      cfg.GetString(KeyProfilesPath),
		DefaultProfile:    domain.ProfileID(cfg.GetString(KeyDefaultProfile)),
		DatabaseURL:       cfg.GetString(KeyDatabaseURL),
		PassPrefix:        cfg.GetString(KeyPassPrefix),
		SecretsDir:        cfg.GetString(KeySecretsDir),
		Credentials:       map[domain.PoolName][]string{},
	}

	switch settings.SessionStore {
	case SessionStoreTOML, SessionStoreSQLite, SessionStoreMemory:
	default:
		return nil, Settings{}, &domain.ValidationError{Field: KeySessionStore, Reason: fmt.Sprintf("unknown store %q", settings.SessionStore)}
	}

	for pool, names := range credentialNames {
		settings.Credentials[pool] = credentialEntries(secrets, names)
	}

	return cfg, settings, nil
}

func applyDefaults(cfg *viper.Viper, dir string) {
	cfg.SetDefault(KeyGenerationModel, "gemini-2.5-flash-lite")
	cfg.SetDefault(KeyGenerationTimeout, "60s")
	cfg.SetDefault(KeySearchBaseURL, "https://google.serper.dev")
	cfg.SetDefault(KeySearchRate, 5.0)
	cfg.SetDefault(KeySessionStore, SessionStoreTOML)
	cfg.SetDefault(KeySessionsPath, filepath.Join(dir, "sessions.toml"))
	cfg.SetDefault(KeySQLitePath, filepath.Join(dir, "sessions.db"))
	cfg.SetDefault(KeyProfilesPath, filepath.Join(dir, "profiles.toml"))
	cfg.SetDefault(KeyDefaultProfile, "default")
	cfg.SetDefault(KeyPassPrefix, "careerhub")
	cfg.SetDefault(KeySecretsDir, filepath.Join(dir, "secrets"))
}

func readOptional(cfg *viper.Viper) error {
	err := cfg.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// credentialEntries takes the first name that is set, environment before secrets.toml.
func credentialEntries(secrets *viper.Viper, names []string) []string {
	for _, name := range names {
		if raw, ok := os.LookupEnv(name); ok && strings.TrimSpace(raw) != "" {
			return splitList(raw)
		}
	}

	for _, name := range names {
		key := strings.ToLower(name)
		if !secrets.IsSet(key) {
			continue
		}
		switch value := secrets.Get(key).(type) {
		case string:
			return splitList(value)
		default:
			return secrets.GetStringSlice(key)
		}
	}

	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}
