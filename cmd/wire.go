package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/careerhub/internal/adapters/provider/gemini"
	"github.com/bnema/careerhub/internal/adapters/provider/modelserver"
	"github.com/bnema/careerhub/internal/adapters/provider/serper"
	"github.com/bnema/careerhub/internal/adapters/render/report"
	"github.com/bnema/careerhub/internal/adapters/repo/memory"
	"github.com/bnema/careerhub/internal/adapters/repo/postgres"
	"github.com/bnema/careerhub/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/careerhub/internal/adapters/repo/toml"
	chainstore "github.com/bnema/careerhub/internal/adapters/secrets/chain"
	"github.com/bnema/careerhub/internal/application"
	"github.com/bnema/careerhub/internal/config"
	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/logging"
	"github.com/bnema/careerhub/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	envSessionID         = "CAREERHUB_SESSION_ID"
	envWindowFingerprint = "CAREERHUB_WINDOW_FINGERPRINT"
	defaultFingerprint   = "default"
)

type rootOptions struct {
	configDir string
	verbose   bool
	sessionID string
	profileID string
}

// app is the composition root. Parts that need credentials or a database are
// built on first use.
type app struct {
	opts     *rootOptions
	cfg      *viper.Viper
	settings config.Settings
	logger   *zap.Logger
	secrets  ports.SecretStore
	renderer renderer
	getwd    func() (string, error)

	profileService *application.ProfileService
	keyPool        *application.KeyPool
	services       *featureServices
	closers        []func() error
}

type featureServices struct {
	branding  *application.BrandingService
	skillGap  *application.SkillGapService
	scorecard *application.ScorecardService
	network   *application.NetworkService
}

type renderer struct {
	pools     func([]application.PoolStatus) (string, error)
	profile   func(domain.Profile) (string, error)
	branding  func(application.BrandingResult) (string, error)
	skillGap  func(application.SkillGapResult) (string, error)
	scorecard func(application.ScorecardResult) (string, error)
	network   func(application.NetworkResult) (string, error)
}

func newApp(opts *rootOptions) *app {
	return &app{
		opts: opts,
		renderer: renderer{
			pools:     report.Pools,
			profile:   report.Profile,
			branding:  report.Branding,
			skillGap:  report.SkillGap,
			scorecard: report.Scorecard,
			network:   report.Network,
		},
		getwd: os.Getwd,
	}
}

// wire loads configuration and builds the logger and secret store. It runs
// after flag parsing so --verbose and --config apply.
func (a *app) wire() error {
	if a.logger != nil {
		return nil
	}

	cfg, settings, err := config.Load(a.opts.configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(a.opts.verbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(settings.PassPrefix, settings.SecretsDir)
	if err != nil {
		return fmt.Errorf("wire secret store chain: %w", err)
	}

	a.cfg = cfg
	a.settings = settings
	a.logger = logger
	a.secrets = secretStore
	return nil
}

func (a *app) profiles(ctx context.Context) (*application.ProfileService, error) {
	if a.profileService != nil {
		return a.profileService, nil
	}

	var repo ports.ProfileRepository
	if a.settings.DatabaseURL != "" {
		pgRepo, err := postgres.Connect(ctx, a.settings.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("wire profile repository: %w", err)
		}
		a.closers = append(a.closers, func() error { pgRepo.Close(); return nil })
		repo = pgRepo
	} else {
		tomlRepo, err := tomlrepo.NewProfileRepository(a.cfg)
		if err != nil {
			return nil, fmt.Errorf("wire profile repository: %w", err)
		}
		repo = tomlRepo
	}

	a.profileService = application.NewProfileService(repo, ports.SystemClock{}, application.DefaultProfileCacheTTL)
	return a.profileService, nil
}

func (a *app) sessionRepository(ctx context.Context) (ports.SessionRepository, error) {
	switch a.settings.SessionStore {
	case config.SessionStoreMemory:
		return memory.NewSessionRepository(), nil
	case config.SessionStoreSQLite:
		repo, err := sqlite.Open(ctx, a.settings.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil
	default:
		repo, err := tomlrepo.NewSessionRepository(a.cfg)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
}

// pool validates every required credential pool; a missing pool fails here,
// before any provider is called.
func (a *app) pool(ctx context.Context) (*application.KeyPool, error) {
	if a.keyPool != nil {
		return a.keyPool, nil
	}

	pools, err := application.NewCredentialLoader(a.secrets).Load(ctx, a.settings.Credentials, application.RequiredPools)
	if err != nil {
		return nil, err
	}

	sessions, err := a.sessionRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	keyPool, err := application.NewKeyPool(pools, sessions, ports.SystemClock{}, a.logger)
	if err != nil {
		return nil, fmt.Errorf("wire key pool: %w", err)
	}

	a.keyPool = keyPool
	return a.keyPool, nil
}

func (a *app) features(ctx context.Context) (*featureServices, error) {
	if a.services != nil {
		return a.services, nil
	}

	keyPool, err := a.pool(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := a.profiles(ctx)
	if err != nil {
		return nil, err
	}

	generationClient := gemini.New(gemini.Options{
		Model:          a.settings.GenerationModel,
		BaseURL:        a.settings.GenerationBaseURL,
		RequestTimeout: a.settings.GenerationTimeout,
	})
	searchClient := &serper.Client{BaseURL: a.settings.SearchBaseURL}
	if a.settings.SearchRate > 0 {
		searchClient.Limiter = rate.NewLimiter(rate.Limit(a.settings.SearchRate), 1)
	}
	models := &modelserver.Client{BaseURL: a.settings.ModelServerURL}

	generator := application.NewGenerator(keyPool, generationClient, a.logger)
	searcher := application.NewSearcher(keyPool, searchClient, a.logger)

	a.services = &featureServices{
		branding:  application.NewBrandingService(profiles, generator),
		skillGap:  application.NewSkillGapService(profiles, generator, models, a.logger),
		scorecard: application.NewScorecardService(profiles, generator, models, a.logger),
		network:   application.NewNetworkService(profiles, generator, searcher),
	}

	return a.services, nil
}

// sessionID resolves, in order: --session, CAREERHUB_SESSION_ID, then a stable
// id derived from the working directory and window fingerprint.
func (a *app) sessionID() (string, error) {
	if id := strings.TrimSpace(a.opts.sessionID); id != "" {
		return id, nil
	}
	if id := strings.TrimSpace(os.Getenv(envSessionID)); id != "" {
		return id, nil
	}

	wd, err := a.getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	fingerprint := strings.TrimSpace(os.Getenv(envWindowFingerprint))
	if fingerprint == "" {
		fingerprint = defaultFingerprint
	}

	return application.ResolveLogicalSessionID(wd, fingerprint), nil
}

func (a *app) profileID() domain.ProfileID {
	if id := strings.TrimSpace(a.opts.profileID); id != "" {
		return domain.ProfileID(id)
	}
	return a.settings.DefaultProfile
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	if a.logger != nil {
		// Sync reports EINVAL on terminals.
		_ = a.logger.Sync()
	}

	return errors.Join(errs...)
}
