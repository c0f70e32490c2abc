package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileRepo(t *testing.T, path string) *ProfileRepository {
	t.Helper()

	cfg := viper.New()
	cfg.Set("profiles.path", path)

	repo, err := NewProfileRepository(cfg)
	require.NoError(t, err)
	return repo
}

func TestProfileRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newProfileRepo(t, filepath.Join(t.TempDir(), "profiles.toml"))

	first := domain.Profile{
		ID:              "p-1",
		Email:           "dev@example.com",
		TargetRole:      "Backend Engineer",
		TargetEcosystem: "FAANG",
		VoiceTone:       "Confident",
		Skills:          domain.SkillMatrix{DSA: 3, OOPS: 4, DBMS: 2, OS: 1, SystemDesign: 5},
		UpdatedAt:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	second := domain.Profile{ID: "p-2", TargetRole: "SRE", TargetEcosystem: "Startup"}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Profile{first, second}, all)
}

func TestProfileRepositorySaveReplacesExisting(t *testing.T) {
	t.Parallel()

	repo := newProfileRepo(t, filepath.Join(t.TempDir(), "profiles.toml"))

	profile := domain.Profile{ID: "p-1", TargetRole: "SDE", TargetEcosystem: "FAANG"}
	require.NoError(t, repo.Save(context.Background(), profile))

	profile.TargetRole = "Staff SDE"
	require.NoError(t, repo.Save(context.Background(), profile))

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Staff SDE", all[0].TargetRole)
}

func TestProfileRepositoryMissingFile(t *testing.T) {
	t.Parallel()

	repo := newProfileRepo(t, filepath.Join(t.TempDir(), "missing", "profiles.toml"))

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = repo.GetByID(context.Background(), "p-1")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewProfileRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.Profile{ID: "p-1", TargetRole: "SDE", TargetEcosystem: "FAANG"}))

	info, err := os.Stat(filepath.Join(homeDir, ".careerhub", "profiles.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestProfileRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(path, []byte("profiles = ["), 0o600))

	_, err := newProfileRepo(t, path).List(context.Background())
	assert.ErrorContains(t, err, "decode profiles file")
}

func TestProfileRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 999",
		"",
		"profiles = []",
		"",
	}, "\n")), 0o600))

	_, err := newProfileRepo(t, path).List(context.Background())
	assert.ErrorContains(t, err, "unsupported profiles schema version")
}

func TestProfileRepositorySaveCanceledContext(t *testing.T) {
	t.Parallel()

	repo := newProfileRepo(t, filepath.Join(t.TempDir(), "profiles.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Profile{ID: "p-1"})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestProfileRepositoryConcurrentSavesAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profiles.toml")
	repoA := newProfileRepo(t, path)
	repoB := newProfileRepo(t, path)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *ProfileRepository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.Profile{ID: domain.ProfileID(prefix + strconv.Itoa(i)), TargetRole: "SDE", TargetEcosystem: "FAANG"})
		}
	}
	go write(repoA, "a-")
	go write(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	all, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, perRepoWrites*2)
}
