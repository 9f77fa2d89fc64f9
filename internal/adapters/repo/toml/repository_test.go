package toml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	profilesPath := filepath.Join(t.TempDir(), "nested", "profiles.toml")
	config := viper.New()
	config.Set(ProfilesPathKey, profilesPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo, profilesPath
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	loginAt := time.Date(2026, 11, 3, 8, 30, 0, 0, time.UTC)
	work := domain.Profile{Name: "work", BaseURL: "https://gifts.example.com", UserEmail: "ada@example.com", UserName: "Ada", LastLoginAt: loginAt}
	home := domain.Profile{Name: "default", BaseURL: "http://localhost:8000"}

	require.NoError(t, repo.Save(context.Background(), work))
	require.NoError(t, repo.Save(context.Background(), home))

	got, err := repo.GetByName(context.Background(), "work")
	require.NoError(t, err)
	assert.Equal(t, work, got)

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Profile{home, work}, profiles)
}

func TestRepositorySaveReplacesByName(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), domain.Profile{Name: "default", UserEmail: "old@example.com"}))
	require.NoError(t, repo.Save(context.Background(), domain.Profile{Name: "default", UserEmail: "new@example.com"}))

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "new@example.com", profiles[0].UserEmail)
}

func TestRepositoryGetMissingProfile(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	_, err := repo.GetByName(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrProfileNotFound)

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestRepositoryWritesVersionedPrivateFile(t *testing.T) {
	t.Parallel()

	repo, profilesPath := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), domain.Profile{Name: "default", BaseURL: "http://localhost:8000"}))

	info, err := os.Stat(profilesPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(profilesFileMode), info.Mode().Perm())

	data, err := os.ReadFile(profilesPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "base_url = 'http://localhost:8000'")

	entries, err := os.ReadDir(filepath.Dir(profilesPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRepositoryRejectsNewerSchema(t *testing.T) {
	t.Parallel()

	repo, profilesPath := newTestRepository(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(profilesPath), 0o700))
	require.NoError(t, os.WriteFile(profilesPath, []byte("version = 9\n"), 0o600))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported profiles schema version 9")
}

func TestRepositoryRejectsEmptyName(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	require.Error(t, repo.Save(context.Background(), domain.Profile{Name: " "}))
}

func TestRepositoryConcurrentSavesKeepEveryProfile(t *testing.T) {
	t.Parallel()

	repo, profilesPath := newTestRepository(t)
	other, err := NewRepository(func() *viper.Viper {
		v := viper.New()
		v.Set(ProfilesPathKey, profilesPath)
		return v
	}())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			target := repo
			if i%2 == 1 {
				target = other
			}
			assert.NoError(t, target.Save(context.Background(), domain.Profile{Name: fmt.Sprintf("p-%02d", i)}))
		}(i)
	}
	wg.Wait()

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, 10)
}

func TestRepositoryCanceledContext(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, repo.Save(ctx, domain.Profile{Name: "default"}), context.Canceled)
	_, err := repo.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
