package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeStore(run runFunc) *Store {
	return &Store{prefix: defaultPrefix, run: run}
}

func TestStorePutInsertsUnderPrefix(t *testing.T) {
	t.Parallel()

	called := false
	store := fakeStore(func(ctx context.Context, input string, args ...string) (string, string, error) {
		called = true
		assert.Equal(t, []string{"insert", "-m", "-f", "giftbox/default/refresh_cookie"}, args)
		assert.Equal(t, "cookie-blob\n", input)
		return "", "", nil
	})

	require.NoError(t, store.Put(context.Background(), "giftbox://default/refresh_cookie", "cookie-blob"))
	assert.True(t, called)
}

func TestStoreGetTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := fakeStore(func(ctx context.Context, input string, args ...string) (string, string, error) {
		assert.Equal(t, []string{"show", "giftbox/default/refresh_cookie"}, args)
		assert.Empty(t, input)
		return "cookie-blob\r\n", "", nil
	})

	value, err := store.Get(context.Background(), "giftbox://default/refresh_cookie")
	require.NoError(t, err)
	assert.Equal(t, "cookie-blob", value)
}

func TestStoreGetMissingEntryReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := fakeStore(func(ctx context.Context, input string, args ...string) (string, string, error) {
		return "", "Error: giftbox/work/refresh_cookie is not in the password store.", errors.New("exit status 1")
	})

	_, err := store.Get(context.Background(), "giftbox://work/refresh_cookie")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetReturnsCommandError(t *testing.T) {
	t.Parallel()

	store := fakeStore(func(ctx context.Context, input string, args ...string) (string, string, error) {
		return "", "gpg: decryption failed", errors.New("exit status 2")
	})

	_, err := store.Get(context.Background(), "giftbox://default/refresh_cookie")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, "gpg: decryption failed")
}

func TestStoreDeleteToleratesMissingEntry(t *testing.T) {
	t.Parallel()

	store := fakeStore(func(ctx context.Context, input string, args ...string) (string, string, error) {
		assert.Equal(t, []string{"rm", "-f", "giftbox/default/refresh_cookie"}, args)
		return "", "Error: giftbox/default/refresh_cookie is not in the password store.", errors.New("exit status 1")
	})

	require.NoError(t, store.Delete(context.Background(), "giftbox://default/refresh_cookie"))
}

func TestStoreRejectsTraversal(t *testing.T) {
	t.Parallel()

	store := fakeStore(func(context.Context, string, ...string) (string, string, error) {
		t.Fatal("pass must not run")
		return "", "", nil
	})

	require.Error(t, store.Put(context.Background(), "giftbox://../other", "x"))
	require.Error(t, store.Put(context.Background(), " ", "x"))
}
