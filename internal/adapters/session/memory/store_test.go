package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetSessionThenClear(t *testing.T) {
	t.Parallel()

	store := NewStore()
	assert.False(t, store.IsAuthenticated())

	store.SetSession(domain.Session{
		AccessToken: "access-1",
		User:        &domain.User{ID: "u-1", Email: "ada@example.com"},
		ExpiresAt:   time.Unix(1893456000, 0),
	})

	require.True(t, store.IsAuthenticated())
	assert.Equal(t, "access-1", store.AccessToken())
	require.NotNil(t, store.Session().User)
	assert.Equal(t, "ada@example.com", store.Session().User.Email)

	store.Clear()
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.AccessToken())
	assert.Nil(t, store.Session().User)
}

func TestStoreSessionReturnsCopy(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetSession(domain.Session{AccessToken: "a", User: &domain.User{Email: "first@example.com"}})

	snapshot := store.Session()
	snapshot.User.Email = "mutated@example.com"

	assert.Equal(t, "first@example.com", store.Session().User.Email)
}

func TestStoreUpdateUserIgnoredWhenUnauthenticated(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.UpdateUser(domain.User{Email: "ghost@example.com"})
	assert.Nil(t, store.Session().User)

	store.SetSession(domain.Session{AccessToken: "a", User: &domain.User{Email: "ada@example.com"}})
	store.UpdateUser(domain.User{Email: "ada@example.com", Spent: "42.00"})
	assert.Equal(t, "42.00", store.Session().User.Spent)
	assert.Equal(t, "a", store.AccessToken())
}

func TestStoreIsolatedInstances(t *testing.T) {
	t.Parallel()

	first := NewStore()
	second := NewStore()
	first.SetSession(domain.Session{AccessToken: "a"})

	assert.True(t, first.IsAuthenticated())
	assert.False(t, second.IsAuthenticated())
}

func TestStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.SetSession(domain.Session{AccessToken: "token", User: &domain.User{}})
		}()
		go func() {
			defer wg.Done()
			_ = store.Session()
			_ = store.IsAuthenticated()
		}()
	}
	wg.Wait()

	assert.Equal(t, "token", store.AccessToken())
}
