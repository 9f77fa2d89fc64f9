package cookies

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySecrets struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemorySecrets() *memorySecrets {
	return &memorySecrets{values: map[string]string{}}
}

func (m *memorySecrets) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return "", domain.ErrSecretNotFound
	}
	return value, nil
}

func (m *memorySecrets) Put(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memorySecrets) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestKey(t *testing.T) {
	assert.Equal(t, "giftbox://work/refresh_cookie", Key("work"))
}

func TestJarPersistsRefreshCookieAcrossInstances(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "r-1", Path: "/auth", HttpOnly: true, MaxAge: 3600})
		w.WriteHeader(http.StatusOK)
	})
	var seen string
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("refresh_token"); err == nil {
			seen = cookie.Value
		}
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	secrets := newMemorySecrets()
	first, err := NewJar(secrets, Key("default"), nil, zerolog.Nop())
	require.NoError(t, err)

	client := &http.Client{Jar: first}
	resp, err := client.Post(server.URL+"/auth/login", "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.NoError(t, first.Save(context.Background()))
	require.Contains(t, secrets.values, Key("default"))

	second, err := NewJar(secrets, Key("default"), nil, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, second.Load(context.Background()))
	assert.Equal(t, 1, second.Len())

	client = &http.Client{Jar: second}
	resp, err = client.Post(server.URL+"/auth/refresh", "application/json", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "r-1", seen)
}

func TestJarLoadMissingEntryIsEmpty(t *testing.T) {
	t.Parallel()

	jar, err := NewJar(newMemorySecrets(), Key("default"), nil, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, jar.Load(context.Background()))
	assert.Zero(t, jar.Len())
}

func TestJarLoadSkipsExpiredAndDiscardsGarbage(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 12, 24, 18, 0, 0, 0, time.UTC)
	secrets := newMemorySecrets()
	secrets.values[Key("default")] = `{"version":1,"cookies":[` +
		`{"url":"http://api.test","name":"refresh_token","value":"old","path":"/auth","expires":"2026-12-01T00:00:00Z"},` +
		`{"url":"http://api.test","name":"refresh_token","value":"live","path":"/auth","expires":"2027-01-01T00:00:00Z"}]}`

	jar, err := NewJar(secrets, Key("default"), fixedClock{now: now}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, jar.Load(context.Background()))

	cookies := jar.Cookies(&url.URL{Scheme: "http", Host: "api.test", Path: "/auth/refresh"})
	require.Len(t, cookies, 1)
	assert.Equal(t, "live", cookies[0].Value)

	secrets.values[Key("other")] = "not json"
	garbage, err := NewJar(secrets, Key("other"), nil, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, garbage.Load(context.Background()))
	assert.Zero(t, garbage.Len())
}

func TestJarSaveDeletesEntryWhenServerClearsCookie(t *testing.T) {
	t.Parallel()

	secrets := newMemorySecrets()
	jar, err := NewJar(secrets, Key("default"), nil, zerolog.Nop())
	require.NoError(t, err)
	origin := &url.URL{Scheme: "http", Host: "api.test", Path: "/auth/login"}

	jar.SetCookies(origin, []*http.Cookie{{Name: "refresh_token", Value: "r-1", Path: "/auth", MaxAge: 60}})
	require.NoError(t, jar.Save(context.Background()))
	require.Contains(t, secrets.values, Key("default"))

	jar.SetCookies(origin, []*http.Cookie{{Name: "refresh_token", Path: "/auth", MaxAge: -1}})
	require.NoError(t, jar.Save(context.Background()))
	assert.NotContains(t, secrets.values, Key("default"))
	assert.Empty(t, jar.Cookies(&url.URL{Scheme: "http", Host: "api.test", Path: "/auth/refresh"}))
}

func TestJarSaveWithoutChangesSkipsStore(t *testing.T) {
	t.Parallel()

	secrets := newMemorySecrets()
	jar, err := NewJar(secrets, Key("default"), nil, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, jar.Save(context.Background()))
	assert.Empty(t, secrets.values)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "/", defaultPath(""))
	assert.Equal(t, "/", defaultPath("/login"))
	assert.Equal(t, "/auth", defaultPath("/auth/login"))
}

func TestJarClearRemovesCookiesAndEntry(t *testing.T) {
	t.Parallel()

	secrets := newMemorySecrets()
	jar, err := NewJar(secrets, Key("default"), nil, zerolog.Nop())
	require.NoError(t, err)
	origin := &url.URL{Scheme: "http", Host: "api.test", Path: "/auth/login"}
	jar.SetCookies(origin, []*http.Cookie{{Name: "refresh_token", Value: "r-1", Path: "/auth", MaxAge: 60}})
	require.NoError(t, jar.Save(context.Background()))

	require.NoError(t, jar.Clear(context.Background()))
	assert.Zero(t, jar.Len())
	assert.NotContains(t, secrets.values, Key("default"))
	assert.Empty(t, jar.Cookies(&url.URL{Scheme: "http", Host: "api.test", Path: "/auth/refresh"}))
}
