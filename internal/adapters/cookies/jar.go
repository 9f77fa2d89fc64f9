package cookies

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"path"
	"sync"
	"time"

	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/bnema/giftbox-cli/internal/ports"
	"github.com/rs/zerolog"
)

const blobVersion = 1

// Key names the secret holding the persisted jar of a profile.
func Key(profile string) string {
	return "giftbox://" + profile + "/refresh_cookie"
}

type record struct {
	URL      string    `json:"url"`
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HTTPOnly bool      `json:"http_only,omitempty"`
}

type blob struct {
	Version int      `json:"version"`
	Cookies []record `json:"cookies"`
}

// Jar is an http.CookieJar that remembers what the server set so the
// refresh cookie survives between CLI invocations. Persistence goes through
// a SecretStore because the cookie is a long-lived credential.
type Jar struct {
	inner  *cookiejar.Jar
	store  ports.SecretStore
	key    string
	clock  ports.Clock
	logger zerolog.Logger

	mu      sync.Mutex
	records map[string]record
	dirty   bool
}

var _ http.CookieJar = (*Jar)(nil)

func NewJar(store ports.SecretStore, key string, clock ports.Clock, logger zerolog.Logger) (*Jar, error) {
	if store == nil {
		return nil, errors.New("secret store is required")
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &Jar{
		inner:   inner,
		store:   store,
		key:     key,
		clock:   clock,
		logger:  logger,
		records: make(map[string]record),
	}, nil
}

func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.inner.SetCookies(u, cookies)

	now := j.clock.Now()
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, cookie := range cookies {
		rec := record{
			URL:      (&url.URL{Scheme: u.Scheme, Host: u.Host}).String(),
			Name:     cookie.Name,
			Value:    cookie.Value,
			Path:     cookie.Path,
			Domain:   cookie.Domain,
			Secure:   cookie.Secure,
			HTTPOnly: cookie.HttpOnly,
		}
		if rec.Path == "" || rec.Path[0] != '/' {
			rec.Path = defaultPath(u.Path)
		}

		id := rec.URL + "|" + rec.Domain + "|" + rec.Path + "|" + rec.Name
		switch {
		case cookie.MaxAge < 0:
			delete(j.records, id)
		case cookie.MaxAge > 0:
			rec.Expires = now.Add(time.Duration(cookie.MaxAge) * time.Second)
			j.records[id] = rec
		case !cookie.Expires.IsZero() && !cookie.Expires.After(now):
			delete(j.records, id)
		default:
			rec.Expires = cookie.Expires
			j.records[id] = rec
		}
		j.dirty = true
	}
}

func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	return j.inner.Cookies(u)
}

// Load restores cookies saved by an earlier process. A missing entry is an
// empty jar.
func (j *Jar) Load(ctx context.Context) error {
	raw, err := j.store.Get(ctx, j.key)
	if errors.Is(err, domain.ErrSecretNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load cookies: %w", err)
	}

	var saved blob
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		j.logger.Warn().Err(err).Msg("discarding unreadable cookie jar")
		return nil
	}
	if saved.Version != blobVersion {
		j.logger.Warn().Int("version", saved.Version).Msg("discarding cookie jar with unknown version")
		return nil
	}

	now := j.clock.Now()
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, rec := range saved.Cookies {
		if !rec.Expires.IsZero() && !rec.Expires.After(now) {
			continue
		}
		origin, err := url.Parse(rec.URL)
		if err != nil {
			continue
		}

		j.inner.SetCookies(origin.JoinPath(rec.Path), []*http.Cookie{{
			Name:     rec.Name,
			Value:    rec.Value,
			Path:     rec.Path,
			Domain:   rec.Domain,
			Expires:  rec.Expires,
			Secure:   rec.Secure,
			HttpOnly: rec.HTTPOnly,
		}})
		j.records[rec.URL+"|"+rec.Domain+"|"+rec.Path+"|"+rec.Name] = rec
	}
	j.dirty = false
	return nil
}

// Save persists the jar when it changed since Load. An empty jar removes
// the stored entry.
func (j *Jar) Save(ctx context.Context) error {
	j.mu.Lock()
	if !j.dirty {
		j.mu.Unlock()
		return nil
	}
	saved := blob{Version: blobVersion, Cookies: make([]record, 0, len(j.records))}
	for _, rec := range j.records {
		saved.Cookies = append(saved.Cookies, rec)
	}
	j.mu.Unlock()

	if len(saved.Cookies) == 0 {
		if err := j.store.Delete(ctx, j.key); err != nil {
			return fmt.Errorf("delete cookies: %w", err)
		}
		j.markClean()
		return nil
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("encode cookies: %w", err)
	}
	if err := j.store.Put(ctx, j.key, string(data)); err != nil {
		return fmt.Errorf("save cookies: %w", err)
	}
	j.markClean()
	return nil
}

// Clear forgets every cookie and removes the persisted entry. Used on local
// sign-out, where the server may never get to expire the cookie itself.
func (j *Jar) Clear(ctx context.Context) error {
	j.mu.Lock()
	records := j.records
	j.records = make(map[string]record)
	j.dirty = false
	j.mu.Unlock()

	for _, rec := range records {
		origin, err := url.Parse(rec.URL)
		if err != nil {
			continue
		}
		j.inner.SetCookies(origin.JoinPath(rec.Path), []*http.Cookie{{
			Name:   rec.Name,
			Path:   rec.Path,
			Domain: rec.Domain,
			MaxAge: -1,
		}})
	}

	if err := j.store.Delete(ctx, j.key); err != nil {
		return fmt.Errorf("delete cookies: %w", err)
	}
	return nil
}

func (j *Jar) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return len(j.records)
}

func (j *Jar) markClean() {
	j.mu.Lock()
	j.dirty = false
	j.mu.Unlock()
}

func defaultPath(p string) string {
	if p == "" || p[0] != '/' {
		return "/"
	}
	dir := path.Dir(p)
	if dir == "." {
		return "/"
	}
	return dir
}
