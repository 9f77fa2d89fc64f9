package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/giftbox-cli/internal/adapters/session/memory"
	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userJSON = `{"id":"7c9e6679-7425-40de-944b-e07fc1f90ae7","email":"ada@example.com","name":"Ada","budget":"300.00","spent":"25.00","remaining":"275.00"}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *memory.Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session := memory.NewStore()
	client, err := NewClient(Config{
		BaseURL:        server.URL,
		HTTPClient:     server.Client(),
		Session:        session,
		RequestTimeout: 2 * time.Second,
		Logger:         zerolog.Nop(),
	})
	require.NoError(t, err)

	return client, session
}

func authJSON(token string) string {
	return fmt.Sprintf(`{"access_token":%q,"token_type":"bearer","expires_in":900,"user":%s}`, token, userJSON)
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = fmt.Fprint(w, `{"detail":"Not authenticated"}`)
}

func TestLoginThenAuthenticatedCallSkipsRefresh(t *testing.T) {
	t.Parallel()

	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ada@example.com", r.Form.Get("username"))
		assert.Equal(t, "Secret123!", r.Form.Get("password"))

		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "long-lived", Path: "/auth", HttpOnly: true})
		_, _ = fmt.Fprint(w, authJSON("access-1"))
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		writeUnauthorized(w)
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-1" {
			writeUnauthorized(w)
			return
		}
		_, _ = fmt.Fprint(w, userJSON)
	})

	client, session := newTestClient(t, mux)

	resp, err := client.Auth.Login(context.Background(), domain.Credentials{Email: " ada@example.com ", Password: "Secret123!"})
	require.NoError(t, err)
	session.SetSession(client.SessionFromAuth(resp))

	require.True(t, session.IsAuthenticated())
	require.NotNil(t, session.Session().User)
	assert.Equal(t, "ada@example.com", session.Session().User.Email)

	user, err := client.Users.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.DisplayName())
	assert.Equal(t, int32(0), refreshCalls.Load())
}

func TestRefreshSendsCookieFromLogin(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "long-lived", Path: "/auth", HttpOnly: true})
		_, _ = fmt.Fprint(w, authJSON("access-1"))
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("refresh_token")
		if err != nil || cookie.Value != "long-lived" {
			writeUnauthorized(w)
			return
		}
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = fmt.Fprint(w, authJSON("access-2"))
	})

	client, session := newTestClient(t, mux)

	_, err := client.Auth.Login(context.Background(), domain.Credentials{Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)

	refreshed, err := client.RefreshSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-2", refreshed.AccessToken)
	assert.Equal(t, "access-2", session.AccessToken())
}

func TestConcurrentUnauthorizedRequestsShareOneRefresh(t *testing.T) {
	t.Parallel()

	const n = 8
	var refreshCalls atomic.Int32
	var freshCalls atomic.Int32
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		<-release
		_, _ = fmt.Fprint(w, authJSON("fresh"))
	})
	mux.HandleFunc("GET /gifts", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh" {
			writeUnauthorized(w)
			return
		}
		freshCalls.Add(1)
		_, _ = fmt.Fprint(w, `{"items":[],"meta":{"page":1,"limit":10,"total":0,"totalPages":0,"hasPrev":false,"hasNext":false}}`)
	})

	client, session := newTestClient(t, mux)
	session.SetSession(domain.Session{AccessToken: "stale"})

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Gifts.List(context.Background(), domain.ListParams{})
			errs <- err
		}()
	}

	require.Eventually(t, func() bool {
		state, queued := client.refresher.snapshot()
		return state == refreshInFlight && queued == n-1
	}, 2*time.Second, 5*time.Millisecond)
	close(release)

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, int32(n), freshCalls.Load())
	assert.Equal(t, "fresh", session.AccessToken())

	state, queued := client.refresher.snapshot()
	assert.Equal(t, refreshIdle, state)
	assert.Zero(t, queued)
}

func TestRefreshFailureRejectsQueuedRequestsAndClearsSession(t *testing.T) {
	t.Parallel()

	const n = 5
	var refreshCalls atomic.Int32
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		<-release
		writeUnauthorized(w)
	})
	mux.HandleFunc("GET /recipients", func(w http.ResponseWriter, r *http.Request) {
		writeUnauthorized(w)
	})

	client, session := newTestClient(t, mux)
	session.SetSession(domain.Session{AccessToken: "stale", User: &domain.User{Email: "ada@example.com"}})

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Recipients.List(context.Background(), domain.ListParams{})
			errs <- err
		}()
	}

	require.Eventually(t, func() bool {
		_, queued := client.refresher.snapshot()
		return queued == n-1
	}, 2*time.Second, 5*time.Millisecond)
	close(release)

	wg.Wait()
	close(errs)
	failures := 0
	for err := range errs {
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotAuthenticated))
		assert.Contains(t, err.Error(), "refresh session")
		failures++
	}

	assert.Equal(t, n, failures)
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.Session().User)
}

func TestRetriedRequestIsNotRetriedTwice(t *testing.T) {
	t.Parallel()

	var refreshCalls atomic.Int32
	var giftCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		_, _ = fmt.Fprint(w, authJSON("fresh"))
	})
	mux.HandleFunc("GET /gifts/{id}", func(w http.ResponseWriter, r *http.Request) {
		giftCalls.Add(1)
		writeUnauthorized(w)
	})

	client, session := newTestClient(t, mux)
	session.SetSession(domain.Session{AccessToken: "stale"})

	_, err := client.Gifts.Get(context.Background(), "3f2504e0-4f89-11d3-9a0c-0305e82c3301")
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, int32(2), giftCalls.Load())
	assert.Equal(t, "fresh", session.AccessToken())
}

func TestRefreshCallNeverTriggersRefresh(t *testing.T) {
	t.Parallel()

	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		writeUnauthorized(w)
	})

	client, session := newTestClient(t, mux)

	_, err := client.RefreshSession(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotAuthenticated))
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.False(t, session.IsAuthenticated())
}

func TestUnauthenticatedEndpointsDoNotRefresh(t *testing.T) {
	t.Parallel()

	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
	})
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"detail":"Incorrect email or password"}`)
	})

	client, _ := newTestClient(t, mux)

	_, err := client.Auth.Login(context.Background(), domain.Credentials{Email: "ada@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.Zero(t, refreshCalls.Load())
}

func TestFetchAllRequestsEveryPageInOrder(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var pages []string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /gifts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "asc", r.URL.Query().Get("sort"))
		page := r.URL.Query().Get("page")

		mu.Lock()
		pages = append(pages, page)
		mu.Unlock()

		number, err := strconv.Atoi(page)
		require.NoError(t, err)
		_, _ = fmt.Fprintf(w, `{"items":[{"id":"g-%[1]d-a","name":"Gift %[1]d A","status":"idee","quantity":1,"recipient_ids":[]},{"id":"g-%[1]d-b","name":"Gift %[1]d B","status":"achete","quantity":2,"recipient_ids":[]}],"meta":{"page":%[1]d,"limit":100,"total":6,"totalPages":3,"hasPrev":%[2]t,"hasNext":%[3]t}}`, number, number > 1, number < 3)
	})

	client, session := newTestClient(t, mux)
	session.SetSession(domain.Session{AccessToken: "token"})

	gifts, err := client.Gifts.ListAll(context.Background(), domain.SortAsc)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3"}, pages)
	ids := make([]string, 0, len(gifts))
	for _, gift := range gifts {
		ids = append(ids, gift.ID)
	}
	assert.Equal(t, []string{"g-1-a", "g-1-b", "g-2-a", "g-2-b", "g-3-a", "g-3-b"}, ids)
}

func TestFetchAllStopsAfterSinglePageWhenEmpty(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /recipients", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = fmt.Fprint(w, `{"items":[],"meta":{"page":1,"limit":100,"total":0,"totalPages":0,"hasPrev":false,"hasNext":false}}`)
	})

	client, session := newTestClient(t, mux)
	session.SetSession(domain.Session{AccessToken: "token"})

	recipients, err := client.Recipients.ListAll(context.Background(), domain.SortDefault)
	require.NoError(t, err)
	assert.Empty(t, recipients)
	assert.NotNil(t, recipients)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchAllReturnsPageError(t *testing.T) {
	t.Parallel()

	_, err := FetchAll[int](context.Background(), domain.SortDefault, func(_ context.Context, params domain.ListParams) (domain.Page[int], error) {
		if params.Page == 2 {
			return domain.Page[int]{}, errors.New("boom")
		}
		return domain.Page[int]{Items: []int{1}, Meta: domain.PageMeta{TotalPages: 4}}, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch page 2")
}

func TestRequestCarriesBearerAndRequestID(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /gifts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.WriteHeader(http.StatusCreated)
		_, _ = fmt.Fprint(w, `{"id":"g-1","user_id":"u-1","name":"Scarf","url":null,"price":"19.90","status":"idee","quantity":1,"recipient_ids":[]}`)
	})

	client, session := newTestClient(t, mux)
	session.SetSession(domain.Session{AccessToken: "token"})

	price := 19.90
	gift, err := client.Gifts.Create(context.Background(), domain.GiftCreate{Name: "Scarf", Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Scarf", gift.Name)
	require.NotNil(t, gift.Price)
	assert.Equal(t, "19.90", *gift.Price)
	assert.Nil(t, gift.URL)
}

func TestDeleteAcceptsNoContent(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /recipients/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3f2504e0-4f89-11d3-9a0c-0305e82c3301", r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	client, session := newTestClient(t, mux)
	session.SetSession(domain.Session{AccessToken: "token"})

	require.NoError(t, client.Recipients.Delete(context.Background(), "3F2504E0-4F89-11D3-9A0C-0305E82C3301"))
}

func TestInvalidIDRejectedWithoutRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	_, err := client.Gifts.Get(context.Background(), "../users/me")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidID))
	assert.Zero(t, calls.Load())
}

func TestListRejectsOversizedPage(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.NotFoundHandler())

	_, err := client.Gifts.List(context.Background(), domain.ListParams{Limit: 500})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidPageSize))
}

func TestAPIErrorDecoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{name: "string detail", status: http.StatusConflict, body: `{"detail":"Recipient already exists"}`, wantDetail: "Recipient already exists"},
		{name: "validation detail", status: http.StatusUnprocessableEntity, body: `{"detail":[{"msg":"field required"},{"msg":"value too long"}]}`, wantDetail: "field required; value too long"},
		{name: "message field", status: http.StatusBadRequest, body: `{"message":"bad input"}`, wantDetail: "bad input"},
		{name: "non json body", status: http.StatusBadGateway, body: `<html>`, wantDetail: genericErrorDetail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Request-ID", "req-42")
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprint(w, tt.body)
			}))
			session.SetSession(domain.Session{AccessToken: "token"})

			_, err := client.Users.UpdateName(context.Background(), "Ada")
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.Equal(t, "req-42", apiErr.RequestID)
			assert.Equal(t, "/users/me", apiErr.Path)
		})
	}
}

func TestNotFoundMapsToDomainError(t *testing.T) {
	t.Parallel()

	client, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprint(w, `{"detail":"Gift not found"}`)
	}))
	session.SetSession(domain.Session{AccessToken: "token"})

	_, err := client.Gifts.Get(context.Background(), "3f2504e0-4f89-11d3-9a0c-0305e82c3301")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRequestTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = fmt.Fprint(w, userJSON)
	}))
	t.Cleanup(server.Close)

	session := memory.NewStore()
	session.SetSession(domain.Session{AccessToken: "token"})
	client, err := NewClient(Config{
		BaseURL:        server.URL,
		HTTPClient:     server.Client(),
		Session:        session,
		RequestTimeout: 20 * time.Millisecond,
		Logger:         zerolog.Nop(),
	})
	require.NoError(t, err)

	_, err = client.Users.Me(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestBaseURLWithPathPrefix(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/me/budget", r.URL.Path)
		_, _ = fmt.Fprint(w, userJSON)
	}))
	t.Cleanup(server.Close)

	session := memory.NewStore()
	session.SetSession(domain.Session{AccessToken: "token"})
	client, err := NewClient(Config{BaseURL: server.URL + "/api/v1/", HTTPClient: server.Client(), Session: session, Logger: zerolog.Nop()})
	require.NoError(t, err)

	user, err := client.Users.UpdateBudget(context.Background(), 300)
	require.NoError(t, err)
	assert.True(t, user.HasBudget())
}

func TestNewClientValidatesConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "missing session", cfg: Config{BaseURL: "http://localhost"}, wantErr: "session store is required"},
		{name: "missing base url", cfg: Config{Session: memory.NewStore()}, wantErr: "api base url is required"},
		{name: "bad scheme", cfg: Config{BaseURL: "ftp://example.com", Session: memory.NewStore()}, wantErr: "must use http or https"},
		{name: "missing host", cfg: Config{BaseURL: "http://", Session: memory.NewStore()}, wantErr: "host is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPasswordResetFlowPayloads(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/forgot-password", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"ada@example.com"}`, string(body))
		_, _ = fmt.Fprint(w, `{"success":true,"message":"sent"}`)
	})
	mux.HandleFunc("POST /auth/reset-password", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok-1", r.URL.Query().Get("token"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"password":"N3w!pass","confirmed_password":"N3w!pass"}`, string(body))
		_, _ = fmt.Fprint(w, `{"success":true,"message":"reset"}`)
	})
	mux.HandleFunc("POST /auth/verify-email", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok-2", r.URL.Query().Get("token"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = fmt.Fprint(w, `{"success":true,"message":"verified"}`)
	})

	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	ack, err := client.Auth.ForgotPassword(ctx, "  ada@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "sent", ack.Message)

	ack, err = client.Auth.ResetPassword(ctx, "tok-1", domain.PasswordReset{Password: "N3w!pass", ConfirmedPassword: "N3w!pass"})
	require.NoError(t, err)
	assert.True(t, ack.Success)

	ack, err = client.Auth.VerifyEmail(ctx, "tok-2")
	require.NoError(t, err)
	assert.Equal(t, "verified", ack.Message)

	_, err = client.Auth.ResetPassword(ctx, " ", domain.PasswordReset{})
	assert.Error(t, err)
	_, err = client.Auth.VerifyEmail(ctx, "")
	assert.Error(t, err)
}

func TestUserEndpoints(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var seen []string
	record := func(r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Method+" "+r.URL.Path)
		mu.Unlock()
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /users/me", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Ada L."}`, string(body))
		_, _ = fmt.Fprint(w, userJSON)
	})
	mux.HandleFunc("PATCH /users/me/budget", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"budget":150.5}`, string(body))
		_, _ = fmt.Fprint(w, userJSON)
	})
	mux.HandleFunc("DELETE /users/me/budget", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		_, _ = fmt.Fprint(w, `{"id":"u-1","email":"ada@example.com","budget":null,"spent":"25.00","remaining":null}`)
	})
	mux.HandleFunc("PATCH /users/me/password", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("DELETE /users/me", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.WriteHeader(http.StatusNoContent)
	})

	client, session := newTestClient(t, mux)
	session.SetSession(domain.Session{AccessToken: "access-1"})
	ctx := context.Background()

	_, err := client.Users.UpdateName(ctx, "Ada L.")
	require.NoError(t, err)
	user, err := client.Users.UpdateBudget(ctx, 150.5)
	require.NoError(t, err)
	assert.True(t, user.HasBudget())
	user, err = client.Users.DeleteBudget(ctx)
	require.NoError(t, err)
	assert.False(t, user.HasBudget())
	require.NoError(t, client.Users.UpdatePassword(ctx, domain.PasswordUpdate{CurrentPassword: "a", NewPassword: "b", ConfirmedPassword: "b"}))
	require.NoError(t, client.Users.Delete(ctx))

	assert.Equal(t, []string{
		"PATCH /users/me",
		"PATCH /users/me/budget",
		"DELETE /users/me/budget",
		"PATCH /users/me/password",
		"DELETE /users/me",
	}, seen)
}
