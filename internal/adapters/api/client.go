package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/bnema/giftbox-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 30 * time.Second
	requestIDHeader       = "X-Request-ID"
)

type Config struct {
	BaseURL string
	// HTTPClient must keep cookies between calls; a jar is added when missing.
	HTTPClient     *http.Client
	Session        ports.SessionStore
	RequestTimeout time.Duration
	// RateLimit caps outgoing requests per second. Zero disables it.
	RateLimit float64
	Logger    zerolog.Logger
	Clock     ports.Clock
}

// Client attaches the session's bearer credential to outgoing calls and
// replays calls that fail with 401 once a refresh produced a new credential.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	session    ports.SessionStore
	refresher  *refreshCoordinator
	limiter    *rate.Limiter
	timeout    time.Duration
	logger     zerolog.Logger
	clock      ports.Clock

	Auth       *AuthAPI
	Gifts      *GiftsAPI
	Recipients *RecipientsAPI
	Users      *UsersAPI
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Session == nil {
		return nil, errors.New("session store is required")
	}

	baseURL, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient, err := withCookieJar(cfg.HTTPClient)
	if err != nil {
		return nil, err
	}

	clock := cfg.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		session:    cfg.Session,
		timeout:    timeout,
		logger:     cfg.Logger,
		clock:      clock,
	}
	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	c.Auth = &AuthAPI{client: c}
	c.Gifts = &GiftsAPI{resource[domain.Gift, domain.GiftCreate, domain.GiftUpdate]{client: c, collection: "gifts"}}
	c.Recipients = &RecipientsAPI{resource[domain.Recipient, domain.RecipientCreate, domain.RecipientUpdate]{client: c, collection: "recipients"}}
	c.Users = &UsersAPI{client: c}
	c.refresher = newRefreshCoordinator(c.session, c.Auth.Refresh, c.sessionFromAuth, c.logger)

	return c, nil
}

// BaseURL returns the normalized backend URL.
func (c *Client) BaseURL() *url.URL {
	copied := *c.baseURL
	return &copied
}

// RefreshSession obtains a new access credential from the refresh cookie,
// joining a refresh that is already in flight.
func (c *Client) RefreshSession(ctx context.Context) (domain.Session, error) {
	if _, err := c.refresher.credential(ctx, c.session.AccessToken()); err != nil {
		return domain.Session{}, err
	}
	return c.session.Session(), nil
}

// SessionFromAuth builds a session from an auth response, falling back to the
// token's own exp claim when the server omits expires_in.
func (c *Client) SessionFromAuth(resp domain.AuthResponse) domain.Session {
	return c.sessionFromAuth(resp)
}

func (c *Client) sessionFromAuth(resp domain.AuthResponse) domain.Session {
	session := domain.SessionFromAuthResponse(resp, c.clock.Now())
	if session.ExpiresAt.IsZero() {
		if claims, err := ParseAccessToken(resp.AccessToken); err == nil {
			session.ExpiresAt = claims.ExpiresAt
		}
	}
	return session
}

type request struct {
	method        string
	segments      []string
	query         url.Values
	body          any
	form          url.Values
	authenticated bool
	// isRefresh marks the refresh call itself, which never triggers a refresh.
	isRefresh bool
}

func (r request) path() string {
	return "/" + strings.Join(r.segments, "/")
}

// do sends req and decodes a 2xx body into out. An authenticated request
// answered with 401 is replayed at most once with a refreshed credential.
func (c *Client) do(ctx context.Context, req request, out any) error {
	token := ""
	if req.authenticated {
		token = c.session.AccessToken()
	}

	err := c.send(ctx, req, token, out)
	if !c.shouldRefresh(req, err) {
		return err
	}

	refreshed, refreshErr := c.refresher.credential(ctx, token)
	if refreshErr != nil {
		return errors.Join(err, refreshErr)
	}

	return c.send(ctx, req, refreshed, out)
}

func (c *Client) shouldRefresh(req request, err error) bool {
	if err == nil || !req.authenticated || req.isRefresh {
		return false
	}
	return IsStatus(err, http.StatusUnauthorized)
}

func (c *Client) send(ctx context.Context, req request, token string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	httpReq, err := c.newHTTPRequest(requestCtx, req, token)
	if err != nil {
		return err
	}

	requestID := httpReq.Header.Get(requestIDHeader)
	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Debug().
			Str("method", req.method).
			Str("path", req.path()).
			Str("request_id", requestID).
			Err(err).
			Msg("api request failed")
		return fmt.Errorf("send %s %s: %w", req.method, req.path(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug().
		Str("method", req.method).
		Str("path", req.path()).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Str("request_id", requestID).
		Msg("api request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp, req.method, req.path())
	}

	return decodeBody(resp, out)
}

func (c *Client) newHTTPRequest(ctx context.Context, req request, token string) (*http.Request, error) {
	endpoint := c.baseURL.JoinPath(req.segments...)
	if len(req.query) > 0 {
		endpoint.RawQuery = req.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case req.form != nil:
		body = strings.NewReader(req.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.body != nil:
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", req.method, req.path(), err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create %s %s request: %w", req.method, req.path(), err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, uuid.NewString())
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return httpReq, nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func decodeBody(resp *http.Response, out any) error {
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

func withCookieJar(client *http.Client) (*http.Client, error) {
	if client == nil {
		client = &http.Client{}
	} else {
		copied := *client
		client = &copied
	}
	if client.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		client.Jar = jar
	}
	return client, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("api base url is required")
	}

	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed, nil
}

var _ ports.AuthBackend = (*AuthAPI)(nil)
var _ ports.UserBackend = (*UsersAPI)(nil)
var _ ports.SessionRefresher = (*Client)(nil)
var _ ports.CollectionBackend[domain.Gift, domain.GiftCreate, domain.GiftUpdate] = (*GiftsAPI)(nil)
var _ ports.CollectionBackend[domain.Recipient, domain.RecipientCreate, domain.RecipientUpdate] = (*RecipientsAPI)(nil)
