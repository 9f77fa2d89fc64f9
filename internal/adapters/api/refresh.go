package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/bnema/giftbox-cli/internal/ports"
	"github.com/rs/zerolog"
)

type refreshState int

const (
	refreshIdle refreshState = iota
	refreshInFlight
)

func (s refreshState) String() string {
	switch s {
	case refreshIdle:
		return "idle"
	case refreshInFlight:
		return "refreshing"
	default:
		return "unknown"
	}
}

type refreshResult struct {
	token string
	err   error
	// position is the 1-based order in which a queued caller was settled;
	// the caller that ran the refresh gets 0.
	position int
}

type refreshFunc func(ctx context.Context) (domain.AuthResponse, error)

// refreshCoordinator lets exactly one refresh call run at a time. Callers
// that need a credential while a refresh is in flight wait in arrival order
// and receive the same settlement.
type refreshCoordinator struct {
	mu      sync.Mutex
	state   refreshState
	waiters []chan refreshResult

	session     ports.SessionStore
	refresh     refreshFunc
	makeSession func(domain.AuthResponse) domain.Session
	logger      zerolog.Logger
}

func newRefreshCoordinator(session ports.SessionStore, refresh refreshFunc, makeSession func(domain.AuthResponse) domain.Session, logger zerolog.Logger) *refreshCoordinator {
	return &refreshCoordinator{
		session:     session,
		refresh:     refresh,
		makeSession: makeSession,
		logger:      logger,
	}
}

// credential returns a credential to replay a request that was rejected
// while carrying used. When the session already holds a different credential
// it is returned without a new refresh.
func (r *refreshCoordinator) credential(ctx context.Context, used string) (string, error) {
	result := r.acquire(ctx, used)
	return result.token, result.err
}

func (r *refreshCoordinator) acquire(ctx context.Context, used string) refreshResult {
	r.mu.Lock()
	if r.state == refreshIdle {
		if current := r.session.AccessToken(); current != "" && current != used {
			r.mu.Unlock()
			return refreshResult{token: current}
		}

		r.state = refreshInFlight
		r.mu.Unlock()
		return r.lead(ctx)
	}

	waiter := make(chan refreshResult, 1)
	r.waiters = append(r.waiters, waiter)
	r.mu.Unlock()

	select {
	case result := <-waiter:
		return result
	case <-ctx.Done():
		return refreshResult{err: ctx.Err()}
	}
}

func (r *refreshCoordinator) lead(ctx context.Context) refreshResult {
	// The refresh outlives a cancelled leader so queued callers still settle.
	resp, err := r.refresh(context.WithoutCancel(ctx))

	var result refreshResult
	r.mu.Lock()
	if err != nil {
		result.err = fmt.Errorf("refresh session: %w", err)
		r.session.Clear()
		r.logger.Warn().Err(err).Int("queued", len(r.waiters)).Msg("session refresh failed, signed out")
	} else {
		session := r.makeSession(resp)
		r.session.SetSession(session)
		result.token = session.AccessToken
		r.logger.Debug().Int("queued", len(r.waiters)).Msg("session refreshed")
	}
	waiters := r.waiters
	r.waiters = nil
	r.state = refreshIdle
	r.mu.Unlock()

	for i, waiter := range waiters {
		settled := result
		settled.position = i + 1
		waiter <- settled
	}

	return result
}

func (r *refreshCoordinator) snapshot() (refreshState, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state, len(r.waiters)
}
