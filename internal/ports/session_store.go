package ports

import "github.com/bnema/giftbox-cli/internal/domain"

// SessionStore owns the in-memory session. SetSession and Clear are the only
// mutation entry points; UpdateUser replaces the profile of a live session.
type SessionStore interface {
	Session() domain.Session
	AccessToken() string
	IsAuthenticated() bool
	SetSession(session domain.Session)
	UpdateUser(user domain.User)
	Clear()
}
