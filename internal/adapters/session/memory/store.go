package memory

import (
	"sync"

	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/bnema/giftbox-cli/internal/ports"
)

// Store keeps the session in process memory only. A new process starts
// unauthenticated and has to refresh from the cookie.
type Store struct {
	mu      sync.RWMutex
	session domain.Session
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copySession(s.session)
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.AccessToken
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.IsAuthenticated()
}

func (s *Store) SetSession(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = copySession(session)
}

func (s *Store) UpdateUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.IsAuthenticated() {
		return
	}
	s.session.User = &user
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{}
}

func copySession(session domain.Session) domain.Session {
	if session.User != nil {
		user := *session.User
		session.User = &user
	}
	return session
}
