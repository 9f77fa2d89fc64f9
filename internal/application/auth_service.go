package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/bnema/giftbox-cli/internal/ports"
	"github.com/rs/zerolog"
)

type ProfileRef struct {
	Name    string
	BaseURL string
}

// AuthService owns the session lifecycle: login, registration, startup
// refresh and logout. It is the only writer of the session apart from the
// API client's refresh coordinator.
type AuthService struct {
	auth      ports.AuthBackend
	refresher ports.SessionRefresher
	users     ports.UserBackend
	session   ports.SessionStore
	profiles  ports.ProfileRepository
	profile   ProfileRef
	clock     ports.Clock
	logger    zerolog.Logger

	initMu      sync.Mutex
	initialized bool
}

type AuthServiceDeps struct {
	Auth      ports.AuthBackend
	Refresher ports.SessionRefresher
	Users     ports.UserBackend
	Session   ports.SessionStore
	Profiles  ports.ProfileRepository
	Profile   ProfileRef
	Clock     ports.Clock
	Logger    zerolog.Logger
}

func NewAuthService(deps AuthServiceDeps) *AuthService {
	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &AuthService{
		auth:      deps.Auth,
		refresher: deps.Refresher,
		users:     deps.Users,
		session:   deps.Session,
		profiles:  deps.Profiles,
		profile:   deps.Profile,
		clock:     clock,
		logger:    deps.Logger,
	}
}

func (s *AuthService) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}

func (s *AuthService) Session() domain.Session {
	return s.session.Session()
}

func (s *AuthService) CurrentUser() *domain.User {
	return s.session.Session().User
}

// Initialize restores the session from the refresh cookie once per process.
// Later calls, including concurrent ones that waited, report the outcome of
// the first attempt without further network I/O.
func (s *AuthService) Initialize(ctx context.Context) bool {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.initialized {
		return s.session.IsAuthenticated()
	}
	defer func() { s.initialized = true }()

	if s.session.IsAuthenticated() {
		return true
	}

	session, err := s.refresher.RefreshSession(ctx)
	if err != nil {
		s.session.Clear()
		s.logger.Debug().Err(err).Msg("no session restored from refresh cookie")
		return false
	}

	s.recordProfile(ctx, session.User)
	return true
}

func (s *AuthService) Login(ctx context.Context, credentials domain.Credentials) error {
	resp, err := s.auth.Login(ctx, credentials)
	if err != nil {
		return err
	}

	s.setSession(ctx, resp)
	return nil
}

// Register creates the account; the server signs the new user in directly.
func (s *AuthService) Register(ctx context.Context, registration domain.Registration) error {
	registration.Email = strings.TrimSpace(registration.Email)
	registration.Name = strings.TrimSpace(registration.Name)

	resp, err := s.auth.Register(ctx, registration)
	if err != nil {
		return err
	}

	s.setSession(ctx, resp)
	return nil
}

// Logout always clears the local session, even when the backend call fails.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.auth.Logout(ctx)
	s.session.Clear()
	if err != nil {
		s.logger.Warn().Err(err).Msg("backend logout failed, local session cleared")
		return err
	}
	return nil
}

// RefreshUser reloads the profile, e.g. after a change that moves the
// server-computed spent and remaining amounts. Failures are logged only.
func (s *AuthService) RefreshUser(ctx context.Context) {
	if !s.session.IsAuthenticated() {
		return
	}

	user, err := s.users.Me(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("refresh user data failed")
		return
	}
	s.session.UpdateUser(user)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) (domain.Acknowledgement, error) {
	if strings.TrimSpace(email) == "" {
		return domain.Acknowledgement{}, errors.New("email is required")
	}
	return s.auth.ForgotPassword(ctx, email)
}

func (s *AuthService) ResetPassword(ctx context.Context, token string, reset domain.PasswordReset) (domain.Acknowledgement, error) {
	return s.auth.ResetPassword(ctx, token, reset)
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) (domain.Acknowledgement, error) {
	return s.auth.VerifyEmail(ctx, token)
}

func (s *AuthService) setSession(ctx context.Context, resp domain.AuthResponse) {
	session := s.refresher.SessionFromAuth(resp)
	s.session.SetSession(session)
	s.recordProfile(ctx, session.User)
}

func (s *AuthService) recordProfile(ctx context.Context, user *domain.User) {
	if s.profiles == nil || user == nil || s.profile.Name == "" {
		return
	}

	profile := domain.Profile{
		Name:        s.profile.Name,
		BaseURL:     s.profile.BaseURL,
		UserEmail:   user.Email,
		LastLoginAt: s.clock.Now().UTC(),
	}
	if user.Name != nil {
		profile.UserName = *user.Name
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		s.logger.Warn().Err(fmt.Errorf("save profile %q: %w", s.profile.Name, err)).Msg("profile not recorded")
	}
}
