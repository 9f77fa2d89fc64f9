package ports

import (
	"context"

	"github.com/bnema/giftbox-cli/internal/domain"
)

type AuthBackend interface {
	Register(ctx context.Context, registration domain.Registration) (domain.AuthResponse, error)
	Login(ctx context.Context, credentials domain.Credentials) (domain.AuthResponse, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) (domain.Acknowledgement, error)
	ResetPassword(ctx context.Context, token string, reset domain.PasswordReset) (domain.Acknowledgement, error)
	VerifyEmail(ctx context.Context, token string) (domain.Acknowledgement, error)
}

// SessionRefresher mints a new session from the long-lived cookie credential.
type SessionRefresher interface {
	RefreshSession(ctx context.Context) (domain.Session, error)
	SessionFromAuth(resp domain.AuthResponse) domain.Session
}

type UserBackend interface {
	Me(ctx context.Context) (domain.User, error)
	UpdateName(ctx context.Context, name string) (domain.User, error)
	UpdateBudget(ctx context.Context, budget float64) (domain.User, error)
	DeleteBudget(ctx context.Context) (domain.User, error)
	UpdatePassword(ctx context.Context, update domain.PasswordUpdate) error
	Delete(ctx context.Context) error
}

// CollectionBackend is the CRUD surface of a paginated resource.
type CollectionBackend[T, C, U any] interface {
	Create(ctx context.Context, payload C) (T, error)
	List(ctx context.Context, params domain.ListParams) (domain.Page[T], error)
	ListAll(ctx context.Context, sort domain.SortOrder) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, id string, patch U) (T, error)
	Delete(ctx context.Context, id string) error
}
