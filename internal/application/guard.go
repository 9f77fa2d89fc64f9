package application

import (
	"context"
	"fmt"

	"github.com/bnema/giftbox-cli/internal/domain"
)

type Access string

const (
	AccessPublic       Access = "public"
	AccessRequiresAuth Access = "requires_auth"
	AccessGuestOnly    Access = "guest_only"
)

// Guard decides whether an operation may run for the current session,
// restoring the session from the refresh cookie on first use.
type Guard struct {
	auth *AuthService
}

func NewGuard(auth *AuthService) *Guard {
	return &Guard{auth: auth}
}

func (g *Guard) Check(ctx context.Context, access Access) error {
	switch access {
	case "", AccessPublic:
		return nil
	case AccessRequiresAuth:
		if !g.auth.Initialize(ctx) {
			return domain.ErrAuthRequired
		}
		return nil
	case AccessGuestOnly:
		if g.auth.Initialize(ctx) {
			return domain.ErrAlreadyAuthenticated
		}
		return nil
	default:
		return fmt.Errorf("unknown access level %q", access)
	}
}
