package application

import (
	"context"
	"fmt"
	"math"

	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/bnema/giftbox-cli/internal/ports"
)

// BudgetService updates the current user's budget and account settings and
// keeps the session's user copy in sync with every server response.
type BudgetService struct {
	users   ports.UserBackend
	session ports.SessionStore
}

func NewBudgetService(users ports.UserBackend, session ports.SessionStore) *BudgetService {
	return &BudgetService{users: users, session: session}
}

func (s *BudgetService) UpdateBudget(ctx context.Context, amount float64) (domain.User, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domain.User{}, fmt.Errorf("invalid budget amount %v", amount)
	}
	return s.apply(s.users.UpdateBudget(ctx, amount))
}

func (s *BudgetService) DeleteBudget(ctx context.Context) (domain.User, error) {
	return s.apply(s.users.DeleteBudget(ctx))
}

func (s *BudgetService) UpdateName(ctx context.Context, name string) (domain.User, error) {
	return s.apply(s.users.UpdateName(ctx, name))
}

func (s *BudgetService) UpdatePassword(ctx context.Context, update domain.PasswordUpdate) error {
	return s.users.UpdatePassword(ctx, update)
}

// DeleteAccount removes the account server-side and signs out locally.
func (s *BudgetService) DeleteAccount(ctx context.Context) error {
	if err := s.users.Delete(ctx); err != nil {
		return err
	}
	s.session.Clear()
	return nil
}

func (s *BudgetService) apply(user domain.User, err error) (domain.User, error) {
	if err != nil {
		return domain.User{}, err
	}
	s.session.UpdateUser(user)
	return user, nil
}
