package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/giftbox-cli/internal/domain"
)

type UsersAPI struct {
	client *Client
}

func (u *UsersAPI) Me(ctx context.Context) (domain.User, error) {
	return u.userCall(ctx, "get current user", http.MethodGet, nil, "users", "me")
}

func (u *UsersAPI) UpdateName(ctx context.Context, name string) (domain.User, error) {
	return u.userCall(ctx, "update name", http.MethodPatch, domain.NameUpdate{Name: name}, "users", "me")
}

func (u *UsersAPI) UpdateBudget(ctx context.Context, budget float64) (domain.User, error) {
	return u.userCall(ctx, "update budget", http.MethodPatch, domain.BudgetUpdate{Budget: budget}, "users", "me", "budget")
}

func (u *UsersAPI) DeleteBudget(ctx context.Context) (domain.User, error) {
	return u.userCall(ctx, "delete budget", http.MethodDelete, nil, "users", "me", "budget")
}

func (u *UsersAPI) UpdatePassword(ctx context.Context, update domain.PasswordUpdate) error {
	err := u.client.do(ctx, request{
		method:        http.MethodPatch,
		segments:      []string{"users", "me", "password"},
		body:          update,
		authenticated: true,
	}, nil)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (u *UsersAPI) Delete(ctx context.Context) error {
	err := u.client.do(ctx, request{
		method:        http.MethodDelete,
		segments:      []string{"users", "me"},
		authenticated: true,
	}, nil)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

func (u *UsersAPI) userCall(ctx context.Context, op, method string, body any, segments ...string) (domain.User, error) {
	var user domain.User
	err := u.client.do(ctx, request{
		method:        method,
		segments:      segments,
		body:          body,
		authenticated: true,
	}, &user)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}
