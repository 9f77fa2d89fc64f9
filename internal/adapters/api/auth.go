package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/giftbox-cli/internal/domain"
)

var errMissingAccessToken = errors.New("auth response missing access token")

// AuthAPI covers the /auth endpoints. None of them carry the bearer
// credential; the refresh cookie travels through the client's jar.
type AuthAPI struct {
	client *Client
}

func (a *AuthAPI) Register(ctx context.Context, registration domain.Registration) (domain.AuthResponse, error) {
	var resp domain.AuthResponse
	err := a.client.do(ctx, request{
		method:   http.MethodPost,
		segments: []string{"auth", "register"},
		body:     registration,
	}, &resp)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("register: %w", err)
	}
	return validAuthResponse(resp)
}

func (a *AuthAPI) Login(ctx context.Context, credentials domain.Credentials) (domain.AuthResponse, error) {
	form := url.Values{}
	form.Set("username", strings.TrimSpace(credentials.Email))
	form.Set("password", credentials.Password)

	var resp domain.AuthResponse
	err := a.client.do(ctx, request{
		method:   http.MethodPost,
		segments: []string{"auth", "login"},
		form:     form,
	}, &resp)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("login: %w", err)
	}
	return validAuthResponse(resp)
}

// Refresh exchanges the refresh cookie for a new access credential. Most
// callers want Client.RefreshSession, which coordinates concurrent refreshes.
func (a *AuthAPI) Refresh(ctx context.Context) (domain.AuthResponse, error) {
	var resp domain.AuthResponse
	err := a.client.do(ctx, request{
		method:    http.MethodPost,
		segments:  []string{"auth", "refresh"},
		isRefresh: true,
	}, &resp)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return validAuthResponse(resp)
}

func (a *AuthAPI) Logout(ctx context.Context) error {
	err := a.client.do(ctx, request{
		method:   http.MethodPost,
		segments: []string{"auth", "logout"},
	}, nil)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (a *AuthAPI) ForgotPassword(ctx context.Context, email string) (domain.Acknowledgement, error) {
	var ack domain.Acknowledgement
	err := a.client.do(ctx, request{
		method:   http.MethodPost,
		segments: []string{"auth", "forgot-password"},
		body:     map[string]string{"email": strings.TrimSpace(email)},
	}, &ack)
	if err != nil {
		return domain.Acknowledgement{}, fmt.Errorf("request password reset: %w", err)
	}
	return ack, nil
}

func (a *AuthAPI) ResetPassword(ctx context.Context, token string, reset domain.PasswordReset) (domain.Acknowledgement, error) {
	if strings.TrimSpace(token) == "" {
		return domain.Acknowledgement{}, errors.New("reset token is required")
	}

	var ack domain.Acknowledgement
	err := a.client.do(ctx, request{
		method:   http.MethodPost,
		segments: []string{"auth", "reset-password"},
		query:    url.Values{"token": []string{token}},
		body:     reset,
	}, &ack)
	if err != nil {
		return domain.Acknowledgement{}, fmt.Errorf("reset password: %w", err)
	}
	return ack, nil
}

func (a *AuthAPI) VerifyEmail(ctx context.Context, token string) (domain.Acknowledgement, error) {
	if strings.TrimSpace(token) == "" {
		return domain.Acknowledgement{}, errors.New("verification token is required")
	}

	var ack domain.Acknowledgement
	err := a.client.do(ctx, request{
		method:   http.MethodPost,
		segments: []string{"auth", "verify-email"},
		query:    url.Values{"token": []string{token}},
	}, &ack)
	if err != nil {
		return domain.Acknowledgement{}, fmt.Errorf("verify email: %w", err)
	}
	return ack, nil
}

func validAuthResponse(resp domain.AuthResponse) (domain.AuthResponse, error) {
	if strings.TrimSpace(resp.AccessToken) == "" {
		return domain.AuthResponse{}, errMissingAccessToken
	}
	return resp, nil
}
