package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/giftbox-cli/internal/adapters/api"
	"github.com/bnema/giftbox-cli/internal/adapters/render/list"
	"github.com/bnema/giftbox-cli/internal/application"
	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, sign out and manage credentials",
	}

	cmd.AddCommand(
		newAuthLoginCmd(app),
		newAuthRegisterCmd(app),
		newAuthLogoutCmd(app),
		newAuthStatusCmd(app),
		newAuthForgotPasswordCmd(app),
		newAuthResetPasswordCmd(app),
		newAuthVerifyEmailCmd(app),
	)
	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var email, password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := passwordInput(cmd.InOrStdin(), password, passwordStdin)
			if err != nil {
				return err
			}

			err = app.auth.Login(cmd.Context(), domain.Credentials{Email: email, Password: secret})
			if err != nil {
				return failure(app, err, "login failed", map[int]string{
					http.StatusUnauthorized: "incorrect email or password",
					http.StatusBadRequest:   "incorrect email or password",
				})
			}
			return writeLine(cmd, "Signed in as %s", app.auth.CurrentUser().DisplayName())
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	_ = cmd.MarkFlagRequired("email")

	return withAccess(cmd, application.AccessGuestOnly)
}

func newAuthRegisterCmd(app *app) *cobra.Command {
	var registration domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if registration.Password != registration.ConfirmedPassword {
				return errors.New("passwords do not match")
			}

			if err := app.auth.Register(cmd.Context(), registration); err != nil {
				return failure(app, err, "registration failed", map[int]string{
					http.StatusBadRequest: "this email is already registered",
					http.StatusConflict:   "this email is already registered",
				})
			}
			return writeLine(cmd, "Welcome, %s", app.auth.CurrentUser().DisplayName())
		},
	}

	cmd.Flags().StringVar(&registration.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&registration.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&registration.ConfirmedPassword, "confirm", "", "Password confirmation")
	cmd.Flags().StringVar(&registration.Name, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("confirm")

	return withAccess(cmd, application.AccessGuestOnly)
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The server revokes whatever refresh cookie the jar still holds.
			hadSession := app.jar.Len() > 0
			if hadSession {
				if err := app.auth.Logout(cmd.Context()); err != nil {
					app.logger.Warn().Err(err).Msg("server logout failed")
				}
			}
			if err := app.jar.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("forget saved session: %w", err)
			}

			if !hadSession {
				return writeLine(cmd, "Not signed in.")
			}
			return writeLine(cmd, "Signed out.")
		},
	}

	return withAccess(cmd, application.AccessPublic)
}

type sessionStatus struct {
	Profile       string       `json:"profile"`
	BaseURL       string       `json:"base_url"`
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
	ExpiresAt     *time.Time   `json:"expires_at,omitempty"`
}

func newAuthStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show who is signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Restoring session...", asJSON, func(ctx context.Context) error {
				app.auth.Initialize(ctx)
				return nil
			})

			session := app.auth.Session()
			expiresAt := session.ExpiresAt
			if expiresAt.IsZero() && session.AccessToken != "" {
				if claims, err := api.ParseAccessToken(session.AccessToken); err == nil {
					expiresAt = claims.ExpiresAt
				}
			}

			if asJSON {
				status := sessionStatus{
					Profile:       app.cfg.Profile,
					BaseURL:       app.client.BaseURL().String(),
					Authenticated: session.IsAuthenticated(),
					User:          session.User,
				}
				if !expiresAt.IsZero() {
					status.ExpiresAt = &expiresAt
				}
				return writeJSON(cmd, status)
			}

			rendered, err := list.RenderSession(list.SessionView{
				Profile:       app.cfg.Profile,
				BaseURL:       app.client.BaseURL().String(),
				Authenticated: session.IsAuthenticated(),
				User:          session.User,
				ExpiresAt:     expiresAt,
				Now:           app.now(),
			})
			if err != nil {
				return fmt.Errorf("render session: %w", err)
			}
			return writeLine(cmd, "%s", rendered)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return withAccess(cmd, application.AccessPublic)
}

func newAuthForgotPasswordCmd(app *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Email a password reset link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ack, err := app.auth.ForgotPassword(cmd.Context(), email)
			if err != nil {
				return failure(app, err, "could not request a password reset", nil)
			}
			return writeAck(cmd, ack, "If the address is registered, a reset link is on its way.")
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	_ = cmd.MarkFlagRequired("email")
	return withAccess(cmd, application.AccessPublic)
}

func newAuthResetPasswordCmd(app *app) *cobra.Command {
	var token string
	var reset domain.PasswordReset

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Choose a new password with a reset token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if reset.Password != reset.ConfirmedPassword {
				return errors.New("passwords do not match")
			}

			ack, err := app.auth.ResetPassword(cmd.Context(), token, reset)
			if err != nil {
				return failure(app, err, "password reset failed", map[int]string{
					http.StatusBadRequest: "the reset link is invalid or expired",
				})
			}
			return writeAck(cmd, ack, "Password updated. You can sign in now.")
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Reset token from the email")
	cmd.Flags().StringVar(&reset.Password, "password", "", "New password")
	cmd.Flags().StringVar(&reset.ConfirmedPassword, "confirm", "", "New password confirmation")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("confirm")
	return withAccess(cmd, application.AccessPublic)
}

func newAuthVerifyEmailCmd(app *app) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "verify-email",
		Short: "Confirm an email address with a verification token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ack, err := app.auth.VerifyEmail(cmd.Context(), token)
			if err != nil {
				return failure(app, err, "email verification failed", map[int]string{
					http.StatusBadRequest: "the verification link is invalid or expired",
				})
			}
			return writeAck(cmd, ack, "Email verified.")
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Verification token from the email")
	_ = cmd.MarkFlagRequired("token")
	return withAccess(cmd, application.AccessPublic)
}

func writeAck(cmd *cobra.Command, ack domain.Acknowledgement, fallback string) error {
	message := strings.TrimSpace(ack.Message)
	if message == "" {
		message = fallback
	}
	return writeLine(cmd, "%s", message)
}

func passwordInput(stdin io.Reader, flagValue string, fromStdin bool) (string, error) {
	if !fromStdin {
		if flagValue == "" {
			return "", errors.New("password is required: pass --password or --password-stdin")
		}
		return flagValue, nil
	}
	if flagValue != "" {
		return "", errors.New("--password and --password-stdin are mutually exclusive")
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password from stdin is empty")
	}
	return password, nil
}
