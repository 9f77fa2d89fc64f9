package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/giftbox-cli/internal/application"
	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage your account",
	}

	cmd.AddCommand(newUserRenameCmd(app), newUserPasswordCmd(app), newUserDeleteCmd(app))
	return withAccess(cmd, application.AccessRequiresAuth)
}

func newUserRenameCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename NAME",
		Short: "Change your display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return errors.New("name cannot be empty")
			}

			user, err := app.budget.UpdateName(cmd.Context(), name)
			if err != nil {
				return failure(app, err, "failed to update name", nil)
			}
			return writeLine(cmd, "Name set to %s", user.DisplayName())
		},
	}
}

func newUserPasswordCmd(app *app) *cobra.Command {
	var update domain.PasswordUpdate

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change your password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if update.NewPassword != update.ConfirmedPassword {
				return errors.New("passwords do not match")
			}

			err := app.budget.UpdatePassword(cmd.Context(), update)
			if err != nil {
				return failure(app, err, "failed to update password", map[int]string{
					http.StatusBadRequest: "current password is incorrect",
				})
			}
			return writeLine(cmd, "Password updated.")
		},
	}

	cmd.Flags().StringVar(&update.CurrentPassword, "current", "", "Current password")
	cmd.Flags().StringVar(&update.NewPassword, "new", "", "New password")
	cmd.Flags().StringVar(&update.ConfirmedPassword, "confirm", "", "New password confirmation")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	_ = cmd.MarkFlagRequired("confirm")
	return cmd
}

func newUserDeleteCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete your account and everything in it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to delete the account without --yes")
			}

			if err := app.budget.DeleteAccount(cmd.Context()); err != nil {
				return failure(app, err, "failed to delete account", nil)
			}
			if err := app.jar.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("forget saved session: %w", err)
			}
			return writeLine(cmd, "Account deleted.")
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}
