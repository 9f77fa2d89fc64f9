package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/giftbox-cli/internal/adapters/render/list"
	"github.com/bnema/giftbox-cli/internal/application"
	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newBudgetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show or change your gift budget",
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Render JSON output")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show budget, spent and remaining amounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The session user may predate gift changes made elsewhere.
			app.auth.RefreshUser(cmd.Context())
			user := app.auth.CurrentUser()
			if user == nil {
				return guardError(domain.ErrAuthRequired)
			}
			return writeBudget(cmd, *user, asJSON)
		},
	}

	set := &cobra.Command{
		Use:   "set AMOUNT",
		Short: "Set the budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(strings.ReplaceAll(args[0], ",", "."), 64)
			if err != nil || amount < 0 {
				return fmt.Errorf("invalid budget amount %q", args[0])
			}

			user, err := app.budget.UpdateBudget(cmd.Context(), amount)
			if err != nil {
				return failure(app, err, "failed to update budget", nil)
			}
			return writeBudget(cmd, user, asJSON)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.budget.DeleteBudget(cmd.Context())
			if err != nil {
				return failure(app, err, "failed to delete budget", nil)
			}
			return writeBudget(cmd, user, asJSON)
		},
	}

	cmd.AddCommand(show, set, clearCmd)
	return withAccess(cmd, application.AccessRequiresAuth)
}

type budgetOutput struct {
	Budget    *string `json:"budget"`
	Spent     string  `json:"spent"`
	Remaining *string `json:"remaining"`
}

func writeBudget(cmd *cobra.Command, user domain.User, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, budgetOutput{Budget: user.Budget, Spent: user.Spent, Remaining: user.Remaining})
	}
	rendered, err := list.RenderBudget(user)
	if err != nil {
		return fmt.Errorf("render budget: %w", err)
	}
	return writeLine(cmd, "%s", rendered)
}
