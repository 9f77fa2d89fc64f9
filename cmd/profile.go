package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/giftbox-cli/internal/adapters/render/list"
	"github.com/bnema/giftbox-cli/internal/application"
	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect local profiles",
	}

	var asJSON bool
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List profiles that have signed in on this machine",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.profiles.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("load profiles: %w", err)
			}
			if asJSON {
				return writeJSON(cmd, profiles)
			}

			rendered, err := list.RenderProfiles(profiles, app.cfg.Profile)
			if err != nil {
				return fmt.Errorf("render profiles: %w", err)
			}
			return writeLine(cmd, "%s", rendered)
		},
	}
	listCmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	cmd.AddCommand(listCmd, newProfileShowCmd(app))
	return withAccess(cmd, application.AccessPublic)
}

func newProfileShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [NAME]",
		Short: "Show one profile (the active one by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := app.cfg.Profile
			if len(args) == 1 {
				name = args[0]
			}

			profile, err := app.profiles.GetByName(cmd.Context(), name)
			if errors.Is(err, domain.ErrProfileNotFound) {
				return fmt.Errorf("no profile named %q has signed in on this machine", name)
			}
			if err != nil {
				return fmt.Errorf("load profile: %w", err)
			}
			if asJSON {
				return writeJSON(cmd, profile)
			}

			rendered, err := list.RenderProfiles([]domain.Profile{profile}, app.cfg.Profile)
			if err != nil {
				return fmt.Errorf("render profile: %w", err)
			}
			return writeLine(cmd, "%s", rendered)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}
