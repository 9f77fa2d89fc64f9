package cmd

import (
	"context"
	"errors"

	"github.com/bnema/giftbox-cli/internal/application"
	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/spf13/cobra"
)

const accessAnnotation = "giftbox/access"

func Execute() error {
	rootCmd, app := newRootCmd()
	err := rootCmd.Execute()
	app.close(context.Background())
	return err
}

type rootOptions struct {
	profile  string
	baseURL  string
	logLevel string
}

// newRootCmd builds the command tree. The returned app is wired lazily once
// flags are parsed; callers close it after Execute so cookie changes are
// kept even when the command failed.
func newRootCmd() (*cobra.Command, *app) {
	var opts rootOptions
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "gb",
		Short:         "giftbox CLI (gb): manage gift ideas, recipients and your budget",
		Long:          "gb talks to a giftbox server: sign in once, then track gifts through their statuses, keep a list of recipients, and watch what is left of your budget.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if accessOf(cmd) == accessNone {
				return nil
			}

			cfg, err := loadConfig(map[string]string{
				keyProfile:  opts.profile,
				keyBaseURL:  opts.baseURL,
				keyLogLevel: opts.logLevel,
			})
			if err != nil {
				return err
			}

			wired, err := wireApp(cmd.Context(), cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *wired

			return guardError(app.guard.Check(cmd.Context(), accessOf(cmd)))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.profile, "profile", "", "Profile name (env GB_PROFILE, default \"default\")")
	flags.StringVar(&opts.baseURL, "api-url", "", "giftbox server URL (env GB_API_BASE_URL)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env GB_LOG_LEVEL)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newGiftCmd(app),
		newRecipientCmd(app),
		newBudgetCmd(app),
		newUserCmd(app),
		newProfileCmd(app),
	)

	return rootCmd, app
}

// accessNone marks commands that need no wiring at all, like version.
const accessNone application.Access = "none"

func withAccess(cmd *cobra.Command, access application.Access) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[accessAnnotation] = string(access)
	return cmd
}

// accessOf returns the nearest access level declared on cmd or a parent.
func accessOf(cmd *cobra.Command) application.Access {
	for c := cmd; c != nil; c = c.Parent() {
		if access, ok := c.Annotations[accessAnnotation]; ok {
			return application.Access(access)
		}
	}
	return application.AccessPublic
}

func guardError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrAuthRequired):
		return errors.New("not signed in: run `gb auth login` first")
	case errors.Is(err, domain.ErrAlreadyAuthenticated):
		return errors.New("already signed in: run `gb auth logout` first")
	default:
		return err
	}
}
