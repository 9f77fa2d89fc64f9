package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/giftbox-cli/internal/adapters/render/list"
	"github.com/bnema/giftbox-cli/internal/application"
	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRecipientCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recipient",
		Aliases: []string{"recipients"},
		Short:   "Manage the people you give gifts to",
	}

	cmd.AddCommand(
		newRecipientListCmd(app),
		newRecipientGetCmd(app),
		newRecipientAddCmd(app),
		newRecipientUpdateCmd(app),
		newRecipientRemoveCmd(app),
	)
	return withAccess(cmd, application.AccessRequiresAuth)
}

func newRecipientListCmd(app *app) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recipients",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := opts.params()
			if err != nil {
				return err
			}

			err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching recipients...", opts.asJSON, func(ctx context.Context) error {
				if opts.all {
					_, err := app.recipients.FetchAll(ctx, params.Sort)
					return err
				}
				_, err := app.recipients.FetchPage(ctx, params)
				return err
			})
			if err != nil {
				return failure(app, err, "failed to fetch recipients", nil)
			}

			out := pageOutput[domain.Recipient]{Items: app.recipients.Items()}
			if meta, ok := app.recipients.Meta(); ok {
				out.Meta = &meta
			}
			if opts.asJSON {
				return writeJSON(cmd, out)
			}

			rendered, err := list.RenderRecipients(out.Items, out.Meta)
			if err != nil {
				return fmt.Errorf("render recipients: %w", err)
			}
			return writeLine(cmd, "%s", rendered)
		},
	}

	opts.register(cmd)
	return cmd
}

func newRecipientGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show one recipient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipient, err := app.recipients.FetchByID(cmd.Context(), args[0])
			if err != nil {
				return failure(app, err, "failed to fetch recipient", nil)
			}
			return writeRecipient(cmd, recipient, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newRecipientAddCmd(app *app) *cobra.Command {
	var name, notes string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload := domain.RecipientCreate{Name: strings.TrimSpace(name)}
			if payload.Name == "" {
				return errors.New("recipient name is required")
			}
			if cmd.Flags().Changed("notes") {
				payload.Notes = &notes
			}

			recipient, err := app.recipients.Create(cmd.Context(), payload)
			if err != nil {
				return failure(app, err, "failed to create recipient", nil)
			}
			return writeRecipient(cmd, recipient, asJSON)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Recipient name")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newRecipientUpdateCmd(app *app) *cobra.Command {
	var name, notes string
	var clearNotes, asJSON bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a recipient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.RecipientUpdate
			if cmd.Flags().Changed("name") {
				trimmed := strings.TrimSpace(name)
				if trimmed == "" {
					return errors.New("recipient name cannot be empty")
				}
				patch.Name = &trimmed
			}
			switch {
			case clearNotes:
				patch.Notes = domain.Null[string]()
			case cmd.Flags().Changed("notes"):
				patch.Notes = domain.Value(notes)
			}
			if patch.Name == nil && patch.Notes.IsZero() {
				return errors.New("nothing to update")
			}

			recipient, err := app.recipients.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return failure(app, err, "failed to update recipient", nil)
			}
			return writeRecipient(cmd, recipient, asJSON)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Recipient name")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().BoolVar(&clearNotes, "clear-notes", false, "Remove the notes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.MarkFlagsMutuallyExclusive("notes", "clear-notes")
	return cmd
}

func newRecipientRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a recipient",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.recipients.Remove(cmd.Context(), args[0]); err != nil {
				return failure(app, err, "failed to delete recipient", nil)
			}
			return writeLine(cmd, "Recipient deleted.")
		},
	}
}

func writeRecipient(cmd *cobra.Command, recipient domain.Recipient, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, recipient)
	}
	rendered, err := list.RenderRecipient(recipient)
	if err != nil {
		return fmt.Errorf("render recipient: %w", err)
	}
	return writeLine(cmd, "%s", rendered)
}
