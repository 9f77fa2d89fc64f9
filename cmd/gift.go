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

func newGiftCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gift",
		Aliases: []string{"gifts"},
		Short:   "Track gift ideas through to the day they are given",
	}

	cmd.AddCommand(
		newGiftListCmd(app),
		newGiftGetCmd(app),
		newGiftAddCmd(app),
		newGiftUpdateCmd(app),
		newGiftStatusCmd(app),
		newGiftRemoveCmd(app),
	)
	return withAccess(cmd, application.AccessRequiresAuth)
}

type listOptions struct {
	page   int
	limit  int
	sort   string
	all    bool
	asJSON bool
}

func (o *listOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.page, "page", 1, "Page number")
	cmd.Flags().IntVar(&o.limit, "limit", domain.DefaultPageSize, fmt.Sprintf("Items per page (max %d)", domain.MaxPageSize))
	cmd.Flags().StringVar(&o.sort, "sort", "", "Sort order: asc or desc")
	cmd.Flags().BoolVar(&o.all, "all", false, "Fetch every page")
	cmd.Flags().BoolVar(&o.asJSON, "json", false, "Render JSON output")
}

func (o listOptions) params() (domain.ListParams, error) {
	sort, err := domain.ParseSortOrder(o.sort)
	if err != nil {
		return domain.ListParams{}, err
	}
	params := domain.ListParams{Page: o.page, Limit: o.limit, Sort: sort}
	return params, params.Validate()
}

type pageOutput[T any] struct {
	Items []T              `json:"items"`
	Meta  *domain.PageMeta `json:"meta,omitempty"`
}

func newGiftListCmd(app *app) *cobra.Command {
	var opts listOptions
	var recipient string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List gifts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := opts.params()
			if err != nil {
				return err
			}
			if recipient != "" {
				if recipient, err = domain.NormalizeID(recipient); err != nil {
					return err
				}
			}

			// A recipient filter applies to every gift, not one page.
			fetchAll := opts.all || recipient != ""
			err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching gifts...", opts.asJSON, func(ctx context.Context) error {
				if fetchAll {
					_, err := app.gifts.FetchAll(ctx, params.Sort)
					return err
				}
				_, err := app.gifts.FetchPage(ctx, params)
				return err
			})
			if err != nil {
				return failure(app, err, "failed to fetch gifts", nil)
			}

			out := pageOutput[domain.Gift]{Items: app.gifts.Items()}
			if recipient != "" {
				out.Items = app.gifts.ForRecipient(recipient)
			}
			if meta, ok := app.gifts.Meta(); ok {
				out.Meta = &meta
			}
			if opts.asJSON {
				return writeJSON(cmd, out)
			}

			rendered, err := list.RenderGifts(out.Items, out.Meta)
			if err != nil {
				return fmt.Errorf("render gifts: %w", err)
			}
			return writeLine(cmd, "%s", rendered)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&recipient, "recipient", "", "Only gifts for this recipient ID (fetches every page)")
	return cmd
}

func newGiftGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show one gift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gift, err := app.gifts.FetchByID(cmd.Context(), args[0])
			if err != nil {
				return failure(app, err, "failed to fetch gift", nil)
			}
			return writeGift(cmd, gift, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

type giftFlags struct {
	name       string
	url        string
	price      float64
	status     string
	quantity   int
	recipients []string
	clearURL   bool
	clearPrice bool
	asJSON     bool
}

func (f *giftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Gift name")
	cmd.Flags().StringVar(&f.url, "url", "", "Where to buy it")
	cmd.Flags().Float64Var(&f.price, "price", 0, "Price")
	cmd.Flags().StringVar(&f.status, "status", "", "Status: "+statusChoices())
	cmd.Flags().IntVar(&f.quantity, "quantity", 1, "Quantity")
	cmd.Flags().StringSliceVar(&f.recipients, "recipient", nil, "Recipient ID (repeatable)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Render JSON output")
}

func (f giftFlags) create(cmd *cobra.Command) (domain.GiftCreate, error) {
	payload := domain.GiftCreate{Name: strings.TrimSpace(f.name)}
	if payload.Name == "" {
		return payload, errors.New("gift name is required")
	}
	if cmd.Flags().Changed("url") {
		payload.URL = &f.url
	}
	if cmd.Flags().Changed("price") {
		payload.Price = &f.price
	}
	if cmd.Flags().Changed("status") {
		status, err := domain.ParseGiftStatus(f.status)
		if err != nil {
			return payload, err
		}
		payload.Status = status
	}
	if cmd.Flags().Changed("quantity") {
		if f.quantity < 1 {
			return payload, errors.New("quantity must be at least 1")
		}
		payload.Quantity = f.quantity
	}
	ids, err := normalizeIDs(f.recipients)
	if err != nil {
		return payload, err
	}
	payload.RecipientIDs = ids
	return payload, nil
}

func (f giftFlags) update(cmd *cobra.Command) (domain.GiftUpdate, error) {
	var patch domain.GiftUpdate
	changed := false
	if cmd.Flags().Changed("name") {
		name := strings.TrimSpace(f.name)
		if name == "" {
			return patch, errors.New("gift name cannot be empty")
		}
		patch.Name = &name
		changed = true
	}
	switch {
	case f.clearURL:
		patch.URL = domain.Null[string]()
		changed = true
	case cmd.Flags().Changed("url"):
		patch.URL = domain.Value(f.url)
		changed = true
	}
	switch {
	case f.clearPrice:
		patch.Price = domain.Null[float64]()
		changed = true
	case cmd.Flags().Changed("price"):
		patch.Price = domain.Value(f.price)
		changed = true
	}
	if cmd.Flags().Changed("status") {
		status, err := domain.ParseGiftStatus(f.status)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
		changed = true
	}
	if cmd.Flags().Changed("quantity") {
		if f.quantity < 1 {
			return patch, errors.New("quantity must be at least 1")
		}
		patch.Quantity = &f.quantity
		changed = true
	}
	if cmd.Flags().Changed("recipient") {
		ids, err := normalizeIDs(f.recipients)
		if err != nil {
			return patch, err
		}
		patch.RecipientIDs = &ids
		changed = true
	}
	if !changed {
		return patch, errors.New("nothing to update")
	}
	return patch, nil
}

func newGiftAddCmd(app *app) *cobra.Command {
	var flags giftFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a gift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, err := flags.create(cmd)
			if err != nil {
				return err
			}

			gift, err := app.gifts.Create(cmd.Context(), payload)
			if err != nil {
				return failure(app, err, "failed to create gift", nil)
			}
			return writeGift(cmd, gift, flags.asJSON)
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newGiftUpdateCmd(app *app) *cobra.Command {
	var flags giftFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a gift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := flags.update(cmd)
			if err != nil {
				return err
			}

			gift, err := app.gifts.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return failure(app, err, "failed to update gift", nil)
			}
			return writeGift(cmd, gift, flags.asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.clearURL, "clear-url", false, "Remove the link")
	cmd.Flags().BoolVar(&flags.clearPrice, "clear-price", false, "Remove the price")
	cmd.MarkFlagsMutuallyExclusive("url", "clear-url")
	cmd.MarkFlagsMutuallyExclusive("price", "clear-price")
	return cmd
}

func newGiftStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Move a gift to another status (" + statusChoices() + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseGiftStatus(args[1])
			if err != nil {
				return err
			}

			gift, err := app.gifts.UpdateStatus(cmd.Context(), args[0], status)
			if err != nil {
				return failure(app, err, "failed to update gift", nil)
			}
			return writeGift(cmd, gift, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newGiftRemoveCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a gift",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.gifts.Remove(cmd.Context(), args[0]); err != nil {
				return failure(app, err, "failed to delete gift", nil)
			}
			return writeLine(cmd, "Gift deleted.")
		},
	}
	return cmd
}

func writeGift(cmd *cobra.Command, gift domain.Gift, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, gift)
	}
	rendered, err := list.RenderGift(gift)
	if err != nil {
		return fmt.Errorf("render gift: %w", err)
	}
	return writeLine(cmd, "%s", rendered)
}

func statusChoices() string {
	statuses := domain.GiftStatuses()
	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		names = append(names, string(status))
	}
	return strings.Join(names, ", ")
}

func normalizeIDs(raw []string) ([]string, error) {
	ids := make([]string, 0, len(raw))
	for _, value := range raw {
		id, err := domain.NormalizeID(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
