package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bnema/giftbox-cli/internal/domain"
)

// resource implements the CRUD surface shared by gifts and recipients.
// T is the record, C the create payload and U the partial update payload.
type resource[T, C, U any] struct {
	client     *Client
	collection string
}

func (r resource[T, C, U]) Create(ctx context.Context, payload C) (T, error) {
	var created T
	err := r.client.do(ctx, request{
		method:        http.MethodPost,
		segments:      []string{r.collection},
		body:          payload,
		authenticated: true,
	}, &created)
	if err != nil {
		return created, fmt.Errorf("create %s: %w", r.collection, err)
	}
	return created, nil
}

func (r resource[T, C, U]) List(ctx context.Context, params domain.ListParams) (domain.Page[T], error) {
	if err := params.Validate(); err != nil {
		return domain.Page[T]{}, err
	}

	var page domain.Page[T]
	err := r.client.do(ctx, request{
		method:        http.MethodGet,
		segments:      []string{r.collection},
		query:         listQuery(params),
		authenticated: true,
	}, &page)
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("list %s: %w", r.collection, err)
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	return page, nil
}

// ListAll walks every page in order. Concurrent writes on the server can
// shift items between pages while it runs.
func (r resource[T, C, U]) ListAll(ctx context.Context, sort domain.SortOrder) ([]T, error) {
	return FetchAll[T](ctx, sort, r.List)
}

func (r resource[T, C, U]) Get(ctx context.Context, id string) (T, error) {
	var record T
	normalized, err := domain.NormalizeID(id)
	if err != nil {
		return record, err
	}

	err = r.client.do(ctx, request{
		method:        http.MethodGet,
		segments:      []string{r.collection, normalized},
		authenticated: true,
	}, &record)
	if err != nil {
		return record, fmt.Errorf("get %s %s: %w", r.collection, normalized, err)
	}
	return record, nil
}

func (r resource[T, C, U]) Update(ctx context.Context, id string, patch U) (T, error) {
	var record T
	normalized, err := domain.NormalizeID(id)
	if err != nil {
		return record, err
	}

	err = r.client.do(ctx, request{
		method:        http.MethodPatch,
		segments:      []string{r.collection, normalized},
		body:          patch,
		authenticated: true,
	}, &record)
	if err != nil {
		return record, fmt.Errorf("update %s %s: %w", r.collection, normalized, err)
	}
	return record, nil
}

func (r resource[T, C, U]) Delete(ctx context.Context, id string) error {
	normalized, err := domain.NormalizeID(id)
	if err != nil {
		return err
	}

	err = r.client.do(ctx, request{
		method:        http.MethodDelete,
		segments:      []string{r.collection, normalized},
		authenticated: true,
	}, nil)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", r.collection, normalized, err)
	}
	return nil
}

func listQuery(params domain.ListParams) url.Values {
	query := url.Values{}
	if params.Sort != "" {
		query.Set("sort", string(params.Sort))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	return query
}

type GiftsAPI struct {
	resource[domain.Gift, domain.GiftCreate, domain.GiftUpdate]
}

type RecipientsAPI struct {
	resource[domain.Recipient, domain.RecipientCreate, domain.RecipientUpdate]
}
