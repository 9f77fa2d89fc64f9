package api

import (
	"context"
	"fmt"

	"github.com/bnema/giftbox-cli/internal/domain"
)

type pageFunc[T any] func(ctx context.Context, params domain.ListParams) (domain.Page[T], error)

// FetchAll requests pages 1..totalPages with the largest page size and
// concatenates items in server order. It stops after the first page when the
// server reports zero or one page.
func FetchAll[T any](ctx context.Context, sort domain.SortOrder, list pageFunc[T]) ([]T, error) {
	items := []T{}
	for page := 1; ; page++ {
		result, err := list(ctx, domain.ListParams{Sort: sort, Limit: domain.MaxPageSize, Page: page})
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		items = append(items, result.Items...)
		if page >= result.Meta.TotalPages {
			return items, nil
		}
	}
}
