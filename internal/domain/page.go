package domain

import (
	"fmt"
	"strings"
)

const (
	MaxPageSize     = 100
	DefaultPageSize = 10
)

type SortOrder string

const (
	SortDefault SortOrder = "default"
	SortAsc     SortOrder = "asc"
	SortDesc    SortOrder = "desc"
)

func ParseSortOrder(raw string) (SortOrder, error) {
	switch order := SortOrder(strings.ToLower(strings.TrimSpace(raw))); order {
	case "", SortDefault:
		return SortDefault, nil
	case SortAsc, SortDesc:
		return order, nil
	default:
		return "", fmt.Errorf("unsupported sort order %q", raw)
	}
}

// ListParams maps to the sort, limit and page query parameters. Zero values
// are omitted so the server applies its defaults.
type ListParams struct {
	Sort  SortOrder
	Limit int
	Page  int
}

func (p ListParams) Validate() error {
	if p.Limit != 0 && (p.Limit < 1 || p.Limit > MaxPageSize) {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.Limit)
	}
	if p.Page < 0 {
		return fmt.Errorf("page must be positive: got %d", p.Page)
	}
	return nil
}

type PageMeta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
}

type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}
