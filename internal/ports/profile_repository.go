package ports

import (
	"context"

	"github.com/bnema/giftbox-cli/internal/domain"
)

type ProfileRepository interface {
	GetByName(ctx context.Context, name string) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
}
