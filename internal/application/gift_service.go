package application

import (
	"context"
	"fmt"

	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/bnema/giftbox-cli/internal/ports"
)

type GiftBackend = ports.CollectionBackend[domain.Gift, domain.GiftCreate, domain.GiftUpdate]

type RecipientBackend = ports.CollectionBackend[domain.Recipient, domain.RecipientCreate, domain.RecipientUpdate]

// GiftService keeps the local gift list. Gift changes move the budget's
// spent and remaining amounts, so each mutation refreshes the user.
type GiftService struct {
	*Collection[domain.Gift, domain.GiftCreate, domain.GiftUpdate]
}

func NewGiftService(backend GiftBackend, auth *AuthService) *GiftService {
	var changed func(context.Context)
	if auth != nil {
		changed = auth.RefreshUser
	}
	return &GiftService{Collection: newCollection(backend, changed)}
}

func (s *GiftService) UpdateStatus(ctx context.Context, id string, status domain.GiftStatus) (domain.Gift, error) {
	if !status.Valid() {
		return domain.Gift{}, fmt.Errorf("unsupported gift status %q", status)
	}
	return s.Update(ctx, id, domain.GiftUpdate{Status: &status})
}

// ForRecipient filters the locally held gifts by recipient.
func (s *GiftService) ForRecipient(recipientID string) []domain.Gift {
	gifts := s.Items()
	matched := make([]domain.Gift, 0, len(gifts))
	for _, gift := range gifts {
		for _, id := range gift.RecipientIDs {
			if sameID(id, recipientID) {
				matched = append(matched, gift)
				break
			}
		}
	}
	return matched
}

type RecipientService struct {
	*Collection[domain.Recipient, domain.RecipientCreate, domain.RecipientUpdate]
}

func NewRecipientService(backend RecipientBackend) *RecipientService {
	return &RecipientService{Collection: newCollection(backend, nil)}
}
