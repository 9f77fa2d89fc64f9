package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/giftbox-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/giftbox-cli/internal/adapters/secrets/pass"
	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/bnema/giftbox-cli/internal/ports"
	"github.com/rs/zerolog"
)

// Store writes to the primary backend and falls back when it fails. Reads
// consult the fallback when the primary fails or holds no entry, so secrets
// written during an outage of the primary remain reachable.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
	logger   zerolog.Logger
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore, logger zerolog.Logger) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback, logger: logger}, nil
}

// NewPassFirstWithFileFallback prefers pass and keeps 0600 files under
// fileRoot for machines without it.
func NewPassFirstWithFileFallback(fileRoot string, logger zerolog.Logger) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot), logger)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if isContextError(err) {
		return err
	}

	s.logger.Debug().Err(err).Str("key", key).Msg("primary secret store put failed, using fallback")
	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("primary secret put failed: %w; fallback secret put failed: %w", err, fallbackErr)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isContextError(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}
	if errors.Is(err, domain.ErrSecretNotFound) && errors.Is(fallbackErr, domain.ErrSecretNotFound) {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}

	return "", fmt.Errorf("primary secret get failed: %w; fallback secret get failed: %w", err, fallbackErr)
}

// Delete removes key from both backends so a stale fallback entry cannot
// resurface on the next read.
func (s *Store) Delete(ctx context.Context, key string) error {
	primaryErr := s.primary.Delete(ctx, key)
	if isContextError(primaryErr) {
		return primaryErr
	}
	fallbackErr := s.fallback.Delete(ctx, key)

	if primaryErr != nil && fallbackErr != nil {
		return fmt.Errorf("primary secret delete failed: %w; fallback secret delete failed: %w", primaryErr, fallbackErr)
	}
	if primaryErr != nil {
		s.logger.Debug().Err(primaryErr).Str("key", key).Msg("primary secret store delete failed")
	}
	return nil
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
