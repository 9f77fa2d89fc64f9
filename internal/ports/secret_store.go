package ports

import "context"

// SecretStore holds opaque values such as the persisted refresh cookie jar.
// Get reports a missing key with domain.ErrSecretNotFound.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
