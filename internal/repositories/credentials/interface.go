package credentials

import (
	"context"
)

// Repository is a small key-value store for persisted credentials
// (username, sealed refresh token). The access token never goes through it.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
