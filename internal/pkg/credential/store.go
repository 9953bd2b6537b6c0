package credential

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("credential not found")

// Store keeps one opaque credential per key. It outlives page reloads and is
// cleared on logout.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, credential string, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
