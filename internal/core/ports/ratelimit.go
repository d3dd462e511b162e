package ports

import "context"

// LoginLimiter throttles repeated login attempts per username. Allow
// reports whether another attempt may proceed; implementations should fail
// open when the backing store is unreachable.
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
}
