package frameloop

import (
	"context"
	"time"
)

// Run calls fn once per frame interval until ctx is done or fn fails.
// A non-positive interval runs frames back to back.
func Run(ctx context.Context, every time.Duration, fn func(now time.Time) error) error {
	if every <= 0 {
		for {
			if err := ctx.Err(); err != nil {
				return context.Cause(ctx)
			}
			if err := fn(time.Now()); err != nil {
				return err
			}
		}
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case now := <-ticker.C:
			if err := fn(now); err != nil {
				return err
			}
		}
	}
}
