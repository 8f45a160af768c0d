// Package latency provides the artificial delays that pace the mock services.
package latency

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done. A non-positive d returns at once
// unless ctx is already cancelled.
func Wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
