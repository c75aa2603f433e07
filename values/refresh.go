// refresh.go provides background refresh of cached value lists.
//
// Catalogs change while the process runs (new notification states, new
// seccional offices), so long-lived deployments can reload their cached
// lists on an interval instead of restarting. The loop is context-aware
// for graceful shutdown and logs progress; a failed cycle keeps serving
// the previous lists.
package values

import (
	"context"
	"time"
)

// StartRefresh starts a background goroutine that reloads every cached
// value list each interval. An interval of zero or less disables the loop.
// The loop stops when the context is cancelled.
func (r *Registry) StartRefresh(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go r.refreshLoop(ctx, interval)
}

func (r *Registry) refreshLoop(ctx context.Context, interval time.Duration) {
	r.logger.Info("value list refresh started", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("value list refresh stopped")
			return
		case <-ticker.C:
			r.runRefresh(ctx)
		}
	}
}

// runRefresh performs one reload cycle.
func (r *Registry) runRefresh(ctx context.Context) {
	start := time.Now()
	if err := r.Reload(ctx); err != nil {
		r.logger.Error("value list reload failed", "error", err)
		return
	}
	r.logger.Info("value lists reloaded",
		"lists", len(r.Known()),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
