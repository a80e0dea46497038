// Package runner drives a behavior tree: it ticks the root node at a fixed
// rate until the root reaches a terminal status or the context is cancelled.
package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/copse/internal/logging"
	"github.com/aretw0/copse/pkg/domain"
)

// DefaultTickRate is the delay between two tree cycles when none is set.
const DefaultTickRate = 50 * time.Millisecond

// Runner executes one tree synchronously. A tick is a single call chain into
// the root; nothing suspends mid-tick and the runner never schedules work
// itself between cycles.
type Runner struct {
	tickRate time.Duration
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
}

// Option configures a Runner.
type Option func(*Runner)

// WithTickRate sets the delay between tree cycles.
func WithTickRate(d time.Duration) Option {
	return func(r *Runner) { r.tickRate = d }
}

// WithLogger sets the runner's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithHooks installs lifecycle hooks observed from the run loop. The runner
// fires OnTick once per cycle with the root's status before the tick;
// per-child hooks remain the control node's responsibility.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) { r.hooks = hooks }
}

// New creates a runner with default settings (50ms tick rate, no-op logger).
func New(opts ...Option) *Runner {
	r := &Runner{
		tickRate: DefaultTickRate,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run ticks the root until it reaches a terminal status and returns that
// status. On context cancellation the root is aborted and the context error
// is returned alongside the resulting status.
func (r *Runner) Run(ctx context.Context, root domain.Node) (domain.NodeStatus, error) {
	r.logger.Info("running tree", "root", root.Name(), "tick_rate", r.tickRate)

	ticker := time.NewTicker(r.tickRate)
	defer ticker.Stop()

	for cycle := 0; ; cycle++ {
		r.logger.Log(ctx, logging.LevelTrace, "tick", "cycle", cycle, "status", root.Status())
		if r.hooks.OnTick != nil {
			r.hooks.OnTick(&domain.TickEvent{
				EventBase: domain.EventBase{Timestamp: time.Now()},
				Node:      root.Name(),
				Status:    root.Status(),
			})
		}
		root.Tick(ctx)

		if status := root.Status(); status.IsTerminal() {
			r.logger.Info("tree finished",
				"root", root.Name(), "status", status, "cycles", cycle+1)
			return status, nil
		}

		select {
		case <-ctx.Done():
			r.logger.Warn("run cancelled", "root", root.Name(), "err", ctx.Err())
			root.Abort()
			return root.Status(), ctx.Err()
		case <-ticker.C:
		}
	}
}
