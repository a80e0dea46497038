package node

import (
	"context"
	"log/slog"

	"github.com/aretw0/copse/pkg/domain"
)

// TickFunc is the body of a leaf action, called once per eligible tick.
// It reports completion by calling Succeed, Fail or SetStatus on the action.
type TickFunc func(ctx context.Context, a *Action)

// Action is the leaf node base. It wraps a user tick callback and handles
// the IDLE -> RUNNING transition on the first tick.
type Action struct {
	Base
	onTick  TickFunc
	onAbort func(*Action)
}

var _ domain.Node = (*Action)(nil)

// Option configures an Action.
type Option func(*Action)

// WithInputs declares the action's ordered input slots.
func WithInputs(slots ...string) Option {
	return func(a *Action) { a.DeclareIn(slots...) }
}

// WithOutputs declares the action's ordered output slots.
func WithOutputs(slots ...string) Option {
	return func(a *Action) { a.DeclareOut(slots...) }
}

// WithLogger sets the action's logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Action) {
		if logger != nil {
			a.Base.logger = logger
		}
	}
}

// WithOnAbort registers a cleanup callback invoked before the action is
// marked ABORTED.
func WithOnAbort(fn func(*Action)) Option {
	return func(a *Action) { a.onAbort = fn }
}

// NewAction creates a leaf node with the given type identity and tick body.
func NewAction(name string, tick TickFunc, opts ...Option) *Action {
	a := &Action{
		Base:   NewBase(name, nil),
		onTick: tick,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Tick transitions the action to RUNNING on first entry and invokes the
// tick body. An action that neither succeeds nor fails stays RUNNING and is
// ticked again next cycle.
func (a *Action) Tick(ctx context.Context) {
	if a.Status() == domain.StatusIdle {
		a.SetStatus(domain.StatusRunning)
	}
	if a.onTick != nil {
		a.onTick(ctx, a)
	}
}

// Abort runs the optional cleanup callback and marks the action ABORTED.
func (a *Action) Abort() {
	if a.onAbort != nil {
		a.onAbort(a)
	}
	a.Base.Abort()
}

// Succeed marks the action SUCCESS.
func (a *Action) Succeed() {
	a.SetStatus(domain.StatusSuccess)
}

// Fail marks the action FAILURE and records the contingency message.
func (a *Action) Fail(message string) {
	a.SetStatus(domain.StatusFailure)
	a.SetContingencyMessage(message)
}
