// Package control implements the dispatch-and-recovery core of the engine:
// per-tick child advancement gated by status, positional parameter binding
// between parent and child, and the contingency subsystem (registration,
// matching, invocation and the node-local fix/abort primitives).
//
// ControlNode is embedded by composite node implementations (pkg/composite).
// The composite policy decides ordering and branching; this package only
// provides the mechanics it drives.
package control

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/copse/internal/logging"
	"github.com/aretw0/copse/pkg/domain"
	"github.com/aretw0/copse/pkg/node"
)

// ControlNode owns an ordered sequence of child execution contexts, a cursor
// identifying the current child, and the contingency handler list. The
// cursor is moved by the embedding composite policy; the core only reads it
// to target the recovery primitives.
type ControlNode struct {
	node.Base
	children []*domain.ExecutionContext
	cursor   int
	handlers []handler
	hooks    domain.LifecycleHooks
}

// New creates a control node with the given type identity. A nil logger
// defaults to a no-op logger.
func New(name string, logger *slog.Logger) *ControlNode {
	return &ControlNode{Base: node.NewBase(name, logger)}
}

// SetHooks installs observability callbacks. Hooks are optional; a zero
// value disables them.
func (c *ControlNode) SetHooks(h domain.LifecycleHooks) { c.hooks = h }

// AddChild appends a child execution context. Children are ticked in the
// order they were added (subject to the composite policy).
func (c *ControlNode) AddChild(ec *domain.ExecutionContext) {
	c.children = append(c.children, ec)
}

// AppendChild schedules a child invocation with the given call-site
// arguments and output field names, and returns its execution context.
func (c *ControlNode) AppendChild(instance domain.Node, in []domain.Arg, out []string) *domain.ExecutionContext {
	ec := domain.NewExecutionContext(instance, in, out)
	c.AddChild(ec)
	return ec
}

// Children returns the child execution contexts in order.
func (c *ControlNode) Children() []*domain.ExecutionContext { return c.children }

// Cursor returns the index of the current child.
func (c *ControlNode) Cursor() int { return c.cursor }

// SetCursor moves the current-child cursor. Only the composite policy moves
// the cursor; the recovery primitives read it to pick their target.
func (c *ControlNode) SetCursor(i int) { c.cursor = i }

// CurrentChild returns the execution context at the cursor, or nil when the
// cursor is out of range.
func (c *ControlNode) CurrentChild() *domain.ExecutionContext {
	if c.cursor < 0 || c.cursor >= len(c.children) {
		return nil
	}
	return c.children[c.cursor]
}

// TickChild advances one child if its status permits. Only IDLE or RUNNING
// children are ticked; every other status is passed over silently. This is
// the sole gate controlling whether a child receives a tick, and it never
// changes the child's status itself.
func (c *ControlNode) TickChild(ctx context.Context, ec *domain.ExecutionContext) {
	status := ec.Instance.Status()
	if !status.IsTickable() {
		return
	}
	if c.hooks.OnTick != nil {
		c.hooks.OnTick(&domain.TickEvent{
			EventBase: domain.EventBase{Timestamp: time.Now()},
			Node:      ec.NodeName,
			Status:    status,
		})
	}
	ec.Instance.Tick(ctx)
}

// FixCurrentChild marks the current child FIXED. A contingency reaction
// calls this when it has recovered the fault and the control flow of the
// owning node can continue. The dispatcher does not re-tick a FIXED child;
// a reaction that wants further ticking must also set the child back to
// RUNNING.
func (c *ControlNode) FixCurrentChild() {
	c.Logger().Log(context.Background(), logging.LevelTrace,
		"fix_current_child called", "node", c.Name())
	if ec := c.CurrentChild(); ec != nil {
		ec.Instance.SetStatus(domain.StatusFixed)
	}
}

// AbortCurrentChild aborts the currently executing child. The effect on the
// child's status is defined by the child's own Abort.
func (c *ControlNode) AbortCurrentChild() {
	c.Logger().Log(context.Background(), logging.LevelTrace,
		"abort_current_child called", "node", c.Name())
	if ec := c.CurrentChild(); ec != nil {
		ec.Instance.Abort()
	}
}

// Abort aborts the current child if it is still in progress, then marks the
// control node itself ABORTED.
func (c *ControlNode) Abort() {
	if ec := c.CurrentChild(); ec != nil && ec.Instance.Status().IsTickable() {
		ec.Instance.Abort()
	}
	c.Base.Abort()
}
