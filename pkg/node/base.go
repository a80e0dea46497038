// Package node provides the embeddable building blocks for node
// implementations: Base, which backs the domain.Node capability surface,
// and Action, the leaf node wrapper.
package node

import (
	"context"
	"log/slog"

	"github.com/aretw0/copse/internal/logging"
	"github.com/aretw0/copse/pkg/domain"
)

// Base is the embeddable node implementation. It holds the type identity,
// status, contingency message, blackboard and declared parameter slots.
// Concrete nodes embed Base and provide their own Tick.
//
// A fresh Base starts in IDLE with an empty contingency message.
type Base struct {
	name    string
	status  domain.NodeStatus
	message string
	bb      *domain.Blackboard
	in      []string
	out     []string
	logger  *slog.Logger
}

// NewBase creates a base node with the given type identity. A nil logger
// defaults to a no-op logger.
func NewBase(name string, logger *slog.Logger) Base {
	if logger == nil {
		logger = logging.NewNop()
	}
	return Base{
		name:   name,
		status: domain.StatusIdle,
		bb:     domain.NewBlackboard(),
		logger: logger,
	}
}

// Name returns the node's type identity.
func (b *Base) Name() string { return b.name }

// Status returns the node's current status.
func (b *Base) Status() domain.NodeStatus { return b.status }

// SetStatus sets the node's status.
func (b *Base) SetStatus(s domain.NodeStatus) { b.status = s }

// ContingencyMessage returns the node's free-text fault detail.
func (b *Base) ContingencyMessage() string { return b.message }

// SetContingencyMessage sets the node's fault detail.
func (b *Base) SetContingencyMessage(msg string) { b.message = msg }

// Blackboard returns the node's named-field store.
func (b *Base) Blackboard() *domain.Blackboard { return b.bb }

// InSlots returns the declared input slots, in order.
func (b *Base) InSlots() []string { return b.in }

// OutSlots returns the declared output slots, in order.
func (b *Base) OutSlots() []string { return b.out }

// DeclareIn declares the node's ordered input slots.
func (b *Base) DeclareIn(slots ...string) { b.in = slots }

// DeclareOut declares the node's ordered output slots.
func (b *Base) DeclareOut(slots ...string) { b.out = slots }

// Abort marks the node ABORTED. Nodes needing cleanup override this.
func (b *Base) Abort() {
	b.logger.Log(context.Background(), logging.LevelTrace, "abort", "node", b.name)
	b.status = domain.StatusAborted
}

// Logger returns the node's logger.
func (b *Base) Logger() *slog.Logger { return b.logger }
