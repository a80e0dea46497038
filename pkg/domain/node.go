package domain

import "context"

// Node is the capability surface the control core consumes from every node
// instance: status, tick entry point, abort, the free-text contingency
// message and named-field access for parameter binding.
type Node interface {
	// Name returns the node's type identity, e.g. "AddTwo". Contingency
	// handlers match against this name.
	Name() string

	Status() NodeStatus
	SetStatus(NodeStatus)

	// ContingencyMessage carries the free-text fault detail a node reports
	// alongside a FAILURE (or other) status. Empty when nothing went wrong.
	ContingencyMessage() string
	SetContingencyMessage(string)

	// Tick advances the node by one unit of execution progress. Status
	// transitions are the node's own responsibility; callers gate ticking
	// on Status().IsTickable() but never change the status themselves.
	Tick(ctx context.Context)

	// Abort cancels the node. Its effect on status is defined by the node.
	Abort()

	// Blackboard exposes the node's named fields for parameter binding.
	Blackboard() *Blackboard

	// InSlots and OutSlots declare the node's ordered parameter slots.
	// Position i of a caller's argument list binds to the i-th input slot;
	// position i of a caller's output list receives the i-th output slot.
	InSlots() []string
	OutSlots() []string
}

// ChildLister is implemented by nodes that own child execution contexts
// (control nodes). Introspection surfaces walk trees through it.
type ChildLister interface {
	Children() []*ExecutionContext
}
