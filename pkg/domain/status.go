package domain

// NodeStatus defines the current execution state of a node.
type NodeStatus string

const (
	// StatusIdle marks a node that has not been ticked yet.
	StatusIdle NodeStatus = "IDLE"
	// StatusRunning marks a node that is in progress and eligible for ticking.
	StatusRunning NodeStatus = "RUNNING"
	// StatusSuspended marks a node that is paused. It is skipped by the tick
	// dispatcher but may return to RUNNING.
	StatusSuspended NodeStatus = "SUSPENDED"
	// StatusSuccess marks a node that completed successfully.
	StatusSuccess NodeStatus = "SUCCESS"
	// StatusFailure marks a node that completed with a fault. The fault
	// detail travels in the node's contingency message.
	StatusFailure NodeStatus = "FAILURE"
	// StatusAborted marks a node that was aborted.
	StatusAborted NodeStatus = "ABORTED"
	// StatusFixed marks a node whose fault was recovered by a contingency
	// reaction. Composite policies treat it like SUCCESS when advancing.
	StatusFixed NodeStatus = "FIXED"
)

// IsTickable reports whether the tick dispatcher may advance a node in this
// status. Only IDLE and RUNNING nodes receive ticks; every other status is
// passed over silently.
func (s NodeStatus) IsTickable() bool {
	return s == StatusIdle || s == StatusRunning
}

// IsTerminal reports whether the status is a completed state. SUSPENDED is
// neither tickable nor terminal.
func (s NodeStatus) IsTerminal() bool {
	switch s {
	case StatusSuccess, StatusFailure, StatusAborted, StatusFixed:
		return true
	}
	return false
}

// IsCompleted reports whether the status counts as a successful completion
// for control-flow purposes (a FIXED child resumes the parent's flow).
func (s NodeStatus) IsCompleted() bool {
	return s == StatusSuccess || s == StatusFixed
}
