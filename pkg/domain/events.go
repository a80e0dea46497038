package domain

import "time"

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
}

// TickEvent is emitted when the dispatcher advances a child.
type TickEvent struct {
	EventBase
	Node   string     `json:"node"`
	Status NodeStatus `json:"status"` // status before the tick
}

// ContingencyEvent is emitted when a registered reaction fires.
type ContingencyEvent struct {
	EventBase
	Node    string     `json:"node"`
	Status  NodeStatus `json:"status"`
	Message string     `json:"message"`
}

// BindWarningEvent is emitted for non-fatal binding shape mismatches
// (argument count mismatch, missing output slot, unset output value).
type BindWarningEvent struct {
	EventBase
	Node   string `json:"node"`
	Reason string `json:"reason"`
}

// LifecycleHooks defines callbacks for engine observability. All hooks are
// optional and fire-and-forget; the engine never inspects a return value.
type LifecycleHooks struct {
	OnTick        func(*TickEvent)
	OnContingency func(*ContingencyEvent)
	OnBindWarning func(*BindWarningEvent)
}

// Merge combines two hook sets; both callbacks fire where both are set.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTick:        mergeHook(h.OnTick, other.OnTick),
		OnContingency: mergeHook(h.OnContingency, other.OnContingency),
		OnBindWarning: mergeHook(h.OnBindWarning, other.OnBindWarning),
	}
}

func mergeHook[E any](a, b func(E)) func(E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(e E) {
		a(e)
		b(e)
	}
}
