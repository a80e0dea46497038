package control

import (
	"time"

	"github.com/aretw0/copse/pkg/domain"
)

// BindInputs resolves the call-site arguments of a child that has not been
// ticked yet and writes them into the child's declared input slots, in
// order. Literal arguments are used as-is; back-references read the
// same-named field on this node's blackboard.
//
// Shape mismatches are non-fatal: if the number of supplied arguments
// differs from the number of declared slots, one warning is emitted and
// binding proceeds over the shorter of the two lengths.
func (c *ControlNode) BindInputs(ec *domain.ExecutionContext) {
	declared := ec.Instance.InSlots()
	if len(ec.CallIn) != len(declared) {
		c.bindWarn(ec, "argument count mismatch",
			"declared", len(declared), "provided", len(ec.CallIn))
	}

	n := min(len(ec.CallIn), len(declared))
	for i := 0; i < n; i++ {
		arg := ec.CallIn[i]
		value := arg.Value()
		if arg.IsRef() {
			v, ok := c.Blackboard().Get(arg.RefName())
			if !ok {
				c.bindWarn(ec, "input reference not set", "field", arg.RefName())
				continue
			}
			value = v
		}
		ec.Instance.Blackboard().Set(declared[i], value)
	}
}

// BindOutputs reflects the declared output slots of a finished child back
// into this node's blackboard, in order. A slot with no caller-side output
// name is skipped with a warning; a slot the child left unset is written as
// the explicit domain.Unset sentinel, also with a warning.
//
// Binding is purely positional and one-way: outputs flow child to parent
// and never touch the child's own slots.
func (c *ControlNode) BindOutputs(ec *domain.ExecutionContext) {
	for i, slot := range ec.Instance.OutSlots() {
		if len(ec.CallOut) <= i {
			c.bindWarn(ec, "output not provided", "index", i, "slot", slot)
			continue
		}
		v, ok := ec.Instance.Blackboard().Get(slot)
		if !ok || v == nil {
			c.bindWarn(ec, "output not set", "slot", slot)
			c.Blackboard().Set(ec.CallOut[i], domain.Unset)
			continue
		}
		c.Blackboard().Set(ec.CallOut[i], v)
	}
}

// bindWarn logs a binding shape mismatch and notifies the bind-warning hook.
func (c *ControlNode) bindWarn(ec *domain.ExecutionContext, reason string, args ...any) {
	c.Logger().Warn(reason, append([]any{"node", ec.NodeName}, args...)...)
	if c.hooks.OnBindWarning != nil {
		c.hooks.OnBindWarning(&domain.BindWarningEvent{
			EventBase: domain.EventBase{Timestamp: time.Now()},
			Node:      ec.NodeName,
			Reason:    reason,
		})
	}
}
