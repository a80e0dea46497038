package domain

// ExecutionContext binds one child invocation: the child's type identity,
// its live instance, the positional arguments supplied at the call site and
// the caller-side field names its outputs are written back into.
//
// Position i of CallIn corresponds to the child's i-th declared input slot;
// position i of CallOut corresponds to the child's i-th declared output slot.
type ExecutionContext struct {
	// NodeName is the child's type identity, captured at creation.
	NodeName string

	// Instance is the live child object. The control core reads its status
	// and blackboard but never replaces it.
	Instance Node

	// CallIn holds the argument expressions for the child's input slots.
	CallIn []Arg

	// CallOut holds the caller-side field names for the child's output slots.
	CallOut []string
}

// NewExecutionContext creates the binding record for one child invocation.
func NewExecutionContext(instance Node, in []Arg, out []string) *ExecutionContext {
	return &ExecutionContext{
		NodeName: instance.Name(),
		Instance: instance,
		CallIn:   in,
		CallOut:  out,
	}
}
