package domain

// unset is the sentinel type written into a caller's field when a child
// finished without setting a declared output slot.
type unset struct{}

func (unset) String() string { return "<unset>" }

// Unset is the explicit sentinel value for missing outputs. Callers can test
// a bound field with `v == domain.Unset`.
var Unset = unset{}

// Arg is a call-site argument expression: either a literal value or a
// back-reference into the calling node's own blackboard.
type Arg struct {
	ref   string
	lit   any
	isRef bool
}

// Lit wraps a literal argument value.
func Lit(v any) Arg { return Arg{lit: v} }

// Ref references the named field on the calling node's blackboard. The field
// is read at bind time, just before the child's first tick.
func Ref(name string) Arg { return Arg{ref: name, isRef: true} }

// IsRef reports whether the argument is a back-reference.
func (a Arg) IsRef() bool { return a.isRef }

// RefName returns the referenced field name; empty for literals.
func (a Arg) RefName() string { return a.ref }

// Value returns the literal value; nil for back-references.
func (a Arg) Value() any { return a.lit }

// Blackboard is a node's named-field store. Parameter binding reads and
// writes node fields exclusively through it.
type Blackboard struct {
	fields map[string]any
}

// NewBlackboard creates an empty blackboard.
func NewBlackboard() *Blackboard {
	return &Blackboard{fields: make(map[string]any)}
}

// Get returns the named field and whether it exists.
func (b *Blackboard) Get(name string) (any, bool) {
	v, ok := b.fields[name]
	return v, ok
}

// Set writes the named field.
func (b *Blackboard) Set(name string, v any) {
	b.fields[name] = v
}

// Has reports whether the named field exists.
func (b *Blackboard) Has(name string) bool {
	_, ok := b.fields[name]
	return ok
}

// Delete removes the named field.
func (b *Blackboard) Delete(name string) {
	delete(b.fields, name)
}

// Snapshot returns a copy of all fields, for introspection.
func (b *Blackboard) Snapshot() map[string]any {
	out := make(map[string]any, len(b.fields))
	for k, v := range b.fields {
		out[k] = v
	}
	return out
}
