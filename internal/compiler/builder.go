package compiler

import (
	"log/slog"

	"github.com/aretw0/copse/pkg/composite"
	"github.com/aretw0/copse/pkg/domain"
	"github.com/aretw0/copse/pkg/registry"
)

// Builder instantiates a parsed TreeSpec against a node-type registry.
type Builder struct {
	reg    *registry.Registry
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// NewBuilder creates a builder. Hooks, when set, are installed on every
// control node built.
func NewBuilder(reg *registry.Registry, logger *slog.Logger, hooks domain.LifecycleHooks) *Builder {
	return &Builder{reg: reg, logger: logger, hooks: hooks}
}

// Build instantiates the whole tree and returns its root.
func (b *Builder) Build(spec *TreeSpec) (domain.Node, error) {
	return b.buildNode(spec.Root)
}

func (b *Builder) buildNode(ns *NodeSpec) (domain.Node, error) {
	switch ns.Type {
	case "sequence":
		seq := composite.NewSequence(ns.Label(), b.logger)
		seq.SetHooks(b.hooks)
		if err := b.addChildren(seq.ControlNode, ns); err != nil {
			return nil, err
		}
		return seq, nil

	case "parallel":
		of := ns.Of
		if of == 0 {
			of = len(ns.Children)
		}
		par := composite.NewParallel(ns.Label(), of, b.logger)
		par.SetHooks(b.hooks)
		if err := b.addChildren(par.ControlNode, ns); err != nil {
			return nil, err
		}
		return par, nil

	default:
		return b.reg.NewNode(ns.Type, b.logger)
	}
}

// childAdder is the slice of the control surface the builder needs.
type childAdder interface {
	AppendChild(instance domain.Node, in []domain.Arg, out []string) *domain.ExecutionContext
}

func (b *Builder) addChildren(parent childAdder, ns *NodeSpec) error {
	for _, childSpec := range ns.Children {
		child, err := b.buildNode(childSpec)
		if err != nil {
			return err
		}
		parent.AppendChild(child, buildArgs(childSpec.In), childSpec.Out)
	}
	return nil
}

// buildArgs converts raw YAML argument entries into the Arg variant:
// {ref: field} maps become back-references, everything else is a literal.
func buildArgs(raw []any) []domain.Arg {
	args := make([]domain.Arg, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok && len(m) == 1 {
			if ref, ok := m["ref"].(string); ok {
				args = append(args, domain.Ref(ref))
				continue
			}
		}
		args = append(args, domain.Lit(entry))
	}
	return args
}
