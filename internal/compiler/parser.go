// Package compiler parses declarative tree definitions (YAML) and builds
// them into live node trees against a type registry.
package compiler

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/copse/pkg/domain"
)

// TreeSpec is the top level of a tree definition file.
type TreeSpec struct {
	Name string    `mapstructure:"name"`
	Root *NodeSpec `mapstructure:"root"`
}

// NodeSpec describes one node invocation. In and Out are the call-site
// argument expressions and output field names for this node as a child of
// its parent; they are ignored on the root.
//
// Entries of In are literals, except maps of the form {ref: field} which
// back-reference the parent's field of that name.
type NodeSpec struct {
	Type     string      `mapstructure:"type"`
	Name     string      `mapstructure:"name"`
	In       []any       `mapstructure:"in"`
	Out      []string    `mapstructure:"out"`
	Of       int         `mapstructure:"of"`
	Children []*NodeSpec `mapstructure:"children"`
}

// Parse decodes a YAML tree definition and validates its shape.
func Parse(data []byte) (*TreeSpec, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse tree definition: %w", err)
	}

	var spec TreeSpec
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &spec,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid tree definition: %w", err)
	}

	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *TreeSpec) validate() error {
	if s.Root == nil {
		return domain.ErrNoRoot
	}
	return s.Root.validate()
}

func (n *NodeSpec) validate() error {
	if n.Type == "" {
		return fmt.Errorf("node %q missing type", n.Name)
	}
	switch n.Type {
	case "sequence", "parallel":
		if len(n.Children) == 0 {
			return fmt.Errorf("%s node %q has no children", n.Type, n.Name)
		}
		if n.Type == "parallel" && n.Of > len(n.Children) {
			return fmt.Errorf("parallel node %q requires %d of %d children", n.Name, n.Of, len(n.Children))
		}
	default:
		if len(n.Children) > 0 {
			return fmt.Errorf("leaf node %q cannot have children", n.Name)
		}
	}
	for _, child := range n.Children {
		if err := child.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Label returns the node's display name, defaulting to its type.
func (n *NodeSpec) Label() string {
	if n.Name != "" {
		return n.Name
	}
	return n.Type
}
