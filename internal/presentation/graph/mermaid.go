// Package graph renders tree definitions as Mermaid flowcharts.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/copse/internal/compiler"
)

// GenerateMermaid produces a Mermaid flowchart from a parsed tree spec.
// It applies semantic styling:
// - Sequence: [Rectangle]
// - Parallel: [[Subroutine]]
// - Leaf: ((Circle))
func GenerateMermaid(spec *compiler.TreeSpec) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	counter := 0
	writeNode(&sb, spec.Root, &counter)

	return sb.String()
}

// writeNode emits one node and its edges, returning its Mermaid id.
func writeNode(sb *strings.Builder, ns *compiler.NodeSpec, counter *int) string {
	id := fmt.Sprintf("n%d", *counter)
	*counter++

	opener, closer := "((", "))"
	switch ns.Type {
	case "sequence":
		opener, closer = "[", "]"
	case "parallel":
		opener, closer = "[[", "]]"
	}

	label := ns.Label()
	if ns.Type == "parallel" && ns.Of > 0 {
		label = fmt.Sprintf("%s <br/> %d of %d", label, ns.Of, len(ns.Children))
	}
	fmt.Fprintf(sb, "    %s%s\"%s\"%s\n", id, opener, label, closer)

	for _, child := range ns.Children {
		childID := writeNode(sb, child, counter)
		fmt.Fprintf(sb, "    %s --> %s\n", id, childID)
	}
	return id
}
