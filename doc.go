/*
Package copse is a behavior-tree execution engine with contingency handling,
designed for building robust task-level control flows for agents, automation
workflows and robotic behaviors.

It separates the control-flow mechanics of pkg/control (ticking, parameter
binding, contingency dispatch) from the composition policies
(pkg/composite) and the leaf behaviors your application provides
(pkg/node). The tree is advanced cooperatively, one synchronous tick at a
time, by pkg/runner.

# Concept

A tree is built from composite nodes (Sequence, Parallel) that own an
ordered list of child invocations. Each invocation is an execution context:
the child instance plus the positional arguments and output fields that bind
data between parent and child blackboards. When a child reports a fault, the
owning composite consults its registered contingency handlers, an ordered
list of (node matcher, status set, message pattern, reaction) entries, and
invokes the first matching reaction, which may fix or abort the current
child.

# Usage

Trees can be built programmatically or loaded from YAML definitions:

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/copse"
	)

	func main() {
		tree, err := copse.Load("./tree.yaml")
		if err != nil {
			log.Fatal(err)
		}

		status, err := tree.Run(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		log.Println("final status:", status)
	}

Leaf node types are registered by name (see pkg/registry); the built-in
"wait", "log" and "fail" types are available out of the box.
*/
package copse
