package control

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/aretw0/copse/internal/logging"
	"github.com/aretw0/copse/pkg/domain"
)

// NodeMatcher selects which child type identities a contingency handler
// applies to: either an exact type name or a pattern over the type name.
type NodeMatcher struct {
	expr    string
	pattern bool
}

// MatchType matches the exact node type name.
func MatchType(name string) NodeMatcher { return NodeMatcher{expr: name} }

// MatchPattern matches node type names against a regular expression. The
// expression is compiled when the handler is registered; the match is
// anchored at the start of the type name.
func MatchPattern(expr string) NodeMatcher { return NodeMatcher{expr: expr, pattern: true} }

// String describes the matcher for logging.
func (m NodeMatcher) String() string {
	if m.pattern {
		return "~" + m.expr
	}
	return m.expr
}

// StatusSet is the set of statuses a contingency handler activates on.
type StatusSet []domain.NodeStatus

// Statuses builds a StatusSet.
func Statuses(ss ...domain.NodeStatus) StatusSet { return StatusSet(ss) }

// Contains reports set membership.
func (s StatusSet) Contains(status domain.NodeStatus) bool {
	for _, member := range s {
		if member == status {
			return true
		}
	}
	return false
}

// handler is one registered contingency entry. Patterns are compiled at
// registration; matchType is empty for pattern matchers. The reaction is
// stored as a plain func value (Go's collector handles reference cycles, so
// the by-name indirection of older designs is unnecessary).
type handler struct {
	matcher  NodeMatcher
	typeRE   *regexp.Regexp // nil for exact-type matchers
	statuses StatusSet
	message  *regexp.Regexp
	reaction func()
}

// matchesType reports whether the handler applies to the given type name.
func (h *handler) matchesType(name string) bool {
	if h.typeRE != nil {
		return h.typeRE.MatchString(name)
	}
	return h.matcher.expr == name
}

// compileAnchored compiles a pattern with match-at-start semantics.
func compileAnchored(expr string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + expr + `)`)
}

// RegisterContingencyHandler appends a handler to the registry. Handlers are
// tried against a child's (type identity, status, contingency message) in
// registration order; the first match wins and no entry is ever removed or
// reordered.
//
// Both the node matcher pattern and the message pattern are compiled here,
// so a malformed expression surfaces immediately to the author instead of
// at match time. A nil reaction is rejected with domain.ErrNoReaction.
//
// The shipped composite policies call ApplyContingencies only after a child
// leaves RUNNING or SUSPENDED, so a status set containing those statuses
// takes effect only when ApplyContingencies is invoked directly, for
// example from a custom policy built on ControlNode.
func (c *ControlNode) RegisterContingencyHandler(matcher NodeMatcher, statuses StatusSet, messagePattern string, reaction func()) error {
	if reaction == nil {
		return fmt.Errorf("handler for %s: %w", matcher.String(), domain.ErrNoReaction)
	}
	h := handler{
		matcher:  matcher,
		statuses: statuses,
		reaction: reaction,
	}
	if matcher.pattern {
		re, err := compileAnchored(matcher.expr)
		if err != nil {
			return fmt.Errorf("invalid node matcher pattern %q: %w", matcher.expr, err)
		}
		h.typeRE = re
	}
	re, err := compileAnchored(messagePattern)
	if err != nil {
		return fmt.Errorf("invalid contingency message pattern %q: %w", messagePattern, err)
	}
	h.message = re

	c.handlers = append(c.handlers, h)
	return nil
}

// ApplyContingencies looks up the registry for a child that has just been
// ticked. Entries are examined strictly in registration order; the first
// entry whose node matcher, status set and message pattern all match the
// child invokes its reaction and ends the search. At most one reaction
// fires per call. No match is the common "nothing went wrong" path and is
// not an error.
//
// Matching has no side effect on the registry: applying contingencies twice
// with an unchanged child yields the same single entry both times.
func (c *ControlNode) ApplyContingencies(ec *domain.ExecutionContext) {
	instance := ec.Instance
	c.Logger().Debug("searching contingency handler",
		"node", ec.NodeName,
		"status", instance.Status(),
		"message", instance.ContingencyMessage())

	for i := range c.handlers {
		h := &c.handlers[i]
		c.Logger().Log(context.Background(), logging.LevelTrace,
			"checking contingency handler",
			"matcher", h.matcher.String(),
			"statuses", h.statuses,
			"message", h.message.String())

		if !h.matchesType(ec.NodeName) {
			continue
		}
		if !h.statuses.Contains(instance.Status()) {
			continue
		}
		if !h.message.MatchString(instance.ContingencyMessage()) {
			continue
		}

		c.Logger().Info("running contingency handler",
			"node", ec.NodeName, "matcher", h.matcher.String())
		if c.hooks.OnContingency != nil {
			c.hooks.OnContingency(&domain.ContingencyEvent{
				EventBase: domain.EventBase{Timestamp: time.Now()},
				Node:      ec.NodeName,
				Status:    instance.Status(),
				Message:   instance.ContingencyMessage(),
			})
		}
		h.reaction()
		c.Logger().Debug("after contingency handler",
			"node", ec.NodeName,
			"status", instance.Status(),
			"message", instance.ContingencyMessage())
		return
	}
}
