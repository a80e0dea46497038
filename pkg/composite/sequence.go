// Package composite provides the standard control-flow policies built on
// pkg/control: Sequence and Parallel.
package composite

import (
	"context"
	"log/slog"

	"github.com/aretw0/copse/pkg/control"
	"github.com/aretw0/copse/pkg/domain"
)

// Sequence ticks its children one after another. A child that completes
// (SUCCESS or FIXED) advances the cursor within the same tick; a child that
// fails or aborts propagates its status and contingency message to the
// sequence itself, unless a contingency reaction recovered it first.
type Sequence struct {
	*control.ControlNode
}

var _ domain.Node = (*Sequence)(nil)

// NewSequence creates a sequence node with the given type identity.
func NewSequence(name string, logger *slog.Logger) *Sequence {
	return &Sequence{ControlNode: control.New(name, logger)}
}

// Tick advances the child at the cursor. Inputs are bound just before a
// child's first tick; outputs are bound and contingencies applied once the
// child leaves RUNNING.
func (s *Sequence) Tick(ctx context.Context) {
	if s.Status() == domain.StatusIdle {
		s.SetStatus(domain.StatusRunning)
	}

	for s.Cursor() < len(s.Children()) {
		ec := s.CurrentChild()
		if ec.Instance.Status() == domain.StatusIdle {
			s.BindInputs(ec)
		}

		s.TickChild(ctx, ec)

		switch status := ec.Instance.Status(); {
		case status == domain.StatusRunning || status == domain.StatusSuspended:
			// Still in progress; resume here next cycle.
			return
		default:
			s.ApplyContingencies(ec)
		}

		// A reaction may have changed the child's status; re-read it.
		switch status := ec.Instance.Status(); {
		case status.IsCompleted():
			s.BindOutputs(ec)
			s.SetCursor(s.Cursor() + 1)
		case status.IsTickable() || status == domain.StatusSuspended:
			// A reaction resumed or restarted the child.
			return
		default:
			// FAILURE or ABORTED, unrecovered: the sequence fails through.
			s.SetContingencyMessage(ec.Instance.ContingencyMessage())
			s.SetStatus(status)
			return
		}
	}

	s.SetStatus(domain.StatusSuccess)
}
