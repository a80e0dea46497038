package composite

import (
	"context"
	"log/slog"

	"github.com/aretw0/copse/pkg/control"
	"github.com/aretw0/copse/pkg/domain"
)

// Parallel ticks all of its children each cycle. It succeeds once at least
// successThreshold children have completed (SUCCESS or FIXED) and fails as
// soon as the threshold can no longer be reached, aborting the children
// still in progress.
type Parallel struct {
	*control.ControlNode
	successThreshold int
}

var _ domain.Node = (*Parallel)(nil)

// NewParallel creates a parallel node that succeeds when successThreshold
// children complete.
func NewParallel(name string, successThreshold int, logger *slog.Logger) *Parallel {
	return &Parallel{
		ControlNode:      control.New(name, logger),
		successThreshold: successThreshold,
	}
}

// SuccessThreshold returns the number of completed children required.
func (p *Parallel) SuccessThreshold() int { return p.successThreshold }

// Tick advances every non-terminal child once. The cursor follows the child
// being advanced so that a contingency reaction's FixCurrentChild or
// AbortCurrentChild targets the child whose contingency triggered it.
func (p *Parallel) Tick(ctx context.Context) {
	if p.Status() == domain.StatusIdle {
		p.SetStatus(domain.StatusRunning)
	}

	for i, ec := range p.Children() {
		if ec.Instance.Status().IsTerminal() {
			continue
		}
		p.SetCursor(i)

		if ec.Instance.Status() == domain.StatusIdle {
			p.BindInputs(ec)
		}

		p.TickChild(ctx, ec)

		status := ec.Instance.Status()
		if status == domain.StatusRunning || status == domain.StatusSuspended {
			continue
		}
		p.ApplyContingencies(ec)

		if ec.Instance.Status().IsCompleted() {
			p.BindOutputs(ec)
		}
	}

	completed, failed := 0, 0
	var firstFault *domain.ExecutionContext
	for _, ec := range p.Children() {
		switch status := ec.Instance.Status(); {
		case status.IsCompleted():
			completed++
		case status == domain.StatusFailure || status == domain.StatusAborted:
			failed++
			if firstFault == nil {
				firstFault = ec
			}
		}
	}

	switch {
	case completed >= p.successThreshold:
		p.SetStatus(domain.StatusSuccess)
		p.abortRemaining()
	case len(p.Children())-failed < p.successThreshold:
		// Not enough children left to ever reach the threshold. With a
		// threshold above the child count this is hit with no fault at all;
		// the contingency message then stays empty.
		if firstFault != nil {
			p.SetContingencyMessage(firstFault.Instance.ContingencyMessage())
		}
		p.SetStatus(domain.StatusFailure)
		p.abortRemaining()
	}
}

// abortRemaining aborts every child still in progress once the parallel
// node's outcome is decided.
func (p *Parallel) abortRemaining() {
	for i, ec := range p.Children() {
		status := ec.Instance.Status()
		if status.IsTickable() || status == domain.StatusSuspended {
			p.SetCursor(i)
			p.AbortCurrentChild()
		}
	}
}
