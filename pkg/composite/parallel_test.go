package composite_test

import (
	"context"
	"testing"

	"github.com/aretw0/copse/pkg/composite"
	"github.com/aretw0/copse/pkg/control"
	"github.com/aretw0/copse/pkg/domain"
	"github.com/aretw0/copse/pkg/node"
)

func succeedAfter(name string, ticks int) *node.Action {
	n := 0
	return node.NewAction(name, func(ctx context.Context, a *node.Action) {
		n++
		if n >= ticks {
			a.Succeed()
		}
	})
}

func failImmediately(name, message string) *node.Action {
	return node.NewAction(name, func(ctx context.Context, a *node.Action) {
		a.Fail(message)
	})
}

func TestParallel_SucceedsAtThreshold(t *testing.T) {
	par := composite.NewParallel("Fanout", 2, nil)
	par.AppendChild(succeedAfter("Fast", 1), nil, nil)
	par.AppendChild(succeedAfter("Medium", 2), nil, nil)
	par.AppendChild(succeedAfter("Slow", 100), nil, nil)

	tickUntilTerminal(t, par, 5)

	if got := par.Status(); got != domain.StatusSuccess {
		t.Fatalf("parallel status = %s, want SUCCESS", got)
	}

	// The undecided child is aborted once the outcome is known.
	slow := par.Children()[2].Instance
	if got := slow.Status(); got != domain.StatusAborted {
		t.Errorf("slow child status = %s, want ABORTED", got)
	}
}

func TestParallel_FailsWhenThresholdUnreachable(t *testing.T) {
	par := composite.NewParallel("Fanout", 2, nil)
	par.AppendChild(failImmediately("BoomA", "first fault"), nil, nil)
	par.AppendChild(failImmediately("BoomB", "second fault"), nil, nil)
	par.AppendChild(succeedAfter("Slow", 100), nil, nil)

	tickUntilTerminal(t, par, 5)

	if got := par.Status(); got != domain.StatusFailure {
		t.Fatalf("parallel status = %s, want FAILURE", got)
	}
	if got := par.ContingencyMessage(); got != "first fault" {
		t.Errorf("contingency message = %q, want first fault", got)
	}
}

func TestParallel_TicksAllChildrenEachCycle(t *testing.T) {
	par := composite.NewParallel("Fanout", 2, nil)
	a := succeedAfter("A", 2)
	b := succeedAfter("B", 2)
	par.AppendChild(a, nil, nil)
	par.AppendChild(b, nil, nil)

	par.Tick(context.Background())

	if got := a.Status(); got != domain.StatusRunning {
		t.Errorf("child A status = %s, want RUNNING", got)
	}
	if got := b.Status(); got != domain.StatusRunning {
		t.Errorf("child B status = %s, want RUNNING", got)
	}

	par.Tick(context.Background())

	if got := par.Status(); got != domain.StatusSuccess {
		t.Errorf("parallel status = %s, want SUCCESS", got)
	}
}

func TestParallel_ContingencyFixCountsAsCompletion(t *testing.T) {
	par := composite.NewParallel("Fanout", 2, nil)
	par.AppendChild(succeedAfter("Ok", 1), nil, nil)
	par.AppendChild(failImmediately("Flaky", "transient"), nil, nil)

	err := par.RegisterContingencyHandler(
		control.MatchType("Flaky"),
		control.Statuses(domain.StatusFailure),
		"transient",
		par.FixCurrentChild,
	)
	if err != nil {
		t.Fatal(err)
	}

	tickUntilTerminal(t, par, 5)

	if got := par.Status(); got != domain.StatusSuccess {
		t.Errorf("parallel status = %s, want SUCCESS", got)
	}
}

func TestParallel_ThresholdAboveChildCountFailsCleanly(t *testing.T) {
	// An unreachable threshold must fail the node, not panic, even though
	// no child ever faulted.
	par := composite.NewParallel("Fanout", 3, nil)
	slow := succeedAfter("Slow", 100)
	par.AppendChild(slow, nil, nil)

	par.Tick(context.Background())

	if got := par.Status(); got != domain.StatusFailure {
		t.Fatalf("parallel status = %s, want FAILURE", got)
	}
	if got := par.ContingencyMessage(); got != "" {
		t.Errorf("contingency message = %q, want empty", got)
	}
	if got := slow.Status(); got != domain.StatusAborted {
		t.Errorf("child status = %s, want ABORTED", got)
	}
}

func TestParallel_CursorFollowsTickedChild(t *testing.T) {
	// The contingency of the second child must target the second child,
	// not whatever the cursor pointed at before.
	par := composite.NewParallel("Fanout", 2, nil)
	par.AppendChild(succeedAfter("Ok", 1), nil, nil)
	flaky := failImmediately("Flaky", "transient")
	par.AppendChild(flaky, nil, nil)

	err := par.RegisterContingencyHandler(
		control.MatchType("Flaky"),
		control.Statuses(domain.StatusFailure),
		".*",
		par.FixCurrentChild,
	)
	if err != nil {
		t.Fatal(err)
	}

	par.Tick(context.Background())

	if got := flaky.Status(); got != domain.StatusFixed {
		t.Errorf("flaky child status = %s, want FIXED", got)
	}
}
