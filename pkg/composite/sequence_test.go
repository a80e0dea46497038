package composite_test

import (
	"context"
	"testing"

	"github.com/aretw0/copse/pkg/composite"
	"github.com/aretw0/copse/pkg/control"
	"github.com/aretw0/copse/pkg/domain"
	"github.com/aretw0/copse/pkg/node"
)

// newAddTwo is a leaf that reads input slot "x" and writes "sum" = x + 2.
func newAddTwo() *node.Action {
	return node.NewAction("AddTwo", func(ctx context.Context, a *node.Action) {
		v, _ := a.Blackboard().Get("x")
		a.Blackboard().Set("sum", v.(int)+2)
		a.Succeed()
	}, node.WithInputs("x"), node.WithOutputs("sum"))
}

func tickUntilTerminal(t *testing.T, n domain.Node, limit int) {
	t.Helper()
	for i := 0; i < limit; i++ {
		n.Tick(context.Background())
		if n.Status().IsTerminal() {
			return
		}
	}
	t.Fatalf("node %s not terminal after %d ticks (status %s)", n.Name(), limit, n.Status())
}

func TestSequence_BindsDataAcrossChildren(t *testing.T) {
	seq := composite.NewSequence("Pipeline", nil)
	seq.Blackboard().Set("start", 1)

	// start=1 -> first child sum=3 -> second child sum=5
	seq.AppendChild(newAddTwo(), []domain.Arg{domain.Ref("start")}, []string{"mid"})
	seq.AppendChild(newAddTwo(), []domain.Arg{domain.Ref("mid")}, []string{"result"})

	tickUntilTerminal(t, seq, 5)

	if got := seq.Status(); got != domain.StatusSuccess {
		t.Fatalf("sequence status = %s, want SUCCESS", got)
	}
	if v, _ := seq.Blackboard().Get("result"); v != 5 {
		t.Errorf("result = %v, want 5", v)
	}
}

func TestSequence_FailurePropagatesWithMessage(t *testing.T) {
	seq := composite.NewSequence("Pipeline", nil)
	seq.AppendChild(node.NewAction("Boom", func(ctx context.Context, a *node.Action) {
		a.Fail("io timeout")
	}), nil, nil)
	reached := false
	seq.AppendChild(node.NewAction("Never", func(ctx context.Context, a *node.Action) {
		reached = true
		a.Succeed()
	}), nil, nil)

	tickUntilTerminal(t, seq, 5)

	if got := seq.Status(); got != domain.StatusFailure {
		t.Errorf("sequence status = %s, want FAILURE", got)
	}
	if got := seq.ContingencyMessage(); got != "io timeout" {
		t.Errorf("contingency message = %q, want io timeout", got)
	}
	if reached {
		t.Error("child after the failing one must not run")
	}
}

func TestSequence_ContingencyFixResumesFlow(t *testing.T) {
	seq := composite.NewSequence("Pipeline", nil)
	seq.AppendChild(node.NewAction("Flaky", func(ctx context.Context, a *node.Action) {
		a.Fail("transient glitch")
	}), nil, nil)
	reached := false
	seq.AppendChild(node.NewAction("Next", func(ctx context.Context, a *node.Action) {
		reached = true
		a.Succeed()
	}), nil, nil)

	err := seq.RegisterContingencyHandler(
		control.MatchType("Flaky"),
		control.Statuses(domain.StatusFailure),
		"transient.*",
		seq.FixCurrentChild,
	)
	if err != nil {
		t.Fatal(err)
	}

	tickUntilTerminal(t, seq, 5)

	if got := seq.Status(); got != domain.StatusSuccess {
		t.Errorf("sequence status = %s, want SUCCESS", got)
	}
	if !reached {
		t.Error("flow must resume past the fixed child")
	}
}

func TestSequence_ContingencyAbortsChild(t *testing.T) {
	seq := composite.NewSequence("Pipeline", nil)
	seq.AppendChild(node.NewAction("Stuck", func(ctx context.Context, a *node.Action) {
		a.Fail("unrecoverable")
	}), nil, nil)

	err := seq.RegisterContingencyHandler(
		control.MatchType("Stuck"),
		control.Statuses(domain.StatusFailure),
		"unrecoverable",
		seq.AbortCurrentChild,
	)
	if err != nil {
		t.Fatal(err)
	}

	tickUntilTerminal(t, seq, 5)

	if got := seq.Status(); got != domain.StatusAborted {
		t.Errorf("sequence status = %s, want ABORTED", got)
	}
}

func TestSequence_RunningChildHoldsCursor(t *testing.T) {
	seq := composite.NewSequence("Pipeline", nil)
	ticks := 0
	seq.AppendChild(node.NewAction("Slow", func(ctx context.Context, a *node.Action) {
		ticks++
		if ticks == 3 {
			a.Succeed()
		}
	}), nil, nil)

	seq.Tick(context.Background())
	if got := seq.Status(); got != domain.StatusRunning {
		t.Fatalf("sequence status = %s, want RUNNING", got)
	}
	if seq.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0 while child runs", seq.Cursor())
	}

	seq.Tick(context.Background())
	seq.Tick(context.Background())

	if got := seq.Status(); got != domain.StatusSuccess {
		t.Errorf("sequence status = %s, want SUCCESS", got)
	}
	if ticks != 3 {
		t.Errorf("child ticked %d times, want 3", ticks)
	}
}

func TestSequence_EmptySucceeds(t *testing.T) {
	seq := composite.NewSequence("Empty", nil)
	seq.Tick(context.Background())
	if got := seq.Status(); got != domain.StatusSuccess {
		t.Errorf("status = %s, want SUCCESS", got)
	}
}
