package copse

import (
	"context"
	"log/slog"

	"github.com/aretw0/copse/pkg/domain"
	"github.com/aretw0/copse/pkg/node"
	"github.com/aretw0/copse/pkg/registry"
)

// DefaultRegistry returns a registry with the builtin leaf types:
//
//   - "wait": succeeds after the number of ticks given by its "ticks" input
//   - "log":  logs its "message" input at Info and succeeds
//   - "fail": fails with its "message" input as contingency message
func DefaultRegistry() *registry.Registry {
	reg := registry.New()
	reg.Register("wait", newWait)
	reg.Register("log", newLog)
	reg.Register("fail", newFail)
	return reg
}

func newWait(logger *slog.Logger) domain.Node {
	remaining := -1
	return node.NewAction("wait", func(ctx context.Context, a *node.Action) {
		if remaining < 0 {
			remaining = 1
			if v, ok := a.Blackboard().Get("ticks"); ok {
				if n, ok := v.(int); ok {
					remaining = n
				}
			}
		}
		remaining--
		if remaining <= 0 {
			a.Succeed()
		}
	}, node.WithInputs("ticks"), node.WithLogger(logger))
}

func newLog(logger *slog.Logger) domain.Node {
	return node.NewAction("log", func(ctx context.Context, a *node.Action) {
		message, _ := a.Blackboard().Get("message")
		a.Logger().Info("log node", "message", message)
		a.Succeed()
	}, node.WithInputs("message"), node.WithLogger(logger))
}

func newFail(logger *slog.Logger) domain.Node {
	return node.NewAction("fail", func(ctx context.Context, a *node.Action) {
		message := "failed"
		if v, ok := a.Blackboard().Get("message"); ok {
			if s, ok := v.(string); ok {
				message = s
			}
		}
		a.Fail(message)
	}, node.WithInputs("message"), node.WithLogger(logger))
}
