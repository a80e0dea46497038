package copse

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/copse/internal/compiler"
	"github.com/aretw0/copse/internal/logging"
	"github.com/aretw0/copse/pkg/domain"
	"github.com/aretw0/copse/pkg/registry"
	"github.com/aretw0/copse/pkg/runner"
)

// Tree is a built behavior tree ready to run.
type Tree struct {
	Name string
	Root domain.Node

	tickRate time.Duration
	logger   *slog.Logger
}

// Option defines a functional option for configuring tree construction.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	reg      *registry.Registry
	hooks    domain.LifecycleHooks
	tickRate time.Duration
}

// WithLogger sets the logger used by all nodes and the runner.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithRegistry injects a custom node-type registry, replacing the default
// builtin registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *config) { c.reg = reg }
}

// WithLifecycleHooks registers observability hooks on every control node.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) { c.hooks = hooks }
}

// WithTickRate sets the delay between two tree cycles.
func WithTickRate(d time.Duration) Option {
	return func(c *config) { c.tickRate = d }
}

// Load reads, parses and builds a tree definition file.
func Load(path string, opts ...Option) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree definition: %w", err)
	}
	return Parse(data, opts...)
}

// Parse builds a tree from a YAML definition.
func Parse(data []byte, opts ...Option) (*Tree, error) {
	cfg := &config{
		logger:   logging.NewNop(),
		reg:      DefaultRegistry(),
		tickRate: runner.DefaultTickRate,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	spec, err := compiler.Parse(data)
	if err != nil {
		return nil, err
	}

	root, err := compiler.NewBuilder(cfg.reg, cfg.logger, cfg.hooks).Build(spec)
	if err != nil {
		return nil, err
	}

	return &Tree{
		Name:     spec.Name,
		Root:     root,
		tickRate: cfg.tickRate,
		logger:   cfg.logger,
	}, nil
}

// Run ticks the tree until its root reaches a terminal status.
func (t *Tree) Run(ctx context.Context) (domain.NodeStatus, error) {
	r := runner.New(
		runner.WithTickRate(t.tickRate),
		runner.WithLogger(t.logger),
	)
	return r.Run(ctx, t.Root)
}
