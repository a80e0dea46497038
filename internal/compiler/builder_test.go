package compiler_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/copse/internal/compiler"
	"github.com/aretw0/copse/pkg/composite"
	"github.com/aretw0/copse/pkg/domain"
	"github.com/aretw0/copse/pkg/node"
	"github.com/aretw0/copse/pkg/registry"
)

// testRegistry registers an "echo" leaf copying its "in" slot to its "out" slot.
func testRegistry() *registry.Registry {
	reg := registry.New()
	reg.Register("echo", func(logger *slog.Logger) domain.Node {
		return node.NewAction("Echo", func(ctx context.Context, a *node.Action) {
			v, _ := a.Blackboard().Get("in")
			a.Blackboard().Set("out", v)
			a.Succeed()
		}, node.WithInputs("in"), node.WithOutputs("out"), node.WithLogger(logger))
	})
	return reg
}

func TestBuilder_BuildsSequenceWithArgs(t *testing.T) {
	spec, err := compiler.Parse([]byte(`
name: echo-chain
root:
  type: sequence
  children:
    - type: echo
      in: ["hello"]
      out: [copied]
    - type: echo
      in: [{ref: copied}]
      out: [final]
`))
	require.NoError(t, err)

	root, err := compiler.NewBuilder(testRegistry(), nil, domain.LifecycleHooks{}).Build(spec)
	require.NoError(t, err)

	seq, ok := root.(*composite.Sequence)
	require.True(t, ok, "root should be a sequence")
	require.Len(t, seq.Children(), 2)

	// First child call-in is a literal, second is a back-reference.
	first := seq.Children()[0]
	require.Len(t, first.CallIn, 1)
	assert.False(t, first.CallIn[0].IsRef())
	assert.Equal(t, "hello", first.CallIn[0].Value())

	second := seq.Children()[1]
	require.Len(t, second.CallIn, 1)
	assert.True(t, second.CallIn[0].IsRef())
	assert.Equal(t, "copied", second.CallIn[0].RefName())

	// And the built tree actually runs the data through.
	seq.Tick(context.Background())
	require.Equal(t, domain.StatusSuccess, seq.Status())
	v, _ := seq.Blackboard().Get("final")
	assert.Equal(t, "hello", v)
}

func TestBuilder_ParallelDefaultThreshold(t *testing.T) {
	spec, err := compiler.Parse([]byte(`
root:
  type: parallel
  children:
    - type: echo
    - type: echo
`))
	require.NoError(t, err)

	root, err := compiler.NewBuilder(testRegistry(), nil, domain.LifecycleHooks{}).Build(spec)
	require.NoError(t, err)

	par, ok := root.(*composite.Parallel)
	require.True(t, ok, "root should be a parallel")
	assert.Equal(t, 2, par.SuccessThreshold())
}

func TestBuilder_UnknownLeafType(t *testing.T) {
	spec, err := compiler.Parse([]byte(`
root:
  type: sequence
  children:
    - type: missing
`))
	require.NoError(t, err)

	_, err = compiler.NewBuilder(testRegistry(), nil, domain.LifecycleHooks{}).Build(spec)
	require.ErrorIs(t, err, domain.ErrUnknownNodeType)
}
