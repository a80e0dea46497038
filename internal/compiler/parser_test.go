package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/copse/internal/compiler"
	"github.com/aretw0/copse/pkg/domain"
)

const sampleTree = `
name: demo
root:
  type: sequence
  name: main
  children:
    - type: wait
      in: [2]
    - type: log
      in: [{ref: greeting}]
`

func TestParse_ValidTree(t *testing.T) {
	spec, err := compiler.Parse([]byte(sampleTree))
	require.NoError(t, err)

	assert.Equal(t, "demo", spec.Name)
	require.NotNil(t, spec.Root)
	assert.Equal(t, "sequence", spec.Root.Type)
	assert.Equal(t, "main", spec.Root.Label())
	require.Len(t, spec.Root.Children, 2)
	assert.Equal(t, "wait", spec.Root.Children[0].Type)
	assert.Equal(t, []any{2}, spec.Root.Children[0].In)
}

func TestParse_MissingRoot(t *testing.T) {
	_, err := compiler.Parse([]byte(`name: empty`))
	require.ErrorIs(t, err, domain.ErrNoRoot)
}

func TestParse_LeafWithChildren(t *testing.T) {
	_, err := compiler.Parse([]byte(`
root:
  type: wait
  children:
    - type: log
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot have children")
}

func TestParse_SequenceWithoutChildren(t *testing.T) {
	_, err := compiler.Parse([]byte(`
root:
  type: sequence
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no children")
}

func TestParse_ParallelThresholdTooHigh(t *testing.T) {
	_, err := compiler.Parse([]byte(`
root:
  type: parallel
  of: 3
  children:
    - type: wait
    - type: wait
`))
	require.Error(t, err)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := compiler.Parse([]byte(`
root:
  type: wait
  bogus: true
`))
	require.Error(t, err)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := compiler.Parse([]byte(`{`))
	require.Error(t, err)
}
