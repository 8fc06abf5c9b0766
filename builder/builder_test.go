package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathql/builder"
	"github.com/katalvlaran/pathql/graph"
	"github.com/stretchr/testify/require"
)

func TestCycleBuildsRing(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3, "a"))
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, []string{"a"}, g.Labels())
}

func TestCycleRejectsTooFewVertices(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Cycle(2, "a"))
	require.True(t, errors.Is(err, builder.ErrTooFewVertices))
}

func TestPathBuildsChain(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path("a", "b", "a"))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, []string{"a", "b"}, g.Labels())
}

func TestPathRejectsEmptyLabels(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path())
	require.True(t, errors.Is(err, builder.ErrTooFewVertices))
}

func TestGlueAtMergesTwoCyclesAtSharedVertex(t *testing.T) {
	g, err := builder.BuildGraph(
		[]graph.GraphOption{graph.WithMultiEdges()},
		nil,
		builder.GlueAt("0", builder.Cycle(3, "a"), builder.Cycle(3, "b")),
	)
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())
	require.Equal(t, []string{"a", "b"}, g.Labels())
	require.True(t, g.HasVertex("0"))
}

func TestWithIDSchemeAppliesCustomIDs(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(3, "a"))
	require.NoError(t, err)
	require.True(t, g.HasVertex("A"))
	require.True(t, g.HasVertex("C"))
}

func TestBuildGraphRejectsNilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Cycle(3, "a"), nil)
	require.True(t, errors.Is(err, builder.ErrConstructFailed))
}
