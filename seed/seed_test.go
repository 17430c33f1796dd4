package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lglayout/lglayout/core"
	"github.com/lglayout/lglayout/simparticle"
	"github.com/lglayout/lglayout/vecmath"
)

func buildGraphAndContainer(t *testing.T, ids []string, edges [][2]string) (*core.Graph, *simparticle.Container) {
	t.Helper()
	g := core.NewGraph()
	container := simparticle.NewContainer(2)
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id))
		_, err := container.Add(id)
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g, container
}

func TestInterpolate_FillsFromNeighborsToFixpoint(t *testing.T) {
	t.Parallel()

	// A - B - C - D, chain; only A and D have initial positions.
	g, container := buildGraphAndContainer(t, []string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})
	LoadPositions(container, map[string]vecmath.Vector{
		"A": {1, 0},
		"D": {6, 0},
	})

	filled, err := Interpolate(g, container)
	require.NoError(t, err)
	assert.Equal(t, 2, filled)

	pb, _ := container.ByID("B")
	pc, _ := container.ByID("C")
	assert.False(t, pb.Position.IsZero())
	assert.False(t, pc.Position.IsZero())
}

func TestPruneDisconnected_DropsWhollyUnsetComponent(t *testing.T) {
	t.Parallel()

	// A-B connected component has positions; X-Y is disjoint and unset.
	g, container := buildGraphAndContainer(t,
		[]string{"A", "B", "X", "Y"},
		[][2]string{{"A", "B"}, {"X", "Y"}},
	)
	LoadPositions(container, map[string]vecmath.Vector{
		"A": {1, 1},
		"B": {2, 2},
	})

	dropped, err := PruneDisconnected(g, container)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"X", "Y"}, dropped)
	assert.Equal(t, 2, container.Len())

	_, err = container.ByID("X")
	assert.Error(t, err)
}

func TestLoadAnchorsAndMasses(t *testing.T) {
	t.Parallel()

	_, container := buildGraphAndContainer(t, []string{"A"}, nil)
	LoadAnchors(container, []string{"A"})
	LoadMasses(container, map[string]float64{"A": 3.5})

	p, err := container.ByID("A")
	require.NoError(t, err)
	assert.True(t, p.IsAnchor)
	assert.Equal(t, 3.5, p.Mass)
}
