package guidetree

import (
	"github.com/lglayout/lglayout/core"
	"github.com/lglayout/lglayout/prim_kruskal"
)

// BuildMST computes a minimum spanning tree over g. When useOriginalWeights
// is false, edge weights are first replaced by the negative sum of both
// endpoints' degrees (graph.hpp's generateWeightMapFromNegativeAdjacentVertexCount):
// high-degree vertices get the most negative — hence lowest — synthetic
// weight, biasing Kruskal toward connecting hub vertices first. Either way
// the returned edges carry the graph's ORIGINAL weights, not the synthetic
// ones used only to steer the spanning-tree choice.
func BuildMST(g *core.Graph, useOriginalWeights bool) ([]core.Edge, error) {
	source := g
	if !useOriginalWeights {
		source = reweightByNegativeDegree(g)
	}

	edges, _, err := prim_kruskal.Kruskal(source)
	if err != nil {
		return nil, err
	}
	if useOriginalWeights {
		return edges, nil
	}

	// Recover original weights for the chosen edges.
	original := make(map[[2]string]float64, len(edges))
	for _, e := range g.Edges() {
		original[edgeKey(e.From, e.To)] = e.Weight
	}
	out := make([]core.Edge, len(edges))
	for i, e := range edges {
		w, ok := original[edgeKey(e.From, e.To)]
		if !ok {
			w = e.Weight
		}
		out[i] = e
		out[i].Weight = w
	}

	return out, nil
}

func edgeKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}

	return [2]string{a, b}
}

// reweightByNegativeDegree clones g into a fresh weighted undirected graph
// whose edge weights are -(degree(from) + degree(to)), used only to pick
// the spanning tree when the caller has no meaningful edge weights of
// their own.
func reweightByNegativeDegree(g *core.Graph) *core.Graph {
	degree := make(map[string]int, g.VertexCount())
	for _, id := range g.Vertices() {
		_, _, und, _ := g.Degree(id)
		degree[id] = und
	}

	out := core.NewGraph(core.WithWeighted())
	for _, id := range g.Vertices() {
		_ = out.AddVertex(id)
	}
	for _, e := range g.Edges() {
		w := float64(-(degree[e.From] + degree[e.To]))
		_, _ = out.AddEdge(e.From, e.To, w)
	}

	return out
}
