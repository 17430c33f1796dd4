package guidetree

import (
	"github.com/lglayout/lglayout/bfs"
	"github.com/lglayout/lglayout/core"
)

// RootParentSentinel is the value Tree.Parent holds for the root vertex.
const RootParentSentinel = ""

// Tree is the guiding tree: an MST of the input graph plus its root,
// per-vertex level (BFS depth from the root), and per-vertex parent.
type Tree struct {
	Root     string
	Vertices []string
	Edges    []core.Edge
	Level    map[string]int
	Parent   map[string]string
}

// Build constructs the guiding tree for g: an MST (synthetic-weighted
// unless useOriginalWeights is set), rooted at rootOverride if non-empty,
// otherwise at the tree's 1-median (FindRoot). Level and Parent are then
// derived by running bfs.BFS over the MST re-expressed as a fresh
// unweighted core.Graph, since bfs.BFS rejects weighted input.
func Build(g *core.Graph, rootOverride string, useOriginalWeights bool) (*Tree, error) {
	edges, err := BuildMST(g, useOriginalWeights)
	if err != nil {
		return nil, err
	}
	vertices := g.Vertices()

	root := rootOverride
	if root == "" {
		root = FindRoot(vertices, edges)
	}

	treeGraph := core.NewGraph()
	for _, v := range vertices {
		_ = treeGraph.AddVertex(v)
	}
	for _, e := range edges {
		_, _ = treeGraph.AddEdge(e.From, e.To, 0)
	}

	res, err := bfs.BFS(treeGraph, root)
	if err != nil {
		return nil, err
	}

	parent := make(map[string]string, len(vertices))
	parent[root] = RootParentSentinel
	for v, p := range res.Parent {
		parent[v] = p
	}

	return &Tree{
		Root:     root,
		Vertices: vertices,
		Edges:    edges,
		Level:    res.Depth,
		Parent:   parent,
	}, nil
}
