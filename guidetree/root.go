package guidetree

import "github.com/lglayout/lglayout/core"

// adjacency is a plain map-based adjacency list over the MST's vertex set,
// built once and shared by the root finder and the BFS re-expression step.
type adjacency map[string][]string

func buildAdjacency(vertices []string, edges []core.Edge) adjacency {
	adj := make(adjacency, len(vertices))
	for _, v := range vertices {
		adj[v] = nil
	}
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	return adj
}

// FindRoot returns the 1-median of the tree described by vertices/edges:
// the vertex minimizing the sum of distances to every other vertex. Runs in
// O(n) via Ying Wang's subtree-size/balance-value propagation instead of the
// naive O(n²) all-pairs BFS. Ties break by first occurrence in vertices.
//
// Algorithm (graph.hpp's generateLevelsFromGraph):
//  1. BFS from vertices[0], recording depth d[·] and visit order Q.
//  2. a[Q[0]] = Σ d[·].
//  3. Walk Q in reverse, accumulating subtree size sz[v] (leaf sz = 1).
//  4. Walk Q forward; for each v and child w (w's BFS parent is v):
//     a[w] = a[v] - sz[w] + (n - sz[w]).
//  5. Root = argmin a, first occurrence wins ties.
func FindRoot(vertices []string, edges []core.Edge) string {
	if len(vertices) == 0 {
		return ""
	}
	if len(vertices) == 1 {
		return vertices[0]
	}

	adj := buildAdjacency(vertices, edges)
	start := vertices[0]

	order, depth, parent := bfsOrder(adj, start)
	n := len(order)

	totalDepth := 0
	for _, d := range depth {
		totalDepth += d
	}

	sz := make(map[string]int, n)
	for i := n - 1; i >= 0; i-- {
		v := order[i]
		sz[v]++
		if p, ok := parent[v]; ok {
			sz[p] += sz[v]
		}
	}

	a := make(map[string]int, n)
	a[start] = totalDepth
	for _, v := range order {
		av := a[v]
		for _, w := range adj[v] {
			if parent[w] == v {
				a[w] = av - sz[w] + (n - sz[w])
			}
		}
	}

	root := vertices[0]
	best := a[root]
	for _, v := range vertices[1:] {
		if a[v] < best {
			best = a[v]
			root = v
		}
	}

	return root
}

// bfsOrder runs a plain BFS over adj from start, returning visit order,
// per-vertex depth, and per-vertex BFS parent (start has no parent entry).
func bfsOrder(adj adjacency, start string) ([]string, map[string]int, map[string]string) {
	order := make([]string, 0, len(adj))
	depth := map[string]int{start: 0}
	parent := make(map[string]string, len(adj))
	visited := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, w := range adj[v] {
			if visited[w] {
				continue
			}
			visited[w] = true
			depth[w] = depth[v] + 1
			parent[w] = v
			queue = append(queue, w)
		}
	}

	return order, depth, parent
}
