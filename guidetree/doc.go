// Package guidetree builds the minimum spanning tree that guides a layout's
// layer-by-layer reveal, finds its graph-theoretic center, and derives the
// per-vertex level and parent maps used to gate force computation.
//
// The MST step wraps prim_kruskal.Kruskal; the root finder is Ying Wang's
// O(n) tree 1-median algorithm (grounded on graph.hpp's
// generateLevelsFromGraph); level/parent derivation reuses bfs.BFS by
// re-expressing the MST as a fresh unweighted core.Graph, since bfs.BFS
// rejects weighted graphs outright.
package guidetree
