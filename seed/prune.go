package seed

import (
	"github.com/lglayout/lglayout/core"
	"github.com/lglayout/lglayout/dfs"
	"github.com/lglayout/lglayout/simparticle"
)

// PruneDisconnected finds every connected component of g whose vertices are
// ALL still at the zero position (unreachable by Interpolate from any
// caller-supplied coordinate) and removes them from container, compacting
// indices. Returns the dropped vertex ids. Call after Interpolate has run to
// a fixed point.
//
// Components are found with dfs.DFS(WithFullTraversal): since DFS never
// interleaves two trees, each tree's post-order Order entries form one
// contiguous run ending at that tree's root (the only entry with Depth 0).
func PruneDisconnected(g *core.Graph, container *simparticle.Container) ([]string, error) {
	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	if err != nil {
		return nil, err
	}

	var dropped []string
	var component []string
	flush := func() {
		if len(component) == 0 {
			return
		}
		if componentWhollyUnset(component, container) {
			dropped = append(dropped, component...)
		}
		component = nil
	}

	for _, id := range res.Order {
		component = append(component, id)
		if res.Depth[id] == 0 {
			flush()
		}
	}

	container.Erase(dropped)

	return dropped, nil
}

func componentWhollyUnset(ids []string, container *simparticle.Container) bool {
	for _, id := range ids {
		p, err := container.ByID(id)
		if err != nil {
			continue
		}
		if !p.Position.IsZero() {
			return false
		}
	}

	return true
}
