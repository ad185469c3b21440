// Package zorder implements step 6 of the geometric graph analyzer:
// building the directed "below" graph over polygons and open graphs from
// containment and top_of annotations, breaking any cycles deterministically,
// and assigning z-order by round-based topological layering.
//
// Cycle breaking is depth-first search with white/gray/black coloring,
// removing the back edge whenever a gray (in-progress) node is
// revisited. Because this package iterates drawables by slice index
// rather than by map key, the result is deterministic from one run to
// the next rather than depending on hash iteration order.
package zorder

import (
	"github.com/charmbracelet/log"

	"github.com/stencilgraph/stencilgraph/pkg/drawable"
)

// AssignZOrder computes and sets ZOrder on every element of drawables
// (expected to be polygons and open graphs; Text is handled separately
// by pkg/names, which derives a text's z-order from its containing
// polygon). logger may be nil; a warning is logged only when a cycle in
// the below-graph had to be broken.
func AssignZOrder(logger *log.Logger, drawables []drawable.Drawable) {
	n := len(drawables)
	if n == 0 {
		return
	}
	adj := buildBelowGraph(drawables)
	removed := breakCycles(adj)
	if removed > 0 && logger != nil {
		logger.Warn("ambiguous z-order; estimating", "cycles_broken", removed)
	}
	layer(adj, drawables)
}

// buildBelowGraph returns adj where adj[i][j] means drawable i is below
// drawable j (i must be assigned a smaller z-order than j).
func buildBelowGraph(drawables []drawable.Drawable) [][]bool {
	n := len(drawables)
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}

	polys := make(map[int]*drawable.Polygon)
	for i, d := range drawables {
		if p, ok := d.(*drawable.Polygon); ok {
			polys[i] = p
		}
	}
	for i, pi := range polys {
		for j, pj := range polys {
			if i == j {
				continue
			}
			if pi.ContainsPolygon(pj) {
				adj[i][j] = true
			}
		}
	}

	for i, d := range drawables {
		for _, e := range d.Edges() {
			if e.TopOf == nil {
				continue
			}
			for j, other := range drawables {
				if i == j {
					continue
				}
				if other.HasEdge(e.TopOf[0], e.TopOf[1]) {
					adj[j][i] = true
					break
				}
			}
		}
	}
	return adj
}

// breakCycles removes back-edges found by a white/gray/black DFS over
// adj, visiting nodes in index order, and returns how many it removed.
func breakCycles(adj [][]bool) int {
	n := len(adj)
	const (
		white = iota
		gray
		black
	)
	color := make([]int, n)
	removed := 0

	var dfs func(u int)
	dfs = func(u int) {
		color[u] = gray
		for v := 0; v < n; v++ {
			if !adj[u][v] {
				continue
			}
			switch color[v] {
			case white:
				dfs(v)
			case gray:
				adj[u][v] = false
				removed++
			}
		}
		color[u] = black
	}

	for u := 0; u < n; u++ {
		if color[u] == white {
			dfs(u)
		}
	}
	return removed
}

// layer repeatedly extracts the nodes with no remaining predecessor,
// assigning them the current round's z-order, until every node has been
// assigned.
func layer(adj [][]bool, drawables []drawable.Drawable) {
	n := len(adj)
	done := make([]bool, n)
	remaining := n
	z := 0

	for remaining > 0 {
		hasPredecessor := make([]bool, n)
		for u := 0; u < n; u++ {
			if done[u] {
				continue
			}
			for v := 0; v < n; v++ {
				if !done[v] && adj[v][u] {
					hasPredecessor[u] = true
					break
				}
			}
		}
		var round []int
		for u := 0; u < n; u++ {
			if !done[u] && !hasPredecessor[u] {
				round = append(round, u)
			}
		}
		if len(round) == 0 {
			// Safety net: a bug elsewhere left a cycle unbroken. Assign
			// every remaining node rather than loop forever.
			for u := 0; u < n; u++ {
				if !done[u] {
					round = append(round, u)
				}
			}
		}
		for _, u := range round {
			drawables[u].SetZOrder(z)
			done[u] = true
			remaining--
		}
		z++
	}
}
