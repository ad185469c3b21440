// Package planar implements steps 2 through 5 of the geometric graph
// analyzer: extracting minimum cycles as polygons from a planar
// embedding given by each node's 2D coordinates, then decomposing the
// leftover acyclic edges into open graphs and their constituent paths.
//
// The face-tracing routine is the subtlest part of the pipeline: generic
// shortest-cycle-basis code does not respect the planar embedding, so
// this is instead a direct implementation of the "rotation system"
// technique: sort each node's incident edges by angle, then trace a face
// by always continuing to the most clockwise unused directed edge at the
// current node.
package planar

import (
	"sort"

	"github.com/stencilgraph/stencilgraph/pkg/geom"
	"github.com/stencilgraph/stencilgraph/pkg/multigraph"
)

// Polygon is a minimum cycle of a component's planar embedding: a closed
// node sequence with Nodes[0] == Nodes[len(Nodes)-1]. Graph is the
// component graph the node IDs are valid against.
type Polygon struct {
	Graph *multigraph.Graph
	Nodes []multigraph.NodeID
}

// OpenGraph is a connected residual sub-multigraph together with the
// maximal simple-trail decomposition of its edges.
type OpenGraph struct {
	Sub   *multigraph.Graph
	Paths [][]multigraph.NodeID
}

type directedEdge struct{ from, to multigraph.NodeID }

// Analyze runs steps 2-5 over each already-split connected component,
// returning every polygon and open graph found across all of them.
func Analyze(components []*multigraph.Graph) ([]Polygon, []OpenGraph) {
	var polygons []Polygon
	var openGraphs []OpenGraph

	for _, comp := range components {
		faces := traceFaces(comp)
		compPolys := dropOuterFace(comp, faces)
		polygons = append(polygons, compPolys...)
		openGraphs = append(openGraphs, residualOpenGraphs(comp, compPolys)...)
	}
	return polygons, openGraphs
}

// FaceLength returns the geometric length of a closed node cycle,
// summing edge length over consecutive nodes. The face tracer does not
// call it; it plays no part in deciding which faces are minimum cycles.
func FaceLength(g *multigraph.Graph, nodes []multigraph.NodeID) float64 {
	total := 0.0
	for i := 0; i+1 < len(nodes); i++ {
		total += geom.Length(g.Node(nodes[i]).Pos, g.Node(nodes[i+1]).Pos)
	}
	return total
}

// sortedNeighbors returns id's neighbors ordered by ascending angle
// (atan2 of the vector from id to the neighbor), the rotation system
// this package traces faces against.
func sortedNeighbors(g *multigraph.Graph, id multigraph.NodeID) []multigraph.NodeID {
	nb := g.Neighbors(id)
	pos := g.Node(id).Pos
	sort.Slice(nb, func(i, j int) bool {
		ai := geom.Angle(pos, g.Node(nb[i]).Pos)
		aj := geom.Angle(pos, g.Node(nb[j]).Pos)
		if ai != aj {
			return ai < aj
		}
		return nb[i] < nb[j]
	})
	return nb
}

// traceFaces enumerates every face of comp's planar embedding by
// walking each unused directed edge to completion. Every directed edge
// belongs to exactly one face, so the total directed-edge count is
// consumed exactly once.
func traceFaces(comp *multigraph.Graph) [][]multigraph.NodeID {
	neighborCache := make(map[multigraph.NodeID][]multigraph.NodeID)
	neighbors := func(id multigraph.NodeID) []multigraph.NodeID {
		if nb, ok := neighborCache[id]; ok {
			return nb
		}
		nb := sortedNeighbors(comp, id)
		neighborCache[id] = nb
		return nb
	}

	used := make(map[directedEdge]bool)
	var faces [][]multigraph.NodeID

	for _, n := range comp.Nodes() {
		for _, nb := range comp.Neighbors(n.ID) {
			start := directedEdge{from: n.ID, to: nb}
			if used[start] {
				continue
			}
			face := traceFace(comp, neighbors, used, start)
			faces = append(faces, face)
		}
	}
	return faces
}

func traceFace(
	comp *multigraph.Graph,
	neighbors func(multigraph.NodeID) []multigraph.NodeID,
	used map[directedEdge]bool,
	start directedEdge,
) []multigraph.NodeID {
	path := []multigraph.NodeID{start.from}
	prev, cur := start.from, start.to
	for {
		used[directedEdge{from: prev, to: cur}] = true
		path = append(path, cur)
		if cur == start.from && len(path) > 1 {
			break
		}
		nb := neighbors(cur)
		if len(nb) == 0 {
			break
		}
		idx := indexOf(nb, prev)
		next := nb[(idx-1+len(nb))%len(nb)]
		prev, cur = cur, next
	}
	return path
}

func indexOf(ids []multigraph.NodeID, target multigraph.NodeID) int {
	for i, id := range ids {
		if id == target {
			return i
		}
	}
	return 0
}

// dropOuterFace classifies every traced face by its signed area and
// discards every face whose signed area is not positive: the unbounded
// face (negative under this package's tracing convention, and zero for
// an acyclic component) and traces that only walk back along pendant
// edges. The remaining faces become Polygons.
func dropOuterFace(comp *multigraph.Graph, faces [][]multigraph.NodeID) []Polygon {
	var polys []Polygon
	for _, f := range faces {
		if len(f) < 4 {
			// A degree<=1 dead end traces itself back immediately
			// (e.g. a single pendant edge): not a real face.
			continue
		}
		if signedArea(comp, f) <= 0 {
			continue
		}
		polys = append(polys, Polygon{Graph: comp, Nodes: f})
	}
	return polys
}

func signedArea(comp *multigraph.Graph, cycle []multigraph.NodeID) float64 {
	area := 0.0
	for i := 0; i+1 < len(cycle); i++ {
		a := comp.Node(cycle[i]).Pos
		b := comp.Node(cycle[i+1]).Pos
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// residualOpenGraphs builds the edges-minus-cycles residual for comp,
// drops isolated nodes, splits into connected sub-subgraphs, and
// decomposes each into maximal simple trails.
func residualOpenGraphs(comp *multigraph.Graph, polys []Polygon) []OpenGraph {
	onCycle := make(map[multigraph.EdgeKey]bool)
	for _, p := range polys {
		for i := 0; i+1 < len(p.Nodes); i++ {
			onCycle[canonKey(p.Nodes[i], p.Nodes[i+1])] = true
		}
	}

	residual := multigraph.New()
	remap := make(map[multigraph.NodeID]multigraph.NodeID)
	ensure := func(id multigraph.NodeID) multigraph.NodeID {
		if mapped, ok := remap[id]; ok {
			return mapped
		}
		n := comp.Node(id)
		mapped := residual.AddNode(n.Pos, n.Style, false)
		remap[id] = mapped
		return mapped
	}

	for _, e := range comp.Edges() {
		if onCycle[canonKey(e.A, e.B)] {
			continue
		}
		residual.AddEdge(ensure(e.A), ensure(e.B), e.TopOf)
	}

	var out []OpenGraph
	for _, sub := range residual.Components() {
		if len(sub.Edges()) == 0 {
			continue
		}
		out = append(out, OpenGraph{Sub: sub, Paths: decomposePaths(sub)})
	}
	return out
}

func canonKey(a, b multigraph.NodeID) multigraph.EdgeKey {
	if a <= b {
		return multigraph.EdgeKey{A: a, B: b}
	}
	return multigraph.EdgeKey{A: b, B: a}
}

// decomposePaths repeatedly extracts a maximal simple trail starting at
// an odd-degree node (or any node with remaining edges, if all are
// even), removing its edges, until none remain.
func decomposePaths(sub *multigraph.Graph) [][]multigraph.NodeID {
	remaining := make(map[multigraph.EdgeKey]bool)
	for _, e := range sub.Edges() {
		remaining[canonKey(e.A, e.B)] = true
	}
	degree := func(id multigraph.NodeID) int {
		d := 0
		for _, nb := range sub.Neighbors(id) {
			if remaining[canonKey(id, nb)] {
				d++
			}
		}
		return d
	}

	var paths [][]multigraph.NodeID
	for len(remaining) > 0 {
		start := pickStart(sub, remaining, degree)
		path := []multigraph.NodeID{start}
		cur := start
		for {
			var next multigraph.NodeID
			found := false
			for _, nb := range sub.Neighbors(cur) {
				if remaining[canonKey(cur, nb)] {
					next = nb
					found = true
					break
				}
			}
			if !found {
				break
			}
			delete(remaining, canonKey(cur, next))
			path = append(path, next)
			cur = next
		}
		paths = append(paths, path)
	}
	return paths
}

func pickStart(sub *multigraph.Graph, remaining map[multigraph.EdgeKey]bool, degree func(multigraph.NodeID) int) multigraph.NodeID {
	nodes := sub.Nodes()
	var anyWithEdges multigraph.NodeID
	hasAny := false
	for _, n := range nodes {
		if degree(n.ID) == 0 {
			continue
		}
		if !hasAny {
			anyWithEdges = n.ID
			hasAny = true
		}
		if degree(n.ID)%2 == 1 {
			return n.ID
		}
	}
	return anyWithEdges
}
