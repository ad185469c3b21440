// Package multigraph implements the shared graph that the overlay matcher
// emits primitives into: an arena of nodes addressed by ID (not by raw
// coordinate, since non-fusable nodes may legitimately coexist at the
// same position as a fusable one) plus a spatial index used only to find
// fusion candidates.
//
// The adjacency bookkeeping generalizes a directed-acyclic-graph's row
// storage to this package's undirected multigraph with metadata.
package multigraph

import (
	"fmt"
	"sort"

	"github.com/stencilgraph/stencilgraph/pkg/geom"
)

// NodeID identifies a node in a Graph's arena. IDs are stable for the
// lifetime of the Graph and are never reused.
type NodeID int

// Node is an arena entry: a position plus the two matcher-relevant
// attributes (path style and fusability).
type Node struct {
	ID      NodeID
	Pos     geom.Point
	Style   geom.Style
	Fusable bool
}

// EdgeKey canonically identifies an undirected edge by its endpoint IDs,
// smallest first, so it can key a map regardless of insertion order.
type EdgeKey struct {
	A, B NodeID
}

func canon(a, b NodeID) EdgeKey {
	if a <= b {
		return EdgeKey{A: a, B: b}
	}
	return EdgeKey{A: b, B: a}
}

// Edge is an undirected edge between two arena nodes. TopOf, when set,
// names the endpoint coordinates of another edge this one is drawn
// above; it is resolved against drawables' coordinates downstream (see
// pkg/zorder), not against a specific NodeID, because the referenced
// edge may belong to a different connected component or may not exist
// in the graph at all; an unresolved top_of is simply ignored.
type Edge struct {
	A, B  NodeID
	TopOf *[2]geom.Point
}

// Graph is the undirected multigraph the overlay matcher composes
// primitives into. It is owned by the matcher for the duration of a
// single parse and is not safe for concurrent mutation.
type Graph struct {
	nodes    []Node
	fusable  map[string]NodeID // coordinate key -> first fusable node at that coordinate
	edges    map[EdgeKey]*Edge
	edgeKeys []EdgeKey // insertion order, for deterministic iteration
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		fusable: make(map[string]NodeID),
		edges:   make(map[EdgeKey]*Edge),
	}
}

func coordKey(p geom.Point) string {
	return fmt.Sprintf("%.6f:%.6f", p.X, p.Y)
}

// AddNode inserts a node, applying the fusion rule: if fusable is true
// and a fusable node already exists at pos (same coordinates when each
// is rounded to six decimal places), its ID
// is returned unchanged; otherwise a fresh ID is allocated.
func (g *Graph) AddNode(pos geom.Point, style geom.Style, fusable bool) NodeID {
	key := coordKey(pos)
	if fusable {
		if id, ok := g.fusable[key]; ok {
			return id
		}
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Pos: pos, Style: style, Fusable: fusable})
	if fusable {
		g.fusable[key] = id
	}
	return id
}

// AddEdge inserts an undirected edge between a and b. If an edge between
// the same two node IDs already exists, the new one is dropped unless it
// carries a TopOf annotation the existing edge lacks, in which case the
// annotation is copied onto the existing edge. a == b is rejected
// silently (a degenerate stencil emission); it never occurs for a
// well-formed catalog entry.
func (g *Graph) AddEdge(a, b NodeID, topOf *[2]geom.Point) {
	if a == b {
		return
	}
	key := canon(a, b)
	if existing, ok := g.edges[key]; ok {
		if existing.TopOf == nil && topOf != nil {
			existing.TopOf = topOf
		}
		return
	}
	g.edges[key] = &Edge{A: a, B: b, TopOf: topOf}
	g.edgeKeys = append(g.edgeKeys, key)
}

// Node returns the node with the given ID. Panics if id is out of range,
// which indicates a bug in the caller: every NodeID in circulation was
// allocated by this same Graph.
func (g *Graph) Node(id NodeID) Node {
	return g.nodes[id]
}

// Nodes returns all nodes in allocation order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edgeKeys))
	for i, k := range g.edgeKeys {
		out[i] = *g.edges[k]
	}
	return out
}

// HasEdge reports whether a and b are directly connected.
func (g *Graph) HasEdge(a, b NodeID) bool {
	_, ok := g.edges[canon(a, b)]
	return ok
}

// EdgeBetween returns the edge connecting a and b, if any.
func (g *Graph) EdgeBetween(a, b NodeID) (Edge, bool) {
	e, ok := g.edges[canon(a, b)]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// RemoveEdge deletes the edge between a and b, if present.
func (g *Graph) RemoveEdge(a, b NodeID) {
	key := canon(a, b)
	if _, ok := g.edges[key]; !ok {
		return
	}
	delete(g.edges, key)
	for i, k := range g.edgeKeys {
		if k == key {
			g.edgeKeys = append(g.edgeKeys[:i], g.edgeKeys[i+1:]...)
			break
		}
	}
}

// Neighbors returns the IDs of nodes directly connected to id, sorted
// for deterministic traversal order.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	var out []NodeID
	for _, k := range g.edgeKeys {
		switch id {
		case k.A:
			out = append(out, k.B)
		case k.B:
			out = append(out, k.A)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id NodeID) int {
	return len(g.Neighbors(id))
}

// Components partitions the graph into connected subgraphs by standard
// BFS-from-unvisited undirected traversal. Isolated nodes (no incident
// edges) form their own single-node component so a solitary `+` anchor
// still surfaces.
func (g *Graph) Components() []*Graph {
	visited := make([]bool, len(g.nodes))
	var comps []*Graph

	for start := range g.nodes {
		if visited[start] {
			continue
		}
		sub := New()
		remap := make(map[NodeID]NodeID)
		queue := []NodeID{NodeID(start)}
		visited[start] = true
		var order []NodeID

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			order = append(order, cur)
			for _, nb := range g.Neighbors(cur) {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}

		for _, id := range order {
			n := g.nodes[id]
			newID := sub.AddNode(n.Pos, n.Style, false)
			// false above bypasses fusion (nodes are already fused in
			// the parent graph); force the identity mapping directly.
			sub.nodes[newID].Fusable = n.Fusable
			remap[id] = newID
		}
		for _, k := range g.edgeKeys {
			if _, ok := remap[k.A]; !ok {
				continue
			}
			if _, ok := remap[k.B]; !ok {
				continue
			}
			e := g.edges[k]
			sub.AddEdge(remap[e.A], remap[e.B], e.TopOf)
		}
		comps = append(comps, sub)
	}
	return comps
}
