// Package graph provides directed graph containers for modeling board
// connectivity.
//
// Graph stores an arbitrary directed relation over comparable node values.
// PartialOrder layers an acyclicity guarantee on top of it, rejecting any
// edge insertion that would close a directed cycle. Neither type supports
// deletion; a graph only ever grows.
package graph

// Edge is an ordered pair of nodes denoting a directed connection from
// Tail to Head.
type Edge[N comparable] struct {
	Tail N
	Head N
}

// Graph is a mutable directed graph over comparable node values. Nodes
// and edges have set semantics: inserting a value that is already present
// is a no-op. Call New to create one.
type Graph[N comparable] struct {
	nodes map[N]struct{}
	edges map[Edge[N]]struct{}
	succ  map[N][]N
}

// New returns an empty graph.
func New[N comparable]() *Graph[N] {
	return &Graph[N]{
		nodes: make(map[N]struct{}),
		edges: make(map[Edge[N]]struct{}),
		succ:  make(map[N][]N),
	}
}

// AddNode inserts n into the node set.
func (g *Graph[N]) AddNode(n N) {
	g.nodes[n] = struct{}{}
}

// AddEdge inserts a directed edge from tail to head, inserting both
// endpoints into the node set if absent. Self-loops are permitted at this
// level; use PartialOrder when the relation must stay acyclic.
func (g *Graph[N]) AddEdge(tail, head N) {
	e := Edge[N]{Tail: tail, Head: head}
	if _, ok := g.edges[e]; ok {
		return
	}

	g.edges[e] = struct{}{}
	g.nodes[tail] = struct{}{}
	g.nodes[head] = struct{}{}
	g.succ[tail] = append(g.succ[tail], head)
}

// HasNode reports whether n is in the node set.
func (g *Graph[N]) HasNode(n N) bool {
	_, ok := g.nodes[n]
	return ok
}

// HasEdge reports whether a directed edge from tail to head exists.
func (g *Graph[N]) HasEdge(tail, head N) bool {
	_, ok := g.edges[Edge[N]{Tail: tail, Head: head}]
	return ok
}

// Nodes returns the node set as a fresh slice in unspecified order.
// Mutating the returned slice does not affect the graph.
func (g *Graph[N]) Nodes() []N {
	nodes := make([]N, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// Edges returns the edge set as a fresh slice in unspecified order.
func (g *Graph[N]) Edges() []Edge[N] {
	edges := make([]Edge[N], 0, len(g.edges))
	for e := range g.edges {
		edges = append(edges, e)
	}
	return edges
}

// Successors returns the heads of all edges leaving n, in insertion
// order. The result is empty when n has no outgoing edges or is not in
// the graph.
func (g *Graph[N]) Successors(n N) []N {
	heads := make([]N, len(g.succ[n]))
	copy(heads, g.succ[n])
	return heads
}

// NumNodes returns the number of nodes.
func (g *Graph[N]) NumNodes() int {
	return len(g.nodes)
}

// NumEdges returns the number of edges.
func (g *Graph[N]) NumEdges() int {
	return len(g.edges)
}
