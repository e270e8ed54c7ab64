package graph

import (
	"errors"
	"fmt"
)

// ErrCycle indicates an edge insertion would close a directed cycle.
var ErrCycle = errors.New("edge would create a cycle")

// ErrCorrupt indicates the stored edge set already contained a cycle
// before the insertion being checked. It signals a bug (a mutation that
// bypassed AddEdge) rather than a rejectable caller request.
var ErrCorrupt = errors.New("graph already contains a cycle")

// PartialOrder is a directed graph whose edge relation is kept acyclic:
// AddEdge rejects any edge that would close a directed cycle, so
// reachability over its edges is always a strict partial order.
//
// PartialOrder wraps a Graph rather than embedding one, so the unchecked
// Graph.AddEdge cannot be reached through it.
type PartialOrder[N comparable] struct {
	g *Graph[N]
}

// NewPartialOrder returns an empty partial order.
func NewPartialOrder[N comparable]() *PartialOrder[N] {
	return &PartialOrder[N]{g: New[N]()}
}

// AddNode inserts n into the node set. Isolated nodes cannot form cycles,
// so no check is performed.
func (p *PartialOrder[N]) AddNode(n N) {
	p.g.AddNode(n)
}

// AddEdge inserts a directed edge from tail to head, inserting both
// endpoints into the node set if absent. Duplicate edges are no-ops.
//
// Before mutating anything, AddEdge walks the existing edges from head
// looking for tail. Reaching tail means the new edge would close a cycle,
// and the insertion fails with an error wrapping ErrCycle. A self-loop
// (tail == head) is the zero-length case of the same walk and is always
// rejected. On failure the graph is unchanged.
//
// The walk visits each node and edge at most once, so a call costs O(V+E)
// in the worst case.
func (p *PartialOrder[N]) AddEdge(tail, head N) error {
	if err := p.checkAcyclic(tail, head); err != nil {
		return fmt.Errorf("add edge %v -> %v: %w", tail, head, err)
	}

	p.g.AddEdge(tail, head)
	return nil
}

// checkAcyclic reports whether adding an edge from tail to head would
// close a cycle. It runs a depth-first walk from head over existing
// edges; open tracks nodes whose subtree is still being expanded and done
// tracks fully explored nodes.
//
// Finding an edge back into a still-open node means the stored edge set
// already had a cycle, which no sequence of AddEdge calls can produce.
// That case returns ErrCorrupt and should be treated as fatal. Meeting an
// already-done node again (two paths to the same node) is a normal DAG
// shape and is skipped.
func (p *PartialOrder[N]) checkAcyclic(tail, head N) error {
	open := make(map[N]bool)
	done := make(map[N]bool)

	stack := []N{head}
	for len(stack) > 0 {
		n := stack[len(stack)-1]

		if !open[n] {
			if n == tail {
				return ErrCycle
			}
			open[n] = true

			for _, next := range p.g.succ[n] {
				if done[next] {
					continue
				}
				if open[next] {
					return ErrCorrupt
				}
				stack = append(stack, next)
			}
			continue
		}

		// Second time on top: every successor is finished.
		stack = stack[:len(stack)-1]
		done[n] = true
	}

	return nil
}

// HasNode reports whether n is in the node set.
func (p *PartialOrder[N]) HasNode(n N) bool {
	return p.g.HasNode(n)
}

// HasEdge reports whether a directed edge from tail to head exists.
func (p *PartialOrder[N]) HasEdge(tail, head N) bool {
	return p.g.HasEdge(tail, head)
}

// Nodes returns the node set as a fresh slice in unspecified order.
func (p *PartialOrder[N]) Nodes() []N {
	return p.g.Nodes()
}

// Edges returns the edge set as a fresh slice in unspecified order.
func (p *PartialOrder[N]) Edges() []Edge[N] {
	return p.g.Edges()
}

// Successors returns the heads of all edges leaving n, in insertion
// order.
func (p *PartialOrder[N]) Successors(n N) []N {
	return p.g.Successors(n)
}

// NumNodes returns the number of nodes.
func (p *PartialOrder[N]) NumNodes() int {
	return p.g.NumNodes()
}

// NumEdges returns the number of edges.
func (p *PartialOrder[N]) NumEdges() int {
	return p.g.NumEdges()
}
