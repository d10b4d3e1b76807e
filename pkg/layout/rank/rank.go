package rank

import (
	"slices"

	"github.com/strataviz/strata/pkg/graph"
	"github.com/strataviz/strata/pkg/layout"
)

// LongestPath assigns every node an unnormalized integer rank using the
// longest-path heuristic: sinks get rank 0 and every other node gets the
// minimum over its out-edges of rank(head) - minlen. The traversal is a
// memoized depth-first search from every source, run on an explicit stack
// so arbitrarily deep graphs cannot exhaust the call stack; shared
// descendants are ranked once, giving O(V+E) total work.
//
// Cyclic input is rejected up front with [graph.ErrGraphHasCycle] instead
// of producing a silently wrong ranking. The result is not normalized -
// callers wanting ranks starting at 0 follow up with
// [layout.NormalizeRanks].
func LongestPath(g *graph.Graph) error {
	if err := g.Validate(); err != nil {
		return err
	}

	visited := make(map[string]bool, g.NodeCount())

	type frame struct {
		id       string
		expanded bool
	}
	var stack []frame

	for _, src := range g.Sources() {
		stack = append(stack, frame{id: src.ID})
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if f.expanded {
				assignRank(g, f.id)
				continue
			}
			if visited[f.id] {
				continue
			}
			visited[f.id] = true

			// Post-visit frame first so every successor's rank is
			// resolved before this node's.
			stack = append(stack, frame{id: f.id, expanded: true})
			for _, e := range g.OutEdges(f.id) {
				if !visited[e.To] {
					stack = append(stack, frame{id: e.To})
				}
			}
		}
	}
	return nil
}

func assignRank(g *graph.Graph, v string) {
	node, _ := g.Node(v)
	outs := g.OutEdges(v)
	if len(outs) == 0 {
		node.SetRank(0)
		return
	}
	candidates := make([]int, len(outs))
	for i, e := range outs {
		head, _ := g.Node(e.To)
		candidates[i] = head.Rank - e.MinLen
	}
	node.SetRank(layout.ApplyWithChunking(slices.Min[[]int], candidates))
}

// Slack returns rank(head) - rank(tail) - minlen for the edge. A valid
// ranking keeps the slack of every edge non-negative.
func Slack(g *graph.Graph, e *graph.Edge) int {
	tail, _ := g.Node(e.From)
	head, _ := g.Node(e.To)
	return head.Rank - tail.Rank - e.MinLen
}
