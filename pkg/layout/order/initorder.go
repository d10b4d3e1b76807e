package order

import (
	"slices"

	"github.com/strataviz/strata/pkg/graph"
)

// InitOrder seeds a per-rank ordering before the crossing-minimization
// iterations start. Simple nodes (nodes without children) are visited in
// ascending rank order; a depth-first walk over successors appends each
// node to its rank's layer the first time it is reached. Every ranked node
// lands in exactly one layer.
func InitOrder(g *graph.Graph) [][]string {
	var simple []*graph.Node
	for _, n := range g.Nodes() {
		if len(g.Children(n.ID)) == 0 && n.HasRank {
			simple = append(simple, n)
		}
	}
	maxRank := -1
	for _, n := range simple {
		if n.Rank > maxRank {
			maxRank = n.Rank
		}
	}
	if maxRank < 0 {
		return nil
	}
	layers := make([][]string, maxRank+1)

	visited := make(map[string]bool, g.NodeCount())
	var dfs func(v string)
	dfs = func(v string) {
		if visited[v] {
			return
		}
		visited[v] = true
		if n, ok := g.Node(v); ok && n.HasRank {
			layers[n.Rank] = append(layers[n.Rank], v)
		}
		for _, w := range g.Successors(v) {
			dfs(w)
		}
	}

	ordered := slices.Clone(simple)
	slices.SortStableFunc(ordered, func(a, b *graph.Node) int { return a.Rank - b.Rank })
	for _, n := range ordered {
		dfs(n.ID)
	}
	return layers
}
