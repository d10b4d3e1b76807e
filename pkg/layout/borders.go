package layout

import "github.com/strataviz/strata/pkg/graph"

// AddBorderSegments allocates the persistent border scaffolding for every
// cluster node spanning a rank interval. For each rank in [MinRank,
// MaxRank] a zero-size "border" dummy node is added on the left and right
// of the cluster, recorded in the cluster's BorderLeft/BorderRight maps,
// parented under the cluster, and chained to the border node of the
// previous rank with a weight-1 edge.
//
// Unlike layer-graph scaffolding, these nodes stay on the main graph: the
// ordering phase positions them like any other node and renderers use them
// to trace cluster outlines.
func AddBorderSegments(g *graph.Graph, ids *IDSource) {
	var dfs func(v string)
	dfs = func(v string) {
		for _, child := range g.Children(v) {
			dfs(child)
		}
		node, ok := g.Node(v)
		if !ok || !node.HasSpan {
			return
		}
		node.BorderLeft = make(map[int]string, node.MaxRank-node.MinRank+1)
		node.BorderRight = make(map[int]string, node.MaxRank-node.MinRank+1)
		for rank := node.MinRank; rank <= node.MaxRank; rank++ {
			addBorderAt(g, node, node.BorderLeft, "_bl", rank, ids)
			addBorderAt(g, node, node.BorderRight, "_br", rank, ids)
		}
	}

	for _, v := range g.Children("") {
		dfs(v)
	}
}

func addBorderAt(g *graph.Graph, cluster *graph.Node, side map[int]string, prefix string, rank int, ids *IDSource) {
	var n graph.Node
	n.SetRank(rank)
	curr := AddDummyNode(g, "border", n, prefix, ids)
	side[rank] = curr
	if err := g.SetParent(curr, cluster.ID); err != nil {
		panic(err)
	}
	if prev, ok := side[rank-1]; ok {
		if err := g.AddEdge(graph.Edge{From: prev, To: curr, Weight: 1, MinLen: 1}); err != nil {
			panic(err)
		}
	}
}
