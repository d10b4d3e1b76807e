package order

import (
	"github.com/strataviz/strata/pkg/graph"
	"github.com/strataviz/strata/pkg/layout"
)

// Relationship selects which incident edges connect a movable node to its
// neighbors when a layer graph is extracted.
type Relationship int

const (
	// RelInEdges links movable nodes to the tails of their incoming edges
	// (the rank above, in a downward sweep).
	RelInEdges Relationship = iota
	// RelOutEdges links movable nodes to the heads of their outgoing edges
	// (the rank below, in an upward sweep).
	RelOutEdges
)

// movableByRank indexes every node under each rank it occupies: its own
// rank plus, for cluster nodes, every rank of the [MinRank, MaxRank] span.
// The orchestrator builds this once per ordering pass so layer-graph
// extraction never rescans the whole graph.
func movableByRank(g *graph.Graph) map[int][]*graph.Node {
	idx := make(map[int][]*graph.Node)
	for _, n := range g.Nodes() {
		if n.HasRank {
			idx[n.Rank] = append(idx[n.Rank], n)
		}
		if n.HasSpan {
			for r := n.MinRank; r <= n.MaxRank; r++ {
				if n.HasRank && n.Rank == r {
					continue
				}
				idx[r] = append(idx[r], n)
			}
		}
	}
	return idx
}

// buildLayerGraph extracts the reduced compound graph for one target rank:
// the movable nodes at that rank (attached by reference, so later order
// writes stay visible), their hierarchy among themselves with parentless
// movables grouped under a freshly probed synthetic root, and each
// immediate neighbor reachable over one edge of the requested relationship.
// All original edges between a neighbor and a movable collapse into a
// single edge, neighbor to movable, carrying the summed weight.
//
// A cluster movable's border maps stay intact; consumers slice them to the
// target rank through the graph's LayerRank metadata.
func buildLayerGraph(g *graph.Graph, rank int, rel Relationship, movable map[int][]*graph.Node, ids *layout.IDSource) *graph.Graph {
	root := ids.Unique("_root")
	for g.HasNode(root) {
		root = ids.Unique("_root")
	}

	lg := graph.New()
	lg.SetRoot(root)
	lg.SetLayerRank(rank)
	if err := lg.AddNode(graph.Node{ID: root, Dummy: "root"}); err != nil {
		panic(err)
	}

	nodes := movable[rank]
	for _, node := range nodes {
		if err := lg.AttachNode(node); err != nil {
			panic(err)
		}
	}
	for _, node := range nodes {
		v := node.ID
		parent, ok := g.Parent(v)
		if !ok || !lg.HasNode(parent) {
			parent = root
		}
		if err := lg.SetParent(v, parent); err != nil {
			panic(err)
		}

		edges := g.InEdges(v)
		if rel == RelOutEdges {
			edges = g.OutEdges(v)
		}
		for _, e := range edges {
			u := e.From
			if rel == RelOutEdges {
				u = e.To
			}
			if !lg.HasNode(u) {
				if neighbor, found := g.Node(u); found {
					if err := lg.AttachNode(neighbor); err != nil {
						panic(err)
					}
				}
			}
			if prev := lg.Edge(u, v); prev != nil {
				prev.Weight += e.Weight
			} else if err := lg.AddEdge(graph.Edge{From: u, To: v, Weight: e.Weight}); err != nil {
				panic(err)
			}
		}
	}
	return lg
}

func buildLayerGraphs(g *graph.Graph, ranks []int, rel Relationship, movable map[int][]*graph.Node, ids *layout.IDSource) []*graph.Graph {
	out := make([]*graph.Graph, len(ranks))
	for i, r := range ranks {
		out[i] = buildLayerGraph(g, r, rel, movable, ids)
	}
	return out
}
