package layout

import "github.com/strataviz/strata/pkg/graph"

// AddDummyNode inserts a synthetic node tagged with dummyType and returns
// its ID. The ID is drawn from ids by repeated probing: candidates are
// generated until one does not collide with an existing node, so callers
// may pre-populate the graph with IDs the source would otherwise pick.
// The node's remaining attributes are taken from n as given.
func AddDummyNode(g *graph.Graph, dummyType string, n graph.Node, prefix string, ids *IDSource) string {
	id := ids.Unique(prefix)
	for g.HasNode(id) {
		id = ids.Unique(prefix)
	}
	n.ID = id
	n.Dummy = dummyType
	if err := g.AddNode(n); err != nil {
		panic(err)
	}
	return id
}

// AddBorderNode inserts a zero-size "border" dummy node with no rank or
// order; both are left unset for later assignment.
func AddBorderNode(g *graph.Graph, prefix string, ids *IDSource) string {
	return AddDummyNode(g, "border", graph.Node{}, prefix, ids)
}

// AddPositionedBorderNode inserts a zero-size "border" dummy node with the
// given rank and order already assigned.
func AddPositionedBorderNode(g *graph.Graph, prefix string, rank, order int, ids *IDSource) string {
	var n graph.Node
	n.SetRank(rank)
	n.SetOrder(order)
	return AddDummyNode(g, "border", n, prefix, ids)
}
