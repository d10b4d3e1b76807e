package order

import "github.com/strataviz/strata/pkg/graph"

// Entry is one movable node's barycenter measurement within a layer graph.
// Nodes without incoming edges have nothing to average over and carry no
// barycenter; the sorter keeps them at their current position.
type Entry struct {
	V             string
	Barycenter    float64
	Weight        float64
	HasBarycenter bool
}

// barycenters measures, for each movable node, the weighted mean order of
// its in-neighbors in the layer graph.
func barycenters(lg *graph.Graph, movable []string) []Entry {
	entries := make([]Entry, len(movable))
	for i, v := range movable {
		entries[i] = Entry{V: v}
		ins := lg.InEdges(v)
		if len(ins) == 0 {
			continue
		}
		var sum, weight float64
		for _, e := range ins {
			u, _ := lg.Node(e.From)
			sum += e.Weight * float64(u.Order)
			weight += e.Weight
		}
		entries[i].Barycenter = sum / weight
		entries[i].Weight = weight
		entries[i].HasBarycenter = true
	}
	return entries
}
