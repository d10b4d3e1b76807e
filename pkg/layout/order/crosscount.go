package order

import (
	"slices"

	"github.com/strataviz/strata/pkg/graph"
	"github.com/strataviz/strata/pkg/layout"
)

// CrossCount returns the weighted number of edge crossings implied by the
// layering: the sum over consecutive rank pairs of the crossings between
// them. With unit weights this is the plain crossing count; it is 0 iff
// the current order is planar layer by layer.
func CrossCount(g *graph.Graph, layering [][]string) float64 {
	var cc float64
	for i := 1; i < len(layering); i++ {
		cc += twoLayerCrossCount(g, layering[i-1], layering[i])
	}
	return cc
}

// twoLayerCrossCount counts weighted crossings between two adjacent ranks
// with a Fenwick tree in O(E log V): edges are visited in north order with
// southward ties broken left to right, and each edge crosses exactly the
// already-seen edges whose south endpoint lies strictly to its right.
func twoLayerCrossCount(g *graph.Graph, north, south []string) float64 {
	southIDs := make([]string, 0, len(south))
	for _, v := range south {
		if v != "" {
			southIDs = append(southIDs, v)
		}
	}
	if len(southIDs) == 0 {
		return 0
	}
	southPos := layout.ZipObject(southIDs, layout.Range(0, len(southIDs)))

	type southEntry struct {
		pos    int
		weight float64
	}
	var entries []southEntry
	for _, v := range north {
		if v == "" {
			continue
		}
		outs := g.OutEdges(v)
		batch := make([]southEntry, 0, len(outs))
		for _, e := range outs {
			if pos, ok := southPos[e.To]; ok {
				batch = append(batch, southEntry{pos: pos, weight: e.Weight})
			}
		}
		slices.SortFunc(batch, func(a, b southEntry) int { return a.pos - b.pos })
		entries = append(entries, batch...)
	}

	tree := make([]float64, len(southIDs)+1)
	var cc, total float64
	for _, e := range entries {
		// Accumulated weight of earlier edges with south position <= pos.
		var lessOrEqual float64
		for q := e.pos + 1; q > 0; q -= q & (-q) {
			lessOrEqual += tree[q]
		}
		cc += e.weight * (total - lessOrEqual)

		total += e.weight
		for idx := e.pos + 1; idx < len(tree); idx += idx & (-idx) {
			tree[idx] += e.weight
		}
	}
	return cc
}
