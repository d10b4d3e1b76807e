package layout

import (
	"errors"

	"github.com/strataviz/strata/pkg/graph"
)

// ErrNodeRankFactor is returned by [RemoveEmptyRanks] when the graph's
// node-rank factor is missing or not positive. The factor is required
// configuration; there is no safe universal default.
var ErrNodeRankFactor = errors.New("node rank factor must be a positive integer")

// MaxRank returns the maximum assigned rank over all nodes, ignoring nodes
// without a rank. It returns -1 when no node is ranked.
func MaxRank(g *graph.Graph) int {
	maxRank := -1
	for _, n := range g.Nodes() {
		if n.HasRank && n.Rank > maxRank {
			maxRank = n.Rank
		}
	}
	return maxRank
}

// NormalizeRanks shifts every assigned rank down by the minimum assigned
// rank, so the lowest rank becomes 0. Unranked nodes never influence the
// minimum and are left untouched.
func NormalizeRanks(g *graph.Graph) {
	shifted := false
	minRank := 0
	for _, n := range g.Nodes() {
		if n.HasRank && (!shifted || n.Rank < minRank) {
			minRank = n.Rank
			shifted = true
		}
	}
	if !shifted {
		return
	}
	for _, n := range g.Nodes() {
		if n.HasRank {
			n.Rank -= minRank
		}
	}
}

// RemoveEmptyRanks compacts rank numbers so that interior fully-empty ranks
// collapse, except at relative intervals of the graph's node-rank factor.
// The preserved gaps keep room for self-loop and multi-edge routing.
//
// Ranks are first offset by the minimum assigned rank; an empty relative
// rank whose index is not a multiple of the factor decrements a running
// delta, and every subsequent non-empty rank has the delta applied to all
// its members. Relative order of non-empty ranks is preserved.
func RemoveEmptyRanks(g *graph.Graph) error {
	factor := g.NodeRankFactor()
	if factor < 1 {
		return ErrNodeRankFactor
	}

	offset := 0
	seen := false
	for _, n := range g.Nodes() {
		if n.HasRank && (!seen || n.Rank < offset) {
			offset = n.Rank
			seen = true
		}
	}
	if !seen {
		return nil
	}

	layers := make(map[int][]*graph.Node)
	maxIndex := 0
	for _, n := range g.Nodes() {
		if !n.HasRank {
			continue
		}
		i := n.Rank - offset
		layers[i] = append(layers[i], n)
		if i > maxIndex {
			maxIndex = i
		}
	}

	delta := 0
	for i := 0; i <= maxIndex; i++ {
		vs := layers[i]
		if len(vs) == 0 && i%factor != 0 {
			delta--
			continue
		}
		if delta != 0 {
			for _, n := range vs {
				n.Rank += delta
			}
		}
	}
	return nil
}

// BuildLayerMatrix returns one row per rank, MaxRank+1 rows in total, where
// row r holds at position order(v) every node v with rank r. Nodes without
// a rank are skipped; nodes without an order leave holes ("" entries)
// rather than causing errors.
func BuildLayerMatrix(g *graph.Graph) [][]string {
	maxRank := MaxRank(g)
	if maxRank < 0 {
		return nil
	}
	layering := make([][]string, maxRank+1)
	for _, n := range g.Nodes() {
		if !n.HasRank || !n.HasOrder {
			continue
		}
		row := layering[n.Rank]
		for len(row) <= n.Order {
			row = append(row, "")
		}
		row[n.Order] = n.ID
		layering[n.Rank] = row
	}
	return layering
}
