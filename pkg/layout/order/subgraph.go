package order

import (
	"slices"

	"github.com/strataviz/strata/pkg/graph"
)

// sortSubgraph recursively orders the children of v within a layer graph.
// Cluster children are sorted first and collapse into single entries whose
// barycenter folds into the parent sort, which keeps children of one parent
// contiguous. A cluster's border pair is stripped before sorting and
// re-wrapped around the result, and the border predecessors' orders are
// blended into the reported barycenter so the cluster as a whole lands near
// its neighbors.
func sortSubgraph(lg *graph.Graph, v string, cg *graph.Graph, biasRight bool) SortResult {
	movable := slices.Clone(lg.Children(v))

	var bl, br string
	if node, ok := lg.Node(v); ok {
		rank := lg.LayerRank()
		bl = node.BorderLeft[rank]
		br = node.BorderRight[rank]
	}
	if bl != "" {
		movable = slices.DeleteFunc(movable, func(w string) bool { return w == bl || w == br })
	}

	subgraphs := make(map[string]SortResult)
	entries := barycenters(lg, movable)
	for i := range entries {
		entry := &entries[i]
		if len(lg.Children(entry.V)) == 0 {
			continue
		}
		subgraphResult := sortSubgraph(lg, entry.V, cg, biasRight)
		subgraphs[entry.V] = subgraphResult
		if subgraphResult.HasBarycenter {
			mergeBarycenters(entry, subgraphResult)
		}
	}

	resolved := resolveConflicts(entries, cg)
	expandSubgraphs(resolved, subgraphs)

	result := sortEntries(resolved, biasRight)

	if bl != "" {
		wrapped := make([]string, 0, len(result.VS)+2)
		wrapped = append(wrapped, bl)
		wrapped = append(wrapped, result.VS...)
		wrapped = append(wrapped, br)
		result.VS = wrapped

		if preds := lg.Predecessors(bl); len(preds) > 0 {
			blPred, _ := lg.Node(preds[0])
			brPred, _ := lg.Node(lg.Predecessors(br)[0])
			if !result.HasBarycenter {
				result.Barycenter = 0
				result.Weight = 0
				result.HasBarycenter = true
			}
			result.Barycenter = (result.Barycenter*result.Weight + float64(blPred.Order) + float64(brPred.Order)) / (result.Weight + 2)
			result.Weight += 2
		}
	}
	return result
}

// expandSubgraphs replaces every cluster ID inside the resolved entries
// with that cluster's already-sorted node sequence.
func expandSubgraphs(entries []*conflictEntry, subgraphs map[string]SortResult) {
	for _, entry := range entries {
		expanded := make([]string, 0, len(entry.vs))
		for _, v := range entry.vs {
			if sub, ok := subgraphs[v]; ok {
				expanded = append(expanded, sub.VS...)
			} else {
				expanded = append(expanded, v)
			}
		}
		entry.vs = expanded
	}
}

func mergeBarycenters(target *Entry, sub SortResult) {
	if target.HasBarycenter {
		target.Barycenter = (target.Barycenter*target.Weight + sub.Barycenter*sub.Weight) /
			(target.Weight + sub.Weight)
		target.Weight += sub.Weight
		return
	}
	target.Barycenter = sub.Barycenter
	target.Weight = sub.Weight
	target.HasBarycenter = true
}
