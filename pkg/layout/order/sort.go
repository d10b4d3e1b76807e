package order

import (
	"slices"

	"github.com/strataviz/strata/pkg/layout"
)

// SortResult is the outcome of sorting one (sub)layer: the movable node IDs
// in their new left-to-right order plus the aggregate barycenter and weight
// the parent level folds into its own sort.
type SortResult struct {
	VS            []string
	Barycenter    float64
	Weight        float64
	HasBarycenter bool
}

// sortEntries orders the conflict-resolved groups: groups with a barycenter
// sort by it (original index breaks ties, reversed under biasRight), while
// groups without one are frozen at their original index and re-inserted as
// the sorted groups stream past.
func sortEntries(entries []*conflictEntry, biasRight bool) SortResult {
	sortable, unsortable := layout.Partition(entries, func(e *conflictEntry) bool { return e.hasBarycenter })

	// Descending index so the next candidate is always at the tail.
	slices.SortFunc(unsortable, func(a, b *conflictEntry) int { return b.i - a.i })
	slices.SortFunc(sortable, compareWithBias(biasRight))

	var vs [][]string
	var sum, weight float64
	index := consumeUnsortable(&vs, &unsortable, 0)
	for _, entry := range sortable {
		index += len(entry.vs)
		vs = append(vs, entry.vs)
		sum += entry.barycenter * entry.weight
		weight += entry.weight
		index = consumeUnsortable(&vs, &unsortable, index)
	}

	result := SortResult{VS: slices.Concat(vs...)}
	if weight > 0 {
		result.Barycenter = sum / weight
		result.Weight = weight
		result.HasBarycenter = true
	}
	return result
}

func consumeUnsortable(vs *[][]string, unsortable *[]*conflictEntry, index int) int {
	for len(*unsortable) > 0 {
		last := (*unsortable)[len(*unsortable)-1]
		if last.i > index {
			break
		}
		*unsortable = (*unsortable)[:len(*unsortable)-1]
		*vs = append(*vs, last.vs)
		index++
	}
	return index
}

func compareWithBias(biasRight bool) func(a, b *conflictEntry) int {
	return func(a, b *conflictEntry) int {
		switch {
		case a.barycenter < b.barycenter:
			return -1
		case a.barycenter > b.barycenter:
			return 1
		case biasRight:
			return b.i - a.i
		default:
			return a.i - b.i
		}
	}
}
