package order

import "github.com/strataviz/strata/pkg/graph"

// conflictEntry is a group of movable nodes that must be placed as a unit.
// Groups start as single barycenter entries and grow whenever a precedence
// constraint would otherwise be violated by barycenter order.
type conflictEntry struct {
	vs            []string
	i             int // smallest original index of any merged entry
	barycenter    float64
	weight        float64
	hasBarycenter bool

	indegree int
	in       []*conflictEntry
	out      []*conflictEntry
	merged   bool
}

// resolveConflicts coalesces barycenter entries so that no precedence edge
// of the constraint graph is violated: whenever a constrained predecessor
// would sort at or after its successor, the two entries merge into one with
// a weighted-average barycenter and the smaller original index. Entries are
// processed in constraint-topological order, so chains of violations
// collapse transitively.
func resolveConflicts(entries []Entry, cg *graph.Graph) []*conflictEntry {
	mapped := make(map[string]*conflictEntry, len(entries))
	all := make([]*conflictEntry, 0, len(entries))
	for i, e := range entries {
		ce := &conflictEntry{vs: []string{e.V}, i: i}
		if e.HasBarycenter {
			ce.barycenter = e.Barycenter
			ce.weight = e.Weight
			ce.hasBarycenter = true
		}
		mapped[e.V] = ce
		all = append(all, ce)
	}

	for _, e := range cg.Edges() {
		u, uok := mapped[e.From]
		v, vok := mapped[e.To]
		if uok && vok {
			v.indegree++
			u.out = append(u.out, v)
		}
	}

	var sourceSet []*conflictEntry
	for _, ce := range all {
		if ce.indegree == 0 {
			sourceSet = append(sourceSet, ce)
		}
	}

	var processed []*conflictEntry
	for len(sourceSet) > 0 {
		entry := sourceSet[len(sourceSet)-1]
		sourceSet = sourceSet[:len(sourceSet)-1]
		processed = append(processed, entry)

		for k := len(entry.in) - 1; k >= 0; k-- {
			uEntry := entry.in[k]
			if uEntry.merged {
				continue
			}
			if !uEntry.hasBarycenter || !entry.hasBarycenter || uEntry.barycenter >= entry.barycenter {
				mergeEntries(entry, uEntry)
			}
		}

		for _, wEntry := range entry.out {
			wEntry.in = append(wEntry.in, entry)
			wEntry.indegree--
			if wEntry.indegree == 0 {
				sourceSet = append(sourceSet, wEntry)
			}
		}
	}

	var out []*conflictEntry
	for _, ce := range processed {
		if !ce.merged {
			out = append(out, ce)
		}
	}
	return out
}

func mergeEntries(target, source *conflictEntry) {
	var sum, weight float64
	if target.weight > 0 {
		sum += target.barycenter * target.weight
		weight += target.weight
	}
	if source.weight > 0 {
		sum += source.barycenter * source.weight
		weight += source.weight
	}

	merged := make([]string, 0, len(source.vs)+len(target.vs))
	merged = append(merged, source.vs...)
	merged = append(merged, target.vs...)
	target.vs = merged

	if weight > 0 {
		target.barycenter = sum / weight
		target.weight = weight
		target.hasBarycenter = true
	}
	target.i = min(target.i, source.i)
	source.merged = true
}
