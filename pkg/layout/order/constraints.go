package order

import "github.com/strataviz/strata/pkg/graph"

// addSubgraphConstraints records, in the constraint graph, the left-to-
// right precedence between sibling clusters implied by a freshly computed
// order. Each node's ancestor chain is walked toward the layer-graph root;
// the first level where the chain switches from one sibling to another
// yields a precedence edge consumed by the next sweep's sort.
func addSubgraphConstraints(lg, cg *graph.Graph, vs []string) {
	prev := make(map[string]string)
	var rootPrev string

	for _, v := range vs {
		child, ok := lg.Parent(v)
		for ok {
			parent, pok := lg.Parent(child)
			var prevChild string
			if pok {
				prevChild = prev[parent]
				prev[parent] = child
			} else {
				prevChild = rootPrev
				rootPrev = child
			}
			if prevChild != "" && prevChild != child {
				setConstraint(cg, prevChild, child)
				break
			}
			child, ok = parent, pok
		}
	}
}

func setConstraint(cg *graph.Graph, u, v string) {
	if !cg.HasNode(u) {
		if err := cg.AddNode(graph.Node{ID: u}); err != nil {
			panic(err)
		}
	}
	if !cg.HasNode(v) {
		if err := cg.AddNode(graph.Node{ID: v}); err != nil {
			panic(err)
		}
	}
	if cg.Edge(u, v) == nil {
		if err := cg.AddEdge(graph.Edge{From: u, To: v}); err != nil {
			panic(err)
		}
	}
}
