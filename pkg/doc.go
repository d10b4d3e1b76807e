// Package pkg provides the core libraries for Strata layered graph layout.
//
// # Overview
//
// Strata computes the skeleton of a layered (Sugiyama-style) drawing for a
// directed acyclic graph: every node receives an integer rank (its
// horizontal layer) and an integer order (its position within the layer),
// chosen to keep edge crossings low. Rendering, coordinate assignment, and
// edge routing are left to downstream consumers.
//
// The typical data flow:
//
//	Graph description (JSON)
//	         ↓
//	    [graph] package (graph structure + compound hierarchy)
//	         ↓
//	    [layout/rank] package (longest-path ranking)
//	         ↓
//	    [layout] package (rank compaction, border scaffolding)
//	         ↓
//	    [layout/order] package (crossing minimization)
//	         ↓
//	    rank + order per node (JSON)
//
// # Main Packages
//
// [graph] - Directed graph with optional compound hierarchy. Iteration is
// insertion-ordered, which keeps every layout pass deterministic.
//
// [layout] - Shared layout machinery: rank normalization and compaction,
// the layer matrix, dummy and border node allocation, ID generation, and
// small sequence helpers.
//
// [layout/rank] - Rank assignment with the longest-path heuristic.
//
// [layout/order] - Order assignment by iterated barycenter sweeps over
// per-rank layer graphs, honoring cluster membership so children of a
// compound node stay contiguous.
//
// [buildinfo] - Build-time version information.
//
// # Quick Start
//
// Rank and order a small graph:
//
//	g := graph.New()
//	_ = g.AddNode(graph.Node{ID: "a"})
//	_ = g.AddNode(graph.Node{ID: "b"})
//	_ = g.AddEdge(graph.Edge{From: "a", To: "b", Weight: 1, MinLen: 1})
//
//	_ = rank.LongestPath(g)
//	layout.NormalizeRanks(g)
//	_ = order.Order(g, order.Options{})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Layout packages only
//
// [graph]: https://pkg.go.dev/github.com/strataviz/strata/pkg/graph
// [layout]: https://pkg.go.dev/github.com/strataviz/strata/pkg/layout
// [layout/rank]: https://pkg.go.dev/github.com/strataviz/strata/pkg/layout/rank
// [layout/order]: https://pkg.go.dev/github.com/strataviz/strata/pkg/layout/order
// [buildinfo]: https://pkg.go.dev/github.com/strataviz/strata/pkg/buildinfo
package pkg
