// Package graph provides the directed, optionally compound graph structure
// consumed by the layered layout pipeline.
//
// # Overview
//
// The layout engine assigns every node an integer rank (vertical layer) and
// an integer order (horizontal position within the rank). This package holds
// the shared mutable structure those phases annotate: nodes with optional
// rank/order attributes, weighted edges with minimum-length constraints, and
// an optional parent/child hierarchy for cluster nodes.
//
// # Basic Usage
//
// Create a graph with [New] (or [NewMulti] when parallel edges are needed),
// add nodes and edges, and hand it to the rank and order packages:
//
//	g := graph.New()
//	g.AddNode(graph.Node{ID: "app"})
//	g.AddNode(graph.Node{ID: "lib"})
//	g.AddEdge(graph.Edge{From: "app", To: "lib", Weight: 1, MinLen: 1})
//
// # Hierarchy
//
// Cluster nodes nest via [Graph.SetParent]; children form a forest. Cluster
// nodes spanning several ranks carry MinRank/MaxRank and per-rank border
// node IDs, maintained by the layout package.
//
// # Determinism
//
// All iteration surfaces (Nodes, Edges, Children, Sources, neighbor lists)
// report insertion order. The ordering heuristics rely on this: repeated
// runs over the same input produce identical layouts.
package graph
