package order

import (
	"testing"

	"github.com/strataviz/strata/pkg/graph"
)

func TestCrossCount_XPattern(t *testing.T) {
	// a→y and b→x cross when a is left of b and x is left of y.
	g := graph.New()
	addRanked(t, g, "a", 0)
	addRanked(t, g, "b", 0)
	addRanked(t, g, "x", 1)
	addRanked(t, g, "y", 1)
	addEdge(t, g, "a", "y")
	addEdge(t, g, "b", "x")

	layering := [][]string{{"a", "b"}, {"x", "y"}}
	if cc := CrossCount(g, layering); cc != 1 {
		t.Errorf("CrossCount() = %g, want 1", cc)
	}

	layering = [][]string{{"b", "a"}, {"x", "y"}}
	if cc := CrossCount(g, layering); cc != 0 {
		t.Errorf("CrossCount() after reorder = %g, want 0", cc)
	}
}

func TestCrossCount_Weighted(t *testing.T) {
	g := graph.New()
	addRanked(t, g, "a", 0)
	addRanked(t, g, "b", 0)
	addRanked(t, g, "x", 1)
	addRanked(t, g, "y", 1)
	if err := g.AddEdge(graph.Edge{From: "a", To: "y", Weight: 2}); err != nil {
		t.Fatalf("AddEdge() = %v", err)
	}
	if err := g.AddEdge(graph.Edge{From: "b", To: "x", Weight: 3}); err != nil {
		t.Fatalf("AddEdge() = %v", err)
	}

	layering := [][]string{{"a", "b"}, {"x", "y"}}
	if cc := CrossCount(g, layering); cc != 6 {
		t.Errorf("CrossCount() = %g, want 6 (2*3)", cc)
	}
}

func TestCrossCount_MultipleRankPairs(t *testing.T) {
	// One crossing between ranks 0-1 and one between ranks 1-2.
	g := graph.New()
	addRanked(t, g, "a", 0)
	addRanked(t, g, "b", 0)
	addRanked(t, g, "c", 1)
	addRanked(t, g, "d", 1)
	addRanked(t, g, "e", 2)
	addRanked(t, g, "f", 2)
	addEdge(t, g, "a", "d")
	addEdge(t, g, "b", "c")
	addEdge(t, g, "c", "f")
	addEdge(t, g, "d", "e")

	layering := [][]string{{"a", "b"}, {"c", "d"}, {"e", "f"}}
	if cc := CrossCount(g, layering); cc != 2 {
		t.Errorf("CrossCount() = %g, want 2", cc)
	}
}

func TestCrossCount_IgnoresHoles(t *testing.T) {
	g := graph.New()
	addRanked(t, g, "a", 0)
	addRanked(t, g, "x", 1)
	addEdge(t, g, "a", "x")

	layering := [][]string{{"a"}, {"", "x"}}
	if cc := CrossCount(g, layering); cc != 0 {
		t.Errorf("CrossCount() = %g, want 0", cc)
	}
}

func TestCrossCount_SharedEndpointNoCross(t *testing.T) {
	g := graph.New()
	addRanked(t, g, "a", 0)
	addRanked(t, g, "b", 0)
	addRanked(t, g, "x", 1)
	addEdge(t, g, "a", "x")
	addEdge(t, g, "b", "x")

	layering := [][]string{{"a", "b"}, {"x"}}
	if cc := CrossCount(g, layering); cc != 0 {
		t.Errorf("CrossCount() = %g, want 0", cc)
	}
}
