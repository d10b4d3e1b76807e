package order

import (
	"errors"
	"testing"

	"github.com/strataviz/strata/pkg/graph"
	"github.com/strataviz/strata/pkg/layout"
)

// crossingSeed builds a two-rank graph whose traversal-based initial order
// places d before c, crossing the b→d edge.
func crossingSeed(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	addRanked(t, g, "a", 0)
	addRanked(t, g, "b", 0)
	addRanked(t, g, "d", 1)
	addRanked(t, g, "c", 1)
	addEdge(t, g, "a", "d")
	addEdge(t, g, "a", "c")
	addEdge(t, g, "b", "d")
	return g
}

func orders(t *testing.T, g *graph.Graph) map[string]int {
	t.Helper()
	out := make(map[string]int)
	for _, n := range g.Nodes() {
		if n.IsDummy() || len(g.Children(n.ID)) > 0 {
			continue
		}
		if !n.HasOrder {
			t.Fatalf("node %s has no order", n.ID)
		}
		out[n.ID] = n.Order
	}
	return out
}

func TestOrder_RemovesCrossing(t *testing.T) {
	g := crossingSeed(t)

	seed := InitOrder(g)
	if cc := CrossCount(g, seed); cc != 1 {
		t.Fatalf("seed CrossCount() = %g, want 1", cc)
	}

	if err := Order(g, Options{}); err != nil {
		t.Fatalf("Order() = %v, want nil", err)
	}

	if cc := CrossCount(g, layout.BuildLayerMatrix(g)); cc != 0 {
		t.Errorf("CrossCount() after ordering = %g, want 0", cc)
	}
}

func TestOrder_DensePermutationPerRank(t *testing.T) {
	g := crossingSeed(t)

	if err := Order(g, Options{}); err != nil {
		t.Fatalf("Order() = %v, want nil", err)
	}

	byRank := map[int][]bool{0: make([]bool, 2), 1: make([]bool, 2)}
	for id, o := range orders(t, g) {
		n, _ := g.Node(id)
		slots := byRank[n.Rank]
		if o < 0 || o >= len(slots) {
			t.Fatalf("order(%s) = %d, out of range for rank %d", id, o, n.Rank)
		}
		if slots[o] {
			t.Errorf("duplicate order %d in rank %d", o, n.Rank)
		}
		slots[o] = true
	}
}

func TestOrder_Deterministic(t *testing.T) {
	first := crossingSeed(t)
	if err := Order(first, Options{}); err != nil {
		t.Fatalf("Order() = %v, want nil", err)
	}
	want := orders(t, first)

	for range 5 {
		g := crossingSeed(t)
		if err := Order(g, Options{}); err != nil {
			t.Fatalf("Order() = %v, want nil", err)
		}
		got := orders(t, g)
		for id, o := range want {
			if got[id] != o {
				t.Fatalf("order(%s) = %d, want %d (run differs)", id, got[id], o)
			}
		}
	}
}

func TestOrder_DisableHeuristicKeepsSeed(t *testing.T) {
	g := crossingSeed(t)

	if err := Order(g, Options{DisableHeuristic: true}); err != nil {
		t.Fatalf("Order() = %v, want nil", err)
	}

	// The seed order survives untouched, crossing included.
	if cc := CrossCount(g, layout.BuildLayerMatrix(g)); cc != 1 {
		t.Errorf("CrossCount() = %g, want 1", cc)
	}
	got := orders(t, g)
	if got["d"] != 0 || got["c"] != 1 {
		t.Errorf("rank 1 orders = d:%d c:%d, want d:0 c:1", got["d"], got["c"])
	}
}

func TestOrder_NeverWorseThanSeed(t *testing.T) {
	g := crossingSeed(t)
	seeded := crossingSeed(t)
	if err := Order(seeded, Options{DisableHeuristic: true}); err != nil {
		t.Fatalf("Order() = %v, want nil", err)
	}
	seedCC := CrossCount(seeded, layout.BuildLayerMatrix(seeded))

	if err := Order(g, Options{}); err != nil {
		t.Fatalf("Order() = %v, want nil", err)
	}
	finalCC := CrossCount(g, layout.BuildLayerMatrix(g))

	if finalCC > seedCC {
		t.Errorf("CrossCount() = %g, worse than seed %g", finalCC, seedCC)
	}
}

func TestOrder_MissingRank(t *testing.T) {
	g := graph.New()
	addRanked(t, g, "a", 0)
	_ = g.AddNode(graph.Node{ID: "floating"})

	if err := Order(g, Options{}); !errors.Is(err, ErrMissingRank) {
		t.Errorf("Order() = %v, want ErrMissingRank", err)
	}
}

func TestOrder_ClusterChildrenContiguous(t *testing.T) {
	g := graph.New()
	addRanked(t, g, "x1", 0)
	addRanked(t, g, "x2", 0)
	addRanked(t, g, "x3", 0)
	cluster := graph.Node{ID: "cluster", MinRank: 1, MaxRank: 1, HasSpan: true}
	if err := g.AddNode(cluster); err != nil {
		t.Fatalf("AddNode(cluster) = %v", err)
	}
	addRanked(t, g, "a", 1)
	addRanked(t, g, "m", 1)
	addRanked(t, g, "b", 1)
	_ = g.SetParent("a", "cluster")
	_ = g.SetParent("b", "cluster")
	// Seed interleaves m between the cluster members.
	addEdge(t, g, "x1", "a")
	addEdge(t, g, "x2", "m")
	addEdge(t, g, "x3", "b")

	if err := Order(g, Options{}); err != nil {
		t.Fatalf("Order() = %v, want nil", err)
	}

	got := orders(t, g)
	diff := got["a"] - got["b"]
	if diff != 1 && diff != -1 {
		t.Errorf("cluster members at orders %d and %d, want adjacent", got["a"], got["b"])
	}
}

type recordingStrategy struct {
	called   bool
	fallback bool
}

func (s *recordingStrategy) Order(g *graph.Graph, fallback func(*graph.Graph) error) error {
	s.called = true
	if s.fallback {
		return fallback(g)
	}
	return nil
}

func TestOrder_StrategyDelegation(t *testing.T) {
	g := crossingSeed(t)
	strat := &recordingStrategy{}

	if err := Order(g, Options{Strategy: strat}); err != nil {
		t.Fatalf("Order() = %v, want nil", err)
	}
	if !strat.called {
		t.Errorf("strategy was not invoked")
	}
	for _, n := range g.Nodes() {
		if n.HasOrder {
			t.Errorf("strategy without fallback assigned orders")
			break
		}
	}
}

func TestOrder_StrategyFallbackRunsDefault(t *testing.T) {
	g := crossingSeed(t)
	strat := &recordingStrategy{fallback: true}

	if err := Order(g, Options{Strategy: strat}); err != nil {
		t.Fatalf("Order() = %v, want nil", err)
	}
	if cc := CrossCount(g, layout.BuildLayerMatrix(g)); cc != 0 {
		t.Errorf("CrossCount() = %g, want 0 via fallback", cc)
	}
}
