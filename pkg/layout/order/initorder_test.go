package order

import (
	"slices"
	"testing"

	"github.com/strataviz/strata/pkg/graph"
)

func addRanked(t *testing.T, g *graph.Graph, id string, rank int) {
	t.Helper()
	var n graph.Node
	n.ID = id
	n.SetRank(rank)
	if err := g.AddNode(n); err != nil {
		t.Fatalf("AddNode(%s) = %v", id, err)
	}
}

func addEdge(t *testing.T, g *graph.Graph, from, to string) {
	t.Helper()
	if err := g.AddEdge(graph.Edge{From: from, To: to, Weight: 1, MinLen: 1}); err != nil {
		t.Fatalf("AddEdge(%s, %s) = %v", from, to, err)
	}
}

func TestInitOrder_EveryNodeOnce(t *testing.T) {
	g := graph.New()
	addRanked(t, g, "a", 0)
	addRanked(t, g, "b", 0)
	addRanked(t, g, "c", 1)
	addRanked(t, g, "d", 1)
	addRanked(t, g, "e", 2)
	addEdge(t, g, "a", "c")
	addEdge(t, g, "b", "d")
	addEdge(t, g, "c", "e")
	addEdge(t, g, "d", "e")

	layers := InitOrder(g)

	if len(layers) != 3 {
		t.Fatalf("InitOrder() returned %d layers, want 3", len(layers))
	}
	seen := make(map[string]int)
	for rank, layer := range layers {
		for _, v := range layer {
			seen[v]++
			n, _ := g.Node(v)
			if n.Rank != rank {
				t.Errorf("node %s placed in layer %d, want %d", v, rank, n.Rank)
			}
		}
	}
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		if seen[id] != 1 {
			t.Errorf("node %s appears %d times, want 1", id, seen[id])
		}
	}
}

func TestInitOrder_FollowsTraversal(t *testing.T) {
	// DFS from a reaches d before the sibling walk reaches c.
	g := graph.New()
	addRanked(t, g, "a", 0)
	addRanked(t, g, "b", 0)
	addRanked(t, g, "d", 1)
	addRanked(t, g, "c", 1)
	addEdge(t, g, "a", "d")
	addEdge(t, g, "b", "c")

	layers := InitOrder(g)

	if !slices.Equal(layers[0], []string{"a", "b"}) {
		t.Errorf("layer 0 = %v, want [a b]", layers[0])
	}
	if !slices.Equal(layers[1], []string{"d", "c"}) {
		t.Errorf("layer 1 = %v, want [d c]", layers[1])
	}
}

func TestInitOrder_SkipsClusterNodes(t *testing.T) {
	g := graph.New()
	_ = g.AddNode(graph.Node{ID: "cluster"})
	addRanked(t, g, "a", 0)
	if err := g.SetParent("a", "cluster"); err != nil {
		t.Fatalf("SetParent() = %v", err)
	}

	layers := InitOrder(g)

	if len(layers) != 1 || !slices.Equal(layers[0], []string{"a"}) {
		t.Errorf("InitOrder() = %v, want [[a]]", layers)
	}
}

func TestInitOrder_EmptyGraph(t *testing.T) {
	g := graph.New()
	if layers := InitOrder(g); layers != nil {
		t.Errorf("InitOrder() = %v, want nil", layers)
	}
}
