package order

import (
	"slices"
	"testing"

	"github.com/strataviz/strata/pkg/graph"
)

func TestResolveConflicts_NoConstraints(t *testing.T) {
	entries := []Entry{
		{V: "a", Barycenter: 2, Weight: 1, HasBarycenter: true},
		{V: "b", Barycenter: 1, Weight: 1, HasBarycenter: true},
	}

	resolved := resolveConflicts(entries, graph.New())

	if len(resolved) != 2 {
		t.Fatalf("resolveConflicts() returned %d entries, want 2", len(resolved))
	}
	for i, want := range []string{"a", "b"} {
		if !slices.Equal(resolved[i].vs, []string{want}) {
			t.Errorf("entry %d = %v, want [%s]", i, resolved[i].vs, want)
		}
	}
}

func TestResolveConflicts_ViolatedConstraintMerges(t *testing.T) {
	// The constraint says a before b, but a's barycenter would sort it
	// after b. The two collapse into one group, a first.
	entries := []Entry{
		{V: "a", Barycenter: 4, Weight: 1, HasBarycenter: true},
		{V: "b", Barycenter: 2, Weight: 2, HasBarycenter: true},
	}
	cg := graph.New()
	_ = cg.AddNode(graph.Node{ID: "a"})
	_ = cg.AddNode(graph.Node{ID: "b"})
	_ = cg.AddEdge(graph.Edge{From: "a", To: "b"})

	resolved := resolveConflicts(entries, cg)

	if len(resolved) != 1 {
		t.Fatalf("resolveConflicts() returned %d entries, want 1", len(resolved))
	}
	merged := resolved[0]
	if !slices.Equal(merged.vs, []string{"a", "b"}) {
		t.Errorf("vs = %v, want [a b]", merged.vs)
	}
	// Weighted average: (4*1 + 2*2) / 3.
	if want := 8.0 / 3.0; merged.barycenter != want {
		t.Errorf("barycenter = %g, want %g", merged.barycenter, want)
	}
	if merged.weight != 3 {
		t.Errorf("weight = %g, want 3", merged.weight)
	}
	if merged.i != 0 {
		t.Errorf("i = %d, want 0", merged.i)
	}
}

func TestResolveConflicts_SatisfiedConstraintKeepsEntries(t *testing.T) {
	entries := []Entry{
		{V: "a", Barycenter: 1, Weight: 1, HasBarycenter: true},
		{V: "b", Barycenter: 3, Weight: 1, HasBarycenter: true},
	}
	cg := graph.New()
	_ = cg.AddNode(graph.Node{ID: "a"})
	_ = cg.AddNode(graph.Node{ID: "b"})
	_ = cg.AddEdge(graph.Edge{From: "a", To: "b"})

	resolved := resolveConflicts(entries, cg)

	if len(resolved) != 2 {
		t.Errorf("resolveConflicts() returned %d entries, want 2 (constraint already satisfied)", len(resolved))
	}
}

func TestResolveConflicts_MissingBarycenterMerges(t *testing.T) {
	// A constrained predecessor without a barycenter cannot be ordered
	// relative to its successor, so the pair merges unconditionally.
	entries := []Entry{
		{V: "a"},
		{V: "b", Barycenter: 1, Weight: 1, HasBarycenter: true},
	}
	cg := graph.New()
	_ = cg.AddNode(graph.Node{ID: "a"})
	_ = cg.AddNode(graph.Node{ID: "b"})
	_ = cg.AddEdge(graph.Edge{From: "a", To: "b"})

	resolved := resolveConflicts(entries, cg)

	if len(resolved) != 1 {
		t.Fatalf("resolveConflicts() returned %d entries, want 1", len(resolved))
	}
	if !slices.Equal(resolved[0].vs, []string{"a", "b"}) {
		t.Errorf("vs = %v, want [a b]", resolved[0].vs)
	}
	if resolved[0].barycenter != 1 || resolved[0].weight != 1 {
		t.Errorf("barycenter/weight = %g/%g, want 1/1", resolved[0].barycenter, resolved[0].weight)
	}
}

func TestResolveConflicts_ConstraintForUnknownNodeIgnored(t *testing.T) {
	entries := []Entry{
		{V: "a", Barycenter: 1, Weight: 1, HasBarycenter: true},
	}
	cg := graph.New()
	_ = cg.AddNode(graph.Node{ID: "a"})
	_ = cg.AddNode(graph.Node{ID: "elsewhere"})
	_ = cg.AddEdge(graph.Edge{From: "elsewhere", To: "a"})

	resolved := resolveConflicts(entries, cg)

	if len(resolved) != 1 || !slices.Equal(resolved[0].vs, []string{"a"}) {
		t.Errorf("resolveConflicts() = %v, want single [a] entry", resolved)
	}
}
