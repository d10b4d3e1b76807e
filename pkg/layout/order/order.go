package order

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/strataviz/strata/pkg/graph"
	"github.com/strataviz/strata/pkg/layout"
)

// ErrMissingRank is returned by [Order] when a node has no rank assigned.
// Ordering requires a complete ranking; run the rank package first.
var ErrMissingRank = errors.New("node has no rank assigned")

// Strategy replaces the default ordering algorithm. The fallback callback
// runs the default algorithm on whatever graph it is given, so a strategy
// can restrict itself to part of the problem and recurse into the default
// for the rest.
type Strategy interface {
	Order(g *graph.Graph, fallback func(*graph.Graph) error) error
}

// Options configures one ordering pass.
type Options struct {
	// Strategy, when non-nil, is delegated to instead of the default
	// iterative-improvement algorithm.
	Strategy Strategy

	// DisableHeuristic stops after the initial seeded order, skipping the
	// crossing-minimization iterations.
	DisableHeuristic bool

	// Logger, when non-nil, receives per-iteration crossing counts at
	// debug level.
	Logger *log.Logger

	// IDs supplies identifiers for the transient layer-graph roots. A
	// fresh source is created when nil; pass the process-wide source when
	// other phases also synthesize nodes.
	IDs *layout.IDSource
}

// Order assigns every node an order: a horizontal position within its
// rank, chosen to reduce edge crossings. Within each rank the final orders
// form a dense permutation of 0..count-1.
//
// The default algorithm is an iterative local search: layer graphs are
// built once per rank and direction, the seeded order is refined by
// alternating downward and upward barycenter sweeps (with the tie-break
// bias flipping every fourth iteration), and the best layering seen is
// committed after four consecutive iterations without improvement. Given
// equal inputs the result is identical across runs; there is no randomness
// anywhere in the loop.
func Order(g *graph.Graph, opts Options) error {
	if opts.Strategy != nil {
		inner := opts
		inner.Strategy = nil
		return opts.Strategy.Order(g, func(sub *graph.Graph) error {
			return Order(sub, inner)
		})
	}
	return runDefault(g, opts)
}

func runDefault(g *graph.Graph, opts Options) error {
	for _, n := range g.Nodes() {
		if len(g.Children(n.ID)) > 0 {
			continue // clusters carry spans, not ranks
		}
		if !n.HasRank {
			return fmt.Errorf("%w: %s", ErrMissingRank, n.ID)
		}
	}

	ids := opts.IDs
	if ids == nil {
		ids = layout.NewIDSource()
	}

	maxRank := layout.MaxRank(g)
	movable := movableByRank(g)
	down := buildLayerGraphs(g, layout.Range(1, maxRank+1), RelInEdges, movable, ids)
	up := buildLayerGraphs(g, layout.RangeStep(maxRank-1, -1, -1), RelOutEdges, movable, ids)

	assignOrder(g, InitOrder(g))
	if opts.DisableHeuristic {
		return nil
	}

	bestCC := math.Inf(1)
	var best, layering [][]string
	for i, lastBest := 0, 0; lastBest < 4; i, lastBest = i+1, lastBest+1 {
		family := up
		if i%2 == 0 {
			family = down
		}
		sweepLayerGraphs(g, family, i%4 >= 2)

		layering = layout.BuildLayerMatrix(g)
		cc := CrossCount(g, layering)
		if cc < bestCC {
			lastBest = 0
			best = cloneLayering(layering)
			bestCC = cc
		}
		if opts.Logger != nil {
			opts.Logger.Debugf("ordering iteration %d: %.0f crossings (best %.0f)", i, cc, bestCC)
		}
	}

	if best == nil {
		best = layering
	}
	assignOrder(g, best)
	return nil
}

// sweepLayerGraphs sorts every layer graph of one family against a fresh
// constraint graph, writing each layer's new order back onto the main
// graph before the next layer is sorted.
func sweepLayerGraphs(g *graph.Graph, lgs []*graph.Graph, biasRight bool) {
	cg := graph.New()
	for _, lg := range lgs {
		sorted := sortSubgraph(lg, lg.Root(), cg, biasRight)
		for i, v := range sorted.VS {
			if n, ok := g.Node(v); ok {
				n.SetOrder(i)
			}
		}
		addSubgraphConstraints(lg, cg, sorted.VS)
	}
}

func assignOrder(g *graph.Graph, layering [][]string) {
	for _, layer := range layering {
		for i, v := range layer {
			if v == "" {
				continue
			}
			if n, ok := g.Node(v); ok {
				n.SetOrder(i)
			}
		}
	}
}

func cloneLayering(layering [][]string) [][]string {
	out := make([][]string, len(layering))
	for i, layer := range layering {
		out[i] = slices.Clone(layer)
	}
	return out
}
