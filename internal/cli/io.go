package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/strataviz/strata/pkg/graph"
)

// graphFile is the JSON input format: a flat node list with optional
// compound parents, plus an edge list. Edge weight defaults to 1 and
// minlen to 1 when omitted.
type graphFile struct {
	Multigraph bool       `json:"multigraph,omitempty"`
	Nodes      []nodeSpec `json:"nodes"`
	Edges      []edgeSpec `json:"edges"`
}

type nodeSpec struct {
	ID      string  `json:"id"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Parent  string  `json:"parent,omitempty"`
	MinRank *int    `json:"minrank,omitempty"`
	MaxRank *int    `json:"maxrank,omitempty"`
}

type edgeSpec struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Name   string   `json:"name,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	MinLen *int     `json:"minlen,omitempty"`
}

// readGraphFile loads a graph description from a JSON file. Parents are
// applied after all nodes exist, so node order in the file does not
// matter.
func readGraphFile(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", path, err)
	}
	var gf graphFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("parse graph %s: %w", path, err)
	}

	g := graph.New()
	if gf.Multigraph {
		g = graph.NewMulti()
	}
	for _, ns := range gf.Nodes {
		n := graph.Node{ID: ns.ID, Width: ns.Width, Height: ns.Height}
		if ns.MinRank != nil && ns.MaxRank != nil {
			n.MinRank = *ns.MinRank
			n.MaxRank = *ns.MaxRank
			n.HasSpan = true
		}
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("node %s: %w", ns.ID, err)
		}
	}
	for _, ns := range gf.Nodes {
		if ns.Parent == "" {
			continue
		}
		if err := g.SetParent(ns.ID, ns.Parent); err != nil {
			return nil, fmt.Errorf("node %s: %w", ns.ID, err)
		}
	}
	for _, es := range gf.Edges {
		e := graph.Edge{From: es.From, To: es.To, Name: es.Name, Weight: 1, MinLen: 1}
		if es.Weight != nil {
			e.Weight = *es.Weight
		}
		if es.MinLen != nil {
			e.MinLen = *es.MinLen
		}
		if err := g.AddEdge(e); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", es.From, es.To, err)
		}
	}
	return g, nil
}

// nodePlacement is one node's computed position in the layout skeleton.
// Order is omitted when the pipeline stopped after ranking.
type nodePlacement struct {
	Rank  int  `json:"rank"`
	Order *int `json:"order,omitempty"`
}

// layoutPlacements collects the rank and order of every ranked node,
// synthetic border nodes included. Cluster nodes carry no position of
// their own and are omitted.
func layoutPlacements(g *graph.Graph) map[string]nodePlacement {
	out := make(map[string]nodePlacement, g.NodeCount())
	for _, n := range g.Nodes() {
		if !n.HasRank || len(g.Children(n.ID)) > 0 {
			continue
		}
		p := nodePlacement{Rank: n.Rank}
		if n.HasOrder {
			o := n.Order
			p.Order = &o
		}
		out[n.ID] = p
	}
	return out
}

// writeLayoutFile writes the placements as indented JSON.
func writeLayoutFile(placements map[string]nodePlacement, path string) error {
	data, err := json.MarshalIndent(placements, "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write layout %s: %w", path, err)
	}
	return nil
}
