package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist, or by [Graph.SetParent] when the child is not found.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist, or by [Graph.SetParent] when the parent is not found.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrDuplicateEdge is returned by [Graph.AddEdge] when an edge between
	// the same endpoints (and name) already exists and the graph was not
	// created with [NewMulti].
	ErrDuplicateEdge = errors.New("duplicate edge in non-multigraph")

	// ErrHierarchyCycle is returned by [Graph.SetParent] when the requested
	// parent is the child itself or one of its descendants. Children must
	// form a forest.
	ErrHierarchyCycle = errors.New("hierarchy must remain a forest")

	// ErrGraphHasCycle is returned by [Graph.Validate] when a directed cycle
	// is detected. Cycles are found with depth-first search using
	// white/gray/black coloring.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Node is a vertex in a layered graph. Rank is the vertical layer, Order the
// horizontal position within the rank; both are optional until the
// corresponding phase assigns them, tracked by HasRank and HasOrder.
//
// Cluster nodes span an inclusive rank interval [MinRank, MaxRank] (HasSpan
// set) and carry per-rank border node IDs in BorderLeft and BorderRight.
// Synthetic nodes are tagged with a non-empty Dummy value such as "border"
// or "root"; caller-supplied nodes leave it empty.
type Node struct {
	ID     string
	Width  float64
	Height float64

	Rank    int
	HasRank bool

	Order    int
	HasOrder bool

	MinRank int
	MaxRank int
	HasSpan bool

	BorderLeft  map[int]string
	BorderRight map[int]string

	Dummy string
}

// SetRank assigns the node's rank and marks it present.
func (n *Node) SetRank(rank int) {
	n.Rank = rank
	n.HasRank = true
}

// SetOrder assigns the node's order and marks it present.
func (n *Node) SetOrder(order int) {
	n.Order = order
	n.HasOrder = true
}

// SpansRank reports whether the node is a cluster whose rank interval
// includes rank.
func (n *Node) SpansRank(rank int) bool {
	return n.HasSpan && n.MinRank <= rank && rank <= n.MaxRank
}

// IsDummy reports whether the node is synthetic (inserted by the layout
// machinery rather than supplied by the caller).
func (n *Node) IsDummy() bool { return n.Dummy != "" }

// Edge is a directed connection. Weight is additive when parallel edges are
// merged; MinLen is the minimum rank separation the ranking phase must keep
// between the endpoints. Name distinguishes parallel edges in a multigraph
// and is empty otherwise.
type Edge struct {
	From   string
	To     string
	Name   string
	Weight float64
	MinLen int
}

// Graph is a directed graph with optional compound hierarchy, used both as
// the main layout graph and as the transient per-rank layer graphs built
// during ordering.
//
// Iteration order over nodes, edges, and children is insertion order, which
// keeps every layout pass deterministic. The zero value is not usable - use
// [New] or [NewMulti]. Graph is not safe for concurrent use.
type Graph struct {
	multi bool

	nodes map[string]*Node
	ids   []string // insertion order
	edges []*Edge
	out   map[string][]*Edge
	in    map[string][]*Edge

	parent   map[string]string
	children map[string][]string // "" holds top-level nodes

	root           string
	layerRank      int
	nodeRankFactor int
}

// New creates an empty graph that rejects parallel edges.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		out:      make(map[string][]*Edge),
		in:       make(map[string][]*Edge),
		parent:   make(map[string]string),
		children: make(map[string][]string),
	}
}

// NewMulti creates an empty graph that permits parallel edges. Parallel
// edges between the same endpoints must carry distinct Name values.
func NewMulti() *Graph {
	g := New()
	g.multi = true
	return g
}

// IsMultigraph reports whether the graph permits parallel edges.
func (g *Graph) IsMultigraph() bool { return g.multi }

// Root returns the synthetic root node ID recorded on a layer graph, or ""
// when none is set.
func (g *Graph) Root() string { return g.root }

// SetRoot records the synthetic root node ID used to group movable nodes
// that have no original parent.
func (g *Graph) SetRoot(id string) { g.root = id }

// LayerRank returns the target rank a layer graph was built for. Only
// meaningful on graphs produced by the layer-graph builder.
func (g *Graph) LayerRank() int { return g.layerRank }

// SetLayerRank records the target rank of a layer graph.
func (g *Graph) SetLayerRank(rank int) { g.layerRank = rank }

// NodeRankFactor returns the empty-rank compaction granularity, or 0 when
// the caller never supplied one.
func (g *Graph) NodeRankFactor() int { return g.nodeRankFactor }

// SetNodeRankFactor records the empty-rank compaction granularity consumed
// by rank compaction. It must be positive to be usable.
func (g *Graph) SetNodeRankFactor(factor int) { g.nodeRankFactor = factor }

// AddNode adds a node to the graph as a top-level (parentless) node.
// Returns ErrInvalidNodeID for an empty ID or ErrDuplicateNodeID when the
// ID is already present.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	node := &n
	g.nodes[node.ID] = node
	g.ids = append(g.ids, node.ID)
	g.children[""] = append(g.children[""], node.ID)
	return nil
}

// AttachNode inserts an existing node object without copying it, sharing
// the pointer with whatever graph already owns it. Layer graphs attach the
// main graph's nodes so that order assignments written during one sweep are
// visible to the layer graphs of later sweeps.
func (g *Graph) AttachNode(n *Node) error {
	if n == nil || n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[n.ID] = n
	g.ids = append(g.ids, n.ID)
	g.children[""] = append(g.children[""], n.ID)
	return nil
}

// Node returns the node with the given ID and true, or nil and false. The
// pointer refers to the stored node, so attribute updates are visible to
// the graph.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all nodes in insertion order. The slice is fresh but the
// node pointers are shared with the graph.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.ids))
	for i, id := range g.ids {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddEdge adds a directed edge between existing nodes. In a non-multigraph
// a second edge with the same endpoints and name returns ErrDuplicateEdge.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if !g.multi {
		for _, prev := range g.out[e.From] {
			if prev.To == e.To && prev.Name == e.Name {
				return ErrDuplicateEdge
			}
		}
	}
	edge := &e
	g.edges = append(g.edges, edge)
	g.out[e.From] = append(g.out[e.From], edge)
	g.in[e.To] = append(g.in[e.To], edge)
	return nil
}

// Edge returns the first edge from v to w, or nil when none exists.
func (g *Graph) Edge(v, w string) *Edge {
	for _, e := range g.out[v] {
		if e.To == w {
			return e
		}
	}
	return nil
}

// Edges returns all edges in insertion order. The slice is fresh but the
// edge pointers are shared with the graph.
func (g *Graph) Edges() []*Edge { return slices.Clone(g.edges) }

// OutEdges returns the edges leaving the node, in insertion order. The
// returned slice is a read-only view.
func (g *Graph) OutEdges(id string) []*Edge { return g.out[id] }

// InEdges returns the edges entering the node, in insertion order. The
// returned slice is a read-only view.
func (g *Graph) InEdges(id string) []*Edge { return g.in[id] }

// Sources returns nodes with no incoming edges, in insertion order.
func (g *Graph) Sources() []*Node {
	var sources []*Node
	for _, id := range g.ids {
		if len(g.in[id]) == 0 {
			sources = append(sources, g.nodes[id])
		}
	}
	return sources
}

// SetParent makes child a member of parent's subtree, detaching it from its
// previous parent (or from the top level). Returns ErrUnknownSourceNode or
// ErrUnknownTargetNode for missing nodes and ErrHierarchyCycle when the
// assignment would break the forest shape.
func (g *Graph) SetParent(child, parent string) error {
	if _, ok := g.nodes[child]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[parent]; !ok {
		return ErrUnknownTargetNode
	}
	for anc := parent; anc != ""; anc = g.parent[anc] {
		if anc == child {
			return ErrHierarchyCycle
		}
	}

	prev := g.parent[child]
	g.children[prev] = slices.DeleteFunc(g.children[prev], func(id string) bool { return id == child })
	g.parent[child] = parent
	g.children[parent] = append(g.children[parent], child)
	return nil
}

// Parent returns the parent of the node and true, or "" and false for
// top-level or unknown nodes.
func (g *Graph) Parent(id string) (string, bool) {
	p, ok := g.parent[id]
	if !ok || p == "" {
		return "", false
	}
	return p, true
}

// Children returns the immediate children of the node in insertion order.
// Children("") returns the top-level nodes. The returned slice is a
// read-only view.
func (g *Graph) Children(id string) []string { return g.children[id] }

// Successors returns the distinct heads of the node's out-edges, in first-
// encounter order.
func (g *Graph) Successors(id string) []string {
	var succ []string
	seen := make(map[string]struct{}, len(g.out[id]))
	for _, e := range g.out[id] {
		if _, ok := seen[e.To]; ok {
			continue
		}
		seen[e.To] = struct{}{}
		succ = append(succ, e.To)
	}
	return succ
}

// Predecessors returns the distinct tails of the node's in-edges, in first-
// encounter order.
func (g *Graph) Predecessors(id string) []string {
	var pred []string
	seen := make(map[string]struct{}, len(g.in[id]))
	for _, e := range g.in[id] {
		if _, ok := seen[e.From]; ok {
			continue
		}
		seen[e.From] = struct{}{}
		pred = append(pred, e.From)
	}
	return pred
}

// Validate checks that the graph is acyclic and returns ErrGraphHasCycle
// otherwise. Detection runs in O(N+E) with depth-first search.
func (g *Graph) Validate() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, e := range g.out[id] {
			switch color[e.To] {
			case white:
				dfs(e.To)
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	for _, id := range g.ids {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}
