package solarsystem

import (
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// Node wraps a body as a gonum graph node
type Node struct {
	id   int64
	body CelestialBody
}

// ID implements graph.Node
func (n Node) ID() int64 { return n.id }

// DOTID names the node after the body identifier in DOT output
func (n Node) DOTID() string { return n.body.Identifier() }

// Body returns the wrapped body
func (n Node) Body() CelestialBody { return n.body }

// Attributes implements encoding.Attributer
func (n Node) Attributes() []encoding.Attribute {
	shape := "circle"
	switch n.body.Kind() {
	case KindStar:
		shape = "doublecircle"
	case KindMoon:
		shape = "point"
	}
	return []encoding.Attribute{{Key: "shape", Value: shape}}
}

// Graph is an undirected view of the ownership tree: one edge per
// star-planet and planet-moon link.
type Graph struct {
	*simple.UndirectedGraph
	nodes map[string]Node
}

// Graph builds a snapshot of the current tree. Later edits to the system are not reflected.
func (s *SolarSystem) Graph() *Graph {
	g := &Graph{
		UndirectedGraph: simple.NewUndirectedGraph(),
		nodes:           make(map[string]Node),
	}

	for i, b := range s.Bodies() {
		n := Node{id: int64(i), body: b}
		g.AddNode(n)
		g.nodes[b.Identifier()] = n
		if parent := b.Parent(); parent != nil {
			g.SetEdge(simple.Edge{F: g.nodes[parent.Identifier()], T: n})
		}
	}
	return g
}

// NodeOf returns the node of the body with the given identifier
func (g *Graph) NodeOf(identifier string) (Node, bool) {
	n, ok := g.nodes[identifier]
	return n, ok
}

// MarshalDOT renders the graph in Graphviz DOT format
func (g *Graph) MarshalDOT(name string) ([]byte, error) {
	return dot.Marshal(g.UndirectedGraph, name, "", "\t")
}
