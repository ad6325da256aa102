package actor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Handle addresses a node in a Graph
type Handle int

// NoHandle is the parent of root nodes
const NoHandle Handle = -1

// Material describes how a node is shaded
type Material struct {
	Color             mgl64.Vec3
	Emissive          mgl64.Vec3
	EmissiveIntensity float64
}

// Node is one entry of the scene graph arena
type Node struct {
	Name      string
	Parent    Handle
	Transform Transform
	// Shape is nil for pure group nodes
	Shape    Shape
	Material Material
}

// Graph is an arena of nodes. Nodes are appended parent-first and never removed,
// so handles stay valid for the lifetime of the graph. Writers holding distinct
// handles may mutate their nodes concurrently as long as nothing is added.
type Graph struct {
	nodes  []Node
	names  map[string]Handle
	lights []Light
}

func NewGraph() *Graph {
	return &Graph{
		nodes: make([]Node, 0, 64),
		names: make(map[string]Handle),
	}
}

// Add appends a node and returns its handle.
// A zero Scale is promoted to unit scale.
func (g *Graph) Add(name string, parent Handle, transform Transform, shape Shape, material Material) Handle {
	if parent != NoHandle && !g.Valid(parent) {
		panic(fmt.Sprintf("actor: node %q added under unknown parent %d", name, parent))
	}
	if transform.Scale == (mgl64.Vec3{}) {
		transform.Scale = mgl64.Vec3{1, 1, 1}
	}

	h := Handle(len(g.nodes))
	g.nodes = append(g.nodes, Node{
		Name:      name,
		Parent:    parent,
		Transform: transform,
		Shape:     shape,
		Material:  material,
	})
	if name != "" {
		g.names[name] = h
	}

	return h
}

// Group appends a shapeless node used to move its children together
func (g *Graph) Group(name string, parent Handle, transform Transform) Handle {
	return g.Add(name, parent, transform, nil, Material{})
}

// Valid reports whether h addresses a node of this graph
func (g *Graph) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(g.nodes)
}

// Node returns the node addressed by h
func (g *Graph) Node(h Handle) *Node {
	return &g.nodes[h]
}

// Transform returns the local transform of h for in-place mutation
func (g *Graph) Transform(h Handle) *Transform {
	return &g.nodes[h].Transform
}

// Lookup finds a node by name
func (g *Graph) Lookup(name string) (Handle, bool) {
	h, ok := g.names[name]
	return h, ok
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.nodes)
}

// World returns the world matrix of h, composing every ancestor
func (g *Graph) World(h Handle) mgl64.Mat4 {
	m := g.nodes[h].Transform.Matrix()
	for parent := g.nodes[h].Parent; parent != NoHandle; parent = g.nodes[parent].Parent {
		m = g.nodes[parent].Transform.Matrix().Mul4(m)
	}

	return m
}

// WorldPosition returns the world-space origin of h
func (g *Graph) WorldPosition(h Handle) mgl64.Vec3 {
	return g.World(h).Col(3).Vec3()
}

// Drawables calls fn for every node carrying a shape, with its world matrix
func (g *Graph) Drawables(fn func(h Handle, node *Node, world mgl64.Mat4)) {
	worlds := make([]mgl64.Mat4, len(g.nodes))
	for i := range g.nodes {
		node := &g.nodes[i]
		local := node.Transform.Matrix()
		if node.Parent == NoHandle {
			worlds[i] = local
		} else {
			worlds[i] = worlds[node.Parent].Mul4(local)
		}
		if node.Shape != nil {
			fn(Handle(i), node, worlds[i])
		}
	}
}
