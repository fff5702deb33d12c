package sim

import "fmt"

// NodeKind tags the variant held by a Node.
type NodeKind int

const (
	// NodeInvalid is the zero kind. Traversals treat it as structural corruption.
	NodeInvalid NodeKind = iota
	// NodeGate marks a routing node.
	NodeGate
	// NodeContainer marks a terminal node.
	NodeContainer
)

func (k NodeKind) String() string {
	switch k {
	case NodeGate:
		return "gate"
	case NodeContainer:
		return "container"
	default:
		return "invalid"
	}
}

// Node is a tagged variant over {*Gate, *Container}.
// Exactly one of gate/container is set, matching kind; the zero Node holds neither.
type Node struct {
	kind      NodeKind
	gate      *Gate
	container *Container
}

// GateNode wraps a gate. A nil gate yields the invalid Node.
func GateNode(g *Gate) Node {
	if g == nil {
		return Node{}
	}
	return Node{kind: NodeGate, gate: g}
}

// ContainerNode wraps a container. A nil container yields the invalid Node.
func ContainerNode(c *Container) Node {
	if c == nil {
		return Node{}
	}
	return Node{kind: NodeContainer, container: c}
}

// Kind returns the variant tag.
func (n Node) Kind() NodeKind {
	return n.kind
}

// Gate returns the wrapped gate, or nil when the node is not a gate.
func (n Node) Gate() *Gate {
	return n.gate
}

// Container returns the wrapped container, or nil when the node is not a container.
func (n Node) Container() *Container {
	return n.container
}

func (n Node) String() string {
	switch n.kind {
	case NodeGate:
		return fmt.Sprintf("gate(direction=%d, children=%d)", n.gate.direction, len(n.gate.children))
	case NodeContainer:
		return "container " + n.container.String()
	default:
		return "invalid node"
	}
}
