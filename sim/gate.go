package sim

import (
	"fmt"
	"slices"
)

// Gate routes balls across a fixed, ordered list of children in round-robin
// order. Its cursor (direction) always satisfies 0 <= direction < len(children).
//
// Thread-safety: NOT thread-safe. RunBall mutates the cursor without locking.
type Gate struct {
	children  []Node
	direction int
}

// NewGate creates a gate whose next ball goes to children[direction].
// It rejects an empty child list and any direction outside the child indices;
// out-of-range directions are never clamped.
func NewGate(direction int, children []Node) (*Gate, error) {
	if len(children) == 0 {
		return nil, ErrNoChildren
	}
	if direction < 0 || direction >= len(children) {
		return nil, fmt.Errorf("%w: direction %d with %d children", ErrDirectionOutOfRange, direction, len(children))
	}
	return &Gate{
		children:  slices.Clone(children),
		direction: direction,
	}, nil
}

// RunBall returns the child the next ball goes to and advances the cursor by
// one, wrapping at the end of the child list.
func (g *Gate) RunBall() Node {
	next := g.children[g.direction]
	g.direction = (g.direction + 1) % len(g.children)
	return next
}

// PredictNthBall returns the child that the ballNumber-th ball (0-based,
// counted from the current cursor) would be routed to, together with that
// ball's index among all balls reaching the same child. It never mutates the gate.
// Panics on a negative ballNumber.
func (g *Gate) PredictNthBall(ballNumber int) (Node, int) {
	if ballNumber < 0 {
		panic(fmt.Sprintf("Gate.PredictNthBall: negative ball number %d", ballNumber))
	}
	count := len(g.children)
	// ballNumber%count first keeps the sum clear of int overflow.
	predicted := (g.direction + ballNumber%count) % count
	return g.children[predicted], ballNumber / count
}

// Direction returns the current cursor.
func (g *Gate) Direction() int {
	return g.direction
}

// Len returns the number of children.
func (g *Gate) Len() int {
	return len(g.children)
}

// Children returns a copy of the child list in routing order.
func (g *Gate) Children() []Node {
	return slices.Clone(g.children)
}
