package sim

import (
	"slices"
	"strconv"
)

// Container is a terminal node of the tree. It keeps every ball it receives
// in arrival order and never releases them.
type Container struct {
	id    int
	balls []Ball
}

// NewContainer creates an empty container with the given id.
func NewContainer(id int) *Container {
	return &Container{id: id}
}

// ID returns the container id assigned at construction.
func (c *Container) ID() int {
	return c.id
}

// ReceiveBall appends a ball. This is the only mutator of a Container.
func (c *Container) ReceiveBall(ball Ball) {
	c.balls = append(c.balls, ball)
}

// Balls returns a copy of the received balls in arrival order.
func (c *Container) Balls() []Ball {
	return slices.Clone(c.balls)
}

// Len returns the number of balls received so far.
func (c *Container) Len() int {
	return len(c.balls)
}

// Empty reports whether no ball has landed here yet.
func (c *Container) Empty() bool {
	return len(c.balls) == 0
}

func (c *Container) String() string {
	return strconv.Itoa(c.id)
}
