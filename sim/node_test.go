package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_Variants(t *testing.T) {
	c := NewContainer(7)
	g, err := NewGate(0, []Node{ContainerNode(c)})
	assert.NoError(t, err)

	tests := []struct {
		name          string
		node          Node
		wantKind      NodeKind
		wantGate      bool
		wantContainer bool
		wantString    string
	}{
		{"container", ContainerNode(c), NodeContainer, false, true, "container 7"},
		{"gate", GateNode(g), NodeGate, true, false, "gate(direction=0, children=1)"},
		{"zero value", Node{}, NodeInvalid, false, false, "invalid node"},
		{"nil gate", GateNode(nil), NodeInvalid, false, false, "invalid node"},
		{"nil container", ContainerNode(nil), NodeInvalid, false, false, "invalid node"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.node.Kind())
			assert.Equal(t, tt.wantGate, tt.node.Gate() != nil)
			assert.Equal(t, tt.wantContainer, tt.node.Container() != nil)
			assert.Equal(t, tt.wantString, tt.node.String())
		})
	}
}

func TestNodeKind_String(t *testing.T) {
	assert.Equal(t, "gate", NodeGate.String())
	assert.Equal(t, "container", NodeContainer.String())
	assert.Equal(t, "invalid", NodeInvalid.String())
	assert.Equal(t, "invalid", NodeKind(42).String())
}

func TestContainer_ReceiveBall_KeepsArrivalOrder(t *testing.T) {
	// GIVEN an empty container
	c := NewContainer(3)
	assert.True(t, c.Empty())
	assert.Equal(t, "3", c.String())

	// WHEN balls arrive out of id order
	for _, id := range []int{5, 0, 10} {
		c.ReceiveBall(NewBall(id))
	}

	// THEN they are kept in arrival order
	assert.Equal(t, []Ball{{ID: 5}, {ID: 0}, {ID: 10}}, c.Balls())
	assert.Equal(t, 3, c.Len())
	assert.False(t, c.Empty())

	// AND the returned slice is a copy
	balls := c.Balls()
	balls[0] = NewBall(99)
	assert.Equal(t, 5, c.Balls()[0].ID)
}

func TestBall_String(t *testing.T) {
	assert.Equal(t, "42", NewBall(42).String())
}
