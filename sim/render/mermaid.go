// Package render draws gate trees for humans.
package render

import (
	"fmt"
	"strings"

	"github.com/gateball-sim/gateball/sim"
)

// Overlay contains dynamic state to highlight on the graph.
type Overlay struct {
	Path      []int // cursor taken at each gate from the root, as in trace.RunRecord.Path
	Landed    bool  // highlight the container Path ends in, even when Path is empty
	MarkEmpty bool  // highlight containers that have not received a ball
}

// Mermaid produces a Mermaid flowchart of the tree.
// Shapes:
// - Gate: {Rhombus} labelled with its current cursor
// - Container: [(Cylinder)] labelled with its id and ball count
// Edges are labelled with the child index the gate routes through.
func Mermaid(tree *sim.Tree, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	ids := make(map[*sim.Gate]string)
	invalid := 0
	var walk func(n sim.Node) string
	walk = func(n sim.Node) string {
		switch n.Kind() {
		case sim.NodeGate:
			g := n.Gate()
			id := fmt.Sprintf("g%d", len(ids))
			ids[g] = id
			sb.WriteString(fmt.Sprintf("    %s{\"cursor %d/%d\"}\n", id, g.Direction(), g.Len()))
			for i, child := range g.Children() {
				childID := walk(child)
				sb.WriteString(fmt.Sprintf("    %s -- \"%d\" --> %s\n", id, i, childID))
			}
			return id
		case sim.NodeContainer:
			c := n.Container()
			id := containerID(c)
			sb.WriteString(fmt.Sprintf("    %s[(\"container %d <br/> %d ball(s)\")]\n", id, c.ID(), c.Len()))
			return id
		default:
			id := fmt.Sprintf("x%d", invalid)
			invalid++
			sb.WriteString(fmt.Sprintf("    %s[\"invalid\"]\n", id))
			return id
		}
	}
	walk(tree.Root())

	if overlay == nil {
		return sb.String()
	}

	sb.WriteString("\n    %% Overlay Styles\n")
	sb.WriteString("    classDef path fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	sb.WriteString("    classDef empty fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4,color:#000;\n")

	node := tree.Root()
	for _, dir := range overlay.Path {
		g := node.Gate()
		if g == nil || dir < 0 || dir >= g.Len() {
			break
		}
		sb.WriteString(fmt.Sprintf("    class %s path;\n", ids[g]))
		node = g.Children()[dir]
	}
	if c := node.Container(); c != nil && (overlay.Landed || len(overlay.Path) > 0) {
		sb.WriteString(fmt.Sprintf("    class %s path;\n", containerID(c)))
	}

	if overlay.MarkEmpty {
		for _, c := range tree.EmptyContainers() {
			sb.WriteString(fmt.Sprintf("    class %s empty;\n", containerID(c)))
		}
	}

	return sb.String()
}

func containerID(c *sim.Container) string {
	return fmt.Sprintf("c%d", c.ID())
}
