package sim

import (
	"fmt"
	"iter"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/gateball-sim/gateball/sim/trace"
)

// Tree owns the root node and the flat list of every container reachable
// from it, in creation order.
//
// Thread-safety: NOT thread-safe. RunBall/RunBalls mutate gate cursors and
// container contents. Predict only reads, so concurrent Predict calls are
// safe as long as no run overlaps them.
type Tree struct {
	root       Node
	branch     int
	containers []*Container
	trace      *trace.SimulationTrace
}

// NewTree wraps a hand-wired root. containers should list every container
// reachable from root in creation order; NewTree does not verify this.
// The branch factor is taken from the root gate (0 for a bare container).
func NewTree(root Node, containers []*Container) *Tree {
	branch := 0
	if g := root.Gate(); g != nil {
		branch = g.Len()
	}
	return &Tree{root: root, branch: branch, containers: containers}
}

// Create builds a tree of depth gate layers above branch^depth containers
// (one container when depth is 0). Every gate has exactly branch children
// and an initial cursor drawn from rng.Intn(branch).
//
// Containers come from an unbounded lazy generator; only as many as the root
// needs are ever produced.
func Create(branch, depth int, rng IntSource) (*Tree, error) {
	if branch < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBranch, branch)
	}
	if depth < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	if rng == nil {
		return nil, ErrNilSource
	}

	var containers []*Container
	layer := Map(
		Tap(Map(Sequential(0), NewContainer), func(c *Container) {
			containers = append(containers, c)
		}),
		ContainerNode,
	)

	var buildErr error
	gates := 0
	for i := 0; i < depth; i++ {
		groups, err := Batch(layer, branch)
		if err != nil {
			return nil, err
		}
		layerIndex := i
		cursors := Generate(func() int { return rng.Intn(branch) })
		layer = func(yield func(Node) bool) {
			for children, cursor := range Zip(groups, cursors) {
				if len(children) != branch {
					buildErr = fmt.Errorf("%w: layer %d produced a group of %d, want %d",
						ErrShortLayer, layerIndex, len(children), branch)
					return
				}
				g, err := NewGate(cursor, children)
				if err != nil {
					buildErr = fmt.Errorf("layer %d: %w", layerIndex, err)
					return
				}
				gates++
				if !yield(GateNode(g)) {
					return
				}
			}
		}
	}

	root, ok := First(layer)
	if buildErr != nil {
		return nil, buildErr
	}
	if !ok {
		return nil, fmt.Errorf("%w: no root produced", ErrCorruptTree)
	}

	logrus.Debugf("Built tree: branch=%d depth=%d gates=%d containers=%d", branch, depth, gates, len(containers))
	return &Tree{root: root, branch: branch, containers: containers}, nil
}

// Root returns the root node: a Container for a depth-0 tree, a Gate otherwise.
func (t *Tree) Root() Node {
	return t.root
}

// Containers returns the containers in creation order.
func (t *Tree) Containers() []*Container {
	return slices.Clone(t.containers)
}

// Depth counts the gates on the leftmost path from the root.
func (t *Tree) Depth() int {
	depth := 0
	for node := t.root; node.Kind() == NodeGate; node = node.gate.children[0] {
		depth++
	}
	return depth
}

// Branch returns the branch factor the tree was built with. A depth-0 tree
// from Create keeps its requested branch even though it has no gate.
func (t *Tree) Branch() int {
	return t.branch
}

// SetTrace attaches a decision trace. A nil trace disables recording.
func (t *Tree) SetTrace(st *trace.SimulationTrace) {
	t.trace = st
}

// Trace returns the attached decision trace, if any.
func (t *Tree) Trace() *trace.SimulationTrace {
	return t.trace
}

// Predict returns the container the ballNumber-th ball (0-based) would land
// in if every gate started from its current cursor. It never mutates the tree
// and never writes to the attached trace; callers that want predictions
// traced record them with SimulationTrace.RecordPrediction.
func (t *Tree) Predict(ballNumber int) (*Container, error) {
	if ballNumber < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeBallNumber, ballNumber)
	}
	node, n := t.root, ballNumber
	for {
		switch node.Kind() {
		case NodeGate:
			node, n = node.gate.PredictNthBall(n)
		case NodeContainer:
			return node.container, nil
		default:
			return nil, fmt.Errorf("%w: predicting ball %d", ErrCorruptTree, ballNumber)
		}
	}
}

// PredictEmpty returns the container that stays empty after one ball fewer
// than there are containers has run from the current state.
func (t *Tree) PredictEmpty() (*Container, error) {
	return t.Predict(len(t.containers) - 1)
}

// RunBall routes ball from the root, advancing the cursor of every gate on
// its path, and appends it to the container it reaches.
func (t *Tree) RunBall(ball Ball) (*Container, error) {
	var path []int
	recording := t.trace.Enabled()
	node := t.root
	for {
		switch node.Kind() {
		case NodeGate:
			if recording {
				path = append(path, node.gate.direction)
			}
			node = node.gate.RunBall()
		case NodeContainer:
			node.container.ReceiveBall(ball)
			if recording {
				t.trace.RecordRun(trace.RunRecord{
					BallID:      ball.ID,
					ContainerID: node.container.id,
					Path:        path,
				})
			}
			return node.container, nil
		default:
			return nil, fmt.Errorf("%w: running ball %d", ErrCorruptTree, ball.ID)
		}
	}
}

// RunBalls returns a lazy sequence that runs balls 0..count-1 one at a time,
// yielding each landing container after the ball has been fully processed.
// The sequence is single-use: ranging over it again yields nothing, even if
// the first range stopped early. On error it yields (nil, err) once and stops.
func (t *Tree) RunBalls(count int) iter.Seq2[*Container, error] {
	used := false
	return func(yield func(*Container, error) bool) {
		if used {
			return
		}
		used = true
		for id := 0; id < count; id++ {
			c, err := t.RunBall(NewBall(id))
			if err != nil {
				yield(nil, err)
				return
			}
			logrus.Debugf("Ball %d landed in container %d", id, c.id)
			if !yield(c, nil) {
				return
			}
		}
	}
}

// EmptyContainers returns the containers that have not received any ball.
func (t *Tree) EmptyContainers() []*Container {
	var empty []*Container
	for _, c := range t.containers {
		if c.Empty() {
			empty = append(empty, c)
		}
	}
	return empty
}
