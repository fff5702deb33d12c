// Package trace provides decision-trace recording for gate tree runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// RunRecord captures one ball routed through the tree.
type RunRecord struct {
	BallID      int
	ContainerID int
	Path        []int // cursor taken at each gate, root first; empty for a container-only tree
}

// PredictionRecord captures one pure prediction.
type PredictionRecord struct {
	BallNumber  int
	ContainerID int
}
