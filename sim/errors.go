package sim

import "errors"

var (
	// ErrNoChildren indicates a gate was constructed without any children.
	ErrNoChildren = errors.New("sim: gate must have at least one child")
	// ErrDirectionOutOfRange indicates a gate cursor outside [0, len(children)).
	ErrDirectionOutOfRange = errors.New("sim: direction must be a valid index of children")
	// ErrInvalidBatchSize indicates a non-positive group size passed to Batch.
	ErrInvalidBatchSize = errors.New("sim: batch size must be positive")
	// ErrInvalidBranch indicates a branch factor below 1.
	ErrInvalidBranch = errors.New("sim: branch factor must be at least 1")
	// ErrInvalidDepth indicates a negative tree depth.
	ErrInvalidDepth = errors.New("sim: depth must be non-negative")
	// ErrNilSource indicates tree construction without a cursor source.
	ErrNilSource = errors.New("sim: cursor source must not be nil")
	// ErrShortLayer indicates a layer that did not split into full groups of branch nodes.
	ErrShortLayer = errors.New("sim: layer group shorter than branch factor")
	// ErrCorruptTree indicates a traversal reached a node that is neither a gate nor a container.
	ErrCorruptTree = errors.New("sim: invalid tree, found path that does not lead to a container")
	// ErrNegativeBallNumber indicates a prediction for a ball before the first one.
	ErrNegativeBallNumber = errors.New("sim: ball number must be non-negative")
)
