// Package sim provides the gate tree simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - gate.go: round-robin routing and the pure Nth-ball prediction
//   - node.go: the Gate/Container tagged variant every traversal switches on
//   - tree.go: construction from branch/depth, Predict, RunBall and RunBalls
//
// # Architecture
//
// A Tree is built bottom-up from an unbounded lazy stream of containers
// (seq.go). Each layer chunks the one below into groups of branch nodes and
// zips every group with a cursor from Generate over an IntSource (rng.go).
// The root is the first node of the top layer, so exactly
// branch^depth containers are ever produced.
//
// Predict never mutates: a gate with cursor d and k children sends the nth
// ball to child (d+n) mod k, and that ball is the (n/k)-th to reach that
// child, which is the number handed to the next level down. RunBall walks the
// same path while advancing each cursor, so on a fresh tree Predict(0..N-1)
// matches N sequential runs. Predict never writes to the attached trace, so
// concurrent predictions are safe while no run is in progress.
//
// Sub-packages:
//   - sim/trace/: run and prediction records
//   - sim/render/: Mermaid flowchart of a tree
package sim
