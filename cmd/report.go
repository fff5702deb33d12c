package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/gateball-sim/gateball/sim"
)

// reporter writes run output, coloring highlights only when w is a terminal.
type reporter struct {
	w   io.Writer
	out *termenv.Output
}

func newReporter(w io.Writer) *reporter {
	return &reporter{w: w, out: termenv.NewOutput(w)}
}

func (r *reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// highlight prints one line in the prediction color.
func (r *reporter) highlight(format string, args ...any) {
	s := r.out.String(fmt.Sprintf(format, args...)).Foreground(r.out.Color("#fbc02d"))
	fmt.Fprintln(r.w, s)
}

// warn prints one line in the empty-container color.
func (r *reporter) warn(format string, args ...any) {
	s := r.out.String(fmt.Sprintf(format, args...)).Foreground(r.out.Color("#fb7185"))
	fmt.Fprintln(r.w, s)
}

func (r *reporter) prediction(ballNumber int, c *sim.Container) {
	r.highlight("Ball %d is predicted to land in container %d", ballNumber, c.ID())
}

// runAndReport runs count balls through tree, printing every landing and the
// containers left empty afterwards.
func (r *reporter) runAndReport(tree *sim.Tree, count int) error {
	r.printf("Running balls...\n")
	for c, err := range tree.RunBalls(count) {
		if err != nil {
			return err
		}
		r.printf("Container %d now contains ball(s) %s\n", c.ID(), joinBalls(c.Balls()))
	}
	r.printf("Run complete.\n")

	empty := tree.EmptyContainers()
	if len(empty) == 0 {
		r.printf("No containers were empty\n")
		return nil
	}
	ids := make([]string, len(empty))
	for i, c := range empty {
		ids[i] = c.String()
	}
	r.warn("Empty containers were: %s", strings.Join(ids, ","))
	return nil
}

func joinBalls(balls []sim.Ball) string {
	ids := make([]string, len(balls))
	for i, b := range balls {
		ids[i] = b.String()
	}
	return strings.Join(ids, ",")
}
