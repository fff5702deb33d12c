package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// interactiveCmd asks for the tree shape and ball counts on stdin
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Build and run a tree from prompted values",
	Run: func(cmd *cobra.Command, args []string) {
		var s *int64
		if cmd.Flags().Changed("seed") {
			s = &seed
		}
		if err := runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), s); err != nil {
			logrus.Fatalf("Interactive session failed: %v", err)
		}
	},
}

// lineReader yields input lines and the first whitespace-separated token of each.
type lineReader struct {
	scanner *bufio.Scanner
}

// next returns the next line; ok is false at end of input.
func (l *lineReader) next() (line string, ok bool) {
	if !l.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(l.scanner.Text()), true
}

// firstInt parses the first token of line.
func firstInt(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	return n, err == nil
}

// promptInt keeps asking until a line parses to a value within [lo, hi].
func promptInt(in *lineReader, w io.Writer, prompt, retry string, lo, hi int) (int, error) {
	fmt.Fprintln(w, prompt)
	for {
		line, ok := in.next()
		if !ok {
			return 0, io.ErrUnexpectedEOF
		}
		if n, ok := firstInt(line); ok && n >= lo && n <= hi {
			return n, nil
		}
		fmt.Fprintln(w, retry)
	}
}

// runInteractive is the body of `gateball interactive`. End of input during
// the prediction or ball-count prompts is treated like a blank line.
func runInteractive(input io.Reader, w io.Writer, seed *int64) error {
	in := &lineReader{scanner: bufio.NewScanner(input)}

	d, err := promptInt(in, w,
		fmt.Sprintf("Please enter a depth between 0 and %d", maxInteractiveDepth),
		fmt.Sprintf("Please enter a valid integer between 0 and %d for depth (or Ctrl+C to quit)", maxInteractiveDepth),
		0, maxInteractiveDepth)
	if err != nil {
		return fmt.Errorf("reading depth: %w", err)
	}
	b, err := promptInt(in, w,
		fmt.Sprintf("Please enter a branching factor between 1 and %d", maxInteractiveBranch),
		fmt.Sprintf("Please enter a valid integer between 1 and %d for branching factor (or Ctrl+C to quit)", maxInteractiveBranch),
		1, maxInteractiveBranch)
	if err != nil {
		return fmt.Errorf("reading branching factor: %w", err)
	}

	tree, err := buildTree(&Config{Branch: b, Depth: d, Seed: seed})
	if err != nil {
		return err
	}
	r := newReporter(w)

	defaultBalls := len(tree.Containers()) - 1
	predicted, err := predictEmpty(tree)
	if err != nil {
		return err
	}
	r.highlight("Predicting that container %d will be empty after %d balls", predicted.ID(), defaultBalls)

	for {
		r.printf("Get another prediction by entering a ball number, or hit enter to move on\n")
		line, ok := in.next()
		if !ok || line == "" {
			break
		}
		n, ok := firstInt(line)
		if !ok || n < 0 {
			r.printf("Invalid ball number\n")
			continue
		}
		c, err := predictBall(tree, n)
		if err != nil {
			return err
		}
		r.prediction(n, c)
	}

	r.printf("Enter a number of balls to run, or leave blank for default (%d)\n", defaultBalls)
	count := defaultBalls
	for {
		line, ok := in.next()
		if !ok || line == "" {
			break
		}
		if n, ok := firstInt(line); ok && n >= 0 {
			count = n
			break
		}
		r.printf("Please enter a valid non-negative integer for number of balls to run, or leave blank for default (%d)\n", defaultBalls)
	}

	return r.runAndReport(tree, count)
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
