package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gateball-sim/gateball/sim"
	"github.com/gateball-sim/gateball/sim/trace"
)

// predictCmd prints predictions without running any ball
var predictCmd = &cobra.Command{
	Use:   "predict [ball-number...]",
	Short: "Predict where balls will land without running them",
	Long: "Predict where the given balls (0-based) would land on a fresh tree. " +
		"With no arguments, predicts the container left empty after containers-1 balls.",
	Run: func(cmd *cobra.Command, args []string) {
		numbers, err := parseBallNumbers(args)
		if err != nil {
			logrus.Fatalf("Invalid ball number: %v", err)
		}
		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := runPredictions(cmd.OutOrStdout(), cfg, numbers); err != nil {
			logrus.Fatalf("Prediction failed: %v", err)
		}
	},
}

// predictBall predicts where ball n lands, tracing the prediction.
func predictBall(tree *sim.Tree, n int) (*sim.Container, error) {
	c, err := tree.Predict(n)
	if err != nil {
		return nil, err
	}
	recordPrediction(tree, n, c)
	return c, nil
}

// predictEmpty predicts the container left empty after containers-1 balls,
// tracing the prediction.
func predictEmpty(tree *sim.Tree) (*sim.Container, error) {
	c, err := tree.PredictEmpty()
	if err != nil {
		return nil, err
	}
	recordPrediction(tree, len(tree.Containers())-1, c)
	return c, nil
}

// recordPrediction appends to the tree's trace when one is enabled.
func recordPrediction(tree *sim.Tree, n int, c *sim.Container) {
	if st := tree.Trace(); st.Enabled() {
		st.RecordPrediction(trace.PredictionRecord{BallNumber: n, ContainerID: c.ID()})
	}
}

func parseBallNumbers(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%d is negative", n)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// runPredictions is the body of `gateball predict`.
func runPredictions(w io.Writer, cfg *Config, numbers []int) error {
	tree, err := buildTree(cfg)
	if err != nil {
		return err
	}
	r := newReporter(w)

	if len(numbers) == 0 {
		c, err := predictEmpty(tree)
		if err != nil {
			return err
		}
		r.highlight("Predicting that container %d will be empty after %d balls", c.ID(), len(tree.Containers())-1)
		return nil
	}
	for _, n := range numbers {
		c, err := predictBall(tree, n)
		if err != nil {
			return err
		}
		r.prediction(n, c)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(predictCmd)
}
