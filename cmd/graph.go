package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gateball-sim/gateball/sim/render"
	"github.com/gateball-sim/gateball/sim/trace"
)

// graphCmd prints a Mermaid flowchart of the tree
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render the gate tree as a Mermaid flowchart",
	Long: "Render the gate tree as a Mermaid flowchart. With --balls, the balls run first " +
		"and the last ball's path and the empty containers are highlighted.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := renderGraph(cmd.OutOrStdout(), cfg); err != nil {
			logrus.Fatalf("Rendering failed: %v", err)
		}
	},
}

// renderGraph is the body of `gateball graph`. Unlike run, an unset ball
// count means no balls.
func renderGraph(w io.Writer, cfg *Config) error {
	cfg.Trace = string(trace.TraceLevelDecisions)
	tree, err := buildTree(cfg)
	if err != nil {
		return err
	}

	if cfg.Balls == nil || *cfg.Balls == 0 {
		_, err := fmt.Fprint(w, render.Mermaid(tree, nil))
		return err
	}
	for _, err := range tree.RunBalls(*cfg.Balls) {
		if err != nil {
			return err
		}
	}
	overlay := &render.Overlay{MarkEmpty: true}
	if last, ok := tree.Trace().LastRun(); ok {
		overlay.Path = last.Path
		overlay.Landed = true
	}
	_, err = fmt.Fprint(w, render.Mermaid(tree, overlay))
	return err
}

func init() {
	graphCmd.Flags().IntVar(&balls, "balls", 0, "Number of balls to run before rendering")
	rootCmd.AddCommand(graphCmd)
}
