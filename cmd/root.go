package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gateball-sim/gateball/sim"
	"github.com/gateball-sim/gateball/sim/trace"
)

var (
	// Tree shape and logging, shared by every subcommand
	configPath string // YAML config file
	logLevel   string // Log verbosity level
	branch     int    // Children per gate
	depth      int    // Gate layers above the containers
	seed       int64  // Seed for initial gate cursors

	// run/graph flags
	balls           int    // Number of balls to run
	predictBalls    []int  // Ball numbers to predict before running
	sampleCount     int    // Random ball numbers whose predictions are checked
	traceLevel      string // Decision trace level
	resultsPath     string // JSON results output
	metricsTextfile string // Prometheus textfile output
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "gateball",
	Short: "Round-robin gate tree simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd builds a tree, prints predictions and runs balls through it
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run balls through a gate tree",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		startTime := time.Now()
		if err := runSimulation(cmd.OutOrStdout(), cfg); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers explicitly set flags over the config file (or defaults)
// and validates the result.
func resolveConfig(cmd *cobra.Command) (*Config, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("branch") {
		cfg.Branch = branch
	}
	if flags.Changed("depth") {
		cfg.Depth = depth
	}
	if flags.Changed("seed") {
		s := seed
		cfg.Seed = &s
	}
	if flags.Changed("balls") {
		n := balls
		cfg.Balls = &n
	}
	if flags.Changed("predict") {
		cfg.Predict = predictBalls
	}
	if flags.Changed("sample") {
		cfg.Sample = sampleCount
	}
	if flags.Changed("trace") {
		cfg.Trace = traceLevel
	}
	if flags.Changed("results") {
		cfg.Results = resultsPath
	}
	if flags.Changed("metrics-textfile") {
		cfg.MetricsTextfile = metricsTextfile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRNG returns a fresh PartitionedRNG for cfg's seed. Every call starts
// each subsystem stream from its beginning.
func newRNG(cfg *Config) *sim.PartitionedRNG {
	return sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.ResolveSeed()))
}

// buildTree creates the tree described by cfg, seeding gate cursors from
// the "gates" RNG subsystem.
func buildTree(cfg *Config) (*sim.Tree, error) {
	rng := newRNG(cfg)
	logrus.Infof("Building tree with branch=%d, depth=%d, seed=%d", cfg.Branch, cfg.Depth, rng.Key())
	tree, err := sim.Create(cfg.Branch, cfg.Depth, rng.ForSubsystem(sim.SubsystemGates))
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	if cfg.Trace != "" {
		tree.SetTrace(trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(cfg.Trace)}))
	}
	return tree, nil
}

// runSimulation is the body of `gateball run`.
func runSimulation(w io.Writer, cfg *Config) error {
	tree, err := buildTree(cfg)
	if err != nil {
		return err
	}
	r := newReporter(w)

	containers := len(tree.Containers())
	count := containers - 1
	if cfg.Balls != nil {
		count = *cfg.Balls
	}

	predicted, err := predictEmpty(tree)
	if err != nil {
		return err
	}
	r.highlight("Predicting that container %d will be empty after %d balls", predicted.ID(), containers-1)
	for _, n := range cfg.Predict {
		c, err := predictBall(tree, n)
		if err != nil {
			return err
		}
		r.prediction(n, c)
	}
	samples, err := predictSamples(tree, newRNG(cfg).ForSubsystem(sim.SubsystemSamples), count, cfg.Sample)
	if err != nil {
		return err
	}

	if err := r.runAndReport(tree, count); err != nil {
		return err
	}

	m := sim.CollectMetrics(tree)
	predictedID := predicted.ID()
	m.PredictedEmpty = &predictedID
	m.Print(w)
	if len(samples) > 0 {
		r.reportSamples(samples)
	}

	if st := tree.Trace(); st.Enabled() {
		summary := trace.Summarize(st)
		r.printf("=== Trace Summary ===\n")
		r.printf("Runs Traced          : %d\n", summary.TotalRuns)
		r.printf("Predictions Traced   : %d\n", summary.TotalPredictions)
		r.printf("Containers Reached   : %d\n", summary.UniqueContainers)
		r.printf("Max Container Load   : %d\n", summary.MaxContainerLoad)
	}

	if cfg.Results != "" {
		if err := m.SaveResults(cfg.Results); err != nil {
			return err
		}
	}
	if cfg.MetricsTextfile != "" {
		if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return err
		}
	}
	return nil
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML run configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().IntVar(&branch, "branch", 2, "Children per gate")
	rootCmd.PersistentFlags().IntVar(&depth, "depth", 3, "Gate layers above the containers")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for initial gate cursors (default: wall clock)")

	runCmd.Flags().IntVar(&balls, "balls", 0, "Number of balls to run (default: containers - 1)")
	runCmd.Flags().IntSliceVar(&predictBalls, "predict", nil, "Comma-separated ball numbers to predict before running")
	runCmd.Flags().IntVar(&sampleCount, "sample", 0, "Number of random ball numbers whose predictions are checked against the run")
	runCmd.Flags().StringVar(&traceLevel, "trace", "", "Decision trace level (none, decisions)")
	runCmd.Flags().StringVar(&resultsPath, "results", "", "Write JSON results to this file")
	runCmd.Flags().StringVar(&metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this textfile")

	rootCmd.AddCommand(runCmd)
}
