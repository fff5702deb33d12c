// Tracks tree-wide landing statistics for the end-of-run report.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Metrics aggregates statistics about a tree for final reporting.
type Metrics struct {
	Branch          int         `json:"branch"`
	Depth           int         `json:"depth"`
	Containers      int         `json:"containers"`
	BallsRun        int         `json:"balls_run"`
	Distribution    map[int]int `json:"distribution"` // container ID -> balls received
	EmptyContainers []int       `json:"empty_containers"`
	PredictedEmpty  *int        `json:"predicted_empty,omitempty"` // set by the caller before any run
}

// CollectMetrics snapshots the current contents of every container in t.
func CollectMetrics(t *Tree) *Metrics {
	m := &Metrics{
		Branch:          t.Branch(),
		Depth:           t.Depth(),
		Containers:      len(t.containers),
		Distribution:    make(map[int]int, len(t.containers)),
		EmptyContainers: make([]int, 0),
	}
	for _, c := range t.containers {
		m.Distribution[c.id] = c.Len()
		m.BallsRun += c.Len()
		if c.Empty() {
			m.EmptyContainers = append(m.EmptyContainers, c.id)
		}
	}
	return m
}

// Print writes a human-readable summary to w.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Branch Factor        : %d\n", m.Branch)
	fmt.Fprintf(w, "Depth                : %d\n", m.Depth)
	fmt.Fprintf(w, "Containers           : %d\n", m.Containers)
	fmt.Fprintf(w, "Balls Run            : %d\n", m.BallsRun)
	if m.PredictedEmpty != nil {
		fmt.Fprintf(w, "Predicted Empty      : %d\n", *m.PredictedEmpty)
	}
	fmt.Fprintf(w, "Empty Containers     : %d\n", len(m.EmptyContainers))
	if m.Containers > 0 {
		fmt.Fprintf(w, "Average Balls/Container : %.2f\n", float64(m.BallsRun)/float64(m.Containers))
	}
}

// SaveResults writes the metrics as indented JSON to path.
func (m *Metrics) SaveResults(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	logrus.Debugf("Successfully wrote results to '%s'", path)
	return nil
}

// WriteTextfile exports the metrics in Prometheus text format to path,
// suitable for a node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	reg := prometheus.NewRegistry()
	received := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateball_balls_received_total",
			Help: "Total number of balls received per container",
		},
		[]string{"container"},
	)
	containers := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gateball_containers",
		Help: "Number of containers in the tree",
	})
	empty := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gateball_empty_containers",
		Help: "Number of containers that received no ball",
	})
	reg.MustRegister(received, containers, empty)

	for id, n := range m.Distribution {
		received.WithLabelValues(strconv.Itoa(id)).Add(float64(n))
	}
	containers.Set(float64(m.Containers))
	empty.Set(float64(len(m.EmptyContainers)))

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
