package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalRuns        int
	TotalPredictions int
	UniqueContainers int
	MaxContainerLoad int
	Distribution     map[int]int // container ID → count of balls landed
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		Distribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalRuns = len(st.Runs)
	summary.TotalPredictions = len(st.Predictions)
	for _, r := range st.Runs {
		summary.Distribution[r.ContainerID]++
		if n := summary.Distribution[r.ContainerID]; n > summary.MaxContainerLoad {
			summary.MaxContainerLoad = n
		}
	}
	summary.UniqueContainers = len(summary.Distribution)

	return summary
}
