package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every run and prediction.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects decision records while balls run through a tree.
type SimulationTrace struct {
	Config      TraceConfig
	Runs        []RunRecord
	Predictions []PredictionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Runs:        make([]RunRecord, 0),
		Predictions: make([]PredictionRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on nil.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelDecisions
}

// RecordRun appends a run record.
func (st *SimulationTrace) RecordRun(record RunRecord) {
	st.Runs = append(st.Runs, record)
}

// RecordPrediction appends a prediction record.
func (st *SimulationTrace) RecordPrediction(record PredictionRecord) {
	st.Predictions = append(st.Predictions, record)
}

// LastRun returns the most recent run record, if any.
func (st *SimulationTrace) LastRun() (RunRecord, bool) {
	if st == nil || len(st.Runs) == 0 {
		return RunRecord{}, false
	}
	return st.Runs[len(st.Runs)-1], true
}
