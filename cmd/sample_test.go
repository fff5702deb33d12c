package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gateball-sim/gateball/sim"
)

func TestReportSamples_WarnsOnMiss(t *testing.T) {
	// GIVEN one sample whose container holds the ball and one whose does not
	hit := sim.NewContainer(0)
	hit.ReceiveBall(sim.NewBall(4))
	miss := sim.NewContainer(1)
	samples := []sampledPrediction{
		{ball: 4, container: hit},
		{ball: 7, container: miss},
	}

	// WHEN reported
	var buf bytes.Buffer
	newReporter(&buf).reportSamples(samples)

	// THEN the miss is named and the tally counts only the hit
	out := buf.String()
	assert.Contains(t, out, "Ball 7 was predicted to land in container 1 but did not")
	assert.Contains(t, out, "Sampled Predictions  : 1/2 confirmed")
}

func TestPredictSamples_FollowsSamplesStream(t *testing.T) {
	// GIVEN a tree and the samples stream for its seed
	cfg := &Config{Branch: 2, Depth: 2, Seed: int64Ptr(21)}
	tree, err := buildTree(cfg)
	require.NoError(t, err)

	// WHEN 6 samples below 10 are predicted
	samples, err := predictSamples(tree, newRNG(cfg).ForSubsystem(sim.SubsystemSamples), 10, 6)
	require.NoError(t, err)

	// THEN they are the stream's ball numbers, each with its prediction
	want := sim.SampleBallNumbers(newRNG(cfg).ForSubsystem(sim.SubsystemSamples), 10, 6)
	require.Len(t, samples, 6)
	for i, s := range samples {
		assert.Equal(t, want[i], s.ball)
		c, err := tree.Predict(s.ball)
		require.NoError(t, err)
		assert.Same(t, c, s.container)
	}
}

func TestPredictSamples_NothingToSample(t *testing.T) {
	tree, err := buildTree(&Config{Branch: 2, Depth: 1, Seed: int64Ptr(1)})
	require.NoError(t, err)
	samples, err := predictSamples(tree, newRNG(&Config{Seed: int64Ptr(1)}).ForSubsystem(sim.SubsystemSamples), 0, 5)
	require.NoError(t, err)
	assert.Empty(t, samples)
}
