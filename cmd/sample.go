package cmd

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/gateball-sim/gateball/sim"
)

// sampledPrediction is a prediction made before the run, checked after it.
type sampledPrediction struct {
	ball      int
	container *sim.Container
}

// confirmed reports whether the predicted container received the ball.
func (s sampledPrediction) confirmed() bool {
	return slices.Contains(s.container.Balls(), sim.NewBall(s.ball))
}

// predictSamples draws n ball numbers below count from src and predicts
// each one on the tree's current state.
func predictSamples(tree *sim.Tree, src sim.IntSource, count, n int) ([]sampledPrediction, error) {
	balls := sim.SampleBallNumbers(src, count, n)
	samples := make([]sampledPrediction, 0, len(balls))
	for _, b := range balls {
		c, err := predictBall(tree, b)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sampledPrediction{ball: b, container: c})
	}
	logrus.Debugf("Sampled %d ball numbers below %d", len(samples), count)
	return samples, nil
}

// reportSamples prints how many sampled predictions the run confirmed and
// warns about every miss.
func (r *reporter) reportSamples(samples []sampledPrediction) {
	confirmed := 0
	for _, s := range samples {
		if s.confirmed() {
			confirmed++
			continue
		}
		r.warn("Ball %d was predicted to land in container %d but did not", s.ball, s.container.ID())
	}
	r.printf("Sampled Predictions  : %d/%d confirmed\n", confirmed, len(samples))
}
