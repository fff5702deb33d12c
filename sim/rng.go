package sim

import (
	"hash/fnv"
	"math/rand"
)

// IntSource draws uniformly distributed integers in [0, n).
// *rand.Rand satisfies it; tests substitute seeded or scripted sources.
type IntSource interface {
	Intn(n int) int
}

// SimulationKey identifies a reproducible run. Two runs with the same key,
// branch and depth build identical trees and sample the same ball numbers.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// RNG subsystems. Each draws from its own stream so that adding draws to one
// never shifts the values another sees.
const (
	// SubsystemGates feeds initial gate cursors. It uses the master seed
	// directly, so --seed maps straight onto the tree layout.
	SubsystemGates = "gates"

	// SubsystemSamples picks ball numbers whose predictions are checked
	// against the run.
	SubsystemSamples = "samples"
)

// PartitionedRNG hands out one deterministic *rand.Rand per subsystem name.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key     SimulationKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:     key,
		streams: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the stream for name, creating it on first use.
// Repeated calls with the same name share one *rand.Rand.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.key.seedFor(name)))
	p.streams[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// seedFor is the master seed for SubsystemGates and master XOR FNV-1a(name)
// for everything else.
func (k SimulationKey) seedFor(name string) int64 {
	if name == SubsystemGates {
		return int64(k)
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(k) ^ int64(h.Sum64())
}

// SampleBallNumbers draws n ball numbers from [0, count), with replacement.
// It returns nil when n or count is not positive.
func SampleBallNumbers(src IntSource, count, n int) []int {
	if n <= 0 || count <= 0 {
		return nil
	}
	samples := make([]int, n)
	for i := range samples {
		samples[i] = src.Intn(count)
	}
	return samples
}
