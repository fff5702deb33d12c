package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

// writeTempYAML writes content to a config file in a fresh temp dir.
func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gateball.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeTempYAML(t, `
branch: 3
depth: 4
balls: 10
seed: 42
predict: [0, 5, 9999]
sample: 4
trace: decisions
results: out.json
metrics_textfile: out.prom
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Branch)
	assert.Equal(t, 4, cfg.Depth)
	assert.Equal(t, intPtr(10), cfg.Balls)
	assert.Equal(t, int64Ptr(42), cfg.Seed)
	assert.Equal(t, []int{0, 5, 9999}, cfg.Predict)
	assert.Equal(t, 4, cfg.Sample)
	assert.Equal(t, "decisions", cfg.Trace)
	assert.Equal(t, "out.json", cfg.Results)
	assert.Equal(t, "out.prom", cfg.MetricsTextfile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingKeysKeepDefaults(t *testing.T) {
	// GIVEN a file that only sets depth
	cfg, err := LoadConfig(writeTempYAML(t, "depth: 1\n"))
	require.NoError(t, err)

	// THEN branch keeps its default and optional fields stay unset
	assert.Equal(t, DefaultConfig().Branch, cfg.Branch)
	assert.Equal(t, 1, cfg.Depth)
	assert.Nil(t, cfg.Balls)
	assert.Nil(t, cfg.Seed)
}

func TestLoadConfig_ZeroBallsIsDistinctFromUnset(t *testing.T) {
	cfg, err := LoadConfig(writeTempYAML(t, "balls: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Balls, "balls: 0 must be explicitly set")
	assert.Equal(t, 0, *cfg.Balls)
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeTempYAML(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_UnknownKeyRejected(t *testing.T) {
	// Typos must cause errors
	_, err := LoadConfig(writeTempYAML(t, "brnach: 3\n"))
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", *DefaultConfig(), false},
		{"depth zero", Config{Branch: 1, Depth: 0}, false},
		{"branch one very deep", Config{Branch: 1, Depth: 1000}, false},
		{"largest allowed", Config{Branch: 2, Depth: 20}, false},
		{"zero branch", Config{Branch: 0, Depth: 1}, true},
		{"negative depth", Config{Branch: 2, Depth: -1}, true},
		{"too many containers", Config{Branch: 2, Depth: 21}, true},
		{"overflowing shape", Config{Branch: 1000, Depth: 1000}, true},
		{"negative balls", Config{Branch: 2, Depth: 1, Balls: intPtr(-1)}, true},
		{"negative prediction", Config{Branch: 2, Depth: 1, Predict: []int{3, -2}}, true},
		{"negative sample", Config{Branch: 2, Depth: 1, Sample: -1}, true},
		{"unknown trace level", Config{Branch: 2, Depth: 1, Trace: "verbose"}, true},
		{"trace none", Config{Branch: 2, Depth: 1, Trace: "none"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ResolveSeed(t *testing.T) {
	// GIVEN an explicit seed, it is returned unchanged
	cfg := &Config{Seed: int64Ptr(7)}
	assert.Equal(t, int64(7), cfg.ResolveSeed())

	// GIVEN no seed, a wall-clock seed is chosen once and recorded
	cfg = &Config{}
	first := cfg.ResolveSeed()
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, first, cfg.ResolveSeed())
}
