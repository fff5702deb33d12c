package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInteractive_FullSession(t *testing.T) {
	// GIVEN depth 2, branch 2, one prediction, one bad entry, then defaults
	seed := int64(21)
	expected, err := buildTree(&Config{Branch: 2, Depth: 2, Seed: &seed})
	require.NoError(t, err)
	empty, err := expected.PredictEmpty()
	require.NoError(t, err)
	five, err := expected.Predict(5)
	require.NoError(t, err)

	input := "2\n2\n5\nabc\n\n\n"
	var out bytes.Buffer

	// WHEN the session runs
	require.NoError(t, runInteractive(strings.NewReader(input), &out, &seed))
	got := out.String()

	// THEN the prompts, predictions and run report appear
	assert.Contains(t, got, "Please enter a depth between 0 and 10")
	assert.Contains(t, got, "Please enter a branching factor between 1 and 5")
	assert.Contains(t, got, fmt.Sprintf("Predicting that container %d will be empty after 3 balls", empty.ID()))
	assert.Contains(t, got, fmt.Sprintf("Ball 5 is predicted to land in container %d", five.ID()))
	assert.Contains(t, got, "Invalid ball number")
	assert.Contains(t, got, "leave blank for default (3)")
	assert.Equal(t, 3, strings.Count(got, "now contains ball(s)"))
	assert.Contains(t, got, fmt.Sprintf("Empty containers were: %d", empty.ID()))
}

func TestRunInteractive_RetriesOutOfRangeShape(t *testing.T) {
	// GIVEN depths 11, -1 and "x" before a valid 3, then branch 9 before 1
	input := "11\n-1\nx\n3 trailing words\n9\n1\n\n4\n"
	var out bytes.Buffer
	seed := int64(1)

	require.NoError(t, runInteractive(strings.NewReader(input), &out, &seed))
	got := out.String()

	assert.Equal(t, 3, strings.Count(got, "for depth (or Ctrl+C to quit)"))
	assert.Equal(t, 1, strings.Count(got, "for branching factor (or Ctrl+C to quit)"))
	// A branch-1 tree has one container that receives all four balls.
	assert.Contains(t, got, "Container 0 now contains ball(s) 0,1,2,3")
	assert.Contains(t, got, "No containers were empty")
}

func TestRunInteractive_InvalidBallCountThenExplicit(t *testing.T) {
	input := "1\n3\n\n-2\nlots\n6\n"
	var out bytes.Buffer
	seed := int64(8)

	require.NoError(t, runInteractive(strings.NewReader(input), &out, &seed))
	got := out.String()

	assert.Equal(t, 2, strings.Count(got, "Please enter a valid non-negative integer for number of balls"))
	assert.Equal(t, 6, strings.Count(got, "now contains ball(s)"))
}

func TestRunInteractive_EndOfInputDuringShape(t *testing.T) {
	var out bytes.Buffer
	err := runInteractive(strings.NewReader("2\n"), &out, nil)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestRunInteractive_EndOfInputAfterShapeUsesDefaults(t *testing.T) {
	var out bytes.Buffer
	seed := int64(4)
	require.NoError(t, runInteractive(strings.NewReader("1\n4"), &out, &seed))
	assert.Equal(t, 3, strings.Count(out.String(), "now contains ball(s)"))
}
