package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zdaoudi/decaylab/internal/experiment"
)

func sampleOutcome() *experiment.Outcome {
	return &experiment.Outcome{
		Mode:    "chain",
		Labels:  []string{"238U", "234Th"},
		Lambdas: []float64{1.5514e-10, 10.5},
		Times:   []float64{0, 0.5, 1.0},
		Traces: [][]float64{
			{1000, 999.9, 999.8},
			{0, 0.08, 0.12},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	outcome := sampleOutcome()
	meta := RunMetadata{
		Mode:              "chain",
		Parent:            "238U",
		InitialPopulation: 1000,
		Steps:             2,
		Dt:                0.5,
		TotalTime:         1.0,
	}

	runID, err := st.Save(meta, outcome)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(runID, "chain_"))

	loaded, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, loaded.ID)
	assert.Equal(t, []string{"238U", "234Th"}, loaded.Labels)
	assert.Equal(t, outcome.Lambdas, loaded.Lambdas)

	times, names, cols, err := st.LoadTraces(runID)
	require.NoError(t, err)
	assert.Equal(t, outcome.Times, times)
	assert.Equal(t, []string{"238U", "234Th"}, names)
	require.Len(t, cols, 2)
	assert.Equal(t, outcome.Traces[0], cols[0])
	assert.Equal(t, outcome.Traces[1], cols[1])
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = st.Save(RunMetadata{Mode: "chain"}, sampleOutcome())
	require.NoError(t, err)

	runs, err = st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestListMissingDir(t *testing.T) {
	st := New("does-not-exist")
	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	times := []float64{0, 10, 20}
	names := []string{"238U", "analytic"}
	cols := [][]float64{{1e6, 5e5, 2.5e5}, {1e6, 4.9e5, 2.4e5}}

	require.NoError(t, WriteCSV(&buf, times, names, cols))

	gotTimes, gotNames, gotCols, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, times, gotTimes)
	assert.Equal(t, names, gotNames)
	assert.Equal(t, cols, gotCols)
}

func TestReadCSVMalformed(t *testing.T) {
	_, _, _, err := ReadCSV(strings.NewReader("foo,bar\n1,2\n"))
	assert.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	meta := &RunMetadata{
		ID:      "chain_1",
		Mode:    "chain",
		Labels:  []string{"238U", "234Th"},
		Lambdas: []float64{1.5e-10, 10.5},
		Dt:      0.5,
		Steps:   2,
	}

	err := ExportJSON(&buf, meta, []float64{0, 0.5}, []string{"238U"}, [][]float64{{1000, 999.9}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"mode": "chain"`)
	assert.Contains(t, out, `"238U"`)
	assert.Contains(t, out, `"234Th"`)
}
