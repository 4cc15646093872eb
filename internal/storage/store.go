// Package storage persists finished runs under a data directory, one
// subdirectory per run holding metadata.json and traces.csv, and exports
// runs as CSV or JSON.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zdaoudi/decaylab/internal/experiment"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is the saved summary of one run. Lambdas are recorded so that
// later activity plots reuse the constants the traces were generated with.
type RunMetadata struct {
	ID                string    `json:"id"`
	Mode              string    `json:"mode"`
	Parent            string    `json:"parent"`
	Labels            []string  `json:"labels"`
	Lambdas           []float64 `json:"lambdas"`
	Timestamp         time.Time `json:"timestamp"`
	InitialPopulation float64   `json:"initial_population"`
	Steps             int       `json:"steps"`
	Dt                float64   `json:"dt"`
	TotalTime         float64   `json:"total_time"`
	BranchingRatioA   float64   `json:"branching_ratio_a,omitempty"`
}

func (s *Store) Save(meta RunMetadata, outcome *experiment.Outcome) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Mode, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Labels = outcome.Labels
	meta.Lambdas = outcome.Lambdas
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "traces.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	names, cols := outcome.Columns()
	if err := WriteCSV(csvFile, outcome.Times, names, cols); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTraces reads a saved run back as a time axis plus one named column
// per series, in file order.
func (s *Store) LoadTraces(runID string) (times []float64, names []string, cols [][]float64, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "traces.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	return ReadCSV(file)
}
