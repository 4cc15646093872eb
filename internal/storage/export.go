package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteCSV serializes a time axis plus named columns: one header row
// ("time" then the column names), one row per grid point.
func WriteCSV(w io.Writer, times []float64, names []string, cols [][]float64) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{"time"}, names...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range times {
		row := make([]string, 0, len(cols)+1)
		row = append(row, strconv.FormatFloat(times[i], 'g', -1, 64))
		for _, col := range cols {
			row = append(row, strconv.FormatFloat(col[i], 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

// ReadCSV parses the format written by WriteCSV.
func ReadCSV(r io.Reader) (times []float64, names []string, cols [][]float64, err error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) < 1 || len(records[0]) < 2 || records[0][0] != "time" {
		return nil, nil, nil, fmt.Errorf("storage: malformed trace file")
	}

	names = records[0][1:]
	cols = make([][]float64, len(names))

	for _, record := range records[1:] {
		if len(record) != len(names)+1 {
			return nil, nil, nil, fmt.Errorf("storage: row width %d, expected %d", len(record), len(names)+1)
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		times = append(times, t)
		for j := range names {
			v, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, nil, nil, err
			}
			cols[j] = append(cols[j], v)
		}
	}

	return times, names, cols, nil
}

// ExportData is the JSON export envelope for a full run.
type ExportData struct {
	ID      string               `json:"id"`
	Mode    string               `json:"mode"`
	Dt      float64              `json:"dt"`
	Steps   int                  `json:"steps"`
	Times   []float64            `json:"times"`
	Lambdas map[string]float64   `json:"lambdas"`
	Traces  map[string][]float64 `json:"traces"`
}

func buildExport(meta *RunMetadata, times []float64, names []string, cols [][]float64) ExportData {
	data := ExportData{
		ID:      meta.ID,
		Mode:    meta.Mode,
		Dt:      meta.Dt,
		Steps:   meta.Steps,
		Times:   times,
		Lambdas: make(map[string]float64, len(meta.Labels)),
		Traces:  make(map[string][]float64, len(names)),
	}
	for i, label := range meta.Labels {
		if i < len(meta.Lambdas) {
			data.Lambdas[label] = meta.Lambdas[i]
		}
	}
	for i, name := range names {
		data.Traces[name] = cols[i]
	}
	return data
}

func ExportJSON(w io.Writer, meta *RunMetadata, times []float64, names []string, cols [][]float64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildExport(meta, times, names, cols))
}

func ExportJSONStdout(meta *RunMetadata, times []float64, names []string, cols [][]float64) error {
	return ExportJSON(os.Stdout, meta, times, names, cols)
}
