package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"hackerrank-scraper/models"
	"hackerrank-scraper/utils"
)

var csvHeader = []string{"username", "algorithm_score", "algorithm_rank", "data_structures_score", "data_structures_rank"}

// CSVWriter exports lookup results as CSV, to a file or to stdout when the
// path is "-".
type CSVWriter struct {
	path string
}

func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Write saves the results, creating the output directory if needed.
func (w *CSVWriter) Write(results []*models.ScrapeResponse) error {
	if w.path == "-" {
		return WriteCSV(os.Stdout, results)
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	if err := WriteCSV(file, results); err != nil {
		return err
	}

	utils.Success("Saved %d results → %s", len(results), w.path)
	return nil
}

func WriteCSV(out io.Writer, results []*models.ScrapeResponse) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}
	for _, r := range results {
		writer.Write([]string{
			r.Username,
			r.AlgorithmScore,
			r.AlgorithmRank,
			r.DataStructuresScore,
			r.DataStructuresRank,
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}
	return nil
}
