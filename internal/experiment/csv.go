package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

var csvHeader = []string{"num_blocks", "config", "run", "success", "iterations"}

// WriteCSV writes results with a header row
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, res := range results {
		record := []string{
			strconv.Itoa(res.NumBlocks),
			res.Config,
			strconv.Itoa(res.Run),
			strconv.FormatBool(res.Success),
			strconv.Itoa(res.Iterations),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes results to a file, creating or truncating it
func SaveCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteCSV(f, results); err != nil {
		return err
	}
	return f.Sync()
}
