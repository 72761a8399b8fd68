// Package sink serializes a dataset to one output kind. Every writer
// normalizes its input to the canonical record set first and overwrites the
// target unconditionally; there is no partial-write rollback.
package sink

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mkarls/fetchtab/models"
	"github.com/mkarls/fetchtab/pkg/frame"
)

// CSV writes the dataset as delimited text: a header row from the
// deterministic column order, then one row per record. Missing cells are
// empty, composite cells are JSON-encoded.
func CSV(ds models.Dataset, path string) error {
	f, err := frame.FromDataset(ds)
	if err != nil {
		return fmt.Errorf("data format is not supported for CSV conversion: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(f.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range f.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = frame.FormatCell(v)
		}
		if err := w.Write(cells); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
