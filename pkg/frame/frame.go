// Package frame provides a small columnar table used to align heterogeneous
// records before they are written to a CSV file or a database table.
package frame

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/mkarls/fetchtab/models"
)

// ErrEmpty is returned when a dataset has no rows to align.
var ErrEmpty = errors.New("dataset has no rows")

// Frame is a fixed set of columns plus row values in column order.
// Cells for columns a record does not carry are nil.
type Frame struct {
	Columns []string
	Rows    [][]any
}

// FromDataset normalizes a dataset into a frame. Column order comes from the
// dataset's deterministic column listing; missing cells are nil.
func FromDataset(ds models.Dataset) (*Frame, error) {
	records := ds.Records()
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	cols := ds.Columns()
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		row := make([]any, len(cols))
		for i, col := range cols {
			row[i] = rec[col]
		}
		rows = append(rows, row)
	}

	return &Frame{Columns: cols, Rows: rows}, nil
}

// Records converts the frame back to a record set.
func (f *Frame) Records() models.RecordSet {
	rs := make(models.RecordSet, 0, len(f.Rows))
	for _, row := range f.Rows {
		rec := make(models.Record, len(f.Columns))
		for i, col := range f.Columns {
			rec[col] = row[i]
		}
		rs = append(rs, rec)
	}
	return rs
}

// FormatCell renders a cell value for text output. Scalars use their natural
// representation, nil becomes an empty string, and composite values are
// JSON-encoded.
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
