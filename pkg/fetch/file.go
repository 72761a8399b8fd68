package fetch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/mkarls/fetchtab/models"
)

// File kinds understood by File.
const (
	KindCSV  = "csv"
	KindJSON = "json"
)

// ValidKind reports whether kind names a supported file format. The driver
// checks this before any I/O so a typo is a configuration error, not a
// runtime one.
func ValidKind(kind string) bool {
	return kind == KindCSV || kind == KindJSON
}

// File reads a local CSV or JSON file into a dataset. CSV cells are parsed
// into scalars; a JSON document may be a sequence of objects or a single
// object.
func File(path, kind string) (models.Dataset, error) {
	switch kind {
	case KindCSV:
		return readCSV(path)
	case KindJSON:
		return readJSON(path)
	default:
		return models.Dataset{}, fmt.Errorf("invalid file kind %q: choose %q or %q", kind, KindCSV, KindJSON)
	}
}

func readCSV(path string) (models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return models.FromRecords(nil), nil
	}

	header := rows[0]
	records := make(models.RecordSet, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(models.Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = parseScalar(row[i])
			} else {
				rec[col] = nil
			}
		}
		records = append(records, rec)
	}

	return models.FromRecords(records), nil
}

func readJSON(path string) (models.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to read file: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Dataset{}, fmt.Errorf("JSON decode error: %w", err)
	}

	switch v := doc.(type) {
	case []any:
		records := make(models.RecordSet, 0, len(v))
		for i, elem := range v {
			rec, ok := elem.(map[string]any)
			if !ok {
				return models.Dataset{}, fmt.Errorf("element %d is not an object", i)
			}
			records = append(records, rec)
		}
		return models.FromRecords(records), nil
	case map[string]any:
		return models.FromRecord(v), nil
	default:
		return models.Dataset{}, fmt.Errorf("document is not an object or a sequence of objects")
	}
}

// parseScalar converts a CSV cell into the narrowest scalar that fits:
// int64, then float64, then bool, else the raw string.
func parseScalar(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
