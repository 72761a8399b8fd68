package db

import (
	"fmt"

	"github.com/mkarls/fetchtab/models"
)

// QueryRecords runs the given SQL verbatim and materializes every result row
// as a record keyed by column name. The query text is caller-trusted; there
// is no parameterization here.
func (db *DB) QueryRecords(query string) (models.RecordSet, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var records models.RecordSet
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		rec := make(models.Record, len(cols))
		for i, col := range cols {
			rec[col] = normalizeValue(values[i])
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return records, nil
}

// normalizeValue maps driver-level values to the scalar types the rest of the
// pipeline understands. BLOB/TEXT can arrive as []byte.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
