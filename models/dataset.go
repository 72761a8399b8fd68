// Package models defines the dataset shapes that flow between fetchers and sinks.
package models

import "sort"

// Record is one row: column name to scalar value.
type Record = map[string]any

// RecordSet is the canonical intermediate shape. Every fetcher output and
// every sink input normalizes to this.
type RecordSet = []Record

type datasetKind int

const (
	kindRecords datasetKind = iota
	kindRecord
	kindColumnar
)

// Dataset is a closed union over the shapes a fetcher can produce:
// a record set, a single record, or a columnar table. Sinks call Records
// to get the canonical form.
type Dataset struct {
	kind    datasetKind
	records RecordSet
	record  Record
	columns []string
	rows    [][]any
}

// FromRecords wraps a record set.
func FromRecords(rs RecordSet) Dataset {
	return Dataset{kind: kindRecords, records: rs}
}

// FromRecord wraps a single record (e.g. a scrape result).
func FromRecord(r Record) Dataset {
	return Dataset{kind: kindRecord, record: r}
}

// FromColumns wraps a columnar table. Rows shorter than the column list are
// padded with nil.
func FromColumns(columns []string, rows [][]any) Dataset {
	return Dataset{kind: kindColumnar, columns: columns, rows: rows}
}

// Records normalizes any variant to the canonical record set.
func (d Dataset) Records() RecordSet {
	switch d.kind {
	case kindRecord:
		if d.record == nil {
			return nil
		}
		return RecordSet{d.record}
	case kindColumnar:
		rs := make(RecordSet, 0, len(d.rows))
		for _, row := range d.rows {
			rec := make(Record, len(d.columns))
			for i, col := range d.columns {
				if i < len(row) {
					rec[col] = row[i]
				} else {
					rec[col] = nil
				}
			}
			rs = append(rs, rec)
		}
		return rs
	default:
		return d.records
	}
}

// Len reports the number of rows after normalization.
func (d Dataset) Len() int {
	switch d.kind {
	case kindRecord:
		if d.record == nil {
			return 0
		}
		return 1
	case kindColumnar:
		return len(d.rows)
	default:
		return len(d.records)
	}
}

// Columns returns the deterministic column order for the dataset: the sorted
// union of keys across all records. The columnar variant keeps its declared
// order.
func (d Dataset) Columns() []string {
	if d.kind == kindColumnar {
		out := make([]string, len(d.columns))
		copy(out, d.columns)
		return out
	}
	seen := map[string]bool{}
	var cols []string
	for _, rec := range d.Records() {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}
