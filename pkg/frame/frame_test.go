package frame

import (
	"errors"
	"testing"

	"github.com/mkarls/fetchtab/models"
)

func TestFromDataset(t *testing.T) {
	ds := models.FromRecords(models.RecordSet{
		{"name": "Item 1", "value": int64(10)},
		{"name": "Item 2", "value": int64(20)},
	})

	f, err := FromDataset(ds)
	if err != nil {
		t.Fatalf("FromDataset() error = %v", err)
	}

	if len(f.Columns) != 2 || f.Columns[0] != "name" || f.Columns[1] != "value" {
		t.Errorf("columns = %v, want [name value]", f.Columns)
	}
	if len(f.Rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(f.Rows))
	}
	if f.Rows[0][0] != "Item 1" || f.Rows[0][1] != int64(10) {
		t.Errorf("row 0 = %v, want [Item 1 10]", f.Rows[0])
	}
}

func TestFromDataset_SparseRecords(t *testing.T) {
	ds := models.FromRecords(models.RecordSet{
		{"a": int64(1)},
		{"b": "two"},
	})

	f, err := FromDataset(ds)
	if err != nil {
		t.Fatalf("FromDataset() error = %v", err)
	}

	if len(f.Columns) != 2 {
		t.Fatalf("columns = %v, want 2 columns", f.Columns)
	}
	// Missing cells are nil
	if f.Rows[0][1] != nil {
		t.Errorf("row 0 col b = %v, want nil", f.Rows[0][1])
	}
	if f.Rows[1][0] != nil {
		t.Errorf("row 1 col a = %v, want nil", f.Rows[1][0])
	}
}

func TestFromDataset_Empty(t *testing.T) {
	_, err := FromDataset(models.FromRecords(nil))
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("error = %v, want ErrEmpty", err)
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	rs := models.RecordSet{
		{"name": "Item 1", "value": int64(10)},
	}
	f, err := FromDataset(models.FromRecords(rs))
	if err != nil {
		t.Fatalf("FromDataset() error = %v", err)
	}

	back := f.Records()
	if len(back) != 1 {
		t.Fatalf("record count = %d, want 1", len(back))
	}
	if back[0]["name"] != "Item 1" || back[0]["value"] != int64(10) {
		t.Errorf("records = %v, want original values", back)
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"int64", int64(10), "10"},
		{"int", 7, "7"},
		{"float", 2.5, "2.5"},
		{"whole float", float64(10), "10"},
		{"bool", true, "true"},
		{"slice is JSON-encoded", []string{"a", "b"}, `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCell(tt.in); got != tt.want {
				t.Errorf("FormatCell(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
