package sink

import (
	"path/filepath"
	"testing"

	"github.com/mkarls/fetchtab/models"
	"github.com/mkarls/fetchtab/pkg/db"
	"github.com/mkarls/fetchtab/pkg/fetch"
)

func TestTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	ds := models.FromRecords(models.RecordSet{
		{"name": "Item 1", "value": int64(10)},
		{"name": "Item 2", "value": int64(20)},
	})

	if err := Table(ds, path, "items", db.ModeReplace); err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	back, err := fetch.Database(path, "SELECT name, value FROM items ORDER BY value")
	if err != nil {
		t.Fatalf("Database() error = %v", err)
	}

	records := back.Records()
	if len(records) != 2 {
		t.Fatalf("record count = %d, want 2", len(records))
	}
	if records[0]["name"] != "Item 1" || records[0]["value"] != int64(10) {
		t.Errorf("records[0] = %v, want Item 1 / 10", records[0])
	}
}

func TestTable_FailModeOnExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	ds := models.FromRecords(models.RecordSet{{"a": int64(1)}})

	if err := Table(ds, path, "t", db.ModeFail); err != nil {
		t.Fatalf("Table() into fresh store error = %v", err)
	}
	if err := Table(ds, path, "t", db.ModeFail); err == nil {
		t.Error("Table() in fail mode over existing table should return error")
	}
}

func TestTable_EmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	if err := Table(models.FromRecords(nil), path, "t", db.ModeReplace); err == nil {
		t.Error("Table() with empty dataset should return error")
	}
}
