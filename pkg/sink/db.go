package sink

import (
	"fmt"

	"github.com/mkarls/fetchtab/models"
	"github.com/mkarls/fetchtab/pkg/db"
	"github.com/mkarls/fetchtab/pkg/frame"
)

// Table coerces the dataset into a frame and writes it under the given table
// name in the SQLite store at dbPath. The mode decides what happens when the
// table already exists.
func Table(ds models.Dataset, dbPath, table string, mode db.WriteMode) error {
	f, err := frame.FromDataset(ds)
	if err != nil {
		return fmt.Errorf("data format is not supported for table conversion: %w", err)
	}

	store, err := db.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveTable(f, table, mode); err != nil {
		return fmt.Errorf("failed to save table %q: %w", table, err)
	}
	return nil
}
