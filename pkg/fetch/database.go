package fetch

import (
	"fmt"

	"github.com/mkarls/fetchtab/models"
	"github.com/mkarls/fetchtab/pkg/db"
)

// Database opens the SQLite store at dbPath, runs the caller-supplied query
// verbatim, and materializes every result row. The connection is closed on
// all paths.
func Database(dbPath, query string) (models.Dataset, error) {
	store, err := db.Open(dbPath)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	records, err := store.QueryRecords(query)
	if err != nil {
		return models.Dataset{}, err
	}

	return models.FromRecords(records), nil
}
