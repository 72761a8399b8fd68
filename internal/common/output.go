package common

import (
	"fmt"

	"github.com/mkarls/fetchtab/models"
	"github.com/mkarls/fetchtab/pkg/db"
	"github.com/mkarls/fetchtab/pkg/sink"
)

// Destination names accepted by every command.
const (
	DestCSV  = "csv"
	DestJSON = "json"
	DestDB   = "db"
)

// ValidateDestination checks a destination and its required defaults before
// any fetch or write I/O happens. Violations are configuration errors.
func ValidateDestination(dest string, d models.Defaults) error {
	switch dest {
	case DestCSV, DestJSON:
		return nil
	case DestDB:
		if d.Table == "" || d.DBPath == "" {
			return fmt.Errorf("destination %q requires both --table and --db", DestDB)
		}
		if _, err := db.ParseWriteMode(d.WriteMode); err != nil {
			return err
		}
		return nil
	default:
		return fmt.Errorf("invalid destination %q: choose %q, %q or %q", dest, DestCSV, DestJSON, DestDB)
	}
}

// WriteDataset dispatches the dataset to the selected sink and returns a
// human-readable description of the target. ValidateDestination must have
// passed already.
func WriteDataset(ds models.Dataset, dest string, d models.Defaults) (string, error) {
	switch dest {
	case DestCSV:
		if err := sink.CSV(ds, d.CSVOut); err != nil {
			return "", err
		}
		return d.CSVOut, nil
	case DestJSON:
		if err := sink.JSON(ds, d.JSONOut); err != nil {
			return "", err
		}
		return d.JSONOut, nil
	case DestDB:
		mode, err := db.ParseWriteMode(d.WriteMode)
		if err != nil {
			return "", err
		}
		if err := sink.Table(ds, d.DBPath, d.Table, mode); err != nil {
			return "", err
		}
		return fmt.Sprintf("table %q in %s", d.Table, d.DBPath), nil
	default:
		return "", fmt.Errorf("invalid destination %q", dest)
	}
}

// ResolveDefaults overlays an optional YAML defaults file and flag values on
// the built-in defaults. Flag values win over the file.
func ResolveDefaults(configPath, csvOut, jsonOut, dbPath, table, mode string) (models.Defaults, error) {
	d := models.NewDefaults()
	if configPath != "" {
		loaded, err := models.LoadDefaults(configPath)
		if err != nil {
			return d, err
		}
		d = loaded
	}
	if csvOut != "" {
		d.CSVOut = csvOut
	}
	if jsonOut != "" {
		d.JSONOut = jsonOut
	}
	if dbPath != "" {
		d.DBPath = dbPath
	}
	if table != "" {
		d.Table = table
	}
	if mode != "" {
		d.WriteMode = mode
	}
	return d, nil
}
