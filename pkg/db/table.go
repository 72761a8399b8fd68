package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mkarls/fetchtab/pkg/frame"
)

// WriteMode governs what happens when the target table already exists.
type WriteMode string

const (
	ModeReplace WriteMode = "replace"
	ModeAppend  WriteMode = "append"
	ModeFail    WriteMode = "fail"
)

// ParseWriteMode validates a mode string from a flag or config file.
func ParseWriteMode(s string) (WriteMode, error) {
	switch WriteMode(s) {
	case ModeReplace, ModeAppend, ModeFail:
		return WriteMode(s), nil
	default:
		return "", fmt.Errorf("invalid write mode %q: choose %q, %q or %q", s, ModeReplace, ModeAppend, ModeFail)
	}
}

// ErrTableExists is returned in ModeFail when the target table is present.
var ErrTableExists = errors.New("table already exists")

// SaveTable writes the frame under the given table name. ModeReplace drops
// and recreates the table, ModeAppend inserts into an existing compatible
// table (creating it if absent), ModeFail aborts when the table exists.
// The insert runs in a single transaction.
func (db *DB) SaveTable(f *frame.Frame, table string, mode WriteMode) error {
	exists, err := db.tableExists(table)
	if err != nil {
		return err
	}

	switch mode {
	case ModeFail:
		if exists {
			return fmt.Errorf("%w: %s", ErrTableExists, table)
		}
	case ModeReplace:
		if exists {
			if _, err := db.Exec("DROP TABLE " + quoteIdent(table)); err != nil {
				return fmt.Errorf("failed to drop table: %w", err)
			}
			exists = false
		}
	case ModeAppend:
		if exists {
			if err := db.checkColumns(table, f.Columns); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("invalid write mode %q", mode)
	}

	if !exists {
		if err := db.createTable(table, f); err != nil {
			return err
		}
	}

	return db.insertRows(table, f)
}

func (db *DB) tableExists(table string) (bool, error) {
	var name string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check table: %w", err)
	}
	return true, nil
}

// checkColumns verifies that an existing table carries exactly the frame's
// column set before appending.
func (db *DB) checkColumns(table string, columns []string) error {
	rows, err := db.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return fmt.Errorf("failed to read table info: %w", err)
	}
	defer rows.Close()

	existing := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan table info: %w", err)
		}
		existing[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read table info: %w", err)
	}

	if len(existing) != len(columns) {
		return fmt.Errorf("table %s has %d columns, data has %d", table, len(existing), len(columns))
	}
	for _, col := range columns {
		if !existing[col] {
			return fmt.Errorf("table %s has no column %q", table, col)
		}
	}
	return nil
}

func (db *DB) createTable(table string, f *frame.Frame) error {
	defs := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		defs[i] = quoteIdent(col) + " " + columnType(f, i)
	}

	stmt := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(defs, ", "))
	if _, err := db.Exec(stmt); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

func (db *DB) insertRows(table string, f *frame.Frame) error {
	cols := make([]string, len(f.Columns))
	marks := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		cols[i] = quoteIdent(col)
		marks[i] = "?"
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(cols, ", "), strings.Join(marks, ", "))

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	prepared, err := tx.Prepare(stmt)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer prepared.Close()

	for _, row := range f.Rows {
		args := make([]any, len(row))
		for i, v := range row {
			args[i] = bindValue(v)
		}
		if _, err := prepared.Exec(args...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// columnType infers a SQLite type from the first non-nil value in a column.
func columnType(f *frame.Frame, idx int) string {
	for _, row := range f.Rows {
		switch row[idx].(type) {
		case nil:
			continue
		case int, int64, bool:
			return "INTEGER"
		case float64:
			return "REAL"
		default:
			return "TEXT"
		}
	}
	return "TEXT"
}

// bindValue converts pipeline scalars into driver-bindable values. Composite
// values (e.g. the h1 list of a scrape result) are stored as their text form.
func bindValue(v any) any {
	switch v.(type) {
	case nil, string, bool, int, int64, float64, []byte:
		return v
	default:
		return frame.FormatCell(v)
	}
}

// quoteIdent quotes a table or column identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
