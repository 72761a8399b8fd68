// Package transfer implements the file and database source commands.
package transfer

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mkarls/fetchtab/internal/common"
	"github.com/mkarls/fetchtab/pkg/fetch"
)

// ConvertAction reads a local CSV or JSON file and writes it to any sink.
func ConvertAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	path := c.String("in")
	kind := c.String("kind")
	dest := c.String("dest")

	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: --in is required")
		os.Exit(2)
	}
	if !fetch.ValidKind(kind) {
		fmt.Fprintf(os.Stderr, "Error: invalid --kind %q: choose %q or %q\n", kind, fetch.KindCSV, fetch.KindJSON)
		os.Exit(2)
	}

	defaults, err := common.ResolveDefaults(
		c.String("config"),
		c.String("csv-out"), c.String("json-out"),
		c.String("db"), c.String("table"), c.String("mode"),
	)
	if err != nil {
		logger.Error("failed to load defaults", "error", err)
		os.Exit(2)
	}
	if err := common.ValidateDestination(dest, defaults); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ds, err := fetch.File(path, kind)
	if err != nil {
		logger.Error("fetch failed", "path", path, "kind", kind, "error", err)
		os.Exit(1)
	}
	logger.Info("file read", "path", path, "kind", kind, "rows", ds.Len())

	target, err := common.WriteDataset(ds, dest, defaults)
	if err != nil {
		logger.Error("write failed", "destination", dest, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Data has been saved to %s\n", target)
	return nil
}

// ExportAction runs a query against a SQLite store and writes the result to
// any sink.
func ExportAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	srcDB := c.String("db")
	query := c.String("query")
	dest := c.String("dest")

	if srcDB == "" || query == "" {
		fmt.Fprintln(os.Stderr, "Error: --db and --query are required")
		os.Exit(2)
	}

	defaults, err := common.ResolveDefaults(
		c.String("config"),
		c.String("csv-out"), c.String("json-out"),
		c.String("out-db"), c.String("table"), c.String("mode"),
	)
	if err != nil {
		logger.Error("failed to load defaults", "error", err)
		os.Exit(2)
	}
	if err := common.ValidateDestination(dest, defaults); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ds, err := fetch.Database(srcDB, query)
	if err != nil {
		logger.Error("query failed", "db", srcDB, "error", err)
		os.Exit(1)
	}
	logger.Info("query complete", "db", srcDB, "rows", ds.Len())

	target, err := common.WriteDataset(ds, dest, defaults)
	if err != nil {
		logger.Error("write failed", "destination", dest, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Data has been saved to %s\n", target)
	return nil
}
