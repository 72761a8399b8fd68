package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mkarls/fetchtab/internal/readable"
	"github.com/mkarls/fetchtab/internal/run"
	"github.com/mkarls/fetchtab/internal/transfer"
)

// sinkFlags are shared by every command that writes a dataset.
func sinkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "optional YAML file with sink defaults",
		},
		&cli.StringFlag{
			Name:  "csv-out",
			Usage: "output path for the csv destination (default output.csv)",
		},
		&cli.StringFlag{
			Name:  "json-out",
			Usage: "output path for the json destination (default output.json)",
		},
		&cli.StringFlag{
			Name:  "table",
			Usage: "table name for the db destination",
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "db collision policy: replace, append or fail (default replace)",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "log errors only",
		},
	}
}

func main() {
	app := &cli.App{
		Name:      "fetchtab",
		Usage:     "fetch data from a webpage or API and persist it as CSV, JSON or a SQLite table",
		ArgsUsage: "<source> <destination> <url>",
		Flags: append(sinkFlags(),
			&cli.StringFlag{
				Name:  "db",
				Usage: "SQLite path for the db destination",
			},
		),
		Action: run.Action,
		Commands: []*cli.Command{
			{
				Name:  "convert",
				Usage: "read a local CSV or JSON file and write it to any sink",
				Flags: append(sinkFlags(),
					&cli.StringFlag{Name: "in", Usage: "input file path", Required: true},
					&cli.StringFlag{Name: "kind", Usage: "input format: csv or json", Required: true},
					&cli.StringFlag{Name: "dest", Usage: "destination: csv, json or db", Required: true},
					&cli.StringFlag{Name: "db", Usage: "SQLite path for the db destination"},
				),
				Action: transfer.ConvertAction,
			},
			{
				Name:  "export",
				Usage: "run a query against a SQLite store and write the rows to any sink",
				Flags: append(sinkFlags(),
					&cli.StringFlag{Name: "db", Usage: "source SQLite path", Required: true},
					&cli.StringFlag{Name: "query", Usage: "SQL to execute", Required: true},
					&cli.StringFlag{Name: "dest", Usage: "destination: csv, json or db", Required: true},
					&cli.StringFlag{Name: "out-db", Usage: "target SQLite path for the db destination"},
				),
				Action: transfer.ExportAction,
			},
			{
				Name:      "readable",
				Usage:     "extract the main article of a page with language detection",
				ArgsUsage: "<url>",
				Flags: append(sinkFlags(),
					&cli.StringFlag{Name: "dest", Usage: "destination: csv, json or db", Value: "json"},
					&cli.StringFlag{Name: "db", Usage: "SQLite path for the db destination"},
				),
				Action: readable.Action,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
