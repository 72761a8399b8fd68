// Package readable implements the article-extraction command.
package readable

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mkarls/fetchtab/internal/common"
	"github.com/mkarls/fetchtab/pkg/article"
	"github.com/mkarls/fetchtab/pkg/fetch"
)

// Action fetches a page, distills the main article content, detects its
// language, and writes the resulting single-record dataset to any sink.
func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	if c.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one URL")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  fetchtab readable --dest json https://example.com/post`)
		os.Exit(2)
	}

	rawURL := common.SanitizeURL(c.Args().Get(0))
	dest := c.String("dest")

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
	if err := common.ValidateURL(rawURL); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	client := fetch.NewClient()
	body, err := client.Body(rawURL)
	if err != nil {
		logger.Error("fetch failed", "url", rawURL, "error", err)
		os.Exit(1)
	}

	ds, err := article.NewExtractor().Extract(rawURL, string(body))
	if err != nil {
		logger.Error("extraction failed", "url", rawURL, "error", err)
		os.Exit(1)
	}
	logger.Info("article extracted", "url", rawURL)

	target, err := common.WriteDataset(ds, dest, defaults)
	if err != nil {
		logger.Error("write failed", "destination", dest, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Data has been saved to %s\n", target)
	return nil
}
