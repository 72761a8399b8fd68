package fetch

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mkarls/fetchtab/models"
)

// Webpage fetches a page and extracts the trimmed text of every h1 element in
// document order. The result is a single record {"h1": [strings...]}; a page
// without headings yields an empty slice, not an error.
func (c *Client) Webpage(url string) (models.Dataset, error) {
	body, err := c.get(url)
	if err != nil {
		return models.Dataset{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	headings := []string{}
	doc.Find("h1").Each(func(i int, s *goquery.Selection) {
		headings = append(headings, strings.TrimSpace(s.Text()))
	})

	return models.FromRecord(models.Record{"h1": headings}), nil
}
