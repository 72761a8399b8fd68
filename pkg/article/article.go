// Package article extracts the main readable content of a page and tags it
// with the detected language.
package article

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/mkarls/fetchtab/models"
)

// Languages considered during detection. A closed set keeps the detector's
// model load reasonable.
var detectorLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Russian,
	lingua.Japanese,
	lingua.Chinese,
}

type Extractor struct {
	detector lingua.LanguageDetector
}

func NewExtractor() *Extractor {
	return &Extractor{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(detectorLanguages...).
			Build(),
	}
}

// Extract distills raw HTML into a single record: title, byline, site name,
// excerpt, text, word count, and detected language with confidence.
func (e *Extractor) Extract(rawURL, html string) (models.Dataset, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to parse URL: %w", err)
	}

	parser := readability.NewParser()
	art, err := parser.Parse(strings.NewReader(html), pageURL)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to extract article: %w", err)
	}

	text := strings.TrimSpace(art.TextContent)
	rec := models.Record{
		"url":        rawURL,
		"title":      strings.TrimSpace(art.Title),
		"byline":     strings.TrimSpace(art.Byline),
		"site_name":  strings.TrimSpace(art.SiteName),
		"excerpt":    strings.TrimSpace(art.Excerpt),
		"text":       text,
		"word_count": int64(len(strings.Fields(text))),
	}

	if lang, exists := e.detector.DetectLanguageOf(text); exists {
		rec["language"] = strings.ToLower(lang.IsoCode639_1().String())
		rec["language_confidence"] = e.detector.ComputeLanguageConfidence(text, lang)
	} else {
		rec["language"] = ""
		rec["language_confidence"] = 0.0
	}

	return models.FromRecord(rec), nil
}
