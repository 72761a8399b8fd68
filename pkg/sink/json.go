package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mkarls/fetchtab/models"
)

// JSON writes the normalized record set with 4-space indentation. Non-ASCII
// characters are preserved literally and map keys marshal in sorted order, so
// repeated writes of the same data are byte-identical.
func JSON(ds models.Dataset, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	records := ds.Records()
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
