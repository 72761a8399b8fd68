package fetch

import (
	"encoding/json"
	"fmt"

	"github.com/mkarls/fetchtab/models"
)

type apiPayload struct {
	Items []map[string]any `json:"items"`
}

// API fetches a JSON endpoint whose body carries {"items": [...]} and
// projects each item to exactly the "name" and "value" fields. A missing
// field is an error rather than a crash; there is no partial projection.
func (c *Client) API(endpoint string) (models.Dataset, error) {
	body, err := c.get(endpoint)
	if err != nil {
		return models.Dataset{}, err
	}

	var payload apiPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.Dataset{}, fmt.Errorf("JSON decode error: %w", err)
	}

	records := make(models.RecordSet, 0, len(payload.Items))
	for i, item := range payload.Items {
		name, ok := item["name"]
		if !ok {
			return models.Dataset{}, fmt.Errorf("item %d is missing the %q field", i, "name")
		}
		value, ok := item["value"]
		if !ok {
			return models.Dataset{}, fmt.Errorf("item %d is missing the %q field", i, "value")
		}
		records = append(records, models.Record{"name": name, "value": value})
	}

	return models.FromRecords(records), nil
}
