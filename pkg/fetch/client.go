// Package fetch obtains raw data from one external source kind and normalizes
// it into a dataset. Every operation returns (models.Dataset, error); no
// operation panics or smuggles an error through the data value.
package fetch

import (
	"fmt"
	"io"
	"net/http"
)

// Client wraps the shared HTTP client used by the web and API fetchers.
// Timeouts are whatever the default transport provides.
type Client struct {
	client *http.Client
}

func NewClient() *Client {
	return &Client{
		client: &http.Client{},
	}
}

// Body fetches a URL and returns the raw response body. Used by callers that
// run their own extraction over the page.
func (c *Client) Body(url string) ([]byte, error) {
	return c.get(url)
}

// get issues a GET and returns the response body. Transport failures and
// non-2xx statuses both surface as "Request error occurred" so callers can
// tell a fetch problem from a shape problem.
func (c *Client) get(url string) ([]byte, error) {
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("Request error occurred: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Request error occurred: status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Request error occurred: %w", err)
	}
	return body, nil
}
