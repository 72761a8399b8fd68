package fetch

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func jsonServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestAPI(t *testing.T) {
	srv := jsonServer(t, `{"items": [{"name": "Item 1", "value": 10}, {"name": "Item 2", "value": 20}]}`)
	defer srv.Close()

	ds, err := NewClient().API(srv.URL)
	if err != nil {
		t.Fatalf("API() error = %v", err)
	}

	records := ds.Records()
	if len(records) != 2 {
		t.Fatalf("record count = %d, want 2", len(records))
	}

	if records[0]["name"] != "Item 1" {
		t.Errorf("records[0].name = %v, want %q", records[0]["name"], "Item 1")
	}
	if records[0]["value"] != float64(10) {
		t.Errorf("records[0].value = %v, want 10", records[0]["value"])
	}
	if records[1]["name"] != "Item 2" {
		t.Errorf("records[1].name = %v, want %q", records[1]["name"], "Item 2")
	}

	// Projection keeps exactly the two fields
	if len(records[0]) != 2 {
		t.Errorf("record has %d fields, want 2", len(records[0]))
	}
}

func TestAPI_ExtraFieldsDropped(t *testing.T) {
	srv := jsonServer(t, `{"items": [{"name": "Item 1", "value": 10, "color": "red"}]}`)
	defer srv.Close()

	ds, err := NewClient().API(srv.URL)
	if err != nil {
		t.Fatalf("API() error = %v", err)
	}

	rec := ds.Records()[0]
	if _, ok := rec["color"]; ok {
		t.Error("projection should drop fields other than name and value")
	}
}

func TestAPI_MissingField(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"items": [{"value": 10}]}`},
		{"missing value", `{"items": [{"name": "Item 1"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jsonServer(t, tt.body)
			defer srv.Close()

			_, err := NewClient().API(srv.URL)
			if err == nil {
				t.Fatal("API() with missing field should return error")
			}
			if !strings.Contains(err.Error(), "missing") {
				t.Errorf("error = %q, want it to mention the missing field", err)
			}
		})
	}
}

func TestAPI_MalformedJSON(t *testing.T) {
	srv := jsonServer(t, `{"items": [`)
	defer srv.Close()

	_, err := NewClient().API(srv.URL)
	if err == nil {
		t.Fatal("API() with malformed JSON should return error")
	}
	if !strings.Contains(err.Error(), "JSON decode error") {
		t.Errorf("error = %q, want it to contain %q", err, "JSON decode error")
	}
}

func TestAPI_NoItems(t *testing.T) {
	srv := jsonServer(t, `{"other": true}`)
	defer srv.Close()

	ds, err := NewClient().API(srv.URL)
	if err != nil {
		t.Fatalf("API() error = %v", err)
	}
	if ds.Len() != 0 {
		t.Errorf("record count = %d, want 0", ds.Len())
	}
}
