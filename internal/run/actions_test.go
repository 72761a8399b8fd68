package run

import (
	"testing"

	"github.com/mkarls/fetchtab/models"
)

func validOptions() Options {
	return Options{
		Source:      SourceWeb,
		Destination: "csv",
		URL:         "https://example.com",
		Defaults:    models.NewDefaults(),
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{
			name:   "web to csv",
			mutate: func(o *Options) {},
		},
		{
			name:   "api to json",
			mutate: func(o *Options) { o.Source = SourceAPI; o.Destination = "json" },
		},
		{
			name: "db destination with table and db",
			mutate: func(o *Options) {
				o.Destination = "db"
				o.Defaults.DBPath = "store.db"
				o.Defaults.Table = "items"
			},
		},
		{
			name:    "invalid source",
			mutate:  func(o *Options) { o.Source = "ftp" },
			wantErr: true,
		},
		{
			name:    "invalid destination",
			mutate:  func(o *Options) { o.Destination = "xml" },
			wantErr: true,
		},
		{
			name: "db destination missing table",
			mutate: func(o *Options) {
				o.Destination = "db"
				o.Defaults.DBPath = "store.db"
			},
			wantErr: true,
		},
		{
			name: "db destination missing db path",
			mutate: func(o *Options) {
				o.Destination = "db"
				o.Defaults.Table = "items"
			},
			wantErr: true,
		},
		{
			name: "db destination with bad write mode",
			mutate: func(o *Options) {
				o.Destination = "db"
				o.Defaults.DBPath = "store.db"
				o.Defaults.Table = "items"
				o.Defaults.WriteMode = "upsert"
			},
			wantErr: true,
		},
		{
			name:    "malformed URL",
			mutate:  func(o *Options) { o.URL = "not a url" },
			wantErr: true,
		},
		{
			name:    "non-http scheme",
			mutate:  func(o *Options) { o.URL = "ftp://example.com" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)
			err := Validate(opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
