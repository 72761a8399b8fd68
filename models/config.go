// Package models defines data structures for configuration and datasets.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults holds sink defaults that would otherwise be embedded literals.
// All values can come from CLI flags or an optional YAML file.
type Defaults struct {
	CSVOut    string `yaml:"csv_out"`
	JSONOut   string `yaml:"json_out"`
	DBPath    string `yaml:"db"`
	Table     string `yaml:"table"`
	WriteMode string `yaml:"write_mode"`
}

// NewDefaults returns the built-in sink defaults.
func NewDefaults() Defaults {
	return Defaults{
		CSVOut:    "output.csv",
		JSONOut:   "output.json",
		WriteMode: "replace",
	}
}

// LoadDefaults reads a YAML defaults file and overlays it on the built-ins.
// Empty fields in the file keep their built-in values.
func LoadDefaults(path string) (Defaults, error) {
	d := NewDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("failed to read defaults file: %w", err)
	}

	var file Defaults
	if err := yaml.Unmarshal(data, &file); err != nil {
		return d, fmt.Errorf("failed to parse defaults file: %w", err)
	}

	if file.CSVOut != "" {
		d.CSVOut = file.CSVOut
	}
	if file.JSONOut != "" {
		d.JSONOut = file.JSONOut
	}
	if file.DBPath != "" {
		d.DBPath = file.DBPath
	}
	if file.Table != "" {
		d.Table = file.Table
	}
	if file.WriteMode != "" {
		d.WriteMode = file.WriteMode
	}

	return d, nil
}
