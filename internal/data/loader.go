package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type datasetFile struct {
	Rows []Row `yaml:"rows"`
}

// LoadFile reads a dataset from a YAML file. The file holds either a
// top-level `rows:` list or a bare list of rows.
func LoadFile(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var file datasetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		var bare []Row
		if bareErr := yaml.Unmarshal(raw, &bare); bareErr != nil {
			return nil, fmt.Errorf("parse dataset %s: %w", path, err)
		}
		file.Rows = bare
	}

	for i, row := range file.Rows {
		if row.Title == "" {
			return nil, fmt.Errorf("dataset %s: row %d missing title", path, i)
		}
	}
	return New(file.Rows), nil
}
