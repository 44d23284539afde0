package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// LoadColumnsFromFile loads a header mapping from YAML. Fields left out of
// the file keep their default header names.
func LoadColumnsFromFile(path string) (*model.ColumnMapping, error) {
	if path == "" {
		return nil, goerr.New("column mapping file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "column mapping file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read column mapping file",
			goerr.V("path", path))
	}

	var columns model.ColumnMapping
	if err := yaml.Unmarshal(data, &columns); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML column mapping",
			goerr.V("path", path))
	}
	columns.Merge(model.DefaultColumnMapping())

	if err := columns.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid column mapping",
			goerr.V("path", path))
	}

	return &columns, nil
}
