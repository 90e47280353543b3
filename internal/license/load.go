package license

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed data/spdx_license_data.json
var embeddedData []byte

type dataFile struct {
	Metadata Metadata         `json:"metadata"`
	Licenses map[string]Entry `json:"licenses"`
}

// Load reads a license dataset from path. When the file does not exist the
// embedded dataset is returned instead so first runs work without a prior
// update.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return LoadEmbedded()
	}
	if err != nil {
		return nil, fmt.Errorf("read license data %s: %w", path, err)
	}
	return parse(data, path)
}

// LoadEmbedded returns the registry built from the dataset compiled into the
// binary.
func LoadEmbedded() (*Registry, error) {
	return parse(embeddedData, "embedded dataset")
}

func parse(data []byte, source string) (*Registry, error) {
	var df dataFile
	if err := json.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse license data %s: %w", source, err)
	}
	if len(df.Licenses) == 0 {
		return nil, fmt.Errorf("license data %s contains no licenses", source)
	}
	return NewRegistry(df.Metadata, df.Licenses), nil
}
