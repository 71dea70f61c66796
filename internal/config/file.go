package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// File holds interpreter defaults read from a TOML configuration file.
// Explicitly passed command line flags take precedence over file settings.
type File struct {
	Cells      int  `toml:"cells"`
	Extensible bool `toml:"extensible"`
}

// LoadFile parses the TOML configuration file at the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &f, nil
}
