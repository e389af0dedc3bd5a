// Package config loads the optional TOML defaults file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds pattern defaults that are applied ahead of any patterns
// given on the command line.
type Config struct {
	Ignore      []string `toml:"ignore"`
	ExcludePath []string `toml:"exclude-path"`
}

// Load parses the TOML file at path. Unknown keys are rejected so a
// typo in the file surfaces instead of silently doing nothing.
func Load(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return &cfg, nil
}
