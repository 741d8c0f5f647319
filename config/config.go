// Package config loads the optional .trimdefaults.json configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultFileName is looked up in the analyzed root when no -config flag is
// given.
const DefaultFileName = ".trimdefaults.json"

// Config tunes file discovery and the applicability gate.
type Config struct {
	// ExtraBuiltins are additional function names treated as
	// engine-provided, so calls to them are never rewritten.
	ExtraBuiltins []string `json:"extraBuiltins"`

	// IgnoreDirs are directory names skipped during discovery, on top of
	// node_modules, dot-directories and .gitignore entries.
	IgnoreDirs []string `json:"ignoreDirs"`

	// Extensions overrides the default set of rewritable file extensions
	// (.js, .jsx, .mjs, .cjs). Entries must include the leading dot.
	Extensions []string `json:"extensions"`
}

// Default returns the zero configuration.
func Default() *Config {
	return &Config{}
}

// Load reads a configuration file. A missing file is not an error when
// optional is true; any present file must parse.
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
