package appconf

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the subset of Config that may be set from a TOML file.
// Pointer fields distinguish "absent" from zero values so the file only
// overrides what it actually sets.
type fileConfig struct {
	Port          *int     `toml:"port"`
	Env           *string  `toml:"env"`
	ApiKeys       []string `toml:"api_keys"`
	RateLimit     *int     `toml:"rate_limit"`
	DataDir       *string  `toml:"data_dir"`
	GeoJSONSource *string  `toml:"geojson_source"`
	Verbose       *bool    `toml:"verbose"`
}

// ApplyFile overlays settings from a TOML config file onto cfg. Flag values
// remain in effect for any key the file does not set.
func ApplyFile(cfg *Config, path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("loading config file %s: %w", path, err)
	}

	if fc.Port != nil {
		cfg.Port = *fc.Port
	}
	if fc.Env != nil {
		cfg.Env = EnvFlagToEnvironment(*fc.Env)
	}
	if len(fc.ApiKeys) > 0 {
		cfg.ApiKeys = fc.ApiKeys
	}
	if fc.RateLimit != nil {
		cfg.RateLimit = *fc.RateLimit
	}
	if fc.DataDir != nil {
		cfg.DataDir = *fc.DataDir
	}
	if fc.GeoJSONSource != nil {
		cfg.GeoJSONSource = *fc.GeoJSONSource
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}

	return nil
}
