package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config is the optional hf2gguf config file (~/.config/hf2gguf/config.yaml).
// Pointers distinguish "not set" from zero values.
type Config struct {
	Outtype      string `yaml:"outtype"`
	SplitMaxSize string `yaml:"split_max_size"`
	UseTempFile  *bool  `yaml:"use_temp_file"`
	NoLazy       *bool  `yaml:"no_lazy"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hf2gguf", "config.yaml")
}

// loadConfig reads path. A missing or malformed file yields a zero Config
// unless the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		if !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyConfig copies config file values into o for flags not set on the
// command line.
func applyConfig(c *cli.Command, cfg Config, o *cliOptions) {
	if cfg.Outtype != "" && !c.IsSet(flagOuttype) {
		o.outtype = cfg.Outtype
	}
	if cfg.SplitMaxSize != "" && !c.IsSet(flagSplitMaxSize) {
		o.splitMaxSize = cfg.SplitMaxSize
	}
	if cfg.UseTempFile != nil && !c.IsSet(flagUseTempFile) {
		o.useTempFile = *cfg.UseTempFile
	}
	if cfg.NoLazy != nil && !c.IsSet("no-lazy") {
		o.noLazy = *cfg.NoLazy
	}
	if cfg.LogLevel != "" && !c.IsSet(flagLogLevel) {
		o.logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet(flagLogFormat) {
		o.logFormat = cfg.LogFormat
	}
}
