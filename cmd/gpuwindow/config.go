package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gpuwindow"
)

// config is the optional YAML file given with -config.
type config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// Image is drawn into the window; empty draws a test pattern.
	Image string `yaml:"image"`
	// Flags are key=value settings, overridden by command-line tokens.
	Flags map[string]string `yaml:"flags"`
}

func defaultConfig() config {
	return config{Width: 800, Height: 600, Title: "gpuwindow"}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults. Unknown fields are rejected.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("config %s: invalid window size %dx%d", path, cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// mergeFlags parses the command-line tokens and applies them over the
// file's flags.
func (c config) mergeFlags(tokens []string) (gpuwindow.Flags, error) {
	cli, err := gpuwindow.ParseFlags(tokens)
	if err != nil {
		return gpuwindow.Flags{}, err
	}
	var file gpuwindow.Flags
	for k, v := range c.Flags {
		file.Set(k, v)
	}
	return file.Merge(cli), nil
}
