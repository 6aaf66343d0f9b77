// Package config loads roadpath settings from a TOML file.
//
// Every field has a default (see Default), so a config file only needs the
// keys it changes. Unknown keys are rejected to catch typos early.
//
//	[data]
//	nodes  = "omsk/nodes.csv"
//	edges  = "omsk/edges.csv"
//	metric = "haversine"
//
//	[route]
//	start = 178263732
//	end   = 11499354530
//
//	[canvas]
//	width  = 1200
//	height = 800
//
//	[server]
//	addr = ":8080"
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/roadpath/geo"
)

// ErrInvalidConfig indicates a config value that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full set of settings.
type Config struct {
	Data   Data   `toml:"data"`
	Route  Route  `toml:"route"`
	Canvas Canvas `toml:"canvas"`
	Server Server `toml:"server"`
}

// Data locates the input CSVs and chooses how edge weights are computed.
type Data struct {
	Nodes  string `toml:"nodes"`
	Edges  string `toml:"edges"`
	Metric string `toml:"metric"`
}

// Route holds the default endpoints. A nil field is not set; node 0 is a
// valid endpoint.
type Route struct {
	Start *int64 `toml:"start"`
	End   *int64 `toml:"end"`
}

// Canvas is the display size used for projection and rendering.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Server configures the HTTP query surface.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Data: Data{
			Nodes:  "nodes.csv",
			Edges:  "edges.csv",
			Metric: string(geo.MetricHaversine),
		},
		Canvas: Canvas{Width: 1200, Height: 800},
		Server: Server{Addr: ":8080"},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.Data.Nodes == "" {
		return fmt.Errorf("%w: data.nodes is empty", ErrInvalidConfig)
	}
	if c.Data.Edges == "" {
		return fmt.Errorf("%w: data.edges is empty", ErrInvalidConfig)
	}
	if _, err := geo.ParseMetric(c.Data.Metric); err != nil {
		return fmt.Errorf("%w: data.metric: %v", ErrInvalidConfig, err)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	}

	return nil
}

// Metric returns the parsed data.metric value.
func (c Config) Metric() (geo.Metric, error) {
	return geo.ParseMetric(c.Data.Metric)
}
