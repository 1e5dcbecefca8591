// seehuhn.de/go/spark - sparkline images over HTTP
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the settings of the sparkline server.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the server configuration.  The zero value is not useful; use
// Default or Load.
type Config struct {
	// Listen is the TCP address of the HTTP server.
	Listen string `yaml:"listen"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxPoints is the largest number of data values accepted per image.
	MaxPoints int `yaml:"max_points"`

	// MaxWidth and MaxHeight bound the size of generated images.
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`

	// ErrorImage selects how unknown plot types and rendering failures
	// are reported.  If set, the server answers with the error image and
	// status 200; otherwise with status 400 and a short text message.
	ErrorImage bool `yaml:"error_image"`

	Log Log `yaml:"log"`
}

// Log configures the logger.
type Log struct {
	Level  string `yaml:"level"`  // logrus level name
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Listen:          "127.0.0.1:8080",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxPoints:       1000,
		MaxWidth:        4000,
		MaxHeight:       1000,
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML configuration file.  Settings missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading configuration")
	}
	return Parse(data)
}

// Parse decodes a YAML configuration on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "parsing configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return errors.New("listen address must not be empty")
	}
	if c.MaxPoints < 1 {
		return errors.Newf("max_points must be positive, got %d", c.MaxPoints)
	}
	if c.MaxWidth < 1 || c.MaxHeight < 1 {
		return errors.Newf("max_width and max_height must be positive, got %dx%d",
			c.MaxWidth, c.MaxHeight)
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 || c.ShutdownTimeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log level")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Newf("unknown log format %q", c.Log.Format)
	}
	return nil
}
