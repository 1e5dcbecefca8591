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

// Sparkd serves sparkline images over HTTP.
//
// Usage:
//
//	sparkd [--config=FILE] serve
//	sparkd render [-o FILE] QUERY
//
// The render command draws a single image offline, taking the same query
// string as the server, e.g. "d=10,20,80&type=smooth&last-m=true".
package main

import (
	"context"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/spark"
	"seehuhn.de/go/spark/internal/config"
	"seehuhn.de/go/spark/internal/server"
)

type Globals struct {
	Config    string `help:"YAML configuration file." type:"existingfile" short:"c"`
	LogLevel  string `help:"Log level, overrides the configuration file."`
	LogFormat string `help:"Log format (text or json), overrides the configuration file."`
}

type cli struct {
	Globals

	Serve  serveCmd  `cmd:"" help:"Run the HTTP server."`
	Render renderCmd `cmd:"" help:"Render a query string to a PNG file."`
}

// runContext is passed to the Run methods of the commands.
type runContext struct {
	cfg *config.Config
	log *logrus.Logger
}

type serveCmd struct {
	Listen string `help:"Listen address, overrides the configuration file."`
}

func (cmd *serveCmd) Run(rc *runContext) error {
	if cmd.Listen != "" {
		rc.cfg.Listen = cmd.Listen
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(rc.cfg, rc.log).Run(ctx)
}

type renderCmd struct {
	Output string `help:"Output file." short:"o" default:"sparkline.png"`
	Query  string `arg:"" help:"Query string with data and plot options."`
}

func (cmd *renderCmd) Run(rc *runContext) error {
	q, err := url.ParseQuery(cmd.Query)
	if err != nil {
		return errors.Wrap(err, "query")
	}
	series, err := server.ParseSeries(q.Get("d"))
	if err != nil {
		return err
	}
	opts, err := spark.ParseOptions(q)
	if err != nil {
		return err
	}
	if err := server.CheckRange(series, opts.Limits); err != nil {
		return err
	}

	data, err := spark.Render(series, opts, spark.DefaultColors)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cmd.Output, data, 0o644); err != nil {
		return errors.Wrap(err, "writing image")
	}

	w, h := spark.Size(len(series), opts)
	rc.log.WithFields(logrus.Fields{
		"file":   cmd.Output,
		"style":  opts.Style.String(),
		"width":  w,
		"height": h,
	}).Info("image written")
	return nil
}

// loadConfig reads the configuration file, if any, and applies the
// command line overrides.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if g.Config != "" {
		var err error
		cfg, err = config.Load(g.Config)
		if err != nil {
			return nil, err
		}
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg config.Log) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("sparkd"),
		kong.Description("Sparkline images over HTTP."),
		kong.UsageOnError(),
	)

	cfg, err := c.loadConfig()
	ctx.FatalIfErrorf(err)
	log, err := newLogger(cfg.Log)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&runContext{cfg: cfg, log: log})
	if err != nil {
		log.WithError(err).Error(ctx.Command() + " failed")
		os.Exit(1)
	}
}
