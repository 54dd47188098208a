// dotstat loads a land mask, generates the dot field without opening a
// window and prints what it produced.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/dotglobe/internal/config"
	"github.com/Faultbox/dotglobe/internal/globe"
	"github.com/Faultbox/dotglobe/internal/globe/dotfield"
	"github.com/Faultbox/dotglobe/internal/globe/landmask"
	"github.com/Faultbox/dotglobe/internal/globe/material"
	"github.com/Faultbox/dotglobe/internal/logger"
)

var (
	flagFormat = flag.String("format", "text", "Output format: text or yaml")
	flagRings  = flag.Bool("rings", false, "Include per-ring counts")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the report
	logger.Console = zapcore.Lock(os.Stderr)
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, *flagFormat, *flagRings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, format string, rings bool) error {
	var write func(Report) error
	switch format {
	case "text":
		write = func(r Report) error { return r.writeText(os.Stdout) }
	case "yaml":
		write = func(r Report) error { return r.writeYAML(os.Stdout) }
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}

	mask, err := landmask.LoadFile(cfg.Mask.Path, globe.SamplerFor(cfg))
	if err != nil {
		return err
	}

	dcfg := globe.DotConfig(cfg)
	gen := dotfield.NewGenerator(dcfg, material.NewFactory(), globe.NewRand(cfg.Globe.Seed))
	field := gen.Generate(landmask.NewIndex(mask, cfg.Globe.VisibilityTolerance))

	return write(buildReport(cfg.Mask.Path, mask, field, dcfg, cfg.Globe.VisibilityTolerance, rings))
}
