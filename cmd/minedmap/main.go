package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/OCharnyshevich/minedmap/internal/config"
	"github.com/OCharnyshevich/minedmap/internal/processor"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "JSON config file")
	flag.StringVar(&cfg.InputDir, "input", cfg.InputDir, "world save directory")
	flag.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "map data directory")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "regions decoded in parallel")
	flag.BoolVar(&cfg.StrictRegions, "strict", cfg.StrictRegions, "abort on the first region that fails to decode")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to a rotated file instead of stdout")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	results, err := processor.New(cfg, log).Run(ctx)
	if err != nil {
		log.Error("processing failed", "error", err)
		os.Exit(1)
	}

	var chunks, failed int
	for _, r := range results {
		chunks += len(r.Chunks)
		if r.Err != nil {
			failed++
		}
	}
	log.Info("done", "regions", len(results), "failed", failed, "chunks", chunks)
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var w io.Writer = os.Stdout
	if cfg.LogFile != "" {
		w = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
