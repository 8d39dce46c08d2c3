//go:build !js

// Command dirscan shows where disk space goes: it scans a directory
// tree and displays the largest subdirectories as they are discovered.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	gioapp "gioui.org/app"

	"dirscan/internal/app"
	"dirscan/internal/config"
	"dirscan/internal/driver"
	"dirscan/internal/host"
	"dirscan/internal/logging"
	"dirscan/internal/store"
	"dirscan/internal/theme"
	"dirscan/internal/watch"
)

func main() {
	configPath := flag.String("config", "", "path to the config file (default: the platform config dir)")
	scanPath := flag.String("path", "", "directory to scan (overrides the config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	if *scanPath != "" {
		cfg.Scan.DefaultPath = *scanPath
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		fatal(err)
	}
	if err := setupLogging(cfg); err != nil {
		fatal(err)
	}
	log := logging.Default().WithComponent("main")

	adapter := host.New(host.Options{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		QueueCapacity: cfg.Events.QueueCapacity,
	})

	opts := app.Options{
		Config:     cfg,
		Theme:      theme.New(cfg.Theme.Mode),
		Invalidate: adapter.Invalidate,
	}
	if cfg.Store.Enabled {
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			log.Warn("opening report store failed, continuing without persistence", "err", err)
		} else {
			opts.Store = st
		}
	}
	if cfg.Watch.Enabled {
		w, err := watch.New(time.Duration(cfg.Watch.DebounceMs) * time.Millisecond)
		if err != nil {
			log.Warn("creating staleness watcher failed, continuing without it", "err", err)
		} else {
			opts.Watcher = w
		}
	}

	a := app.New(opts)
	d := driver.New(adapter, a)

	go func() {
		err := d.Run()
		a.Close()
		if err != nil {
			log.Error("frame loop failed", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	gioapp.Main()
}

func setupLogging(cfg *config.Config) error {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	format := logging.FormatText
	if cfg.Logging.Format == "json" {
		format = logging.FormatJSON
	}

	l, err := logging.New(&logging.Config{
		Level:     level,
		Format:    format,
		Output:    cfg.Logging.Output,
		FilePath:  cfg.Logging.FilePath,
		Component: "dirscan",
	})
	if err != nil {
		return err
	}
	logging.SetDefault(l)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "dirscan: %v\n", err)
	os.Exit(1)
}
