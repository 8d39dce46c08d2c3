//go:build js && wasm

// Browser entry point. The app renders into the page's dirscan canvas;
// persistence and staleness watching stay disabled because the browser
// has no filesystem to scan or store into.
package main

import (
	"dirscan/internal/app"
	"dirscan/internal/config"
	"dirscan/internal/driver"
	"dirscan/internal/host"
	"dirscan/internal/logging"
	"dirscan/internal/theme"
)

func main() {
	cfg := config.DefaultConfig()

	if l, err := logging.New(&logging.Config{
		Level:     logging.LevelInfo,
		Format:    logging.FormatText,
		Output:    "stdout",
		Component: "dirscan",
	}); err == nil {
		logging.SetDefault(l)
	}
	log := logging.Default().WithComponent("main")

	adapter := host.New(host.Options{
		Title:         cfg.Window.Title,
		QueueCapacity: cfg.Events.QueueCapacity,
	})

	a := app.New(app.Options{
		Config:     cfg,
		Theme:      theme.New(cfg.Theme.Mode),
		Invalidate: adapter.Invalidate,
	})
	d := driver.New(adapter, a)

	if err := d.Run(); err != nil {
		log.Error("frame loop failed", "err", err)
	}
	a.Close()
}
