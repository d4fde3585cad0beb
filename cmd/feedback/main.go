package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/idilsaglam/feedback/internal/cli"
	"github.com/idilsaglam/feedback/internal/config"
	"github.com/idilsaglam/feedback/internal/logging"
	"github.com/idilsaglam/feedback/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}

	// Root flags (apply to every subcommand) override the config file.
	backend := flag.String("store", cfg.Store.Backend, "storage backend: json, sqlite or memory")
	path := flag.String("path", cfg.Store.Path, "data directory (json) or database file (sqlite)")
	theme := flag.String("theme", cfg.UI.Theme, "color theme: classic, neon or mono")
	color := flag.String("color", "auto", "color output: auto, always or never")
	flag.Parse()

	cfg.Store.Backend, cfg.Store.Path, cfg.UI.Theme = *backend, *path, *theme
	if err := cfg.Validate(); err != nil {
		ui.Fail("config: " + err.Error())
		return 2
	}

	closer, err := logging.Init(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closer.Close()

	ui.SetTheme(cfg.UI.Theme)
	switch *color {
	case "always":
		ui.SetColorForcing(true, false)
	case "never":
		ui.SetColorForcing(false, true)
	}
	log.Debug().Str("backend", cfg.Store.Backend).Str("path", cfg.Store.Path).Msg("starting")

	args := flag.Args()
	if len(args) == 0 {
		if !ui.IsTerminal() {
			cli.PrintHelp()
			return 2
		}
		args = []string{"ui"}
	}

	code := cli.Run(args, cli.Options{Config: cfg})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}
