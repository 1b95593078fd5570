// SPDX-License-Identifier: MIT

// daemon runs the seqconf configuration service: it loads the pipeline
// configuration document, watches it for changes and serves resolved
// configurations to pipeline components over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ManuGH/seqconf/internal/api"
	"github.com/ManuGH/seqconf/internal/config"
	seqlog "github.com/ManuGH/seqconf/internal/log"
)

var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "daemon: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var file string
	var listen string
	var showVersion bool

	flag.StringVar(&file, "f", "", "path to YAML configuration file")
	flag.StringVar(&listen, "listen", "", "listen address (default SEQCONF_LISTEN or :8642)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(Version)
		return nil
	}

	if listen == "" {
		listen = config.ParseString("SEQCONF_LISTEN", ":8642")
	}

	seqlog.Configure(seqlog.Config{})
	logger := seqlog.WithComponent("daemon")

	loader := config.NewLoader(file, Version)
	doc, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Info().
		Str(seqlog.FieldConfigPath, file).
		Str("version", Version).
		Int("profiles", len(config.ProfileNames(doc))).
		Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	holder := config.NewHolder(doc, loader, file)
	if err := holder.StartWatcher(ctx); err != nil {
		return fmt.Errorf("start config watcher: %w", err)
	}
	defer holder.Stop()

	srv := api.New(holder)
	if err := srv.ListenAndServe(ctx, listen); err != nil {
		return fmt.Errorf("api server: %w", err)
	}

	logger.Info().Msg("shutdown complete")
	return nil
}
