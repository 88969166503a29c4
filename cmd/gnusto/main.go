// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package main implements the gnusto CLI: a text-adventure engine in
// the Infocom/Zork lineage, driven from a JSON blueprint.
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/mdhenderson/gnusto/internal/config"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
	logger *slog.Logger

	argsRoot struct {
		store     string
		blueprint string
		debug     bool
		quiet     bool
		logLevel  string
		logSource bool
	}
)

func main() {
	log.SetFlags(log.Lshortfile | log.Ltime)
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	cmdRoot := &cobra.Command{
		Use:           "gnusto",
		Short:         "gnusto: a text-adventure engine",
		Long:          `Run and manage text-adventure games built on the gnusto engine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if argsRoot.debug && argsRoot.quiet {
				return fmt.Errorf("--debug and --quiet are mutually exclusive")
			}
			var lvl slog.Level
			switch {
			case argsRoot.debug:
				lvl = slog.LevelDebug
			case argsRoot.quiet:
				lvl = slog.LevelError
			default:
				switch strings.ToLower(argsRoot.logLevel) {
				case "debug":
					lvl = slog.LevelDebug
				case "info":
					lvl = slog.LevelInfo
				case "warn", "warning":
					lvl = slog.LevelWarn
				case "error", "":
					lvl = slog.LevelError
				default:
					return fmt.Errorf("log-level: unknown value %q", argsRoot.logLevel)
				}
			}
			handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     lvl,
				AddSource: argsRoot.logSource || lvl == slog.LevelDebug,
			})
			logger = slog.New(handler)
			slog.SetDefault(logger)
			return nil
		},
	}
	cmdRoot.PersistentFlags().StringVar(&argsRoot.store, "store", "gnusto.db", "path to the save-game database")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.blueprint, "blueprint", "", "path to a blueprint JSON file (defaults to the bundled demo game)")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.debug, "debug", false, "enable debug logging (same as --log-level=debug)")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.quiet, "quiet", false, "only log errors (same as --log-level=error)")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.logLevel, "log-level", "error", "logging level (debug|info|warn|error)")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.logSource, "log-source", false, "add file and line numbers to log messages")

	cmdRoot.AddCommand(cmdVersion())
	cmdRoot.AddCommand(cmdPlay())
	cmdRoot.AddCommand(cmdDb())

	if err := cmdRoot.Execute(); err != nil {
		log.Print(err)
		var cerr *configError
		if errors.As(err, &cerr) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

// configError marks a loadConfig failure so main can give it spec
// section 6.3's exit code 1 instead of the generic internal-error 2.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// loadConfig merges the root --store/--blueprint flags onto the
// on-disk config, if any (spec section 6.3's parse-time config errors
// exit 1).
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load("gnusto.json", argsRoot.debug)
	if err != nil {
		return nil, &configError{err: err}
	}
	if argsRoot.store != "" {
		cfg.SaveDB = argsRoot.store
	}
	if argsRoot.blueprint != "" {
		cfg.BlueprintPath = argsRoot.blueprint
	}
	return cfg, nil
}
