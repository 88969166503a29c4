// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mdhenderson/gnusto/cerrs"
	"github.com/mdhenderson/gnusto/internal/blueprint"
	"github.com/mdhenderson/gnusto/internal/engine"
	"github.com/mdhenderson/gnusto/internal/enginelog"
	"github.com/mdhenderson/gnusto/internal/ioh"
	"github.com/mdhenderson/gnusto/store/sqlite"
)

func cmdPlay() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "play a game interactively",
		Long:  `Run a game from a blueprint, reading commands from stdin and writing prose to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			bp := blueprint.Demo()
			if cfg.BlueprintPath != "" {
				bp, err = blueprint.Load(cfg.BlueprintPath)
				if err != nil {
					return err
				}
			}

			ioHandler := ioh.NewHandler()
			eng := bp.Build(ioHandler)
			eng.DebugParser = argsRoot.debug
			eng.Log = enginelog.New(argsRoot.debug)

			prompt := "> "
			if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				prompt = ""
			}

			eng.RunTurn("look")

			for {
				if prompt != "" {
					fmt.Print(prompt)
				}
				line, ok := ioHandler.ReadLine()
				if !ok {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}

				if handled, merr := runMetaCommand(eng, cfg.SaveDBPath(), line); merr != nil {
					fmt.Println(merr)
					continue
				} else if handled {
					continue
				}

				eng.RunTurn(line)
			}
		},
	}
}

// openOrCreateStore opens the save database at path, creating it
// first if it doesn't exist yet -- a fresh `gnusto play` session
// shouldn't need a separate `gnusto db create` first.
func openOrCreateStore(path string) (*sqlite.Store, error) {
	store, err := sqlite.Open(path, context.Background())
	if errors.Is(err, cerrs.ErrDatabaseNotFound) {
		if err := sqlite.Create(path, context.Background()); err != nil {
			return nil, err
		}
		return sqlite.Open(path, context.Background())
	}
	return store, err
}

// runMetaCommand intercepts SAVE/RESTORE/QUIT before they reach the
// engine: persistence isn't an engine concern (spec section 6.3), and
// quitting the process certainly isn't.
func runMetaCommand(eng *engine.Engine, storePath, line string) (handled bool, err error) {
	fields := strings.Fields(line)
	verb := strings.ToLower(fields[0])

	switch verb {
	case "quit", "exit":
		os.Exit(0)
		return true, nil

	case "save":
		if len(fields) < 2 {
			return true, fmt.Errorf("usage: save <slot>")
		}
		store, serr := openOrCreateStore(storePath)
		if serr != nil {
			return true, serr
		}
		defer func() { _ = store.Close() }()
		slot := fields[1]
		if serr := store.Save(slot, slot, eng.State); serr != nil {
			return true, serr
		}
		fmt.Printf("Saved as %q.\n", slot)
		return true, nil

	case "restore":
		if len(fields) < 2 {
			return true, fmt.Errorf("usage: restore <slot>")
		}
		store, serr := sqlite.Open(storePath, context.Background())
		if serr != nil {
			return true, serr
		}
		defer func() { _ = store.Close() }()
		state, serr := store.Restore(fields[1])
		if serr != nil {
			return true, serr
		}
		eng.Restore(state)
		fmt.Printf("Restored %q.\n", fields[1])
		return true, nil
	}
	return false, nil
}
