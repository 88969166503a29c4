// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdhenderson/gnusto/internal/blueprint"
	"github.com/mdhenderson/gnusto/internal/ioh"
	"github.com/mdhenderson/gnusto/store/sqlite"
)

// cmdDb groups the save-database maintenance commands (spec section
// 6.3's SAVE/RESTORE, exposed outside of an interactive `play`
// session): create an empty database, seed or dump a slot directly,
// and list what's there.
func cmdDb() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "manage the save-game database",
	}
	cmd.AddCommand(cmdDbCreate())
	cmd.AddCommand(cmdDbList())
	cmd.AddCommand(cmdDbSave())
	cmd.AddCommand(cmdDbRestore())
	return cmd
}

func cmdDbCreate() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "create an empty save-game database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := sqlite.Create(cfg.SaveDBPath(), context.Background()); err != nil {
				return err
			}
			fmt.Printf("%s: created\n", cfg.SaveDBPath())
			return nil
		},
	}
}

func cmdDbList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list every save slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := sqlite.Open(cfg.SaveDBPath(), context.Background())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			saves, err := store.List()
			if err != nil {
				return err
			}
			if len(saves) == 0 {
				fmt.Println("no saves")
				return nil
			}
			for _, s := range saves {
				fmt.Printf("%-20s %6d moves  updated %s\n", s.Slot, s.Moves, s.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

// cmdDbSave seeds slot from a freshly-built blueprint, independent of
// any interactive session -- useful for scripting a known starting
// point into the database.
func cmdDbSave() *cobra.Command {
	return &cobra.Command{
		Use:   "save <slot>",
		Short: "seed a save slot from a fresh game",
		Args:  cobra.ExactArgs(1),
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
			eng := bp.Build(ioh.NewHandlerFor(strings.NewReader(""), io.Discard))

			store, err := openOrCreateStore(cfg.SaveDBPath())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			slot := args[0]
			if err := store.Save(slot, slot, eng.State); err != nil {
				return err
			}
			fmt.Printf("%s: saved\n", slot)
			return nil
		},
	}
}

// cmdDbRestore dumps a slot's state as JSON to stdout, for inspection
// outside of an interactive session.
func cmdDbRestore() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <slot>",
		Short: "print a save slot's state as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := sqlite.Open(cfg.SaveDBPath(), context.Background())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			state, err := store.Restore(args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(state, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}
