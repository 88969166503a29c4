package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"

	"github.com/mdhenderson/gnusto/cerrs"
)

// Config is gnusto's process configuration: where save games and the
// game definition live, and which debug flags are active.
type Config struct {
	DataDir       string       `json:"DataDir,omitempty"`
	SaveDB        string       `json:"SaveDB,omitempty"`
	BlueprintPath string       `json:"BlueprintPath,omitempty"`
	DebugFlags    DebugFlags_t `json:"DebugFlags"`
}

// DebugFlags_t are the ambient debug toggles a session can enable,
// following the teacher's DebugFlags_t struct shape.
type DebugFlags_t struct {
	DumpState  bool `json:"DumpState,omitempty"`
	LogTurns   bool `json:"LogTurns,omitempty"`
	TraceScope bool `json:"TraceScope,omitempty"`
}

// Default returns the configuration used when no config file is
// present: a save database and blueprint alongside the working
// directory, with the bundled demo game (BlueprintPath empty means
// "use blueprint.Demo()").
func Default() *Config {
	return &Config{
		DataDir: ".",
		SaveDB:  "gnusto.db",
	}
}

// Load reads and validates a Config from a JSON file, overlaying its
// non-zero fields onto Default(). A missing file is not an error --
// it just means "use the defaults." A path that is a directory or
// not a regular file is.
func Load(path string, debug bool) (*Config, error) {
	if debug {
		log.Printf("[config] %q: loading configuration...\n", path)
	}
	cfg := Default()
	sb, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		if debug {
			log.Printf("[config] %q: %v\n", path, err)
		}
		return cfg, nil
	} else if err != nil {
		return cfg, err
	} else if !sb.Mode().IsRegular() {
		return cfg, fmt.Errorf("%w: %s", cerrs.ErrNotAFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var tmp Config
	if err := json.Unmarshal(data, &tmp); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if debug {
		if nice, err := json.MarshalIndent(tmp, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		}
	}

	copyNonZeroFields(&tmp, cfg)
	return cfg, nil
}

// SaveDBPath returns the configured save database path, resolved
// against DataDir if it isn't already absolute.
func (c *Config) SaveDBPath() string {
	if filepath.IsAbs(c.SaveDB) {
		return c.SaveDB
	}
	return filepath.Join(c.DataDir, c.SaveDB)
}

// copyNonZeroFields recursively copies non-zero fields from src to
// dst using reflection, so a partial config file only overrides the
// fields it actually sets.
func copyNonZeroFields(src, dst interface{}) {
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)

	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if dstVal.Kind() == reflect.Ptr {
		dstVal = dstVal.Elem()
	}
	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		dstField := dstVal.Field(i)

		if !srcField.CanInterface() || !dstField.CanSet() {
			continue
		}
		if srcField.IsZero() {
			continue
		}

		switch srcField.Kind() {
		case reflect.Struct:
			copyNonZeroFields(srcField.Interface(), dstField.Addr().Interface())
		default:
			dstField.Set(srcField)
		}
	}
}
