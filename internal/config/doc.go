// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package config loads gnusto's process configuration: where the
// save-game database and blueprint live, and which debug flags are
// active. Configuration is loaded from a JSON file with sensible
// defaults, following the same non-zero-field overlay the teacher
// uses for per-player settings.
package config
