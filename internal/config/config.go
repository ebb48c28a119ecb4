// Package config holds runtime configuration: defaults, an optional YAML
// defaults file, CLI flag parsing, and validation. The resulting Options
// value is built once in main and passed explicitly to the packages that
// need it; nothing mutates it after ParseFlags returns.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Options holds all runtime settings for a single run. It is populated by
// [Default], optionally overlaid by a YAML defaults file, and finalized by
// [ParseFlags]. Treat it as immutable afterwards.
type Options struct {
	// Conversion policy.
	DownscaleSD      bool // Downscale video to SD width (1280) instead of keeping native resolution.
	DumpOnly         bool // Print the planned ffmpeg command instead of running it.
	IncludeSubtitles bool // Collect and convert an English subtitle track.
	Force            bool // Overwrite an existing output file.

	// Inputs (positional args).
	Inputs []string

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path (JSON lines).

	// Utility modes.
	CheckOnly  bool   // Run --check diagnostics and exit.
	ConfigFile string // Defaults file that was applied: --config value or the conventional path. Set by Load.
}

// Default returns Options with all defaults. Used as the base before the
// defaults file and CLI flags are applied.
func Default() Options {
	return Options{
		DownscaleSD:      false,
		DumpOnly:         false,
		IncludeSubtitles: false,
		Force:            false,
		Verbose:          false,
		ColorMode:        ColorAuto,
		CheckOnly:        false,
	}
}

// DefaultConfigPath returns the conventional defaults-file location
// (~/.config/m4vify/config.yaml), or "" when the home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "m4vify", "config.yaml")
}

// Validate checks enum fields and, outside CheckOnly mode, requires at
// least one input file.
func (o *Options) Validate() error {
	switch o.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if o.CheckOnly {
		return nil
	}
	if len(o.Inputs) == 0 {
		return errors.New("need at least one input file")
	}
	for _, path := range o.Inputs {
		if path == "" {
			return fmt.Errorf("empty input path")
		}
	}
	return nil
}
