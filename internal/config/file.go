package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDefaults mirrors the YAML defaults file. Every field is a pointer so
// that an absent key leaves the built-in default untouched.
type fileDefaults struct {
	DownscaleSD      *bool   `yaml:"downscale_sd"`
	IncludeSubtitles *bool   `yaml:"include_subtitles"`
	Force            *bool   `yaml:"force"`
	Verbose          *bool   `yaml:"verbose"`
	Color            *string `yaml:"color"`
	LogFile          *string `yaml:"log_file"`
}

// LoadFile overlays opts with values from the YAML file at path. A missing
// file is not an error when implicit is true (the conventional location is
// probed on every run); an explicitly requested file must exist.
func LoadFile(opts *Options, path string, implicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if implicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fd fileDefaults
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fd.DownscaleSD != nil {
		opts.DownscaleSD = *fd.DownscaleSD
	}
	if fd.IncludeSubtitles != nil {
		opts.IncludeSubtitles = *fd.IncludeSubtitles
	}
	if fd.Force != nil {
		opts.Force = *fd.Force
	}
	if fd.Verbose != nil {
		opts.Verbose = *fd.Verbose
	}
	if fd.Color != nil {
		opts.ColorMode = ColorMode(*fd.Color)
	}
	if fd.LogFile != nil {
		opts.LogFile = *fd.LogFile
	}
	return nil
}
