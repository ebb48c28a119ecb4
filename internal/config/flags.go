package config

// This file implements CLI flag parsing and help text. The defaults file is
// applied before flags so that flags always win; --config is pre-scanned for
// that reason. --help and --version print and exit zero.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// exit is swapped out in tests so --help/--version can be asserted.
var exit = os.Exit

// Load builds the final Options from defaults, the defaults file, and args
// (normally os.Args[1:]).
func Load(args []string, version string) (Options, error) {
	opts := Default()

	path, implicit := configPath(args)
	if path != "" {
		if err := LoadFile(&opts, path, implicit); err != nil {
			return opts, err
		}
	}

	if err := ParseFlags(&opts, args, version); err != nil {
		return opts, err
	}
	opts.ConfigFile = path
	return opts, opts.Validate()
}

// configPath returns the defaults-file path to load: an explicit --config
// value when present in args (both "--config FILE" and "--config=FILE"
// forms), otherwise the conventional location.
func configPath(args []string) (path string, implicit bool) {
	for i, a := range args {
		switch {
		case a == "--config" || a == "-config":
			if i+1 < len(args) {
				return args[i+1], false
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config="), false
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config="), false
		}
	}
	return DefaultConfigPath(), true
}

// ParseFlags parses args into opts. On --help or --version it prints and
// exits zero. Positional arguments become the input file list.
func ParseFlags(opts *Options, args []string, version string) error {
	fs := flag.NewFlagSet("m4vify", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs.Output()) }

	var showHelp, showVersion, forceColor, noColor bool

	// Conversion policy.
	fs.BoolVar(&opts.DownscaleSD, "sd", opts.DownscaleSD, "Downscale video to SD width (1280)")
	fs.BoolVar(&opts.DumpOnly, "dump", opts.DumpOnly, "Print the ffmpeg command instead of running it")
	fs.BoolVar(&opts.DumpOnly, "d", opts.DumpOnly, "Same as --dump")
	fs.BoolVar(&opts.IncludeSubtitles, "subtitles", opts.IncludeSubtitles, "Convert an English subtitle track")
	fs.BoolVar(&opts.IncludeSubtitles, "s", opts.IncludeSubtitles, "Same as --subtitles")
	fs.BoolVar(&opts.Force, "force", opts.Force, "Overwrite existing output files")
	fs.BoolVar(&opts.Force, "f", opts.Force, "Same as --force")

	// Display and logging.
	fs.BoolVar(&forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&opts.Verbose, "verbose", opts.Verbose, "Verbose output")
	fs.BoolVar(&opts.Verbose, "v", opts.Verbose, "Same as --verbose")
	fs.StringVar(&opts.LogFile, "log", opts.LogFile, "Append JSON logs to file")

	// Utility.
	fs.StringVar(&opts.ConfigFile, "config", "", "Defaults file (default ~/.config/m4vify/config.yaml)")
	fs.BoolVar(&opts.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showVersion, "V", false, "Same as --version")
	fs.BoolVar(&showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(os.Stdout)
		exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "m4vify v"+version)
		exit(0)
	}

	if noColor {
		opts.ColorMode = ColorNever
	} else if forceColor {
		opts.ColorMode = ColorAlways
	}

	opts.Inputs = fs.Args()
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: m4vify [options] file...

Converts media files to MP4 (.m4v, or .m4a for audio-only sources) with
an English-preferring stream selection policy. Outputs are written to the
current directory, named after the input file.

Conversion:
  --sd              Downscale video to SD width (1280)
  -d, --dump        Print the ffmpeg command instead of running it
  -s, --subtitles   Convert an English subtitle track (mov_text)
  -f, --force       Overwrite existing output files

Display:
  --color           Force colored logs
  --no-color        Disable colored logs
  -v, --verbose     Verbose output
  --log FILE        Append JSON logs to FILE

Utility:
  --config FILE     Defaults file (default ~/.config/m4vify/config.yaml)
  --check           Run system diagnostics and exit
  -V, --version     Print version and exit
  -h, --help        Show this help and exit
`)
}
