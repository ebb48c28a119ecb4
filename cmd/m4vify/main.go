// Command m4vify converts media files to MP4 containers (.m4v, or .m4a for
// audio-only sources) by probing streams with ffprobe, applying an
// English-preferring selection policy, and driving ffmpeg with a derived,
// positionally-correct argument list.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/m4vify/internal/check"
	"github.com/backmassage/m4vify/internal/config"
	"github.com/backmassage/m4vify/internal/display"
	"github.com/backmassage/m4vify/internal/logging"
	"github.com/backmassage/m4vify/internal/pipeline"
	"github.com/backmassage/m4vify/internal/term"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "1.0.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr. Once logging.New succeeds, all output goes
	// through the logger.
	opts, err := config.Load(os.Args[1:], version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "m4vify: %v\n", err)
		return 1
	}

	term.Configure(opts.ColorMode)

	log, err := logging.New(&opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "m4vify: %v\n", err)
		return 1
	}
	defer log.Close()

	if opts.CheckOnly {
		display.PrintBanner()
		check.RunCheck(log)
		return 0
	}

	// Fail fast if ffmpeg/ffprobe are unavailable; --dump only needs the
	// prober, but a missing ffprobe would fail there anyway.
	if err := check.CheckDeps(); err != nil {
		log.Error("%v", err)
		return 1
	}

	if !opts.DumpOnly {
		display.PrintBanner()
		log.Info("=== m4vify v%s ===", version)
	}

	// Phase 2: Signal handling — cancel the context on SIGINT/SIGTERM so
	// the current child process is terminated. A cancelled file's output
	// is invalid and must be re-run from scratch.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping")
		cancel()
	}()

	// Phase 3: Run the pipeline (probe → select → plan → execute).
	stats := pipeline.Run(ctx, opts, log)

	if stats.Failed > 0 {
		return 1
	}
	return 0
}
