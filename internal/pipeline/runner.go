package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/backmassage/m4vify/internal/config"
	"github.com/backmassage/m4vify/internal/display"
	"github.com/backmassage/m4vify/internal/ffmpeg"
	"github.com/backmassage/m4vify/internal/logging"
	"github.com/backmassage/m4vify/internal/planner"
	"github.com/backmassage/m4vify/internal/probe"
	"github.com/backmassage/m4vify/internal/progress"
	"github.com/backmassage/m4vify/internal/selector"
	"github.com/backmassage/m4vify/internal/term"
)

const minFileSize = 1000

// Run is the top-level batch entry point: it processes each input file in
// order and returns aggregate stats. A probe or transcode failure marks
// that file failed and the batch continues with the next one; only an
// interrupt stops the run early.
func Run(ctx context.Context, opts config.Options, log *logging.Logger) RunStats {
	var stats RunStats
	stats.Total = len(opts.Inputs)

	for i, path := range opts.Inputs {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(ctx, opts, log, path, &stats)
	}

	logSummary(opts, log, &stats)
	return stats
}

// processFile handles one media file: validate → probe → select → plan →
// dump or execute.
func processFile(ctx context.Context, opts config.Options, log *logging.Logger, path string, stats *RunStats) {
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	// --- Validate ---
	fi, err := os.Stat(path)
	if err != nil {
		log.Error("File not found: %s", path)
		stats.Failed++
		return
	}
	if fi.Size() < minFileSize {
		log.Error("File too small (possibly corrupt): %s", path)
		stats.Failed++
		return
	}

	// --- Probe ---
	mi, err := probe.Probe(ctx, path, opts.IncludeSubtitles)
	if err != nil {
		log.Error("Cannot probe file: %v", err)
		stats.Failed++
		return
	}

	// --- Select and plan ---
	sel := selector.Select(mi)
	logSelection(log, sel)

	plan := planner.BuildPlan(sel, opts)

	// --- Dump-only ---
	if opts.DumpOnly {
		fmt.Println(plan.Render())
		stats.Dumped++
		return
	}

	// --- Overwrite check ---
	if !opts.Force {
		if _, err := os.Stat(plan.OutputPath); err == nil {
			log.Warn("Skip (exists): %s", plan.OutputPath)
			stats.Skipped++
			return
		}
	}

	log.Info("Converting: %s -> %s", basename, plan.OutputPath)

	// --- Execute with live progress ---
	start := time.Now()
	mon := progress.NewMonitor(plan.Duration, os.Stdout, term.IsTerminal(os.Stdout))
	err = ffmpeg.Execute(ctx, plan, mon.Observe)
	if err != nil {
		// Partial output is left in place; cleanup is the user's call.
		log.Error("Conversion failed: %v", err)
		stats.Failed++
		return
	}
	mon.Finish()

	// --- Update stats ---
	elapsed := time.Since(start)
	inSize := fi.Size()
	var outSize int64
	if outInfo, err := os.Stat(plan.OutputPath); err == nil {
		outSize = outInfo.Size()
	}
	stats.TotalInputBytes += inSize
	stats.TotalOutputBytes += outSize
	stats.Converted++

	ratio := int64(100)
	if inSize > 0 {
		ratio = outSize * 100 / inSize
	}
	log.Success("Converted in %s (%d%% of original)", display.FormatDuration(int(elapsed.Seconds())), ratio)
}

// logSelection reports the surviving streams at debug level.
func logSelection(log *logging.Logger, sel selector.Selection) {
	if sel.Video != nil {
		log.Debug("  video: #%d %s %dx%d", sel.Video.Index, sel.Video.Codec, sel.Video.Width, sel.Video.Height)
	}
	if sel.Audio != nil {
		log.Debug("  audio: #%d %s %dch [%s]", sel.Audio.Index, sel.Audio.Codec, sel.Audio.Channels, sel.Audio.Language)
	}
	if sel.Subtitle != nil {
		log.Debug("  subtitle: #%d %s [%s]", sel.Subtitle.Index, sel.Subtitle.Codec, sel.Subtitle.Language)
	}
}

// logSummary prints the end-of-batch report.
func logSummary(opts config.Options, log *logging.Logger, stats *RunStats) {
	if opts.DumpOnly {
		return
	}
	log.Info("=== Done: %d converted, %d skipped, %d failed ===",
		stats.Converted, stats.Skipped, stats.Failed)
	if stats.Converted > 0 {
		log.Info("In %s, out %s (saved %s)",
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes),
			display.FormatBytes(stats.SpaceSaved()))
	}
}
