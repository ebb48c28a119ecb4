// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation for ffmpeg and ffprobe.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// rather than importing the logging package so check stays dependency-light
// and testable with a mock.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// CheckDeps fails fast when ffmpeg or ffprobe is unavailable.
func CheckDeps() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// RunCheck runs the interactive --check flow: tool presence, versions, and
// the encoders the planner relies on. Informational only; it does not stop
// on failure.
func RunCheck(log Logger) {
	log.Info("=== System Check ===")
	checkTool(log, "ffmpeg")
	checkTool(log, "ffprobe")
	checkEncoders(log)
}

// checkTool verifies a binary is on PATH and logs its version line.
func checkTool(log Logger, name string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return
	}
	out, err := exec.Command(name, "-version").Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
}

// plannerEncoders are the encoders the planner may ask ffmpeg for.
var plannerEncoders = []string{"libx264", "aac", "ac3", "alac", "mov_text"}

// checkEncoders reports which required encoders this ffmpeg build carries.
func checkEncoders(log Logger) {
	out, err := exec.Command("ffmpeg", "-hide_banner", "-encoders").Output()
	if err != nil {
		log.Warn("cannot list encoders: %v", err)
		return
	}
	listing := string(out)
	for _, enc := range plannerEncoders {
		if strings.Contains(listing, " "+enc+" ") {
			log.Success("encoder %s: available", enc)
		} else {
			log.Warn("encoder %s: not found in this ffmpeg build", enc)
		}
	}
}
