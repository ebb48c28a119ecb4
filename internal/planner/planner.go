package planner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/backmassage/m4vify/internal/config"
	"github.com/backmassage/m4vify/internal/selector"
)

// Extensions of audio-only containers. A source with one of these is
// planned as audio-only even when it carries a decorative video stream
// (embedded cover art).
var audioExtensions = map[string]bool{
	".aiff": true,
	".flac": true,
	".m4a":  true,
	".mp3":  true,
	".oga":  true,
	".ogg":  true,
	".wav":  true,
	".wma":  true,
}

// BuildPlan produces the complete ffmpeg invocation for a selection. It
// never fails on a valid selection: absent streams simply contribute no
// tokens, so an all-empty selection yields a minimal passthrough plan.
//
// Flow:
//  1. Derive the output path (audio-only sources become .m4a, else .m4v)
//  2. Emit global options and the input
//  3. Emit the contiguous map + metadata block
//  4. Emit per-output-stream codec options
//  5. Emit trailing container options and the output path
func BuildPlan(sel selector.Selection, opts config.Options) *Plan {
	audioOnly := isAudioOnly(sel)

	p := &Plan{
		InputPath: sel.Filename,
		Duration:  sel.Duration,
		Suffix:    SuffixVideo,
	}
	if audioOnly {
		p.Suffix = SuffixAudio
	}
	p.OutputPath = OutputName(sel.Filename, p.Suffix)

	args := make([]string, 0, 48)

	// --- Global options ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin")
	if opts.Force {
		args = append(args, "-y")
	}
	args = append(args, "-loglevel", "error", "-stats")

	// --- Input ---
	args = append(args, "-i", sel.Filename)

	// --- Maps, metadata, codec options ---
	var maps, meta, codecs []string
	if audioOnly {
		maps, codecs = planAudioOnly(sel)
	} else {
		maps, meta, codecs = planAudioVideo(sel, opts)
	}
	args = append(args, maps...)
	args = append(args, meta...)
	args = append(args, codecs...)

	// --- Trailing container options ---
	if len(maps) > 0 {
		args = append(args, "-movflags", "+faststart")
	}

	// --- Output ---
	args = append(args, p.OutputPath)

	p.Args = args
	return p
}

// planAudioVideo emits the map/metadata/codec tokens for the audio+video
// path (including the video-only degenerate case). Metadata language tags
// are emitted in lockstep with each map: video, each audio output, then
// subtitle, so output stream N always carries tag N.
func planAudioVideo(sel selector.Selection, opts config.Options) (maps, meta, codecs []string) {
	outIdx := 0

	if sel.Video != nil {
		maps = append(maps, "-map", fmt.Sprintf("0:v:%d", sel.Video.Index))
		meta = append(meta, languageTag(outIdx)...)
		outIdx++
		codecs = append(codecs, videoCodecOpts(sel.Video, opts)...)
	}

	if sel.Audio != nil {
		audioMaps, audioMeta, audioCodecs := audioOutputs(sel.Audio, outIdx)
		maps = append(maps, audioMaps...)
		meta = append(meta, audioMeta...)
		codecs = append(codecs, audioCodecs...)
		outIdx += len(audioMaps) / 2
	}

	if sel.Subtitle != nil {
		maps = append(maps, "-map", fmt.Sprintf("0:s:%d", sel.Subtitle.Index))
		meta = append(meta, languageTag(outIdx)...)
		codecs = append(codecs, subtitleCodecOpts()...)
	}

	return maps, meta, codecs
}

// languageTag returns the metadata tokens for output stream n. Current
// policy tags every kept stream "eng"; selection already discarded
// non-English candidates wherever English ones existed.
func languageTag(n int) []string {
	return []string{fmt.Sprintf("-metadata:s:%d", n), "language=eng"}
}

// isAudioOnly reports whether the plan should target the audio container:
// either no video stream survived selection while audio did, or the source
// extension marks a known audio-only container.
func isAudioOnly(sel selector.Selection) bool {
	if sel.Video == nil && sel.Audio != nil {
		return true
	}
	return audioExtensions[strings.ToLower(filepath.Ext(sel.Filename))]
}

// OutputName derives the output artifact name: the input's base name with
// the derived suffix, written to the current working directory.
func OutputName(input, suffix string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + suffix
}
