package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrMissingFormat is returned when ffprobe output lacks a usable format
// section (absent, or carrying neither filename nor duration).
var ErrMissingFormat = errors.New("ffprobe output has no usable format section")

// undeterminedLanguage is ffprobe's sentinel for an unknown language tag.
const undeterminedLanguage = "und"

// Probe runs a single ffprobe JSON call against path and returns the parsed
// result. Subtitle streams are collected only when includeSubtitles is set;
// otherwise they are ignored at parse time.
func Probe(ctx context.Context, path string, includeSubtitles bool) (*MediaInfo, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseJSON(out, includeSubtitles)
}

// ParseJSON converts raw ffprobe JSON output into a MediaInfo. Exported for
// testing without a real ffprobe binary. Parsing the same bytes twice
// produces equal results; nothing here depends on external state.
func ParseJSON(data []byte, includeSubtitles bool) (*MediaInfo, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	if raw.Format == nil || (raw.Format.Filename == "" && raw.Format.Duration == "") {
		return nil, ErrMissingFormat
	}
	return buildResult(&raw, includeSubtitles), nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  *ffprobeFormat  `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Filename string `json:"filename"`
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	Index       int               `json:"index"`
	CodecName   string            `json:"codec_name"`
	CodecType   string            `json:"codec_type"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	Channels    int               `json:"channels"`
	Disposition map[string]int    `json:"disposition"`
	Tags        map[string]string `json:"tags"`
}

// --- Conversion from wire types to domain types ---

// buildResult classifies streams into per-type buckets, assigning each its
// per-type index as the running count of that type.
func buildResult(raw *ffprobeOutput, includeSubtitles bool) *MediaInfo {
	mi := &MediaInfo{
		Filename: raw.Format.Filename,
		Duration: int(parseFloat(raw.Format.Duration)),
	}

	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "video":
			mi.Video = append(mi.Video, VideoStreamInfo{
				Index:  len(mi.Video),
				Codec:  s.CodecName,
				Width:  s.Width,
				Height: s.Height,
			})
		case "audio":
			mi.Audio = append(mi.Audio, AudioStreamInfo{
				Index:    len(mi.Audio),
				Codec:    s.CodecName,
				Channels: s.Channels,
				Language: normalizeLanguage(s.Tags["language"]),
				Title:    s.Tags["title"],
			})
		case "subtitle":
			if !includeSubtitles {
				continue
			}
			mi.Subtitle = append(mi.Subtitle, SubtitleStreamInfo{
				Index:           len(mi.Subtitle),
				Codec:           s.CodecName,
				Language:        normalizeLanguage(s.Tags["language"]),
				Title:           s.Tags["title"],
				Forced:          s.Disposition["forced"] == 1,
				HearingImpaired: s.Disposition["hearing_impaired"] == 1,
			})
		}
	}
	return mi
}

// normalizeLanguage lower-cases a container language tag, mapping absent or
// undetermined tags to "eng".
func normalizeLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" || tag == undeterminedLanguage {
		return "eng"
	}
	return tag
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
