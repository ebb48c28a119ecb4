package planner

import "strings"

// Output container suffixes.
const (
	SuffixVideo = "m4v" // audio+video and video-only outputs
	SuffixAudio = "m4a" // audio-only outputs
)

// Plan holds the complete ffmpeg invocation for a single file. Args is the
// full ordered token sequence, Args[0] being the binary name. Token order
// matters: ffmpeg is positional-argument-sensitive, so the map/metadata
// block precedes per-stream codec options, which precede trailing container
// options and the output path.
type Plan struct {
	Args       []string
	InputPath  string
	OutputPath string
	Suffix     string
	Duration   int // input duration in seconds, carried for progress
}

// Render returns the plan as a single shell-style line, exactly the token
// sequence that would be executed.
func (p *Plan) Render() string {
	return strings.Join(p.Args, " ")
}
