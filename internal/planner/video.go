package planner

import (
	"github.com/backmassage/m4vify/internal/config"
	"github.com/backmassage/m4vify/internal/probe"
)

// Video encoding constants. CRF 18 at preset slow is visually lossless for
// most sources; profile main keeps hardware players happy.
const (
	targetVideoCodec = "h264"
	videoPreset      = "slow"
	videoProfile     = "main"
	videoCRF         = "18"
	sdScaleFilter    = "scale=1280:-2" // -2 keeps the height encoder-friendly (mod 2)
)

// videoCodecOpts returns the codec tokens for the selected video stream.
// A source already in the target codec is stream-copied unless a downscale
// was requested; everything else is re-encoded at a fixed high-quality
// preset with an unconstrained thread count.
func videoCodecOpts(v *probe.VideoStreamInfo, opts config.Options) []string {
	if v.Codec == targetVideoCodec && !opts.DownscaleSD {
		return []string{"-c:v", "copy"}
	}

	tokens := []string{
		"-c:v", "libx264",
		"-preset", videoPreset,
		"-profile:v", videoProfile,
		"-crf", videoCRF,
		"-threads", "0",
	}
	if opts.DownscaleSD {
		tokens = append(tokens, "-vf", sdScaleFilter)
	}
	return tokens
}
