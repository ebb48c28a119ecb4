package planner

import (
	"fmt"

	"github.com/backmassage/m4vify/internal/probe"
	"github.com/backmassage/m4vify/internal/selector"
)

// Audio encoding constants.
const (
	stereoBitrate    = "256k"
	surroundBitrate  = "640k"
	surroundChannels = "6"
	dtsGainFilter    = "volume=2.0" // DTS masters sit noticeably below replay level
)

// audioOutputs emits the map/metadata/codec tokens for the selected audio
// stream in the audio+video path. outIdx is the output stream index of the
// first audio output (0 when no video was mapped).
//
// A stream with 2 or fewer channels becomes a single stereo output: copied
// when already AAC, otherwise transcoded. A multi-channel stream becomes two
// outputs from the same source map: a down-mixed stereo AAC track (with a
// gain boost for DTS sources) and a 6-channel AC3 track, copied when the
// source is already AC3.
func audioOutputs(a *probe.AudioStreamInfo, outIdx int) (maps, meta, codecs []string) {
	src := fmt.Sprintf("0:a:%d", a.Index)

	if a.Channels <= 2 {
		maps = append(maps, "-map", src)
		meta = append(meta, languageTag(outIdx)...)
		if a.Codec == "aac" {
			codecs = append(codecs, "-c:a:0", "copy")
		} else {
			codecs = append(codecs,
				"-c:a:0", "aac",
				"-b:a:0", stereoBitrate,
				"-ac:a:0", "2",
			)
		}
		return maps, meta, codecs
	}

	// Stereo AAC down-mix.
	maps = append(maps, "-map", src)
	meta = append(meta, languageTag(outIdx)...)
	codecs = append(codecs,
		"-c:a:0", "aac",
		"-b:a:0", stereoBitrate,
		"-ac:a:0", "2",
	)
	if a.Codec == "dts" {
		codecs = append(codecs, "-filter:a:0", dtsGainFilter)
	}

	// Multi-channel AC3 track.
	maps = append(maps, "-map", src)
	meta = append(meta, languageTag(outIdx+1)...)
	if a.Codec == "ac3" {
		codecs = append(codecs, "-c:a:1", "copy")
	} else {
		codecs = append(codecs,
			"-c:a:1", "ac3",
			"-b:a:1", surroundBitrate,
			"-ac:a:1", surroundChannels,
		)
	}
	return maps, meta, codecs
}

// planAudioOnly emits map/codec tokens for the audio-only path. Apple
// Lossless sources are copied, FLAC is converted to Apple Lossless to stay
// lossless inside MP4, and everything else becomes fixed-bitrate AAC.
func planAudioOnly(sel selector.Selection) (maps, codecs []string) {
	a := sel.Audio
	if a == nil {
		return nil, nil
	}

	maps = append(maps, "-map", fmt.Sprintf("0:a:%d", a.Index))

	switch a.Codec {
	case "alac":
		codecs = append(codecs, "-c:a", "copy")
	case "flac":
		codecs = append(codecs, "-c:a", "alac")
	default:
		codecs = append(codecs, "-c:a", "aac", "-b:a", stereoBitrate)
	}
	return maps, codecs
}
