// Package selector narrows a probed MediaInfo down to at most one video,
// one audio, and one subtitle stream. Selection is pure policy: it never
// fails, and an absent stream type is a valid outcome.
package selector

import "github.com/backmassage/m4vify/internal/probe"

// preferredLanguage is the language pool streams are filtered to before
// codec-priority ranking applies.
const preferredLanguage = "eng"

// audioCodecPriority ranks audio codecs best-first. Streams outside this
// list fall back to container order.
var audioCodecPriority = []string{"dts", "ac3", "alac", "flac", "aac", "mp3"}

// Selection is a MediaInfo narrowed to zero-or-one stream per type. Nil
// means no stream of that type survived; a non-nil pointer always refers
// to a stream present in the source.
type Selection struct {
	Filename string
	Duration int
	Video    *probe.VideoStreamInfo
	Audio    *probe.AudioStreamInfo
	Subtitle *probe.SubtitleStreamInfo
}

// Select applies the stream policy to mi.
//
//   - Video: first stream in container order.
//   - Audio: English-tagged streams ranked by codec priority; first English
//     stream when no priority codec matches; first stream overall when
//     nothing is tagged English.
//   - Subtitle: last English-tagged stream. Embedded forced tracks tend to
//     appear before the full dialogue track, so last-wins is deliberate.
func Select(mi *probe.MediaInfo) Selection {
	sel := Selection{
		Filename: mi.Filename,
		Duration: mi.Duration,
	}

	if len(mi.Video) > 0 {
		sel.Video = &mi.Video[0]
	}
	sel.Audio = selectAudio(mi.Audio)
	sel.Subtitle = selectSubtitle(mi.Subtitle)
	return sel
}

func selectAudio(streams []probe.AudioStreamInfo) *probe.AudioStreamInfo {
	if len(streams) == 0 {
		return nil
	}

	var english []*probe.AudioStreamInfo
	for i := range streams {
		if streams[i].Language == preferredLanguage {
			english = append(english, &streams[i])
		}
	}
	if len(english) == 0 {
		return &streams[0]
	}

	for _, codec := range audioCodecPriority {
		for _, s := range english {
			if s.Codec == codec {
				return s
			}
		}
	}
	return english[0]
}

func selectSubtitle(streams []probe.SubtitleStreamInfo) *probe.SubtitleStreamInfo {
	var last *probe.SubtitleStreamInfo
	for i := range streams {
		if streams[i].Language == preferredLanguage {
			last = &streams[i]
		}
	}
	return last
}
