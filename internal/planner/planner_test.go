package planner

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/m4vify/internal/config"
	"github.com/backmassage/m4vify/internal/probe"
	"github.com/backmassage/m4vify/internal/selector"
)

// --- Helper builders ---

func avSelection(videoCodec, audioCodec string, channels int) selector.Selection {
	return selector.Selection{
		Filename: "Movie.mkv",
		Duration: 5400,
		Video:    &probe.VideoStreamInfo{Index: 0, Codec: videoCodec, Width: 1920, Height: 1080},
		Audio:    &probe.AudioStreamInfo{Index: 0, Codec: audioCodec, Channels: channels, Language: "eng"},
	}
}

func audioSelection(filename, codec string) selector.Selection {
	return selector.Selection{
		Filename: filename,
		Duration: 240,
		Audio:    &probe.AudioStreamInfo{Index: 0, Codec: codec, Channels: 2, Language: "eng"},
	}
}

func requireArgs(t *testing.T, want, got []string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("argv mismatch (-want +got):\n%s", diff)
	}
}

// --- Audio+video path ---

func TestBuildPlan_StreamCopyNativeH264(t *testing.T) {
	plan := BuildPlan(avSelection("h264", "aac", 2), config.Default())

	requireArgs(t, []string{
		"ffmpeg", "-hide_banner", "-nostdin", "-loglevel", "error", "-stats",
		"-i", "Movie.mkv",
		"-map", "0:v:0", "-map", "0:a:0",
		"-metadata:s:0", "language=eng", "-metadata:s:1", "language=eng",
		"-c:v", "copy",
		"-c:a:0", "copy",
		"-movflags", "+faststart",
		"Movie.m4v",
	}, plan.Args)
	assert.Equal(t, SuffixVideo, plan.Suffix)
}

func TestBuildPlan_ReencodeNonTargetVideo(t *testing.T) {
	plan := BuildPlan(avSelection("mpeg2video", "aac", 2), config.Default())

	joined := plan.Render()
	assert.Contains(t, joined, "-c:v libx264 -preset slow -profile:v main -crf 18 -threads 0")
	assert.NotContains(t, joined, "-vf")
}

func TestBuildPlan_DownscaleForcesReencode(t *testing.T) {
	opts := config.Default()
	opts.DownscaleSD = true
	plan := BuildPlan(avSelection("h264", "aac", 2), opts)

	joined := plan.Render()
	assert.Contains(t, joined, "-c:v libx264")
	assert.Contains(t, joined, "-vf scale=1280:-2")
	assert.NotContains(t, joined, "-c:v copy")
}

func TestBuildPlan_SixChannelDTSDualOutput(t *testing.T) {
	plan := BuildPlan(avSelection("h264", "dts", 6), config.Default())

	requireArgs(t, []string{
		"ffmpeg", "-hide_banner", "-nostdin", "-loglevel", "error", "-stats",
		"-i", "Movie.mkv",
		"-map", "0:v:0", "-map", "0:a:0", "-map", "0:a:0",
		"-metadata:s:0", "language=eng",
		"-metadata:s:1", "language=eng",
		"-metadata:s:2", "language=eng",
		"-c:v", "copy",
		"-c:a:0", "aac", "-b:a:0", "256k", "-ac:a:0", "2", "-filter:a:0", "volume=2.0",
		"-c:a:1", "ac3", "-b:a:1", "640k", "-ac:a:1", "6",
		"-movflags", "+faststart",
		"Movie.m4v",
	}, plan.Args)
}

func TestBuildPlan_SixChannelAC3CopiesSurround(t *testing.T) {
	plan := BuildPlan(avSelection("h264", "ac3", 6), config.Default())

	joined := plan.Render()
	assert.Contains(t, joined, "-c:a:1 copy")
	assert.NotContains(t, joined, "volume=2.0", "gain boost is DTS-specific")
}

func TestBuildPlan_StereoNonAACTranscodes(t *testing.T) {
	plan := BuildPlan(avSelection("h264", "mp3", 2), config.Default())

	joined := plan.Render()
	assert.Contains(t, joined, "-c:a:0 aac -b:a:0 256k -ac:a:0 2")
	assert.NotContains(t, joined, "-c:a:1", "stereo sources get a single output")
}

func TestBuildPlan_SubtitleMapAndMetadataLockstep(t *testing.T) {
	sel := avSelection("h264", "aac", 2)
	sel.Subtitle = &probe.SubtitleStreamInfo{Index: 1, Codec: "subrip", Language: "eng"}
	plan := BuildPlan(sel, config.Default())

	joined := plan.Render()
	assert.Contains(t, joined, "-map 0:s:1")
	assert.Contains(t, joined, "-metadata:s:2 language=eng")
	assert.Contains(t, joined, "-c:s mov_text")
}

func TestBuildPlan_VideoOnly(t *testing.T) {
	sel := selector.Selection{
		Filename: "clip.mkv",
		Duration: 60,
		Video:    &probe.VideoStreamInfo{Index: 0, Codec: "h264"},
	}
	plan := BuildPlan(sel, config.Default())

	joined := plan.Render()
	assert.Equal(t, SuffixVideo, plan.Suffix)
	assert.Contains(t, joined, "-map 0:v:0")
	assert.NotContains(t, joined, "-c:a")
}

// --- Audio-only path ---

func TestBuildPlan_AudioOnlyALACCopies(t *testing.T) {
	plan := BuildPlan(audioSelection("song.m4a", "alac"), config.Default())

	assert.Equal(t, SuffixAudio, plan.Suffix)
	assert.Equal(t, "song.m4a", plan.OutputPath)
	assert.Contains(t, plan.Render(), "-c:a copy")
}

func TestBuildPlan_AudioOnlyFLACToALAC(t *testing.T) {
	plan := BuildPlan(audioSelection("song.flac", "flac"), config.Default())

	assert.Equal(t, "song.m4a", plan.OutputPath)
	assert.Contains(t, plan.Render(), "-c:a alac")
}

func TestBuildPlan_AudioOnlyLossyToAAC(t *testing.T) {
	plan := BuildPlan(audioSelection("song.mp3", "mp3"), config.Default())

	assert.Contains(t, plan.Render(), "-c:a aac -b:a 256k")
}

func TestBuildPlan_NoVideoSelectedBecomesAudioOnly(t *testing.T) {
	// Audio-only trigger via stream absence, not extension.
	plan := BuildPlan(audioSelection("concert.mkv", "flac"), config.Default())

	assert.Equal(t, SuffixAudio, plan.Suffix)
	assert.Equal(t, "concert.m4a", plan.OutputPath)
}

func TestBuildPlan_AudioExtensionWinsOverCoverArt(t *testing.T) {
	// An mp3 with embedded cover art probes a video stream; the extension
	// still forces the audio path.
	sel := audioSelection("song.mp3", "mp3")
	sel.Video = &probe.VideoStreamInfo{Index: 0, Codec: "mjpeg"}
	plan := BuildPlan(sel, config.Default())

	assert.Equal(t, SuffixAudio, plan.Suffix)
	assert.NotContains(t, plan.Render(), "-map 0:v")
}

// --- Edge cases and invariants ---

func TestBuildPlan_EmptySelectionMinimalPlan(t *testing.T) {
	plan := BuildPlan(selector.Selection{Filename: "odd.mkv"}, config.Default())

	requireArgs(t, []string{
		"ffmpeg", "-hide_banner", "-nostdin", "-loglevel", "error", "-stats",
		"-i", "odd.mkv",
		"odd.m4v",
	}, plan.Args)
}

func TestBuildPlan_ForceAddsOverwrite(t *testing.T) {
	opts := config.Default()
	opts.Force = true
	plan := BuildPlan(avSelection("h264", "aac", 2), opts)
	assert.Equal(t, "-y", plan.Args[3])
}

func TestBuildPlan_InvocationInvariant(t *testing.T) {
	sel := avSelection("h264", "dts", 6)
	first := BuildPlan(sel, config.Default())
	second := BuildPlan(sel, config.Default())

	requireArgs(t, first.Args, second.Args)
	assert.Equal(t, strings.Join(first.Args, " "), first.Render())
}

func TestBuildPlan_MapsPrecedeCodecTokens(t *testing.T) {
	plan := BuildPlan(avSelection("mpeg2video", "dts", 6), config.Default())

	lastMap := -1
	firstCodec := len(plan.Args)
	for i, tok := range plan.Args {
		switch tok {
		case "-map":
			lastMap = i
		case "-c:v", "-c:a:0", "-c:a:1", "-c:s":
			if i < firstCodec {
				firstCodec = i
			}
		}
	}
	require.Greater(t, lastMap, 0)
	assert.Less(t, lastMap, firstCodec, "map block must precede codec options")
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "Show.S01E01.m4v", OutputName("/media/tv/Show.S01E01.mkv", SuffixVideo))
	assert.Equal(t, "track.m4a", OutputName("track.flac", SuffixAudio))
	assert.Equal(t, "noext.m4v", OutputName("noext", SuffixVideo))
}
