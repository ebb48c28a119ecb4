package planner

// subtitleCodecOpts returns the codec tokens for a selected subtitle
// stream. MP4 only carries text subtitles as mov_text, so the selected
// track is always transcoded rather than copied.
func subtitleCodecOpts() []string {
	return []string{"-c:s", "mov_text"}
}
