package probe

// VideoStreamInfo holds the parsed properties of a single video stream.
// Index is the stream's position among video streams in the container.
type VideoStreamInfo struct {
	Index  int
	Codec  string
	Width  int
	Height int
}

// AudioStreamInfo holds the parsed properties of a single audio stream.
// Language is a lower-cased ISO code, normalized to "eng" when the
// container carries no tag or marks it undetermined.
type AudioStreamInfo struct {
	Index    int
	Codec    string
	Channels int
	Language string
	Title    string
}

// SubtitleStreamInfo holds the parsed properties of a single subtitle
// stream. Populated only when subtitle inclusion is requested.
type SubtitleStreamInfo struct {
	Index           int
	Codec           string
	Language        string
	Title           string
	Forced          bool
	HearingImpaired bool
}

// MediaInfo is the fully parsed output of a single ffprobe JSON call.
// It is immutable once built; selection and planning read it only.
type MediaInfo struct {
	Filename string
	Duration int // whole seconds
	Video    []VideoStreamInfo
	Audio    []AudioStreamInfo
	Subtitle []SubtitleStreamInfo
}

// HasStreams reports whether any stream of any type was found.
func (m *MediaInfo) HasStreams() bool {
	return len(m.Video) > 0 || len(m.Audio) > 0 || len(m.Subtitle) > 0
}
