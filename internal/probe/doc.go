// Package probe runs ffprobe against input files and converts its JSON
// output into the normalized MediaInfo consumed by stream selection.
//
// Stream indices are per-type container positions (the Nth video, Nth
// audio, Nth subtitle stream), not the global stream index ffprobe
// reports, because ffmpeg's -map 0:a:N syntax addresses streams by
// per-type position.
package probe
