// Package planner turns a stream selection and run options into a complete
// ffmpeg argument list. It is the central decision matrix of the tool:
// output-container derivation, codec-specific copy-vs-transcode policy,
// multi-track audio layout, and the positional ordering ffmpeg requires
// (maps and metadata before per-stream codec options) all live here.
//
// Planning is invocation-invariant: the same Plan is produced whether it is
// executed or only rendered for --dump.
package planner
