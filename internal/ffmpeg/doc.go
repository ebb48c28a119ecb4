// Package ffmpeg runs the planned transcoder command and streams its
// combined output back line-by-line. It owns nothing about what the
// command contains; the planner decides that.
package ffmpeg
