// Package progress turns ffmpeg's live status lines into a fractional
// completion value. ffmpeg prints "time=HH:MM:SS.ss" in its -stats output;
// everything else on the stream is noise and is skipped explicitly rather
// than swallowed by a blanket recover.
package progress

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/backmassage/m4vify/internal/display"
)

var timestampRe = regexp.MustCompile(`time=(\d+):(\d{2}):(\d{2})`)

const barWidth = 40

// ParseTimestamp extracts the elapsed encode time from one ffmpeg status
// line. The boolean result is the explicit matched/unmatched signal; an
// unmatched line is a normal outcome, not an error.
func ParseTimestamp(line string) (seconds int, ok bool) {
	m := timestampRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	h, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	min, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	s, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, false
	}
	return h*3600 + min*60 + s, true
}

// Monitor tracks encode progress against a fixed total duration and paints
// a terminal bar. Total is duration+1 so a zero-length probe result never
// divides by zero.
type Monitor struct {
	total   int
	current int
	out     io.Writer
	paint   bool // repaint a bar in place (TTY); otherwise stay silent
	dirty   bool // a bar has been painted and needs a final newline
}

// NewMonitor creates a Monitor for a file of durationSeconds. Bar painting
// is enabled only when tty is true; out is normally os.Stdout.
func NewMonitor(durationSeconds int, out io.Writer, tty bool) *Monitor {
	return &Monitor{
		total: durationSeconds + 1,
		out:   out,
		paint: tty,
	}
}

// Observe consumes one line of transcoder output. Lines without a
// parseable timestamp are skipped silently.
func (m *Monitor) Observe(line string) {
	sec, ok := ParseTimestamp(line)
	if !ok {
		return
	}
	if sec > m.total {
		sec = m.total
	}
	m.current = sec
	m.repaint()
}

// Fraction returns completion in 0..1.
func (m *Monitor) Fraction() float64 {
	return float64(m.current) / float64(m.total)
}

// Percent returns completion as whole percent.
func (m *Monitor) Percent() int {
	return int(m.Fraction() * 100)
}

// Finish pins progress to 100% and terminates the bar line. Call after the
// transcoder process has exited successfully.
func (m *Monitor) Finish() {
	m.current = m.total
	m.repaint()
	if m.dirty {
		fmt.Fprintln(m.out)
		m.dirty = false
	}
}

func (m *Monitor) repaint() {
	if !m.paint {
		return
	}
	fmt.Fprintf(m.out, "\r%s %3d%%", display.Bar(m.Fraction(), barWidth), m.Percent())
	m.dirty = true
}
