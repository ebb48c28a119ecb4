package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/backmassage/m4vify/internal/planner"
)

// Execute runs the plan's command, merging stdout and stderr into a single
// stream that is scanned incrementally; each line (ffmpeg terminates status
// updates with \r, everything else with \n) is handed to onLine as it
// arrives. The blocking read on the child's output is the only suspension
// point in the pipeline.
//
// A non-zero exit is returned as an error; any partial output file is left
// in place for the user to inspect or discard.
func Execute(ctx context.Context, plan *planner.Plan, onLine func(string)) error {
	cmd := exec.CommandContext(ctx, plan.Args[0], plan.Args[1:]...)

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		return fmt.Errorf("start %s: %w", plan.Args[0], err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(pr)
		scanner.Split(scanStatusLines)
		for scanner.Scan() {
			if onLine != nil {
				onLine(scanner.Text())
			}
		}
	}()

	err := cmd.Wait()
	pw.Close()
	<-done

	if err != nil {
		return fmt.Errorf("%s: %w", plan.Args[0], err)
	}
	return nil
}

// scanStatusLines is a bufio.SplitFunc that treats both \n and \r as line
// terminators. ffmpeg repaints its status line with bare carriage returns,
// so a newline-only scanner would sit on the progress output until exit.
func scanStatusLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
