package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrInputClosed = errors.New("input closed")

// lineReader scans lines on its own goroutine so that a pending read can be
// abandoned when the context is cancelled.
type lineReader struct {
	lines chan string
	done  chan struct{}
	err   error
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go lr.scan(r)
	return lr
}

func (lr *lineReader) scan(r io.Reader) {
	defer close(lr.lines)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lr.lines <- scanner.Text():
		case <-lr.done:
			return
		}
	}
	lr.err = scanner.Err()
}

// ReadLine returns the next line with surrounding whitespace removed.
func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", fmt.Errorf("failed to read input: %w", lr.err)
			}
			return "", ErrInputClosed
		}
		return strings.TrimSpace(line), nil
	}
}

func (lr *lineReader) Close() {
	close(lr.done)
}
