package cli

import (
	"bytes"
	"context"
	"io"
)

// Terminal prints messages and a status line which is updated in place.
// Messages are printed above the status, so progress output and regular
// messages do not interleave.
type Terminal interface {
	Print(msg string)
	Printf(msg string, data ...interface{})
	Error(msg string)
	Errorf(msg string, data ...interface{})
	SetStatus(lines []string)
	Run(ctx context.Context)
}

// StdioWrapper provides stdout and stderr integration with a Terminal:
// data written to the returned writers is printed through the terminal,
// line by line, so it does not garble the status.
type StdioWrapper struct {
	stdout *lineWriter
	stderr *lineWriter
}

// NewStdioWrapper initializes a new stdio wrapper for term.
func NewStdioWrapper(term Terminal) *StdioWrapper {
	return &StdioWrapper{
		stdout: &lineWriter{print: term.Print},
		stderr: &lineWriter{print: term.Error},
	}
}

// Stdout returns a writer which prints through the terminal.
func (w *StdioWrapper) Stdout() io.WriteCloser {
	return w.stdout
}

// Stderr returns a writer which prints errors through the terminal.
func (w *StdioWrapper) Stderr() io.WriteCloser {
	return w.stderr
}

type lineWriter struct {
	buf   bytes.Buffer
	print func(string)
}

var _ io.WriteCloser = &lineWriter{}

func (w *lineWriter) Write(data []byte) (n int, err error) {
	n, err = w.buf.Write(data)
	if err != nil {
		return n, err
	}

	// print all complete lines
	buf := w.buf.Bytes()
	skip := 0
	for {
		idx := bytes.IndexByte(buf, '\n')
		if idx < 0 {
			break
		}

		w.print(string(buf[:idx+1]))
		buf = buf[idx+1:]
		skip += idx + 1
	}

	w.buf.Next(skip)

	return n, err
}

func (w *lineWriter) Close() error {
	if w.buf.Len() > 0 {
		w.print(string(append(w.buf.Bytes(), '\n')))
	}

	return nil
}
