// Package writer contains the output sink for generated words.
package writer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// fileBufferSize is the buffer in front of the output file. Words are a few
// bytes each, writing them straight to the file would be dominated by
// syscalls.
const fileBufferSize = 1 << 20

// Writer writes words to a sink, one word per line.
type Writer struct {
	wr    io.Writer
	flush func() error
	close func() error
}

// New returns a writer which writes to wr without buffering, so a consumer
// sees every word as soon as it is generated.
func New(wr io.Writer) *Writer {
	return &Writer{wr: wr}
}

// NewFile returns a writer which writes to filename through a buffer. The
// file is created, an existing file is truncated.
func NewFile(filename string) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	buf := bufio.NewWriterSize(f, fileBufferSize)

	return &Writer{wr: buf, flush: buf.Flush, close: f.Close}, nil
}

// Run reads words from in, writes each word as one line to the sink and
// forwards it to out. Run returns when in is closed or the context is
// cancelled. A failed write aborts immediately and the error is returned as
// the sink reported it.
func (w *Writer) Run(ctx context.Context, in <-chan string, out chan<- string) error {
	defer close(out)

	for {
		var v string
		var ok bool

		select {
		case <-ctx.Done():
			return w.Flush()
		case v, ok = <-in:
			// when the input channel is closed we're done
			if !ok {
				return w.Flush()
			}
		}

		_, err := fmt.Fprintln(w.wr, v)
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return w.Flush()
		case out <- v:
		}
	}
}

// Flush writes buffered words to the underlying file.
func (w *Writer) Flush() error {
	if w.flush == nil {
		return nil
	}

	return w.flush()
}

// Close flushes buffered words and closes the underlying file, if any.
func (w *Writer) Close() error {
	err := w.Flush()

	if w.close != nil {
		cerr := w.close()
		if err == nil {
			err = cerr
		}
	}

	return err
}
