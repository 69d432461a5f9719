package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every write out to all of its writers, e.g. stdout and the rotated log file.
type CombinedWriter struct {
	Writers []io.Writer
	// Err holds the errors of the last write, if any
	Err error
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

// Write returns the sum of bytes written by all writers. A failing writer
// does not stop the others, its error is appended to the returned one.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var n int
	var err error
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n += written
	}
	cw.Err = err
	return n, err
}
