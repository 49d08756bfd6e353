package output

import (
	"fmt"
	"io"
)

// TextWriter prints each record's text block on its own line. This is the
// default, line-per-record format.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, list List) error {
	ew := &errWriter{w: w}
	for _, item := range list.Items {
		ew.println(item.Text)
	}
	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
