package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Item is one printable record: a human-readable text block, table cells,
// and the value serialized by the JSON writer.
type Item struct {
	Text  string
	Row   []string
	Value any
}

// List is a prepared sequence of records sharing one column layout.
type List struct {
	Columns []string
	Items   []Item
}

// Writer writes a record list in a specific format.
type Writer interface {
	Write(w io.Writer, list List) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "table":
		return &TableWriter{Styled: isatty.IsTerminal(os.Stdout.Fd())}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteList writes the list to outPath, or to stdout when outPath is empty.
func WriteList(list List, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, list)
}
