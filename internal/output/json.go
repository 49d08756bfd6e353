package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONWriter emits one JSON object per record per line, suitable for piping
// into jq or similar tools.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, list List) error {
	enc := json.NewEncoder(w)
	for _, item := range list.Items {
		if err := enc.Encode(item.Value); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
	}
	return nil
}
