// Package format renders CLI command output. Everything is strict
// JSON so the commands stay scriptable; human-oriented rendering lives
// in the TUI.
package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON writes v as a single JSON document followed by a newline.
// Commands wrap their payload in a {"data": ...} envelope so extra
// top-level keys can be added later without breaking consumers.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
