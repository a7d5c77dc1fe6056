package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s as UTF-8, leaving only
// A-Z a-z 0-9 and - _ . ! ~ * ' ( ) untouched.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3 / 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldKeep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

func shouldKeep(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// SVGDataURI returns svg as a percent-encoded image/svg+xml data URI.
func SVGDataURI(svg string) string {
	return "data:image/svg+xml," + EncodeURIComponent(svg)
}

// SerializeState encodes state as compact JSON, with double quotes replaced
// by &quot; for use in a double-quoted attribute. A nil state encodes as {}.
func SerializeState(state map[string]any) (string, error) {
	if state == nil {
		state = map[string]any{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(state); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	out := strings.TrimSuffix(buf.String(), "\n")
	return strings.ReplaceAll(out, `"`, "&quot;"), nil
}
