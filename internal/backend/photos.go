package backend

import (
	"bytes"
	"encoding/json"
	"strings"
)

// PhotoField decodes the backend's photos field, which arrives in one of
// several shapes: a native JSON array of strings, a JSON-encoded string
// containing such an array, an empty or placeholder string, or nothing at all.
// The union is resolved once here at the boundary; everything downstream sees
// a plain ordered slice of URL strings.
type PhotoField struct {
	URLs []string
	// Malformed records that the field was present but undecodable, so the
	// caller can log it. Undecodable input is treated as empty, never as an
	// error.
	Malformed bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PhotoField) UnmarshalJSON(data []byte) error {
	p.URLs = nil
	p.Malformed = false

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	// Native array form.
	if data[0] == '[' {
		urls, ok := decodeStringArray(data)
		p.URLs = urls
		p.Malformed = !ok
		return nil
	}

	// String form: either empty/placeholder or a JSON-encoded array.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			p.Malformed = true
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" || s == "[]" {
			return nil
		}
		urls, ok := decodeStringArray([]byte(s))
		p.URLs = urls
		p.Malformed = !ok
		return nil
	}

	p.Malformed = true
	return nil
}

// MarshalJSON implements json.Marshaler, always emitting the array form.
func (p PhotoField) MarshalJSON() ([]byte, error) {
	if p.URLs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.URLs)
}

// decodeStringArray parses a JSON array keeping only string elements.
// Returns ok=false if the input is not a JSON array at all.
func decodeStringArray(data []byte) ([]string, bool) {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false
	}

	var urls []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			urls = append(urls, s)
		}
	}
	return urls, true
}
