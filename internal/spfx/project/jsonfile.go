package project

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// JSONFile is a parsed JSON document whose top level is an object.
type JSONFile struct {
	RelPath string
	Data    map[string]interface{}
}

// ParseJSONFile strips // comments from content and decodes it.
func ParseJSONFile(relPath string, content []byte) (*JSONFile, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(StripSingleLineComments(content), &data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", relPath, err)
	}
	if data == nil {
		return nil, fmt.Errorf("failed to parse %s: top level value is not an object", relPath)
	}
	return &JSONFile{RelPath: relPath, Data: data}, nil
}

// Lookup walks nested objects following keys and returns the value found.
func (f *JSONFile) Lookup(keys ...string) (interface{}, bool) {
	if f == nil {
		return nil, false
	}
	var current interface{} = f.Data
	for _, key := range keys {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// String returns the string stored under keys, or "" when it is missing or
// not a string.
func (f *JSONFile) String(keys ...string) string {
	v, ok := f.Lookup(keys...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// StripSingleLineComments removes // comments that are not part of a string
// literal. Line breaks are preserved so decoder offsets still map to lines.
func StripSingleLineComments(content []byte) []byte {
	content = bytes.TrimPrefix(content, utf8BOM)

	out := make([]byte, 0, len(content))
	inString := false
	escaped := false
	for i := 0; i < len(content); i++ {
		c := content[i]
		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			out = append(out, c)
			continue
		}
		if c == '/' && i+1 < len(content) && content[i+1] == '/' {
			for i < len(content) && content[i] != '\n' {
				i++
			}
			if i < len(content) {
				out = append(out, '\n')
			}
			continue
		}
		out = append(out, c)
	}
	return out
}
