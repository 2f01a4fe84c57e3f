package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// UnmarshalFlex decodes LLM-produced JSON with best effort. Models sometimes
// return double-escaped unicode sequences or a JSON string wrapping the real
// payload; a direct unmarshal is tried first, then a normalized pass.
func UnmarshalFlex(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err == nil {
		return nil
	}
	norm, err := Normalize(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(norm, v)
}

// UnmarshalRaw is UnmarshalFlex for json.RawMessage inputs.
func UnmarshalRaw(raw json.RawMessage, v any) error {
	return UnmarshalFlex([]byte(raw), v)
}

// MarshalNoEscape encodes v without escaping <, >, & into < style
// sequences.
func MarshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Normalize parses raw JSON, unwrapping string-quoted payloads and recursively
// unescaping leftover \\uXXXX sequences inside string values.
func Normalize(raw []byte) ([]byte, error) {
	var val any
	if err := json.Unmarshal(raw, &val); err != nil {
		var s string
		if err2 := json.Unmarshal(raw, &s); err2 != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(s), &val); err != nil {
			return nil, errors.New("jsonutil: payload is neither JSON nor a JSON-quoted document")
		}
	} else if s, ok := val.(string); ok {
		// The whole document decoded to a single string; try unwrapping once.
		var inner any
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			val = inner
		}
	}
	return MarshalNoEscape(unescapeDeep(val))
}

func unescapeDeep(v any) any {
	switch x := v.(type) {
	case string:
		if out, err := unescapeString(x); err == nil {
			return out
		}
		return x
	case []any:
		for i := range x {
			x[i] = unescapeDeep(x[i])
		}
		return x
	case map[string]any:
		for k, vv := range x {
			x[k] = unescapeDeep(vv)
		}
		return x
	default:
		return v
	}
}

// unescapeString turns literal sequences like ">" inside s into their
// characters by round-tripping through a quoted JSON string.
func unescapeString(s string) (string, error) {
	esc := strings.ReplaceAll(s, `\`, `\\`)
	esc = strings.ReplaceAll(esc, `"`, `\"`)
	var out string
	if err := json.Unmarshal([]byte(`"`+esc+`"`), &out); err != nil {
		return "", err
	}
	return out, nil
}
