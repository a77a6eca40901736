package utils

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iancoleman/strcase"
)

// KeysToCamel renames every map key in v to lowerCamelCase, descending
// into nested maps and slices. Non-map values are returned unchanged.
func KeysToCamel(v any) any {
	return renameKeys(v, strcase.ToLowerCamel)
}

func renameKeys(v any, rename func(string) string) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[rename(k)] = renameKeys(val, rename)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = renameKeys(val, rename)
		}
		return out
	default:
		return v
	}
}

// DecodeBody reads a JSON object from r, normalizes its keys to camelCase
// and binds it into dst. The normalized map is returned so handlers can echo
// what the client sent.
func DecodeBody(r io.Reader, dst any) (map[string]any, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}

	body, _ := KeysToCamel(raw).(map[string]any)

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("re-encode body: %w", err)
	}
	if err := json.Unmarshal(encoded, dst); err != nil {
		return nil, fmt.Errorf("bind body: %w", err)
	}

	return body, nil
}
