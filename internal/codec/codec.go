// Package codec converts domain records to and from the textual form kept in
// the key-value store.
package codec

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Encode returns the JSON text of v.
func Encode[T any](v T) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("codec: encode %T: %w", v, err)
	}
	return string(b), nil
}

// Decode parses s into a fresh T.
func Decode[T any](s string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return v, fmt.Errorf("codec: decode %T: %w", v, err)
	}
	return v, nil
}
