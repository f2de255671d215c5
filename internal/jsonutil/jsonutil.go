// Package jsonutil provides small helpers for JSON parsing: contextual
// error wrapping and safe map access.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// GetStringOr extracts a string value from a decoded JSON object, falling
// back to defaultValue when the key is missing or not a string.
func GetStringOr(m map[string]interface{}, key string, defaultValue string) string {
	if val, ok := m[key].(string); ok && val != "" {
		return val
	}
	return defaultValue
}
