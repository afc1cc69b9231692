package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// LoadJSON reads a JSON file and unmarshals it into the target interface.
func LoadJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

// SaveJSON marshals the data and writes it to a JSON file.
func SaveJSON(path string, data interface{}) error {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	if err := os.WriteFile(path, bytes, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// StringList reads an array of strings at path ("" or "@this" for the root).
// Non-string elements are skipped. Invalid JSON or a non-array value yields nil.
func StringList(raw []byte, path string) []string {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return nil
	}
	if path == "" {
		path = "@this"
	}
	res := gjson.GetBytes(raw, path)
	if !res.IsArray() {
		return nil
	}
	out := make([]string, 0, len(res.Array()))
	res.ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String {
			out = append(out, v.Str)
		}
		return true
	})
	return out
}

// String reads a string at path; anything else yields "".
func String(raw []byte, path string) string {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return ""
	}
	res := gjson.GetBytes(raw, path)
	if res.Type != gjson.String {
		return ""
	}
	return res.Str
}
