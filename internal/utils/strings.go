package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TrimDedupe trims every entry, drops empties and keeps the first occurrence of each value.
func TrimDedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

// FoldFrench trims and lowercases s with French casing rules.
func FoldFrench(s string) string {
	return cases.Lower(language.French).String(strings.TrimSpace(s))
}

// ContainsString reports whether list holds s.
func ContainsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
