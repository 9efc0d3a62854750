package utils

import "strings"

// ApplyFieldMutators rewrites value using [from1, to1, from2, to2, ...] pairs.
// Only exact matches are rewritten and the first matching pair wins.
func ApplyFieldMutators(value string, mapping []string) string {
	if len(mapping) < 2 {
		return value
	}
	for i := 0; i+1 < len(mapping); i += 2 {
		if value == mapping[i] {
			return mapping[i+1]
		}
	}
	return value
}

// IsRemote reports whether urlOrPath names an http(s) resource
func IsRemote(urlOrPath string) bool {
	return strings.HasPrefix(urlOrPath, "http://") || strings.HasPrefix(urlOrPath, "https://")
}
