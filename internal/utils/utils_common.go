// Package utils holds various utility functions.
package utils

import "strings"

// Lines splits s on line boundaries. A trailing newline does not produce an
// empty final line, and a "\r" before each "\n" is dropped.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}
