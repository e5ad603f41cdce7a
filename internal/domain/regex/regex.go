// Package regex compiles and caches various regex expressions.
package regex

import (
	"regexp"
	"sync"
)

var (
	urlList     *regexp.Regexp
	urlListOnce sync.Once
)

// URLListCompile compiles regex for a newline separated list of http(s) URLs.
//
// Each line must be a single whitespace-free URL, and the whole text must match.
// Unicode separators and NEL count as whitespace.
func URLListCompile() *regexp.Regexp {
	urlListOnce.Do(func() {
		urlList = regexp.MustCompile(`^(https?://[^\s\p{Z}\x{85}/$.?#].[^\s\p{Z}\x{85}]*\n?)+$`)
	})
	return urlList
}
