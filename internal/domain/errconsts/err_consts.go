// Package errconsts holds constant error messages
package errconsts

// Programs
const (
	YTDLPFailure      = "yt-dlp command failed: %w"
	DependencyMissing = "%s is not usable (%v), install it from %s"
)

// Validation
const (
	NoURLs              = "no urls provided"
	MalformedURLs       = "urls aren't properly formatted"
	MissingDownloadType = "download type isn't set"
	MissingQuality      = "quality isn't set"
)

// Parsing
const (
	InvalidByteCount = "invalid %s %q: %v"
)
