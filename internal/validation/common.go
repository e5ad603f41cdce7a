// Package validation handles validation of user input.
package validation

import (
	"fmt"
	"strings"
	"unicode"

	"ytprompt/internal/domain/enums"
	"ytprompt/internal/domain/keys"
	"ytprompt/internal/domain/regex"
	"ytprompt/internal/utils"
	"ytprompt/internal/utils/logging"

	"github.com/spf13/viper"
)

// ValidateURLs parses newline separated URL input.
//
// Comment lines are dropped, the remaining lines are trimmed and re-joined, and
// the result must be a list of bare http(s) URLs, one per line. Lines are
// trimmed before the '#' test, so indented comments are dropped too.
//
// Any Unicode whitespace inside a URL makes the input malformed.
func ValidateURLs(raw string) ([]string, error) {
	kept := make([]string, 0)
	for _, line := range utils.Lines(raw) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}

	joined := strings.Join(kept, "\n")
	if joined == "" {
		return nil, ErrNoURLs
	}

	for _, line := range kept {
		if strings.IndexFunc(line, unicode.IsSpace) >= 0 {
			logging.D(1, "Rejected URL line with whitespace %q", line)
			return nil, ErrMalformedURLs
		}
	}

	if !regex.URLListCompile().MatchString(joined) {
		logging.D(1, "Rejected URL input %q", joined)
		return nil, ErrMalformedURLs
	}

	return utils.Lines(joined), nil
}

// ParseDownloadType maps a prompt label back to its download type.
func ParseDownloadType(label string) (enums.DownloadType, error) {
	t, ok := enums.LookupDownloadType(label)
	if !ok {
		return 0, ErrMissingDownloadType
	}
	return t, nil
}

// ParseDownloadQuality maps a prompt label back to its quality.
func ParseDownloadQuality(label string) (enums.DownloadQuality, error) {
	q, ok := enums.LookupDownloadQuality(label)
	if !ok {
		return 0, ErrMissingQuality
	}
	return q, nil
}

// NormalizeExtension trims whitespace and a leading dot from a user entered extension.
func NormalizeExtension(e string) string {
	e = strings.TrimSpace(e)
	e = strings.TrimPrefix(e, ".")
	return strings.ToLower(e)
}

// ValidateViperFlags verifies that the user input flags are valid, modifying them to defaults where needed.
func ValidateViperFlags() error {
	ValidateLoggingLevel()

	switch f := viper.GetString(keys.LogFormat); f {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log format %q, expected console or json", f)
	}

	if viper.GetString(keys.YTDLPPath) == "" {
		return fmt.Errorf("%s cannot be empty", keys.YTDLPPath)
	}
	if viper.GetString(keys.FFmpegPath) == "" {
		return fmt.Errorf("%s cannot be empty", keys.FFmpegPath)
	}
	return nil
}

// ValidateLoggingLevel checks and validates the debug level.
func ValidateLoggingLevel() {
	l := min(max(viper.GetInt(keys.DebugLevel), 0), 5)
	viper.Set(keys.DebugLevel, l)
	logging.Level = l
}
