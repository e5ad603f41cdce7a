package validation

import (
	"errors"
	"fmt"
	"strings"

	"ytprompt/internal/domain/errconsts"
)

// Kind identifies what was wrong with the user's input.
type Kind int

const (
	NoURLs Kind = iota + 1
	MalformedURLs
	MissingDownloadType
	MissingQuality
)

var kindMessages = map[Kind]string{
	NoURLs:              errconsts.NoURLs,
	MalformedURLs:       errconsts.MalformedURLs,
	MissingDownloadType: errconsts.MissingDownloadType,
	MissingQuality:      errconsts.MissingQuality,
}

// String returns the user-facing message for the kind.
func (k Kind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("validation kind %d", int(k))
}

// ValidationError is a user input problem detected before yt-dlp is run.
type ValidationError struct {
	Kind Kind
}

// Error implements error.
func (e *ValidationError) Error() string {
	return e.Kind.String()
}

// Is matches any *ValidationError of the same kind.
func (e *ValidationError) Is(target error) bool {
	var t *ValidationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrNoURLs              = &ValidationError{Kind: NoURLs}
	ErrMalformedURLs       = &ValidationError{Kind: MalformedURLs}
	ErrMissingDownloadType = &ValidationError{Kind: MissingDownloadType}
	ErrMissingQuality      = &ValidationError{Kind: MissingQuality}
)

// InvocationError is returned when yt-dlp exits with a non-zero status.
type InvocationError struct {
	Stderr string
	Err    error
}

// Error returns yt-dlp's standard error output.
func (e *InvocationError) Error() string {
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		return msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "yt-dlp failed"
}

// Unwrap returns the underlying exit error.
func (e *InvocationError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a numeric field of a parsed record is not a
// non-negative integer.
type ParseError struct {
	Field string
	Value string
	Err   error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf(errconsts.InvalidByteCount, e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying conversion error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrDependencyMissing is wrapped by every DependencyError.
var ErrDependencyMissing = errors.New("required program missing")

// DependencyError reports an external program that cannot be run.
type DependencyError struct {
	Binary     string
	InstallURL string
	Err        error
}

// Error implements error.
func (e *DependencyError) Error() string {
	return fmt.Sprintf(errconsts.DependencyMissing, e.Binary, e.Err, e.InstallURL)
}

// Is matches ErrDependencyMissing.
func (e *DependencyError) Is(target error) bool {
	return target == ErrDependencyMissing
}

// Unwrap returns the spawn or probe error.
func (e *DependencyError) Unwrap() error {
	return e.Err
}
