// Package builder turns the user's download choices into yt-dlp arguments.
package builder

import (
	"errors"
	"fmt"

	"ytprompt/internal/domain/command"
	"ytprompt/internal/domain/enums"
	"ytprompt/internal/utils/logging"
	"ytprompt/internal/validation"

	"github.com/alessio/shellescape"
)

// ErrBuilderConsumed is returned when Build is called more than once.
var ErrBuilderConsumed = errors.New("download builder already built")

// DownloadBuilder accumulates download choices and renders them into a
// yt-dlp argument list. A builder is single use.
type DownloadBuilder struct {
	simulate     bool
	downloadType *enums.DownloadType
	quality      *enums.DownloadQuality
	extension    *string
	urls         []string

	requireQuality bool
	outputTemplate string
	consumed       bool
}

// Option configures a DownloadBuilder.
type Option func(*DownloadBuilder)

// WithRequireQuality makes Build fail with a missing quality error when a video
// download type has no quality set.
func WithRequireQuality(require bool) Option {
	return func(b *DownloadBuilder) {
		b.requireQuality = require
	}
}

// WithOutputTemplate overrides the yt-dlp output filename template.
func WithOutputTemplate(tmpl string) Option {
	return func(b *DownloadBuilder) {
		if tmpl != "" {
			b.outputTemplate = tmpl
		}
	}
}

// NewDownloadBuilder returns an empty builder.
func NewDownloadBuilder(opts ...Option) *DownloadBuilder {
	b := &DownloadBuilder{
		outputTemplate: command.FilenameSyntax,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetSimulate sets whether yt-dlp only reports what it would download.
func (b *DownloadBuilder) SetSimulate(simulate bool) *DownloadBuilder {
	b.simulate = simulate
	return b
}

// SetDownloadType sets the requested streams.
func (b *DownloadBuilder) SetDownloadType(t enums.DownloadType) *DownloadBuilder {
	b.downloadType = &t
	return b
}

// SetQuality sets the maximum video height.
func (b *DownloadBuilder) SetQuality(q enums.DownloadQuality) *DownloadBuilder {
	b.quality = &q
	return b
}

// SetExtension sets the output extension (audio conversion or video remux target).
func (b *DownloadBuilder) SetExtension(ext string) *DownloadBuilder {
	b.extension = &ext
	return b
}

// SetURLs validates newline separated URL input and stores the URLs.
//
// On error the previously stored URLs are kept.
func (b *DownloadBuilder) SetURLs(raw string) error {
	urls, err := validation.ValidateURLs(raw)
	if err != nil {
		return err
	}
	b.urls = urls
	return nil
}

// Build validates the accumulated choices and returns the yt-dlp arguments.
func (b *DownloadBuilder) Build() ([]string, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	if b.downloadType == nil {
		return nil, validation.ErrMissingDownloadType
	}
	if len(b.urls) == 0 {
		return nil, validation.ErrNoURLs
	}
	dlType := *b.downloadType
	if b.requireQuality && dlType.IsVideo() && b.quality == nil {
		return nil, validation.ErrMissingQuality
	}

	simulate := command.NoSimulate
	if b.simulate {
		simulate = command.Simulate
	}

	args := make([]string, 0, 11+len(b.urls))
	args = append(args, simulate, command.NoAbortOnError)
	args = append(args, command.Output, b.outputTemplate)
	args = append(args, command.Print, command.PrintFields)
	args = append(args, command.Format, FormatExpression(dlType, b.quality))

	if b.extension != nil {
		switch dlType {
		case enums.Audio:
			args = append(args, command.ExtractAudio, command.AudioFormat, *b.extension)
		default:
			args = append(args, command.RemuxVideo, *b.extension)
		}
	}

	args = append(args, b.urls...)

	logging.D(1, "Built argument list: %s", shellescape.QuoteCommand(append([]string{command.YTDLP}, args...)))
	return args, nil
}

// FormatExpression returns the yt-dlp --format selector for a download type
// and optional height ceiling. Audio ignores the quality.
func FormatExpression(t enums.DownloadType, q *enums.DownloadQuality) string {
	switch t {
	case enums.VideoWithAudio:
		if q != nil {
			return fmt.Sprintf(command.FormatBestVideoAudioCapped, q.Height())
		}
		return command.FormatBestVideoAudio
	case enums.VideoOnly:
		if q != nil {
			return fmt.Sprintf(command.FormatBestVideoOnlyCapped, q.Height())
		}
		return command.FormatBestVideoOnly
	default:
		return command.FormatBestAudio
	}
}
