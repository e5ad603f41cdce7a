package app

import (
	"os"

	"ytprompt/internal/domain/consts"

	"github.com/briandowns/spinner"
)

// Progress is shown while yt-dlp runs.
type Progress interface {
	Start()
	Stop()
}

type noProgress struct{}

func (noProgress) Start() {}
func (noProgress) Stop()  {}

// NewSpinner returns a spinner drawn on f. It only spins when f itself is a
// terminal, so redirecting stdout keeps the spinner on an interactive stderr.
func NewSpinner(f *os.File) Progress {
	return newSpinner(f)
}

func newSpinner(f *os.File) *spinner.Spinner {
	return spinner.New(spinner.CharSets[14], consts.SpinnerInterval, spinner.WithWriterFile(f))
}
