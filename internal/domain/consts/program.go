// Package consts holds various global, unchanging values.
package consts

import "time"

// Program identity.
const (
	ProgramName = "ytprompt"
)

// Intervals.
const (
	SpinnerInterval = 100 * time.Millisecond
)

// Logging.
const (
	LogMaxSizeMB  = 1
	LogMaxBackups = 3
)

// Prompt messages.
const (
	PromptDownloadType = "What do you want to download ?"
	PromptQuality      = "In which quality ?"
	PromptExtension    = "In which extension ? (enter for default)"
	PromptURLs         = "Input your url(s)"
	PromptURLsSeed     = "# Each url separated by a new line."
)

// Install locations printed when an external program is missing.
const (
	YTDLPInstallURL  = "https://github.com/yt-dlp/yt-dlp"
	FFmpegInstallURL = "https://www.ffmpeg.org"
)
