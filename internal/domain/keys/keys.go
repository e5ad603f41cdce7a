// Package keys holds various keys for software operations, such as terminal input keys and internal Viper keys.
package keys

// Download behavior.
const (
	Simulate       string = "simulate"
	RequireQuality string = "require-quality"
	OutputTemplate string = "output-template"
)

// External programs.
const (
	YTDLPPath  string = "ytdlp-path"
	FFmpegPath string = "ffmpeg-path"
)

// Program inputs.
const (
	ConfigFile   string = "config-file"
	Benchmarking string = "benchmark"
)

// Internal.
const (
	Execute string = "execute"
)

// Logging.
const (
	DebugLevel string = "debug-level"
	LogFormat  string = "log-format"
)

// EnvPrefix is the prefix for environment variables read by Viper (e.g. YTPROMPT_SIMULATE).
const EnvPrefix = "ytprompt"
