// Package command holds the command-line flags of the external programs ytprompt drives.
package command

// yt-dlp
const (
	YTDLP          = "yt-dlp"
	Simulate       = "--simulate"
	NoSimulate     = "--no-simulate"
	NoAbortOnError = "--no-abort-on-error"
	Output         = "-o"
	FilenameSyntax = "%(title)s.%(ext)s"
	Print          = "--print"
	Format         = "--format"
	ExtractAudio   = "-x"
	AudioFormat    = "--audio-format"
	RemuxVideo     = "--remux-video"
	Version        = "--version"
)

// PrintFields is the field list passed to --print. The output parser reads
// yt-dlp's stdout in exactly this order, one field per line.
const PrintFields = "id,title,filesize_approx,duration_string"

// PrintFieldCount is the number of lines yt-dlp prints per item for PrintFields.
const PrintFieldCount = 4

// Format expressions.
const (
	FormatBestVideoAudio       = "bv*+ba/b"
	FormatBestVideoAudioCapped = "bv*[height<=%[1]s]+ba/b[height<=%[1]s]"
	FormatBestVideoOnly        = "bv"
	FormatBestVideoOnlyCapped  = "bv*[height<=%s]"
	FormatBestAudio            = "ba"
)

// FFmpeg
const (
	FFmpeg        = "ffmpeg"
	FFmpegVersion = "-version"
)
