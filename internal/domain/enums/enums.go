// Package enums holds the closed option sets offered to the user.
package enums

// DownloadType selects which streams yt-dlp is asked for.
type DownloadType int

const (
	VideoWithAudio DownloadType = iota
	VideoOnly
	Audio
)

// downloadTypeOptions is ordered as presented to the user.
var downloadTypeOptions = []struct {
	t     DownloadType
	label string
}{
	{VideoWithAudio, "video(s) with audio"},
	{VideoOnly, "video(s) without audio"},
	{Audio, "audio(s) only"},
}

// DownloadTypeOptions returns the download type labels in display order.
func DownloadTypeOptions() []string {
	out := make([]string, 0, len(downloadTypeOptions))
	for _, o := range downloadTypeOptions {
		out = append(out, o.label)
	}
	return out
}

// LookupDownloadType returns the download type for a display label.
func LookupDownloadType(label string) (DownloadType, bool) {
	for _, o := range downloadTypeOptions {
		if o.label == label {
			return o.t, true
		}
	}
	return 0, false
}

// String returns the display label.
func (t DownloadType) String() string {
	for _, o := range downloadTypeOptions {
		if o.t == t {
			return o.label
		}
	}
	return "unknown"
}

// IsVideo reports whether the type requests a video stream.
func (t DownloadType) IsVideo() bool {
	return t == VideoWithAudio || t == VideoOnly
}

// DownloadQuality is the maximum accepted video height.
type DownloadQuality int

const (
	P360 DownloadQuality = iota
	P480
	P720
	P1024
	P2048
)

var downloadQualityOptions = []struct {
	q      DownloadQuality
	label  string
	height string
}{
	{P360, "360p", "360"},
	{P480, "480p", "480"},
	{P720, "720p", "720"},
	{P1024, "1024p", "1024"},
	{P2048, "2048p", "2048"},
}

// DownloadQualityOptions returns the quality labels in display order.
func DownloadQualityOptions() []string {
	out := make([]string, 0, len(downloadQualityOptions))
	for _, o := range downloadQualityOptions {
		out = append(out, o.label)
	}
	return out
}

// LookupDownloadQuality returns the quality for a display label.
func LookupDownloadQuality(label string) (DownloadQuality, bool) {
	for _, o := range downloadQualityOptions {
		if o.label == label {
			return o.q, true
		}
	}
	return 0, false
}

// String returns the display label (e.g. "720p").
func (q DownloadQuality) String() string {
	for _, o := range downloadQualityOptions {
		if o.q == q {
			return o.label
		}
	}
	return "unknown"
}

// Height returns the pixel height used in format expressions (e.g. "720").
func (q DownloadQuality) Height() string {
	for _, o := range downloadQualityOptions {
		if o.q == q {
			return o.height
		}
	}
	return ""
}
