package models

// Record is one item reported by yt-dlp's --print output.
type Record struct {
	ID       string
	Title    string
	Bytes    string // filesize_approx as printed, decimal
	Duration string // duration_string, e.g. "00:03:21"
}
