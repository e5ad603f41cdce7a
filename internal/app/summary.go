package app

import (
	"io"
	"time"

	"ytprompt/internal/utils/times"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// Summary is what a successful run reports.
type Summary struct {
	TotalBytes uint64
	Elapsed    time.Duration
	Count      int
}

// WriteSummary prints the total size in decimal units, the time spent and the item count.
func WriteSummary(w io.Writer, s Summary) error {
	label := color.New(color.FgCyan)
	if _, err := label.Fprint(w, "Total size: "); err != nil {
		return err
	}
	if _, err := io.WriteString(w, humanize.Bytes(s.TotalBytes)+"\n"); err != nil {
		return err
	}
	if _, err := label.Fprint(w, "Time spent: "); err != nil {
		return err
	}
	if _, err := io.WriteString(w, times.HumanDuration(s.Elapsed)+"\n"); err != nil {
		return err
	}
	_, err := color.New(color.FgGreen).Fprintf(w, "Downloaded %d videos\n", s.Count)
	return err
}
