// Package parsing decodes yt-dlp output into typed records.
package parsing

import (
	"strconv"
	"strings"

	"ytprompt/internal/domain/command"
	"ytprompt/internal/models"
	"ytprompt/internal/utils"
	"ytprompt/internal/validation"
)

// ParseOutput groups yt-dlp's --print output into records.
//
// Lines are trimmed and read in groups of four (id, title, filesize_approx,
// duration_string). A trailing group with fewer than four lines is dropped.
// Field contents are not validated.
func ParseOutput(raw string) []models.Record {
	lines := utils.Lines(raw)
	n := len(lines) / command.PrintFieldCount

	records := make([]models.Record, 0, n)
	for i := range n {
		group := lines[i*command.PrintFieldCount : (i+1)*command.PrintFieldCount]
		records = append(records, models.Record{
			ID:       strings.TrimSpace(group[0]),
			Title:    strings.TrimSpace(group[1]),
			Bytes:    strings.TrimSpace(group[2]),
			Duration: strings.TrimSpace(group[3]),
		})
	}
	return records
}

// TotalDownloadBytes sums the byte counts of all records.
//
// Any byte count that is not a non-negative decimal integer (including yt-dlp's
// "NA" placeholder) fails the whole sum with a *validation.ParseError.
func TotalDownloadBytes(records []models.Record) (uint64, error) {
	var total uint64
	for _, r := range records {
		n, err := strconv.ParseUint(r.Bytes, 10, 64)
		if err != nil {
			return 0, &validation.ParseError{Field: "filesize_approx", Value: r.Bytes, Err: err}
		}
		if total+n < total {
			return 0, &validation.ParseError{Field: "filesize_approx", Value: r.Bytes, Err: strconv.ErrRange}
		}
		total += n
	}
	return total, nil
}
