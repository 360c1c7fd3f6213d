package notes

import (
	"fmt"
	"regexp"
	"strings"

	"charter-quote-service/internal/domain"
)

var (
	reDayMarker   = regexp.MustCompile(`Day \d+:`)
	reTripDate    = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)
	reTripWindow  = regexp.MustCompile(`from (\d{2}:\d{2}) to (\d{2}:\d{2})`)
	reDropoffLine = regexp.MustCompile(`^Drop-off \d+:`)
)

// FormatTripDays serializes trip days into the plain-text encoding
// stored in the quote row's trip-days field:
//
//	Day 1: 2026-02-15 from 09:00 to 17:00 (overnight)
//	  Pick-up: <location>
//	  Drop-off 1: <location>
//
// Days are separated by a blank line.
func FormatTripDays(days []domain.TripDay) string {
	blocks := make([]string, 0, len(days))

	for i, day := range days {
		var b strings.Builder

		overnight := ""
		if day.EndsNextDay {
			overnight = " (overnight)"
		}

		fmt.Fprintf(&b, "Day %d: %s from %s to %s%s\n",
			i+1, day.Date, day.StartTime, day.EndTime, overnight)
		fmt.Fprintf(&b, "  Pick-up: %s", day.Pickup)
		for j, drop := range day.Dropoffs {
			fmt.Fprintf(&b, "\n  Drop-off %d: %s", j+1, drop)
		}

		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n\n")
}

// ParseTripDays reconstructs trip days from the stored text encoding.
//
// A day block is discarded entirely when its first line lacks a
// parseable date and time window, or when the parsed day ends up with
// an empty pickup or zero drop-offs. Malformed blocks are dropped
// silently, so the result may be shorter than the number of day
// markers in the input.
func ParseTripDays(text string) []domain.TripDay {
	var days []domain.TripDay

	for _, block := range reDayMarker.Split(text, -1) {
		lines := nonBlankLines(block)
		if len(lines) == 0 {
			continue
		}

		first := lines[0]
		date := reTripDate.FindStringSubmatch(first)
		window := reTripWindow.FindStringSubmatch(first)
		if date == nil || window == nil {
			continue
		}

		day := domain.TripDay{
			Date:        date[1],
			StartTime:   window[1],
			EndTime:     window[2],
			EndsNextDay: strings.Contains(first, "(overnight)"),
		}

		for _, line := range lines[1:] {
			if rest, ok := strings.CutPrefix(line, "Pick-up:"); ok {
				day.Pickup = strings.TrimSpace(rest)
				continue
			}
			if loc := reDropoffLine.FindString(line); loc != "" {
				drop := strings.TrimSpace(line[len(loc):])
				if drop != "" {
					day.Dropoffs = append(day.Dropoffs, drop)
				}
			}
		}

		if day.Complete() {
			days = append(days, day)
		}
	}

	return days
}

// nonBlankLines splits a block into trimmed, non-empty lines.
func nonBlankLines(block string) []string {
	var out []string
	for _, raw := range strings.Split(block, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			out = append(out, line)
		}
	}
	return out
}
