package domain

import "strings"

// Represents one calendar day of a possibly multi-day charter itinerary.
// A TripDay has a single pickup location and an ordered sequence of
// drop-off stops, plus the time window the vehicle is booked for.
// EndsNextDay marks a window that crosses midnight into the next
// calendar day.
//
// A TripDay is immutable once route computation has run against it.
type TripDay struct {
	Date        string // "2006-01-02" formatted date
	StartTime   string // "HH:MM" 24-hour clock
	EndTime     string // "HH:MM" 24-hour clock
	EndsNextDay bool
	Pickup      string
	Dropoffs    []string
}

// Locations returns the ordered location sequence for the day:
// pickup first, then every drop-off. Consecutive pairs of this
// sequence are the day's legs.
func (d TripDay) Locations() []string {
	out := make([]string, 0, 1+len(d.Dropoffs))
	out = append(out, d.Pickup)
	out = append(out, d.Dropoffs...)
	return out
}

// Complete reports whether the day carries enough data to be routed:
// a non-blank pickup and at least one drop-off. Blank drop-offs are
// caught later as failed legs rather than rejected here.
func (d TripDay) Complete() bool {
	if strings.TrimSpace(d.Pickup) == "" {
		return false
	}
	return len(d.Dropoffs) > 0
}
