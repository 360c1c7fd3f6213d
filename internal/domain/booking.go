package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BookingTime is the duration a vehicle and driver are reserved for,
// independent of actual driving time. Minutes is the 0-59 remainder;
// TotalMinutes = Hours*60 + Minutes.
type BookingTime struct {
	Hours        int
	Minutes      int
	TotalMinutes int
}

// CalcBookingTime computes the booking window between two HH:MM clock
// readings. A window is treated as crossing midnight when endsNextDay
// is set or when the raw difference is negative, in which case a full
// day is added. An explicitly flagged overnight window always gains
// the extra day, so an identical start and end with endsNextDay=true
// yields exactly 24h, not zero.
//
// Malformed clock strings are a caller error and surface as the only
// error this function returns.
func CalcBookingTime(startTime, endTime string, endsNextDay bool) (BookingTime, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return BookingTime{}, fmt.Errorf("calc booking time: start %q: %w", startTime, err)
	}

	end, err := parseClock(endTime)
	if err != nil {
		return BookingTime{}, fmt.Errorf("calc booking time: end %q: %w", endTime, err)
	}

	total := end - start
	if endsNextDay || total < 0 {
		total += 24 * 60
	}

	return BookingTime{
		Hours:        total / 60,
		Minutes:      total % 60,
		TotalMinutes: total,
	}, nil
}

// parseClock converts "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("not an HH:MM clock value")
	}

	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("bad hour %q", h)
	}

	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("bad minute %q", m)
	}

	return hour*60 + minute, nil
}
