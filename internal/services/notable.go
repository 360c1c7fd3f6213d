package services

import (
	"fmt"
	"regexp"
	"strings"

	"charter-quote-service/internal/domain"
)

// Thresholds for the notable-information highlights shown to admins.
const (
	largeGroupPassengers  = 50
	longDistanceMiles     = 200
	extendedBookingMinute = 720
)

var usStateAbbreviations = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	"DC",
}

// Matches a state abbreviation following a comma, as in
// "Phoenix, AZ 85009". The trailing separator keeps bare suffixes like
// "...CAMP" from matching.
var reStateAbbrev = regexp.MustCompile(
	`,\s*(` + strings.Join(usStateAbbreviations, "|") + `)\s*[,\s]`,
)

// NotableInfo returns dashboard highlights for a quote: conditions an
// admin should notice before pricing (trip length, group size, likely
// interstate travel). Returns nil when nothing stands out.
func NotableInfo(q *domain.Quote) []string {
	var items []string

	if len(q.TripDays) > 1 {
		items = append(items, fmt.Sprintf("Multi-day trip (%d days)", len(q.TripDays)))
	}

	if q.Passengers > largeGroupPassengers {
		items = append(items, fmt.Sprintf("Large group (%d passengers)", q.Passengers))
	}

	if q.Route != nil {
		miles := domain.MetersToMiles(q.Route.Totals.DistanceMeters)
		if miles > longDistanceMiles {
			items = append(items, fmt.Sprintf("Long distance trip (%.0f miles)", miles))
		}

		if q.Route.Totals.BookingMinutes > extendedBookingMinute {
			items = append(items, fmt.Sprintf("Extended booking (%d+ hours)", q.Route.Totals.BookingMinutes/60))
		}
	}

	var locations []string
	for _, day := range q.TripDays {
		locations = append(locations, day.Locations()...)
	}
	if CrossesStateLines(locations) {
		items = append(items, "Potential interstate travel")
	}

	return items
}

// CrossesStateLines reports whether the locations mention more than
// one US state abbreviation. A heuristic: it only sees states written
// as comma-separated suffixes, which is how autocomplete-filled
// addresses arrive.
func CrossesStateLines(locations []string) bool {
	states := make(map[string]struct{})

	for _, loc := range locations {
		for _, m := range reStateAbbrev.FindAllStringSubmatch(loc, -1) {
			states[m[1]] = struct{}{}
		}
	}

	return len(states) > 1
}
