package notes

import (
	"regexp"
	"strconv"
	"strings"

	"charter-quote-service/internal/domain"
)

// Line patterns for the route-information block. The parser is
// line-oriented: each stored line either matches one of these or is
// ignored, so unknown lines and missing sections degrade to defaults
// instead of failing the parse.
var (
	reTotalDistance = regexp.MustCompile(`^Total Distance: ([0-9.]+) miles$`)
	reTotalDriving  = regexp.MustCompile(`^Total Driving Time: (\d+)h (\d+)m$`)
	reTotalBooking  = regexp.MustCompile(`^Total Booking Hours: (\d+)h (\d+)m$`)
	reTotalStops    = regexp.MustCompile(`^Total Stops: (\d+)$`)

	reDayHeader   = regexp.MustCompile(`^Day (\d+) \((.+)\):$`)
	reDayTime     = regexp.MustCompile(`^Time: (\d{1,2}:\d{2}) - (\d{1,2}:\d{2})( \(overnight\))?(?: \((\d+)h (\d+)m booking\))?$`)
	reDayDistance = regexp.MustCompile(`^Distance: ([0-9.]+) miles$`)
	reDayDriving  = regexp.MustCompile(`^Driving Time: (\d+)h (\d+)m$`)
	reDayStops    = regexp.MustCompile(`^Stops: (\d+)$`)
)

// ExtractRouteInfo splits a persisted notes value into its computed
// route aggregate and the user's free-form notes.
//
// When the route-information marker is absent the whole value is
// treated as user notes and the returned aggregate is nil. Malformed
// content never fails; whatever does not parse is left at its zero
// value.
func ExtractRouteInfo(notesText string) (*domain.RouteAggregate, string) {
	if !strings.Contains(notesText, routeInfoMarker) {
		return nil, notesText
	}

	routeText, userNotes, _ := strings.Cut(notesText, UserNotesSeparator)
	return ParseRouteInfo(routeText), userNotes
}

// ParseRouteInfo reconstructs a route aggregate from formatted route
// text. Only day and trip totals are recovered; per-leg lines are
// skipped by design, so reconstructed days always have empty Legs.
// Every section is optional - missing lines leave zero values.
func ParseRouteInfo(text string) *domain.RouteAggregate {
	route := &domain.RouteAggregate{}

	var day *domain.DayRoute
	flush := func() {
		if day != nil {
			route.TripDays = append(route.TripDays, *day)
			day = nil
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if m := reDayHeader.FindStringSubmatch(line); m != nil {
			flush()
			day = &domain.DayRoute{
				DayNumber: atoi(m[1]),
				Date:      m[2],
			}
			continue
		}

		if day == nil {
			switch {
			case matchInto(reTotalDistance, line, func(m []string) {
				route.Totals.DistanceMeters = domain.MilesToMeters(atof(m[1]))
			}):
			case matchInto(reTotalDriving, line, func(m []string) {
				route.Totals.DurationSeconds = atoi(m[1])*3600 + atoi(m[2])*60
			}):
			case matchInto(reTotalBooking, line, func(m []string) {
				route.Totals.BookingMinutes = atoi(m[1])*60 + atoi(m[2])
			}):
			case matchInto(reTotalStops, line, func(m []string) {
				route.Totals.Stops = atoi(m[1])
			}):
			}
			continue
		}

		switch {
		case matchInto(reDayTime, line, func(m []string) {
			day.StartTime = m[1]
			day.EndTime = m[2]
			day.EndsNextDay = m[3] != ""
			day.BookingHours = atoi(m[4])
			day.BookingMinutes = atoi(m[5])
			day.Totals.BookingMinutes = day.BookingHours*60 + day.BookingMinutes
		}):
		case matchInto(reDayDistance, line, func(m []string) {
			day.Totals.DistanceMeters = domain.MilesToMeters(atof(m[1]))
		}):
		case matchInto(reDayDriving, line, func(m []string) {
			day.Totals.DurationSeconds = atoi(m[1])*3600 + atoi(m[2])*60
		}):
		case matchInto(reDayStops, line, func(m []string) {
			day.Totals.Stops = atoi(m[1])
		}):
		}
	}
	flush()

	return route
}

// matchInto applies fn to the submatches when re matches line.
func matchInto(re *regexp.Regexp, line string, fn func(m []string)) bool {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	fn(m)
	return true
}

// atoi parses a decimal integer, treating anything unparseable
// (including the empty string from an unmatched optional group) as zero.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// atof parses a decimal number, treating unparseable input as zero.
func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
