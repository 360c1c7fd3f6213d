// Package notes implements the flat text encoding used to persist
// computed route information and trip-day structure inside quote rows.
//
// The formatter and parser form a deliberately lossy round-trip pair:
// day and trip totals survive a format/parse cycle, per-leg detail does
// not. The stored text is the source of truth for totals and day
// summaries only.
package notes

import (
	"fmt"
	"strings"

	"charter-quote-service/internal/domain"
)

// UserNotesSeparator divides the formatted route block from free-form
// user notes inside the persisted notes field.
const UserNotesSeparator = "---\nUSER NOTES:\n"

// routeInfoMarker is the header line that identifies a notes field as
// carrying computed route information.
const routeInfoMarker = "ROUTE INFORMATION"

// FormatRouteInfo serializes a route aggregate into the fixed text
// block stored in the notes field and shown in on-screen summaries.
// Output is deterministic for a given aggregate. A nil aggregate
// yields the empty string.
//
// Leg lines are emitted only for legs with strictly positive distance
// and duration; failed legs are never rendered, though their absence
// makes the surrounding totals partial.
func FormatRouteInfo(route *domain.RouteAggregate, passengers int) string {
	if route == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s (Computed):\n", routeInfoMarker)
	fmt.Fprintf(&b, "Total Distance: %.1f miles\n", domain.MetersToMiles(route.Totals.DistanceMeters))
	fmt.Fprintf(&b, "Total Driving Time: %dh %dm\n",
		route.Totals.DurationSeconds/3600, route.Totals.DurationSeconds%3600/60)
	fmt.Fprintf(&b, "Total Booking Hours: %dh %dm\n",
		route.Totals.BookingMinutes/60, route.Totals.BookingMinutes%60)
	fmt.Fprintf(&b, "Total Stops: %d\n", route.Totals.Stops)
	fmt.Fprintf(&b, "Number of Passengers: %d\n\n", passengers)

	for _, day := range route.TripDays {
		overnight := ""
		if day.EndsNextDay {
			overnight = " (overnight)"
		}

		fmt.Fprintf(&b, "Day %d (%s):\n", day.DayNumber, day.Date)
		fmt.Fprintf(&b, "  Time: %s - %s%s (%dh %dm booking)\n",
			day.StartTime, day.EndTime, overnight, day.BookingHours, day.BookingMinutes)
		fmt.Fprintf(&b, "  Distance: %.1f miles\n", domain.MetersToMiles(day.Totals.DistanceMeters))
		fmt.Fprintf(&b, "  Driving Time: %dh %dm\n",
			day.Totals.DurationSeconds/3600, day.Totals.DurationSeconds%3600/60)
		fmt.Fprintf(&b, "  Stops: %d\n", day.Totals.Stops)

		for i, leg := range day.Legs {
			if leg.DistanceMeters <= 0 || leg.DurationSeconds <= 0 {
				continue
			}
			fmt.Fprintf(&b, "  Leg %d: %.1f mi, %d min\n",
				i+1, domain.MetersToMiles(leg.DistanceMeters), leg.DurationSeconds/60)
		}

		b.WriteString("\n")
	}

	return b.String()
}

// ComposeNotes joins the formatted route block and the user's free-form
// notes into the single persisted notes value. When there is no route
// text the user notes are stored bare.
func ComposeNotes(routeText, userNotes string) string {
	if routeText == "" {
		return userNotes
	}
	return routeText + "\n" + UserNotesSeparator + userNotes
}
