package services

import (
	"fmt"
	"strings"

	"charter-quote-service/internal/domain"
)

// Reply email kinds. The body template differs per kind; delivery is
// out of scope - callers hand the composed text to a mail client.
const (
	EmailInitial = "initial"
	EmailAccept  = "accept"
	EmailDecline = "decline"
)

// ComposeReplyEmail builds the subject and plain-text body for a quote
// reply of the given kind, filled from the quote, its computed route
// (when available) and the response being sent.
func ComposeReplyEmail(kind string, q *domain.Quote, r *domain.QuoteResponse, businessName string) (subject, body string) {
	signature := "Best regards,\n" + businessName

	totalMiles := "N/A"
	bookingHours, bookingMinutes := 0, 0
	if q.Route != nil {
		totalMiles = fmt.Sprintf("%.1f", domain.MetersToMiles(q.Route.Totals.DistanceMeters))
		bookingHours = q.Route.Totals.BookingMinutes / 60
		bookingMinutes = q.Route.Totals.BookingMinutes % 60
	}

	totals := fmt.Sprintf(
		"TOTALS:\n- Total Distance: %s miles\n- Total Booking Time: %dh %dm\n- Number of Passengers: %d\n- Trip Days: %d",
		totalMiles, bookingHours, bookingMinutes, q.Passengers, len(q.TripDays),
	)

	switch kind {
	case EmailAccept:
		subject = "Booking Confirmation - Your Bus Charter is Confirmed!"
		body = fmt.Sprintf(`Dear %s,

Great news! We're pleased to confirm your bus charter booking.

BOOKING CONFIRMATION:
Final Agreed Price: $%.2f

TRIP DETAILS:
%s

%s
%s
We look forward to providing you with excellent service. If you have any questions or need to make changes, please don't hesitate to contact us.

%s`, q.Name, priceOf(r), tripSummary(q), totals, detailsSection("ADDITIONAL INFORMATION", r.Details), signature)

	case EmailDecline:
		subject = "Regarding Your Bus Charter Quote Request"
		body = fmt.Sprintf(`Dear %s,

Thank you for your interest in our bus charter services. Unfortunately, we are unable to accommodate your request at this time.

%s
We appreciate your understanding and hope we can serve you in the future. Please feel free to reach out if your plans change or if you have another trip in mind.

%s`, q.Name, detailsSection("REASON", r.Details), signature)

	default:
		subject = "Your Bus Charter Quote Request"
		body = fmt.Sprintf(`Dear %s,

Thank you for your bus charter quote request. We're pleased to provide you with the following quote:

QUOTE AMOUNT: $%.2f

TRIP SUMMARY:
%s

%s
%s
This quote is valid for 30 days. Please let us know if you have any questions or would like to proceed with booking.

%s`, q.Name, r.Amount, tripSummary(q), totals, detailsSection("ADDITIONAL DETAILS", r.Details), signature)
	}

	return subject, body
}

// tripSummary renders a compact per-day overview, pulling distance and
// booking duration from the computed route when it lines up with the
// trip days.
func tripSummary(q *domain.Quote) string {
	blocks := make([]string, 0, len(q.TripDays))

	for i, day := range q.TripDays {
		distance := "N/A"
		duration := "N/A"
		if q.Route != nil && i < len(q.Route.TripDays) {
			dr := q.Route.TripDays[i]
			distance = fmt.Sprintf("%.1f", domain.MetersToMiles(dr.Totals.DistanceMeters))
			duration = fmt.Sprintf("%dh %dm", dr.BookingHours, dr.BookingMinutes)
		}

		overnight := ""
		if day.EndsNextDay {
			overnight = " (overnight)"
		}

		blocks = append(blocks, fmt.Sprintf(
			"Day %d: %s\n  Time: %s - %s%s\n  Distance: %s miles\n  Duration: %s\n  Pickup: %s\n  Dropoffs: %s",
			i+1, day.Date, day.StartTime, day.EndTime, overnight,
			distance, duration, day.Pickup, strings.Join(day.Dropoffs, ", "),
		))
	}

	return strings.Join(blocks, "\n\n")
}

// detailsSection renders an optional labelled block, empty when there
// are no details.
func detailsSection(label, details string) string {
	if strings.TrimSpace(details) == "" {
		return ""
	}
	return fmt.Sprintf("\n%s:\n%s\n", label, details)
}

// priceOf prefers the agreed price over the quoted amount.
func priceOf(r *domain.QuoteResponse) float64 {
	if r.AgreedPrice > 0 {
		return r.AgreedPrice
	}
	return r.Amount
}
