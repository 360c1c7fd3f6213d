package services

import (
	"strings"
	"testing"

	"charter-quote-service/internal/domain"
)

func TestComposeReplyEmailKinds(t *testing.T) {
	q := &domain.Quote{
		Name:       "Maria Gonzalez",
		Passengers: 48,
		TripDays: []domain.TripDay{
			{
				Date: "2026-09-18", StartTime: "07:30", EndTime: "18:00",
				Pickup:   "1200 Lakeside Dr, Madison, WI",
				Dropoffs: []string{"2 E Main St, Madison, WI"},
			},
		},
		Route: &domain.RouteAggregate{
			TripDays: []domain.DayRoute{
				{DayNumber: 1, BookingHours: 10, BookingMinutes: 30,
					Totals: domain.RouteTotals{DistanceMeters: 40233}},
			},
			Totals: domain.RouteTotals{DistanceMeters: 40233, BookingMinutes: 630},
		},
	}
	r := &domain.QuoteResponse{Amount: 1200, AgreedPrice: 1100, Details: "Fuel surcharge included."}

	subject, body := ComposeReplyEmail(EmailInitial, q, r, "Acme Charters")
	if subject != "Your Bus Charter Quote Request" {
		t.Errorf("initial subject = %q", subject)
	}
	if !strings.Contains(body, "QUOTE AMOUNT: $1200.00") {
		t.Errorf("initial body missing quoted amount:\n%s", body)
	}
	if !strings.Contains(body, "Total Distance: 25.0 miles") {
		t.Errorf("initial body missing distance total:\n%s", body)
	}
	if !strings.Contains(body, "Best regards,\nAcme Charters") {
		t.Errorf("initial body missing signature:\n%s", body)
	}

	subject, body = ComposeReplyEmail(EmailAccept, q, r, "Acme Charters")
	if subject != "Booking Confirmation - Your Bus Charter is Confirmed!" {
		t.Errorf("accept subject = %q", subject)
	}
	if !strings.Contains(body, "Final Agreed Price: $1100.00") {
		t.Errorf("accept body should prefer the agreed price:\n%s", body)
	}

	subject, body = ComposeReplyEmail(EmailDecline, q, r, "Acme Charters")
	if subject != "Regarding Your Bus Charter Quote Request" {
		t.Errorf("decline subject = %q", subject)
	}
	if !strings.Contains(body, "REASON:\nFuel surcharge included.") {
		t.Errorf("decline body missing reason section:\n%s", body)
	}
}
