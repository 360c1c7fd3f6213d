package services

import (
	"context"
	"errors"
	"testing"

	"charter-quote-service/internal/adapters/distance"
	"charter-quote-service/internal/domain"
	"charter-quote-service/internal/ports"
)

func TestComputeRouteSingleDay(t *testing.T) {
	day := domain.TripDay{
		Date:      "2026-09-18",
		StartTime: "09:00",
		EndTime:   "17:00",
		Pickup:    "A",
		Dropoffs:  []string{"B", "C"},
	}

	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: "A", To: "B", Meters: 16093, Seconds: 1200},
		{From: "B", To: "C", Meters: 24140, Seconds: 1800},
	})

	route, err := ComputeRoute(context.Background(), []domain.TripDay{day}, provider, ComputeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(route.TripDays) != 1 {
		t.Fatalf("expected 1 day, got %d", len(route.TripDays))
	}

	got := route.TripDays[0]
	if len(got.Legs) != 2 || len(got.FailedLegs) != 0 {
		t.Fatalf("legs = %d, failed = %d, want 2 and 0", len(got.Legs), len(got.FailedLegs))
	}
	if got.BookingHours != 8 || got.BookingMinutes != 0 {
		t.Errorf("booking = %dh %dm, want 8h 0m", got.BookingHours, got.BookingMinutes)
	}

	if route.Totals.DistanceMeters != 40233 {
		t.Errorf("distance = %d, want 40233", route.Totals.DistanceMeters)
	}
	if route.Totals.DurationSeconds != 3000 {
		t.Errorf("duration = %d, want 3000", route.Totals.DurationSeconds)
	}
	if route.Totals.Stops != 2 {
		t.Errorf("stops = %d, want 2", route.Totals.Stops)
	}
	if route.Totals.BookingMinutes != 480 {
		t.Errorf("booking minutes = %d, want 480", route.Totals.BookingMinutes)
	}

	if provider.Calls != 2 {
		t.Errorf("provider calls = %d, want 2", provider.Calls)
	}
}

func TestComputeRouteContinuesPastFailedLegs(t *testing.T) {
	day := domain.TripDay{
		Date:      "2026-09-18",
		StartTime: "09:00",
		EndTime:   "17:00",
		Pickup:    "A",
		Dropoffs:  []string{"B", "C", "D"},
	}

	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: "A", To: "B", Meters: 1000, Seconds: 300},
		{From: "C", To: "D", Meters: 3000, Seconds: 900},
	})
	provider.FailPair("B", "C", ports.ErrNoRoute)

	route, err := ComputeRoute(context.Background(), []domain.TripDay{day}, provider, ComputeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := route.TripDays[0]
	if len(got.Legs) != 2 {
		t.Fatalf("legs = %d, want 2", len(got.Legs))
	}
	if len(got.FailedLegs) != 1 {
		t.Fatalf("failed legs = %d, want 1", len(got.FailedLegs))
	}

	failed := got.FailedLegs[0]
	if failed.From != "B" || failed.To != "C" {
		t.Errorf("failed leg %q -> %q, want B -> C", failed.From, failed.To)
	}
	if failed.Reason != ports.ErrNoRoute.Error() {
		t.Errorf("reason = %q, want %q", failed.Reason, ports.ErrNoRoute.Error())
	}

	// Totals reflect the successful legs only; stops still count every
	// drop-off.
	if got.Totals.DistanceMeters != 4000 {
		t.Errorf("distance = %d, want 4000", got.Totals.DistanceMeters)
	}
	if got.Totals.Stops != 3 {
		t.Errorf("stops = %d, want 3", got.Totals.Stops)
	}
	if provider.Calls != 3 {
		t.Errorf("provider calls = %d, want 3", provider.Calls)
	}
}

func TestComputeRouteSkipsBlankLocations(t *testing.T) {
	day := domain.TripDay{
		Date:      "2026-09-18",
		StartTime: "09:00",
		EndTime:   "17:00",
		Pickup:    "A",
		Dropoffs:  []string{"  ", "B"},
	}

	provider := distance.NewMockDistanceProvider([]distance.MockPair{})

	route, err := ComputeRoute(context.Background(), []domain.TripDay{day}, provider, ComputeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := route.TripDays[0]
	if len(got.FailedLegs) != 2 {
		t.Fatalf("failed legs = %d, want 2", len(got.FailedLegs))
	}
	for _, leg := range got.FailedLegs {
		if leg.Reason != "invalid location" {
			t.Errorf("reason = %q, want %q", leg.Reason, "invalid location")
		}
	}

	// Blank endpoints never reach the provider.
	if provider.Calls != 0 {
		t.Errorf("provider calls = %d, want 0", provider.Calls)
	}
}

func TestComputeRouteAggregatesAcrossDays(t *testing.T) {
	days := []domain.TripDay{
		{
			Date: "2026-09-18", StartTime: "09:00", EndTime: "17:00",
			Pickup: "A", Dropoffs: []string{"B"},
		},
		{
			Date: "2026-09-19", StartTime: "22:00", EndTime: "02:00", EndsNextDay: true,
			Pickup: "B", Dropoffs: []string{"A"},
		},
	}

	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: "A", To: "B", Meters: 5000, Seconds: 600},
		{From: "B", To: "A", Meters: 5000, Seconds: 600},
	})

	route, err := ComputeRoute(context.Background(), days, provider, ComputeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(route.TripDays) != 2 {
		t.Fatalf("expected 2 days, got %d", len(route.TripDays))
	}

	var sum domain.RouteTotals
	for _, d := range route.TripDays {
		sum.DistanceMeters += d.Totals.DistanceMeters
		sum.DurationSeconds += d.Totals.DurationSeconds
		sum.Stops += d.Totals.Stops
		sum.BookingMinutes += d.Totals.BookingMinutes
	}
	if route.Totals != sum {
		t.Fatalf("aggregate totals %+v do not equal per-day sum %+v", route.Totals, sum)
	}

	if route.Totals.BookingMinutes != 480+240 {
		t.Errorf("booking minutes = %d, want %d", route.Totals.BookingMinutes, 480+240)
	}
	if route.TripDays[1].DayNumber != 2 {
		t.Errorf("second day number = %d, want 2", route.TripDays[1].DayNumber)
	}
}

func TestComputeRoutePreconditions(t *testing.T) {
	provider := distance.NewMockDistanceProvider(nil)

	if _, err := ComputeRoute(context.Background(), nil, provider, ComputeOptions{}); err == nil {
		t.Error("expected error for empty itinerary")
	}

	bad := domain.TripDay{
		Date: "2026-09-18", StartTime: "late", EndTime: "17:00",
		Pickup: "A", Dropoffs: []string{"B"},
	}
	if _, err := ComputeRoute(context.Background(), []domain.TripDay{bad}, provider, ComputeOptions{}); err == nil {
		t.Error("expected error for malformed start time")
	}
}

func TestComputeRouteHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	day := domain.TripDay{
		Date: "2026-09-18", StartTime: "09:00", EndTime: "17:00",
		Pickup: "A", Dropoffs: []string{"B"},
	}
	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: "A", To: "B", Meters: 1000, Seconds: 300},
	})

	_, err := ComputeRoute(ctx, []domain.TripDay{day}, provider, ComputeOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
