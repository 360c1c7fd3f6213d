package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charter-quote-service/internal/domain"
	"charter-quote-service/internal/ports"
)

// DefaultCallDelay is the courtesy pause between successive provider
// calls, chosen to stay under typical routing-API rate limits.
const DefaultCallDelay = 200 * time.Millisecond

// ComputeOptions tunes the route computation pipeline.
type ComputeOptions struct {
	// CallDelay is the pause inserted after each successful provider
	// call, except the very last call of the itinerary. Zero disables
	// pacing (useful in tests).
	CallDelay time.Duration
}

// invalidLocationReason is recorded for legs skipped before any
// provider call because an endpoint is blank.
const invalidLocationReason = "invalid location"

// ComputeRoute runs the trip-day aggregator over every day of an
// itinerary, strictly sequentially, and accumulates day totals into
// the returned aggregate.
//
// Days are processed one at a time and legs within a day one at a
// time; the pipeline never issues two provider calls concurrently, so
// the inter-call delay stays meaningful across the whole itinerary.
// Leg failures never abort the computation - even when every leg of
// every day fails the aggregate is returned with zero distance and
// full failed-leg bookkeeping, and the caller decides how to react.
//
// Errors are returned only for preconditions (no days, malformed
// booking times) and context cancellation.
func ComputeRoute(
	ctx context.Context,
	days []domain.TripDay,
	provider ports.DistanceProvider,
	opts ComputeOptions,
) (*domain.RouteAggregate, error) {
	if len(days) == 0 {
		return nil, errors.New("compute route: at least one trip day is required")
	}

	route := &domain.RouteAggregate{}

	for i, day := range days {
		final := i == len(days)-1
		dayRoute, err := computeDayRoute(ctx, i+1, day, provider, opts.CallDelay, final)
		if err != nil {
			return nil, fmt.Errorf("compute route: day %d: %w", i+1, err)
		}
		route.Append(dayRoute)
	}

	return route, nil
}

// ComputeDayRoute computes the route for a single trip day in
// isolation. The inter-call delay is applied between the day's own
// legs but not after its last one.
func ComputeDayRoute(
	ctx context.Context,
	dayNumber int,
	day domain.TripDay,
	provider ports.DistanceProvider,
	opts ComputeOptions,
) (domain.DayRoute, error) {
	return computeDayRoute(ctx, dayNumber, day, provider, opts.CallDelay, true)
}

// computeDayRoute resolves each leg of one trip day in order.
//
// Legs with a blank endpoint are recorded as failed without calling
// the provider. Provider failures are recorded with their classified
// reason and the day continues. Day totals reflect successful legs
// only; Stops always counts the day's drop-offs regardless of how
// many legs resolved. finalDay suppresses the delay after the last
// call of the whole itinerary.
func computeDayRoute(
	ctx context.Context,
	dayNumber int,
	day domain.TripDay,
	provider ports.DistanceProvider,
	delay time.Duration,
	finalDay bool,
) (domain.DayRoute, error) {
	booking, err := domain.CalcBookingTime(day.StartTime, day.EndTime, day.EndsNextDay)
	if err != nil {
		return domain.DayRoute{}, err
	}

	dayRoute := domain.DayRoute{
		DayNumber:      dayNumber,
		Date:           day.Date,
		StartTime:      day.StartTime,
		EndTime:        day.EndTime,
		EndsNextDay:    day.EndsNextDay,
		BookingHours:   booking.Hours,
		BookingMinutes: booking.Minutes,
		Totals: domain.RouteTotals{
			Stops:          len(day.Dropoffs),
			BookingMinutes: booking.TotalMinutes,
		},
	}

	locations := day.Locations()

	for j := 0; j < len(locations)-1; j++ {
		if err := ctx.Err(); err != nil {
			return domain.DayRoute{}, err
		}

		origin := locations[j]
		destination := locations[j+1]

		if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
			dayRoute.FailedLegs = append(dayRoute.FailedLegs, domain.FailedLeg{
				From:   origin,
				To:     destination,
				Reason: invalidLocationReason,
			})
			continue
		}

		result, err := provider.GetDistance(ctx, origin, destination)
		if err != nil {
			if ctx.Err() != nil {
				return domain.DayRoute{}, ctx.Err()
			}
			dayRoute.FailedLegs = append(dayRoute.FailedLegs, domain.FailedLeg{
				From:   origin,
				To:     destination,
				Reason: err.Error(),
			})
			continue
		}

		dayRoute.Legs = append(dayRoute.Legs, domain.Leg{
			From:            origin,
			To:              destination,
			DistanceMeters:  result.DistanceMeters,
			DurationSeconds: result.DurationSeconds,
		})
		dayRoute.Totals.DistanceMeters += result.DistanceMeters
		dayRoute.Totals.DurationSeconds += result.DurationSeconds

		// Pace successive provider calls, except after the itinerary's
		// very last call.
		if !(finalDay && j == len(locations)-2) {
			if err := pause(ctx, delay); err != nil {
				return domain.DayRoute{}, err
			}
		}
	}

	return dayRoute, nil
}

// pause is a plain timed suspension honoring context cancellation.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
