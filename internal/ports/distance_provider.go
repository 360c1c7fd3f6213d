package ports

import (
	"context"
	"errors"
	"fmt"
)

// Distance and travel duration between two locations.
type DistanceResult struct {
	DistanceMeters  int
	DurationSeconds int

	// Human-readable renderings as returned by the provider
	// ("25.0 mi", "50 mins"). Informational only; totals are always
	// computed from the numeric fields.
	DistanceText string
	DurationText string
}

// Contract for retrieving travel distance and duration between locations.
// Implementations make exactly one external call per invocation and do
// not retry; the caller owns pacing between calls.
type DistanceProvider interface {
	// Return travel distance and estimated duration between two locations.
	// Failures are classified: ErrNoRoute, ErrRouteTooLong,
	// ErrAddressNotFound, or a *StatusError carrying the provider's
	// verbatim status string.
	GetDistance(ctx context.Context, origin string, destination string) (DistanceResult, error)
}

// Classified leg-resolution failures. The messages double as the
// recorded failed-leg reasons shown to admins.
var (
	// ErrNoRoute: the locations are not connected by a drivable route.
	ErrNoRoute = errors.New("no driving route exists between these locations")

	// ErrRouteTooLong: the provider refused the pair as exceeding its
	// maximum route length.
	ErrRouteTooLong = errors.New("distance is too long for route computation")

	// ErrAddressNotFound: one or both locations could not be resolved
	// to an address.
	ErrAddressNotFound = errors.New("one or both addresses could not be found")
)

// StatusError surfaces an unclassified provider status verbatim.
type StatusError struct {
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("route lookup failed with status %s", e.Status)
}
