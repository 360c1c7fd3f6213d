package domain

// MetersPerMile is the fixed conversion constant used everywhere
// distances are rendered or parsed. Keeping a single constant makes
// the formatted text reproducible and round-trippable.
const MetersPerMile = 1609.34

// MetersToMiles converts meters to miles for display.
func MetersToMiles(meters int) float64 { return float64(meters) / MetersPerMile }

// MilesToMeters converts a parsed mile figure back to whole meters.
func MilesToMeters(miles float64) int { return int(miles*MetersPerMile + 0.5) }

// Leg is one successfully resolved point-to-point segment between two
// consecutive locations within a trip day.
type Leg struct {
	From            string
	To              string
	DistanceMeters  int
	DurationSeconds int
}

// FailedLeg records a segment whose distance could not be resolved,
// along with the classified reason. Failed legs never abort the
// enclosing day; they are bookkeeping for partial results.
type FailedLeg struct {
	From   string
	To     string
	Reason string
}

// RouteTotals are the aggregate metrics for a day or a whole itinerary.
// Stops counts drop-off stops, not legs, so it is independent of how
// many legs resolved successfully.
type RouteTotals struct {
	DistanceMeters  int
	DurationSeconds int
	Stops           int
	BookingMinutes  int
}

// add accumulates another totals value into the receiver.
func (t *RouteTotals) add(other RouteTotals) {
	t.DistanceMeters += other.DistanceMeters
	t.DurationSeconds += other.DurationSeconds
	t.Stops += other.Stops
	t.BookingMinutes += other.BookingMinutes
}

// DayRoute is the computed result for a single trip day.
// Invariant: len(Legs)+len(FailedLegs) equals the number of legs
// attempted (one fewer than the day's location count), and the day
// totals sum the successful legs only.
type DayRoute struct {
	DayNumber      int // 1-based position within the itinerary
	Date           string
	StartTime      string
	EndTime        string
	EndsNextDay    bool
	BookingHours   int
	BookingMinutes int // 0-59 remainder
	Legs           []Leg
	FailedLegs     []FailedLeg
	Totals         RouteTotals
}

// RouteAggregate is the full computed distance/time/stop summary across
// an entire itinerary. It is built once per computation and never
// mutated afterwards; callers rebuild it wholesale when inputs change.
// Invariant: every Totals field equals the sum of the corresponding
// per-day total.
type RouteAggregate struct {
	TripDays []DayRoute
	Totals   RouteTotals
}

// Append adds a completed day to the aggregate and folds its totals in.
func (r *RouteAggregate) Append(day DayRoute) {
	r.TripDays = append(r.TripDays, day)
	r.Totals.add(day.Totals)
}

// FailedLegCount returns the number of failed legs across all days.
// Callers use it to decide whether to warn that results are partial.
func (r *RouteAggregate) FailedLegCount() int {
	n := 0
	for _, day := range r.TripDays {
		n += len(day.FailedLegs)
	}
	return n
}

// LegCount returns the number of successfully resolved legs across all days.
func (r *RouteAggregate) LegCount() int {
	n := 0
	for _, day := range r.TripDays {
		n += len(day.Legs)
	}
	return n
}
