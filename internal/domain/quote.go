package domain

import "time"

// Quote response lifecycle statuses, as shown on the admin dashboard.
const (
	StatusPending  = "Pending" // no response recorded yet
	StatusSent     = "Sent"
	StatusAccepted = "Accepted"
	StatusDeclined = "Declined"
)

// Quote is a single charter quote request: submitter identity, the
// trip days to be routed, free-form notes, and - once computed - the
// route aggregate. When persisted, the aggregate is flattened into the
// notes text field and the trip days into their own text field; the
// repository reconstructs both through the text codec.
type Quote struct {
	QuoteID     string
	SubmittedAt time.Time
	Name        string
	Email       string
	Phone       string
	Company     string
	Passengers  int
	Description string
	TripDays    []TripDay
	UserNotes   string
	Route       *RouteAggregate // nil when computation failed or never ran

	// Response is the saved admin response, if one exists.
	Response *QuoteResponse
}

// QuoteResponse is an admin's recorded reply to a quote request.
type QuoteResponse struct {
	QuoteID     string
	Amount      float64
	AgreedPrice float64 // set when the customer accepts
	Details     string
	Status      string // Sent, Accepted or Declined
	AdminName   string
	SentAt      time.Time
}

// Status returns the quote's response status, or Pending when no
// response has been recorded.
func (q *Quote) Status() string {
	if q.Response == nil {
		return StatusPending
	}
	return q.Response.Status
}
