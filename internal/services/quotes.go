package services

import (
	"time"

	"charter-quote-service/internal/domain"
)

// QuoteStats are the dashboard metrics computed over all quotes.
type QuoteStats struct {
	Total           int
	Pending         int
	Sent            int
	Accepted        int
	Declined        int
	AcceptedRevenue float64
}

// QuoteIdentifier returns the key used to match quotes with saved
// responses: the quote id when present, otherwise the submission
// timestamp (older rows predate quote ids).
func QuoteIdentifier(q *domain.Quote) string {
	if q.QuoteID != "" {
		return q.QuoteID
	}
	return q.SubmittedAt.Format(time.RFC3339)
}

// MergeResponses attaches saved admin responses to their quotes in
// place. Responses without a matching quote are ignored, as are quotes
// without a response (they stay Pending).
func MergeResponses(quotes []*domain.Quote, responses []*domain.QuoteResponse) {
	byID := make(map[string]*domain.QuoteResponse, len(responses))
	for _, r := range responses {
		byID[r.QuoteID] = r
	}

	for _, q := range quotes {
		if r, ok := byID[QuoteIdentifier(q)]; ok {
			q.Response = r
		}
	}
}

// ComputeStats tallies dashboard metrics over merged quotes.
// Accepted revenue sums agreed prices, falling back to the quoted
// amount when no agreed price was recorded.
func ComputeStats(quotes []*domain.Quote) QuoteStats {
	stats := QuoteStats{Total: len(quotes)}

	for _, q := range quotes {
		switch q.Status() {
		case domain.StatusSent:
			stats.Sent++
		case domain.StatusAccepted:
			stats.Accepted++
			if q.Response.AgreedPrice > 0 {
				stats.AcceptedRevenue += q.Response.AgreedPrice
			} else {
				stats.AcceptedRevenue += q.Response.Amount
			}
		case domain.StatusDeclined:
			stats.Declined++
		default:
			stats.Pending++
		}
	}

	return stats
}
