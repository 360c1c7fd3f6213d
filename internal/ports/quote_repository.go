package ports

import (
	"context"
	"errors"

	"charter-quote-service/internal/domain"
)

// ErrQuoteNotFound is returned when a quote id has no stored row.
var ErrQuoteNotFound = errors.New("quote not found")

// Port: a boundary for persisting and retrieving quote requests.
// Implementations store trip days and route information as the flat
// text encodings and must reconstruct structured quotes on the way out,
// so the rest of the system never sees the raw row format.
type QuoteRepository interface {
	// SaveQuote persists a new quote request row.
	SaveQuote(ctx context.Context, q *domain.Quote) error

	// GetQuote retrieves one quote by its quote id.
	// Returns ErrQuoteNotFound when absent.
	GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error)

	// ListQuotes retrieves all quote requests, oldest first.
	ListQuotes(ctx context.Context) ([]*domain.Quote, error)
}

// Port: a boundary for saved admin responses to quote requests.
type ResponseRepository interface {
	// SaveResponse records (or replaces) the response for a quote.
	SaveResponse(ctx context.Context, r *domain.QuoteResponse) error

	// ListResponses retrieves all saved responses.
	ListResponses(ctx context.Context) ([]*domain.QuoteResponse, error)
}
