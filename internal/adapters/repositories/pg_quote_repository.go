package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"charter-quote-service/internal/domain"
	"charter-quote-service/internal/notes"
	"charter-quote-service/internal/platform/obs"
	"charter-quote-service/internal/ports"
)

// Postgres-backed implementation of the QuoteRepository port.
//
// Trip days and route information live in the row as their flat text
// encodings - the same format the original spreadsheet rows carried -
// and are rebuilt into structured types on every read, so callers
// never touch the raw row shape.
type PgQuoteRepository struct{ DB *sql.DB }

func NewPgQuoteRepository(db *sql.DB) *PgQuoteRepository {
	return &PgQuoteRepository{DB: db}
}

// SaveQuote persists a quote row, flattening trip days and route
// information through the text codec.
func (s *PgQuoteRepository) SaveQuote(ctx context.Context, q *domain.Quote) (err error) {
	defer obs.Time(ctx, "repo.SaveQuote")(&err)

	if s.DB == nil {
		return errors.New("quote repository: DB is nil")
	}

	tripDaysText := notes.FormatTripDays(q.TripDays)
	routeText := notes.FormatRouteInfo(q.Route, q.Passengers)
	notesText := notes.ComposeNotes(routeText, q.UserNotes)

	query := `
	INSERT INTO quotes (
		quote_id, submitted_at, name, email, phone, company,
		passengers, description, trip_days, notes
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	if _, err := s.DB.ExecContext(ctx, query,
		q.QuoteID, q.SubmittedAt, q.Name, q.Email, q.Phone, q.Company,
		q.Passengers, q.Description, tripDaysText, notesText,
	); err != nil {
		return fmt.Errorf("save quote %q: %w", q.QuoteID, err)
	}

	return nil
}

// GetQuote retrieves one quote by id, reconstructed from its row.
func (s *PgQuoteRepository) GetQuote(ctx context.Context, quoteID string) (_ *domain.Quote, err error) {
	defer obs.Time(ctx, "repo.GetQuote")(&err)

	if s.DB == nil {
		return nil, errors.New("quote repository: DB is nil")
	}

	query := selectQuoteColumns + ` WHERE quote_id = $1;`

	q, err := scanQuote(s.DB.QueryRowContext(ctx, query, quoteID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get quote %q: %w", quoteID, err)
	}

	return q, nil
}

// ListQuotes returns all quote rows, oldest first.
func (s *PgQuoteRepository) ListQuotes(ctx context.Context) (_ []*domain.Quote, err error) {
	defer obs.Time(ctx, "repo.ListQuotes")(&err)

	if s.DB == nil {
		return nil, errors.New("quote repository: DB is nil")
	}

	query := selectQuoteColumns + ` ORDER BY submitted_at;`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list quotes: query quotes table: %w", err)
	}
	defer rows.Close()

	quotes := make([]*domain.Quote, 0, 64)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("list quotes: %w", err)
		}
		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list quotes: row iteration: %w", err)
	}

	return quotes, nil
}

const selectQuoteColumns = `
	SELECT quote_id, submitted_at, name, email, phone, company,
		passengers, description, trip_days, notes
	FROM quotes`

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanQuote reads one row and rebuilds the structured quote: trip days
// from the trip-days text, route aggregate and user notes from the
// notes text. Parse shortfalls degrade to empty/nil fields rather than
// failing the read.
func scanQuote(row rowScanner) (*domain.Quote, error) {
	var q domain.Quote
	var tripDaysText, notesText string

	if err := row.Scan(
		&q.QuoteID, &q.SubmittedAt, &q.Name, &q.Email, &q.Phone, &q.Company,
		&q.Passengers, &q.Description, &tripDaysText, &notesText,
	); err != nil {
		return nil, err
	}

	q.TripDays = notes.ParseTripDays(tripDaysText)
	q.Route, q.UserNotes = notes.ExtractRouteInfo(notesText)

	return &q, nil
}
