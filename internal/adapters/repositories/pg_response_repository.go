package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"charter-quote-service/internal/domain"
	"charter-quote-service/internal/platform/obs"
)

// Postgres-backed implementation of the ResponseRepository port.
// One response row per quote; saving again replaces the previous
// response (a re-sent quote supersedes the old one).
type PgResponseRepository struct{ DB *sql.DB }

func NewPgResponseRepository(db *sql.DB) *PgResponseRepository {
	return &PgResponseRepository{DB: db}
}

// SaveResponse records or replaces the response for a quote.
func (s *PgResponseRepository) SaveResponse(ctx context.Context, r *domain.QuoteResponse) (err error) {
	defer obs.Time(ctx, "repo.SaveResponse")(&err)

	if s.DB == nil {
		return errors.New("response repository: DB is nil")
	}

	query := `
	INSERT INTO quote_responses (
		quote_id, amount, agreed_price, details, status, admin_name, sent_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (quote_id) DO UPDATE
	SET amount = EXCLUDED.amount,
		agreed_price = EXCLUDED.agreed_price,
		details = EXCLUDED.details,
		status = EXCLUDED.status,
		admin_name = EXCLUDED.admin_name,
		sent_at = EXCLUDED.sent_at;
	`

	if _, err := s.DB.ExecContext(ctx, query,
		r.QuoteID, r.Amount, r.AgreedPrice, r.Details, r.Status, r.AdminName, r.SentAt,
	); err != nil {
		return fmt.Errorf("save response for quote %q: %w", r.QuoteID, err)
	}

	return nil
}

// ListResponses returns all saved responses.
func (s *PgResponseRepository) ListResponses(ctx context.Context) (_ []*domain.QuoteResponse, err error) {
	defer obs.Time(ctx, "repo.ListResponses")(&err)

	if s.DB == nil {
		return nil, errors.New("response repository: DB is nil")
	}

	query := `
	SELECT quote_id, amount, agreed_price, details, status, admin_name, sent_at
	FROM quote_responses
	ORDER BY sent_at;
	`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list responses: query quote_responses table: %w", err)
	}
	defer rows.Close()

	responses := make([]*domain.QuoteResponse, 0, 64)
	for rows.Next() {
		var r domain.QuoteResponse
		if err := rows.Scan(
			&r.QuoteID, &r.Amount, &r.AgreedPrice, &r.Details, &r.Status, &r.AdminName, &r.SentAt,
		); err != nil {
			return nil, fmt.Errorf("list responses: scan row: %w", err)
		}
		responses = append(responses, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list responses: row iteration: %w", err)
	}

	return responses, nil
}
