package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"charter-quote-service/internal/domain"
)

// Wire shape of one seeded quote request in the JSON seed file.
type QuoteSeed struct {
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Company     string        `json:"company"`
	Passengers  int           `json:"passengers"`
	Description string        `json:"description"`
	Notes       string        `json:"notes"`
	TripDays    []TripDaySeed `json:"trip_days"`
}

type TripDaySeed struct {
	Date        string   `json:"date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	EndsNextDay bool     `json:"ends_next_day"`
	Pickup      string   `json:"pickup"`
	Dropoffs    []string `json:"dropoffs"`
}

// Populate the database with demo quote requests from a JSON file.
// Seeding is skipped when the quotes table already has rows, so the
// tool is safe to re-run. Seeded quotes carry no computed route; the
// preview endpoint computes one on demand.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed quotes: read %q: %w", jsonPath, err)
	}

	var data []QuoteSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed quotes: parse json: %w", err)
	}

	var existing int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quotes;`).Scan(&existing); err != nil {
		return fmt.Errorf("seed quotes: count existing: %w", err)
	}
	if existing > 0 {
		return nil
	}

	repo := NewPgQuoteRepository(db)

	for i, item := range data {
		if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.Email) == "" {
			return fmt.Errorf("seed quotes: item at index %d: name and email are required", i+1)
		}

		days := make([]domain.TripDay, 0, len(item.TripDays))
		for _, d := range item.TripDays {
			days = append(days, domain.TripDay{
				Date:        d.Date,
				StartTime:   d.StartTime,
				EndTime:     d.EndTime,
				EndsNextDay: d.EndsNextDay,
				Pickup:      d.Pickup,
				Dropoffs:    d.Dropoffs,
			})
		}

		q := &domain.Quote{
			QuoteID:     "Q-" + uuid.NewString(),
			SubmittedAt: time.Now().UTC(),
			Name:        item.Name,
			Email:       item.Email,
			Phone:       item.Phone,
			Company:     item.Company,
			Passengers:  item.Passengers,
			Description: item.Description,
			TripDays:    days,
			UserNotes:   item.Notes,
		}

		if err := repo.SaveQuote(ctx, q); err != nil {
			return fmt.Errorf("seed quotes: insert item %d: %w", i+1, err)
		}
	}

	return nil
}
