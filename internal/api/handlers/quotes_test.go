package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charter-quote-service/internal/adapters/distance"
	"charter-quote-service/internal/api/dto"
	"charter-quote-service/internal/domain"
	"charter-quote-service/internal/ports"
)

type memQuoteRepo struct {
	quotes map[string]*domain.Quote
	order  []string
}

func newMemQuoteRepo() *memQuoteRepo {
	return &memQuoteRepo{quotes: make(map[string]*domain.Quote)}
}

func (r *memQuoteRepo) SaveQuote(ctx context.Context, q *domain.Quote) error {
	if _, ok := r.quotes[q.QuoteID]; !ok {
		r.order = append(r.order, q.QuoteID)
	}
	r.quotes[q.QuoteID] = q
	return nil
}

func (r *memQuoteRepo) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	q, ok := r.quotes[id]
	if !ok {
		return nil, ports.ErrQuoteNotFound
	}
	return q, nil
}

func (r *memQuoteRepo) ListQuotes(ctx context.Context) ([]*domain.Quote, error) {
	out := make([]*domain.Quote, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.quotes[id])
	}
	return out, nil
}

type memResponseRepo struct {
	responses map[string]*domain.QuoteResponse
}

func newMemResponseRepo() *memResponseRepo {
	return &memResponseRepo{responses: make(map[string]*domain.QuoteResponse)}
}

func (r *memResponseRepo) SaveResponse(ctx context.Context, resp *domain.QuoteResponse) error {
	r.responses[resp.QuoteID] = resp
	return nil
}

func (r *memResponseRepo) ListResponses(ctx context.Context) ([]*domain.QuoteResponse, error) {
	out := make([]*domain.QuoteResponse, 0, len(r.responses))
	for _, resp := range r.responses {
		out = append(out, resp)
	}
	return out, nil
}

func testProvider() *distance.MockDistanceProvider {
	return distance.NewMockDistanceProvider([]distance.MockPair{
		{From: "A", To: "B", Meters: 16093, Seconds: 1200},
		{From: "B", To: "C", Meters: 24140, Seconds: 1800},
	})
}

func submitBody() []byte {
	b, _ := json.Marshal(dto.SubmitQuoteRequest{
		Name:       "Maria Gonzalez",
		Email:      "maria@example.com",
		Passengers: 48,
		Notes:      "wheelchair lift needed",
		TripDays: []dto.TripDayRequest{
			{
				Date:      "2026-09-18",
				StartTime: "09:00",
				EndTime:   "17:00",
				Pickup:    "A",
				Dropoffs:  []string{"B", "C"},
			},
		},
	})
	return b
}

func TestQuoteHandlerSubmitAndGet(t *testing.T) {
	quotes := newMemQuoteRepo()
	responses := newMemResponseRepo()
	h := &QuoteHandler{Quotes: quotes, Responses: responses, Provider: testProvider()}

	req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewReader(submitBody()))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.SubmitQuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.QuoteID)
	assert.Equal(t, 0, created.FailedLegs)
	require.NotNil(t, created.Route)
	assert.Equal(t, 40233, created.Route.Totals.DistanceMeters)
	assert.Equal(t, 480, created.Route.Totals.BookingMinutes)

	req = httptest.NewRequest(http.MethodGet, "/quotes?id="+created.QuoteID, nil)
	rec = httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.QuoteID, got.QuoteID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Equal(t, "wheelchair lift needed", got.Notes)
	require.Len(t, got.TripDays, 1)
	assert.Equal(t, []string{"B", "C"}, got.TripDays[0].Dropoffs)
}

func TestQuoteHandlerListWithStats(t *testing.T) {
	quotes := newMemQuoteRepo()
	responses := newMemResponseRepo()
	h := &QuoteHandler{Quotes: quotes, Responses: responses, Provider: testProvider()}

	req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewReader(submitBody()))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.SubmitQuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	require.NoError(t, responses.SaveResponse(context.Background(), &domain.QuoteResponse{
		QuoteID:     created.QuoteID,
		Status:      domain.StatusAccepted,
		AgreedPrice: 1500,
	}))

	req = httptest.NewRequest(http.MethodGet, "/quotes", nil)
	rec = httptest.NewRecorder()
	h.Handle(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list dto.ListQuotesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Quotes, 1)
	assert.Equal(t, domain.StatusAccepted, list.Quotes[0].Status)
	assert.Equal(t, 1, list.Stats.Total)
	assert.Equal(t, 1, list.Stats.Accepted)
	assert.Equal(t, 1500.0, list.Stats.AcceptedRevenue)
}

func TestQuoteHandlerValidation(t *testing.T) {
	h := &QuoteHandler{
		Quotes:    newMemQuoteRepo(),
		Responses: newMemResponseRepo(),
		Provider:  testProvider(),
	}

	cases := []struct {
		name string
		body string
	}{
		{"missing name and email", `{"trip_days":[{"date":"2026-09-18","start_time":"09:00","end_time":"17:00","pickup":"A","dropoffs":["B"]}]}`},
		{"no trip days", `{"name":"X","email":"x@example.com","trip_days":[]}`},
		{"day without dropoffs", `{"name":"X","email":"x@example.com","trip_days":[{"date":"2026-09-18","start_time":"09:00","end_time":"17:00","pickup":"A","dropoffs":[]}]}`},
		{"not json", `nope`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewReader([]byte(tc.body)))
			rec := httptest.NewRecorder()
			h.Handle(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestQuoteHandlerGetUnknownID(t *testing.T) {
	h := &QuoteHandler{
		Quotes:    newMemQuoteRepo(),
		Responses: newMemResponseRepo(),
		Provider:  testProvider(),
	}

	req := httptest.NewRequest(http.MethodGet, "/quotes?id=Q-missing", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRespondHandler(t *testing.T) {
	quotes := newMemQuoteRepo()
	responses := newMemResponseRepo()

	q := &domain.Quote{
		QuoteID: "Q-1",
		Name:    "Derek Holt",
		Email:   "dholt@example.com",
		TripDays: []domain.TripDay{
			{Date: "2026-10-03", StartTime: "15:00", EndTime: "01:00", EndsNextDay: true,
				Pickup: "Hotel", Dropoffs: []string{"Venue"}},
		},
	}
	require.NoError(t, quotes.SaveQuote(context.Background(), q))

	h := &RespondHandler{Quotes: quotes, Responses: responses, BusinessName: "Acme Charters"}

	body, _ := json.Marshal(dto.RespondRequest{
		QuoteID:     "Q-1",
		Amount:      1200,
		AgreedPrice: 1100,
		Status:      domain.StatusAccepted,
		AdminName:   "Pat",
	})
	req := httptest.NewRequest(http.MethodPost, "/quotes/respond", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Respond(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RespondResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, domain.StatusAccepted, res.Status)
	assert.Equal(t, "Booking Confirmation - Your Bus Charter is Confirmed!", res.EmailSubject)
	assert.Contains(t, res.EmailBody, "Final Agreed Price: $1100.00")

	saved := responses.responses["Q-1"]
	require.NotNil(t, saved)
	assert.Equal(t, domain.StatusAccepted, saved.Status)
}

func TestRespondHandlerValidation(t *testing.T) {
	h := &RespondHandler{
		Quotes:       newMemQuoteRepo(),
		Responses:    newMemResponseRepo(),
		BusinessName: "Acme Charters",
	}

	body := []byte(`{"quote_id":"Q-unknown"}`)
	req := httptest.NewRequest(http.MethodPost, "/quotes/respond", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Respond(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body = []byte(`{"quote_id":"Q-1","status":"Bogus"}`)
	req = httptest.NewRequest(http.MethodPost, "/quotes/respond", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	h.Respond(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
