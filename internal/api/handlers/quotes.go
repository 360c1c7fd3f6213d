package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"charter-quote-service/internal/api/dto"
	"charter-quote-service/internal/domain"
	"charter-quote-service/internal/platform/obs"
	"charter-quote-service/internal/ports"
	"charter-quote-service/internal/services"
)

// QuoteHandler orchestrates quote submission and the admin dashboard
// reads: it coordinates route computation, repository access and the
// response merge.
type QuoteHandler struct {
	Quotes    ports.QuoteRepository
	Responses ports.ResponseRepository
	Provider  ports.DistanceProvider
	CallDelay time.Duration
}

// Handle dispatches on method: GET lists quotes (or returns one when
// ?id= is given), POST submits a new quote request.
func (h *QuoteHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if id := strings.TrimSpace(r.URL.Query().Get("id")); id != "" {
			h.get(w, r, id)
			return
		}
		h.list(w, r)
	case http.MethodPost:
		h.submit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// list returns all quotes merged with saved responses, plus dashboard
// stats.
func (h *QuoteHandler) list(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.Quotes.ListQuotes(r.Context())
	if err != nil {
		obs.Logger().Errorw("list quotes failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	responses, err := h.Responses.ListResponses(r.Context())
	if err != nil {
		obs.Logger().Errorw("list responses failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	services.MergeResponses(quotes, responses)
	stats := services.ComputeStats(quotes)

	res := dto.ListQuotesResponse{
		Quotes: make([]dto.QuoteResponse, 0, len(quotes)),
		Stats: dto.QuoteStatsResponse{
			Total:           stats.Total,
			Pending:         stats.Pending,
			Sent:            stats.Sent,
			Accepted:        stats.Accepted,
			Declined:        stats.Declined,
			AcceptedRevenue: stats.AcceptedRevenue,
		},
	}
	for _, q := range quotes {
		res.Quotes = append(res.Quotes, toQuoteResponse(q, false))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// get returns one quote with its saved response and notable-info
// highlights.
func (h *QuoteHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	q, err := h.Quotes.GetQuote(r.Context(), id)
	if errors.Is(err, ports.ErrQuoteNotFound) {
		writeError(w, r, http.StatusNotFound, "quote not found")
		return
	}
	if err != nil {
		obs.Logger().Errorw("get quote failed", "quote_id", id, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	responses, err := h.Responses.ListResponses(r.Context())
	if err != nil {
		obs.Logger().Errorw("list responses failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	services.MergeResponses([]*domain.Quote{q}, responses)

	writeJSON(w, r, http.StatusOK, toQuoteResponse(q, true))
}

// submit computes the route for the requested itinerary and persists
// the quote with the formatted route text embedded in its notes.
func (h *QuoteHandler) submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitQuoteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		writeError(w, r, http.StatusBadRequest, "name and email are required")
		return
	}
	if len(req.TripDays) == 0 {
		writeError(w, r, http.StatusBadRequest, "at least one trip day is required")
		return
	}

	days := toTripDays(req.TripDays)
	for _, day := range days {
		if !day.Complete() {
			writeError(w, r, http.StatusBadRequest,
				"every trip day needs a pickup and at least one drop-off")
			return
		}
	}

	route, err := services.ComputeRoute(r.Context(), days, h.Provider, services.ComputeOptions{
		CallDelay: h.CallDelay,
	})
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	q := &domain.Quote{
		QuoteID:     "Q-" + uuid.NewString(),
		SubmittedAt: time.Now().UTC(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Passengers:  req.Passengers,
		Description: req.Description,
		TripDays:    days,
		UserNotes:   req.Notes,
		Route:       route,
	}

	if err := h.Quotes.SaveQuote(r.Context(), q); err != nil {
		obs.Logger().Errorw("save quote failed", "quote_id", q.QuoteID, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.SubmitQuoteResponse{
		QuoteID:    q.QuoteID,
		FailedLegs: route.FailedLegCount(),
		Route:      toRouteResponse(route),
	}

	writeJSON(w, r, http.StatusCreated, res)
}
