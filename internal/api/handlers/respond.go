package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"charter-quote-service/internal/api/dto"
	"charter-quote-service/internal/domain"
	"charter-quote-service/internal/platform/obs"
	"charter-quote-service/internal/ports"
	"charter-quote-service/internal/services"
)

// RespondHandler records admin responses to quote requests and hands
// back the composed reply email for the admin's mail client.
type RespondHandler struct {
	Quotes       ports.QuoteRepository
	Responses    ports.ResponseRepository
	BusinessName string
}

func (h *RespondHandler) Respond(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RespondRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.QuoteID) == "" {
		writeError(w, r, http.StatusBadRequest, "quote_id is required")
		return
	}

	status := req.Status
	if status == "" {
		status = domain.StatusSent
	}
	switch status {
	case domain.StatusSent, domain.StatusAccepted, domain.StatusDeclined:
	default:
		writeError(w, r, http.StatusBadRequest, "status must be Sent, Accepted or Declined")
		return
	}

	q, err := h.Quotes.GetQuote(r.Context(), req.QuoteID)
	if errors.Is(err, ports.ErrQuoteNotFound) {
		writeError(w, r, http.StatusNotFound, "quote not found")
		return
	}
	if err != nil {
		obs.Logger().Errorw("get quote failed", "quote_id", req.QuoteID, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	response := &domain.QuoteResponse{
		QuoteID:     req.QuoteID,
		Amount:      req.Amount,
		AgreedPrice: req.AgreedPrice,
		Details:     req.Details,
		Status:      status,
		AdminName:   req.AdminName,
		SentAt:      time.Now().UTC(),
	}

	if err := h.Responses.SaveResponse(r.Context(), response); err != nil {
		obs.Logger().Errorw("save response failed", "quote_id", req.QuoteID, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	kind := req.EmailKind
	if kind == "" {
		switch status {
		case domain.StatusAccepted:
			kind = services.EmailAccept
		case domain.StatusDeclined:
			kind = services.EmailDecline
		default:
			kind = services.EmailInitial
		}
	}

	subject, body := services.ComposeReplyEmail(kind, q, response, h.BusinessName)

	writeJSON(w, r, http.StatusOK, dto.RespondResponse{
		QuoteID:      req.QuoteID,
		Status:       status,
		EmailSubject: subject,
		EmailBody:    body,
	})
}
