package handlers

import (
	"net/http"
	"time"

	"charter-quote-service/internal/api/dto"
	"charter-quote-service/internal/notes"
	"charter-quote-service/internal/platform/obs"
	"charter-quote-service/internal/ports"
	"charter-quote-service/internal/services"
)

// RouteHandler computes route previews for an itinerary before the
// customer submits a quote request.
type RouteHandler struct {
	Provider  ports.DistanceProvider
	CallDelay time.Duration
}

// Preview runs the route computation pipeline over the submitted trip
// days and returns the aggregate alongside the formatted text block
// the customer confirms. Leg failures do not fail the request; their
// count is reported so the UI can warn about partial results.
func (h *RouteHandler) Preview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RoutePreviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if len(req.TripDays) == 0 {
		writeError(w, r, http.StatusBadRequest, "at least one trip day is required")
		return
	}

	days := toTripDays(req.TripDays)

	route, err := services.ComputeRoute(r.Context(), days, h.Provider, services.ComputeOptions{
		CallDelay: h.CallDelay,
	})
	if err != nil {
		obs.Logger().Warnw("route preview failed", "err", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res := dto.RoutePreviewResponse{
		Route:         *toRouteResponse(route),
		FailedLegs:    route.FailedLegCount(),
		FormattedText: notes.FormatRouteInfo(route, req.Passengers),
	}

	writeJSON(w, r, http.StatusOK, res)
}
