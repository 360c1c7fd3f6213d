package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charter-quote-service/internal/api/dto"
	"charter-quote-service/internal/ports"
)

func TestRouteHandlerPreview(t *testing.T) {
	h := &RouteHandler{Provider: testProvider()}

	body, _ := json.Marshal(dto.RoutePreviewRequest{
		Passengers: 48,
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

	req := httptest.NewRequest(http.MethodPost, "/routes/preview", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Preview(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RoutePreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, 0, res.FailedLegs)
	assert.Equal(t, 40233, res.Route.Totals.DistanceMeters)
	assert.Equal(t, 3000, res.Route.Totals.DurationSeconds)
	assert.Equal(t, 2, res.Route.Totals.Stops)
	require.Len(t, res.Route.TripDays, 1)
	assert.Len(t, res.Route.TripDays[0].Legs, 2)

	assert.Contains(t, res.FormattedText, "ROUTE INFORMATION (Computed):")
	assert.Contains(t, res.FormattedText, "Total Distance: 25.0 miles")
	assert.Contains(t, res.FormattedText, "Number of Passengers: 48")
}

func TestRouteHandlerPreviewReportsFailedLegs(t *testing.T) {
	provider := testProvider()
	provider.FailPair("B", "C", ports.ErrNoRoute)
	h := &RouteHandler{Provider: provider}

	body, _ := json.Marshal(dto.RoutePreviewRequest{
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

	req := httptest.NewRequest(http.MethodPost, "/routes/preview", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Preview(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RoutePreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, 1, res.FailedLegs)
	require.Len(t, res.Route.TripDays, 1)
	require.Len(t, res.Route.TripDays[0].FailedLegs, 1)
	assert.Equal(t, ports.ErrNoRoute.Error(), res.Route.TripDays[0].FailedLegs[0].Reason)
}

func TestRouteHandlerPreviewRejectsWrongMethod(t *testing.T) {
	h := &RouteHandler{Provider: testProvider()}

	req := httptest.NewRequest(http.MethodGet, "/routes/preview", nil)
	rec := httptest.NewRecorder()
	h.Preview(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestRouteHandlerPreviewRejectsEmptyItinerary(t *testing.T) {
	h := &RouteHandler{Provider: testProvider()}

	req := httptest.NewRequest(http.MethodPost, "/routes/preview", bytes.NewReader([]byte(`{"trip_days":[]}`)))
	rec := httptest.NewRecorder()
	h.Preview(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
