package distance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"charter-quote-service/internal/ports"
)

// MatrixDistanceProvider implements DistanceProvider against a Google
// Distance Matrix-style HTTP endpoint (driving mode, imperial display
// units, metric values).
//
// Each GetDistance issues exactly one request for one origin/
// destination pair and never retries: pacing between calls belongs to
// the route computation pipeline, which spaces calls out to respect
// the provider's rate limits.
//
// The provider is safe for concurrent use.
type MatrixDistanceProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewMatrixDistanceProvider(apiKey string) (*MatrixDistanceProvider, error) {
	if apiKey == "" {
		return nil, errors.New("distance matrix api key is empty")
	}

	return &MatrixDistanceProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/distancematrix",
	}, nil
}

// normalize ensures consistent pair keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// GetDistance resolves one origin->destination pair.
//
// Provider verdicts are classified into the port's error taxonomy:
// ZERO_RESULTS, MAX_ROUTE_LENGTH_EXCEEDED and NOT_FOUND map to their
// sentinel errors; any other non-OK status is surfaced verbatim
// through StatusError.
func (p *MatrixDistanceProvider) GetDistance(
	ctx context.Context,
	origin string,
	destination string,
) (ports.DistanceResult, error) {
	normOrigin := normalize(origin)
	normDestination := normalize(destination)
	if normOrigin == "" || normDestination == "" {
		return ports.DistanceResult{}, errors.New("get distance: origin and destination must be non-empty")
	}

	body, err := p.fetchMatrix(ctx, normOrigin, normDestination)
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf(
			"get distance %q -> %q: %w",
			normOrigin, normDestination, err,
		)
	}

	if body.Status != statusOK {
		return ports.DistanceResult{}, &ports.StatusError{Status: body.Status}
	}

	element, err := body.firstElement()
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf(
			"get distance %q -> %q: %w",
			normOrigin, normDestination, err,
		)
	}

	switch element.Status {
	case statusOK:
		return ports.DistanceResult{
			DistanceMeters:  element.Distance.Value,
			DurationSeconds: element.Duration.Value,
			DistanceText:    element.Distance.Text,
			DurationText:    element.Duration.Text,
		}, nil
	case statusZeroResults:
		return ports.DistanceResult{}, ports.ErrNoRoute
	case statusRouteTooLong:
		return ports.DistanceResult{}, ports.ErrRouteTooLong
	case statusNotFound:
		return ports.DistanceResult{}, ports.ErrAddressNotFound
	default:
		return ports.DistanceResult{}, &ports.StatusError{Status: element.Status}
	}
}

// requestURL builds the single-pair matrix request.
func (p *MatrixDistanceProvider) requestURL(origin, destination string) string {
	q := url.Values{}
	q.Set("origins", origin)
	q.Set("destinations", destination)
	q.Set("mode", "driving")
	q.Set("units", "imperial")
	q.Set("key", p.apiKey)

	return p.baseURL + "/json?" + q.Encode()
}
