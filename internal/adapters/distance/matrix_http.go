package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Distance Matrix verdicts the provider classifies. Anything else is
// surfaced verbatim as a StatusError.
const (
	statusOK           = "OK"
	statusZeroResults  = "ZERO_RESULTS"
	statusRouteTooLong = "MAX_ROUTE_LENGTH_EXCEEDED"
	statusNotFound     = "NOT_FOUND"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// matrixResponse is the wire shape of a Distance Matrix reply,
// trimmed to the fields this provider reads.
type matrixResponse struct {
	Status string      `json:"status"`
	Rows   []matrixRow `json:"rows"`
}

type matrixRow struct {
	Elements []matrixElement `json:"elements"`
}

type matrixElement struct {
	Status   string      `json:"status"`
	Distance matrixValue `json:"distance"`
	Duration matrixValue `json:"duration"`
}

type matrixValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// firstElement returns the single element of a one-origin,
// one-destination matrix reply.
func (r *matrixResponse) firstElement() (matrixElement, error) {
	if len(r.Rows) == 0 || len(r.Rows[0].Elements) == 0 {
		return matrixElement{}, errors.New("matrix response has no elements")
	}
	return r.Rows[0].Elements[0], nil
}

// fetchMatrix performs the single HTTP round trip for a pair and
// decodes the reply. HTTP-level failures (4xx/5xx) become
// httpStatusError; no retry is attempted.
func (p *MatrixDistanceProvider) fetchMatrix(
	ctx context.Context,
	origin string,
	destination string,
) (*matrixResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.requestURL(origin, destination), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.session.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	var body matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode matrix response: %w", err)
	}

	return &body, nil
}
