package distance

import (
	"context"
	"fmt"

	"charter-quote-service/internal/ports"
)

type MockPair struct {
	From, To string
	Meters   int
	Seconds  int
}

// MockDistanceProvider serves fixed pair results for tests. Individual
// pairs can be made to fail with a chosen error to exercise
// partial-failure paths.
type MockDistanceProvider struct {
	m        map[string]ports.DistanceResult
	failures map[string]error

	// Calls counts GetDistance invocations, including failing ones.
	Calls int
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]ports.DistanceResult, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = ports.DistanceResult{DistanceMeters: p.Meters, DurationSeconds: p.Seconds}
	}
	return &MockDistanceProvider{m: m, failures: make(map[string]error)}
}

// FailPair makes lookups for the pair return err.
func (p *MockDistanceProvider) FailPair(from, to string, err error) {
	p.failures[from+"|"+to] = err
}

func (p *MockDistanceProvider) GetDistance(ctx context.Context, origin, destination string) (ports.DistanceResult, error) {
	p.Calls++

	key := origin + "|" + destination
	if err, ok := p.failures[key]; ok {
		return ports.DistanceResult{}, err
	}

	r, ok := p.m[key]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}

	return r, nil
}
