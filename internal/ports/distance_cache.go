package ports

import "context"

// Optional persistent cache for resolved origin->destination pairs.
// Implementations must treat a miss as (zero, false, nil), never as an
// error; cache failures should not break route computation.
type DistanceCache interface {
	// Get returns the cached result for a pair and whether it was present.
	Get(ctx context.Context, origin string, destination string) (DistanceResult, bool, error)

	// Put stores the result for a pair, overwriting any previous entry.
	Put(ctx context.Context, origin string, destination string, result DistanceResult) error
}
