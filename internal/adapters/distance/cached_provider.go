package distance

import (
	"context"

	"go.uber.org/zap"

	"charter-quote-service/internal/ports"
)

// CachedDistanceProvider layers a persistent pair cache in front of
// another provider. Cache failures are logged and degrade to a miss or
// a dropped write; they never fail a lookup.
type CachedDistanceProvider struct {
	next  ports.DistanceProvider
	cache ports.DistanceCache
	log   *zap.SugaredLogger
}

func NewCachedDistanceProvider(
	next ports.DistanceProvider,
	cache ports.DistanceCache,
	log *zap.SugaredLogger,
) *CachedDistanceProvider {
	return &CachedDistanceProvider{next: next, cache: cache, log: log}
}

// GetDistance checks the cache before delegating, and stores fresh
// results on the way back. Keys are whitespace-normalized so the same
// address always hits the same entry.
func (p *CachedDistanceProvider) GetDistance(
	ctx context.Context,
	origin string,
	destination string,
) (ports.DistanceResult, error) {
	normOrigin := normalize(origin)
	normDestination := normalize(destination)

	if p.cache != nil {
		cached, ok, err := p.cache.Get(ctx, normOrigin, normDestination)
		if err != nil {
			p.log.Warnw("distance cache read failed", "origin", normOrigin, "destination", normDestination, "err", err)
		} else if ok {
			return cached, nil
		}
	}

	result, err := p.next.GetDistance(ctx, origin, destination)
	if err != nil {
		return ports.DistanceResult{}, err
	}

	if p.cache != nil {
		if err := p.cache.Put(ctx, normOrigin, normDestination, result); err != nil {
			p.log.Warnw("distance cache write failed", "origin", normOrigin, "destination", normDestination, "err", err)
		}
	}

	return result, nil
}
