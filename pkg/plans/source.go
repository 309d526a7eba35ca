package plans

import (
	"context"
	"maps"
	"sync"
)

// Source defines how plan definitions are loaded into a catalog.
type Source interface {
	Load(ctx context.Context) (map[Tier]Plan, error)
}

// inMemSource implements Source over a static plan map.
type inMemSource struct {
	mu    sync.RWMutex
	plans map[Tier]Plan
}

// NewInMemSource returns a Source backed by a copy of the given plans.
func NewInMemSource(plans map[Tier]Plan) Source {
	return &inMemSource{plans: maps.Clone(plans)}
}

// NewDefaultSource returns a Source serving the built-in plan defaults.
func NewDefaultSource() Source {
	return &inMemSource{plans: DefaultPlans()}
}

// Load returns a copy of the plans so callers cannot mutate shared state.
func (s *inMemSource) Load(ctx context.Context) (map[Tier]Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.plans), nil
}
