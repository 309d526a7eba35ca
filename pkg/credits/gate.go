package credits

import (
	"strings"

	"github.com/dmitrymomot/creditkit/pkg/plans"
)

// Gate decides whether a plan tier may use a given model provider.
// Restricted providers require a minimum tier; everything else passes.
// Gate carries no mutable state and is safe for concurrent use.
type Gate struct {
	restricted map[string]struct{}
	minTier    plans.Tier
}

// NewGate builds a gate from a restricted provider list (matched
// case-insensitively) and the minimum tier required to use them.
func NewGate(restricted []string, minTier plans.Tier) *Gate {
	set := make(map[string]struct{}, len(restricted))
	for _, p := range restricted {
		set[strings.ToLower(p)] = struct{}{}
	}
	return &Gate{restricted: set, minTier: minTier}
}

// DefaultGate restricts Anthropic models to the Pro plan and above,
// mirroring the production configuration.
func DefaultGate() *Gate {
	return NewGate([]string{"anthropic"}, plans.TierPro)
}

// IsProviderRestricted reports whether the provider belongs to the
// restricted set. Empty provider names are never restricted.
func (g *Gate) IsProviderRestricted(provider string) bool {
	if provider == "" {
		return false
	}
	_, ok := g.restricted[strings.ToLower(provider)]
	return ok
}

// CanUseProvider reports whether the tier may use the provider.
// Unrestricted providers always pass.
func (g *Gate) CanUseProvider(tier plans.Tier, provider string) bool {
	if !g.IsProviderRestricted(provider) {
		return true
	}
	return tier.AtLeast(g.minTier)
}

// MinTier returns the tier required for restricted providers.
func (g *Gate) MinTier() plans.Tier {
	return g.minTier
}
