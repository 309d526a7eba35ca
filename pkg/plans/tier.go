package plans

import "strings"

// Tier identifies a subscription tier. Tiers form a total order used for
// entitlement gating: free < starter < pro < business < enterprise.
type Tier string

const (
	TierFree       Tier = "free"
	TierStarter    Tier = "starter"
	TierPro        Tier = "pro"
	TierBusiness   Tier = "business"
	TierEnterprise Tier = "enterprise"
)

// tierRanks defines the ordering used by Rank and AtLeast.
// Unknown tiers rank below free so they never satisfy a minimum-tier gate.
var tierRanks = map[Tier]int{
	TierFree:       0,
	TierStarter:    1,
	TierPro:        2,
	TierBusiness:   3,
	TierEnterprise: 4,
}

// ParseTier normalizes a raw tier name. Unknown or empty input resolves to
// TierFree rather than an error, matching the catalog's fallback behavior.
func ParseTier(s string) Tier {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tierRanks[t]; !ok {
		return TierFree
	}
	return t
}

// Rank returns the tier's position in the ordering. Unknown tiers return -1.
func (t Tier) Rank() int {
	rank, ok := tierRanks[t]
	if !ok {
		return -1
	}
	return rank
}

// AtLeast reports whether t is equal to or above min in the tier ordering.
func (t Tier) AtLeast(min Tier) bool {
	return t.Rank() >= min.Rank()
}

// IsPaid reports whether the tier is a paying tier. The free tier is never
// eligible for auto-recharge.
func (t Tier) IsPaid() bool {
	return t.Rank() > TierFree.Rank()
}

// AllTiers returns every known tier in ascending order.
func AllTiers() []Tier {
	return []Tier{TierFree, TierStarter, TierPro, TierBusiness, TierEnterprise}
}
