package plans

import (
	"context"
	"errors"
	"fmt"
)

// Catalog holds the plan definitions for all tiers. It is loaded once at
// startup, validated, and treated as immutable for the process lifetime.
type Catalog struct {
	plans map[Tier]Plan
}

// NewCatalog loads plans from the given source and validates them.
// Panics if src is nil to fail fast during initialization.
func NewCatalog(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		panic("plans: Source is required")
	}

	loaded, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}

	if err := validatePlans(loaded); err != nil {
		return nil, err
	}

	return &Catalog{plans: loaded}, nil
}

// NewDefaultCatalog returns a catalog built from the embedded defaults.
func NewDefaultCatalog() *Catalog {
	return &Catalog{plans: DefaultPlans()}
}

// Get returns the plan for a tier. Unknown tiers resolve to the free plan
// rather than an error, so a stale or corrupt tier value degrades safely.
func (c *Catalog) Get(tier Tier) Plan {
	if plan, ok := c.plans[tier]; ok {
		return plan
	}
	return c.plans[TierFree]
}

// CreditAllowance returns the per-period credit allowance for a tier.
func (c *Catalog) CreditAllowance(tier Tier) int64 {
	return c.Get(tier).CreditAllowance
}

// CanCreateAgent checks whether a subject on the given tier may create one
// more agent given its current count.
func (c *Catalog) CanCreateAgent(tier Tier, currentCount int64) LimitCheck {
	plan := c.Get(tier)
	if plan.Agents == Unlimited {
		return LimitCheck{Allowed: true, Limit: Unlimited}
	}
	if currentCount >= plan.Agents {
		return LimitCheck{
			Allowed: false,
			Limit:   plan.Agents,
			Message: fmt.Sprintf("the %s plan allows up to %d agents; upgrade to create more", plan.Name, plan.Agents),
		}
	}
	return LimitCheck{Allowed: true, Limit: plan.Agents}
}

// CanAddSeat checks whether a subject on the given tier may connect one more
// account given its current count.
func (c *Catalog) CanAddSeat(tier Tier, currentCount int64) LimitCheck {
	plan := c.Get(tier)
	if plan.Seats == Unlimited {
		return LimitCheck{Allowed: true, Limit: Unlimited}
	}
	if currentCount >= plan.Seats {
		return LimitCheck{
			Allowed: false,
			Limit:   plan.Seats,
			Message: fmt.Sprintf("the %s plan allows up to %d connected accounts; upgrade to add more", plan.Name, plan.Seats),
		}
	}
	return LimitCheck{Allowed: true, Limit: plan.Seats}
}

// CanUseBYOK checks whether the tier may use its own provider API keys.
func (c *Catalog) CanUseBYOK(tier Tier) LimitCheck {
	plan := c.Get(tier)
	if !plan.BYOKAllowed {
		return LimitCheck{
			Allowed: false,
			Message: fmt.Sprintf("bring-your-own-key access starts with the Pro plan; you are on the %s plan", plan.Name),
		}
	}
	return LimitCheck{Allowed: true}
}

// CanCreateGroups checks whether the tier may create agent groups.
// Groups are available on Business and Enterprise only.
func (c *Catalog) CanCreateGroups(tier Tier) LimitCheck {
	if tier.AtLeast(TierBusiness) {
		return LimitCheck{Allowed: true}
	}
	plan := c.Get(tier)
	return LimitCheck{
		Allowed: false,
		Message: fmt.Sprintf("agent groups start with the Business plan; you are on the %s plan", plan.Name),
	}
}

// validatePlans ensures catalog entries are internally consistent.
// Catches configuration errors early to prevent runtime surprises.
func validatePlans(loaded map[Tier]Plan) error {
	for _, tier := range AllTiers() {
		plan, ok := loaded[tier]
		if !ok {
			return errors.Join(ErrMissingTier, fmt.Errorf("tier %q not defined", tier))
		}
		if plan.Tier != tier {
			return errors.Join(ErrInvalidPlanConfiguration,
				fmt.Errorf("tier mismatch: map key %q != plan tier %q", tier, plan.Tier))
		}
		for field, v := range map[string]int64{
			"credit_allowance": plan.CreditAllowance,
			"storage_mb":       plan.StorageMB,
			"agents":           plan.Agents,
			"seats":            plan.Seats,
		} {
			if v < Unlimited {
				return errors.Join(ErrInvalidPlanConfiguration,
					fmt.Errorf("tier %q has invalid %s: %d", tier, field, v))
			}
		}
	}
	return nil
}
