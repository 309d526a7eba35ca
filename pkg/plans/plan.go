package plans

// Unlimited indicates no limit for a plan value (-1 chosen for SQL compatibility).
const Unlimited int64 = -1

// Plan describes what a subscription tier allows: credit allowance per
// accounting period, BYOK access, storage, and countable seat limits.
type Plan struct {
	Tier            Tier   `yaml:"tier"`
	Name            string `yaml:"name"`
	CreditAllowance int64  `yaml:"credit_allowance"` // credits per period, -1 = unlimited
	BYOKAllowed     bool   `yaml:"byok_allowed"`
	StorageMB       int64  `yaml:"storage_mb"` // -1 = unlimited
	Agents          int64  `yaml:"agents"`     // -1 = unlimited
	Seats           int64  `yaml:"seats"`      // connected accounts, -1 = unlimited
}

// HasUnlimitedCredits reports whether the plan's credit allowance is unlimited.
func (p Plan) HasUnlimitedCredits() bool {
	return p.CreditAllowance == Unlimited
}

// LimitCheck is the result of a countable-limit evaluation.
type LimitCheck struct {
	Allowed bool
	Limit   int64
	Message string // upgrade hint, set only when denied
}

// DefaultPlans returns the built-in catalog used when no external plan
// source is configured. Values mirror the production pricing page.
func DefaultPlans() map[Tier]Plan {
	return map[Tier]Plan{
		TierFree: {
			Tier:            TierFree,
			Name:            "Free",
			CreditAllowance: 250,
			BYOKAllowed:     false,
			StorageMB:       500,
			Agents:          1,
			Seats:           1,
		},
		TierStarter: {
			Tier:            TierStarter,
			Name:            "Starter",
			CreditAllowance: 5_000_000,
			BYOKAllowed:     false,
			StorageMB:       5_000,
			Agents:          3,
			Seats:           2,
		},
		TierPro: {
			Tier:            TierPro,
			Name:            "Pro",
			CreditAllowance: 40_000_000,
			BYOKAllowed:     true,
			StorageMB:       20_000,
			Agents:          10,
			Seats:           5,
		},
		TierBusiness: {
			Tier:            TierBusiness,
			Name:            "Business",
			CreditAllowance: 150_000_000,
			BYOKAllowed:     true,
			StorageMB:       100_000,
			Agents:          50,
			Seats:           20,
		},
		TierEnterprise: {
			Tier:            TierEnterprise,
			Name:            "Enterprise",
			CreditAllowance: Unlimited,
			BYOKAllowed:     true,
			StorageMB:       Unlimited,
			Agents:          Unlimited,
			Seats:           Unlimited,
		},
	}
}
