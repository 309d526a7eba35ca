// Package plans defines the subscription tier catalog: an ordered set of
// tiers, each with a per-period credit allowance and countable limits
// (agents, seats, storage) plus feature flags like BYOK access.
//
// The catalog is static configuration: it is loaded once at startup from a
// Source (in-memory defaults or a YAML file), validated, and never mutated
// afterwards. Unknown tiers and unknown plan lookups degrade to the free
// plan rather than erroring, so a corrupt tier value on a subject record
// can never grant elevated access.
//
// Basic usage:
//
//	catalog, err := plans.NewCatalog(ctx, plans.NewDefaultSource())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	plan := catalog.Get(plans.TierPro)
//	if check := catalog.CanCreateAgent(plans.TierFree, 1); !check.Allowed {
//		fmt.Println(check.Message)
//	}
//
// Tier ordering is total: free < starter < pro < business < enterprise.
// Use Tier.AtLeast for minimum-tier gating.
package plans
