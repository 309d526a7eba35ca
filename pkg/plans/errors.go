package plans

import "errors"

var (
	ErrFailedToLoadPlans        = errors.New("plans: failed to load plan catalog")
	ErrInvalidPlanConfiguration = errors.New("plans: invalid plan configuration")
	ErrMissingTier              = errors.New("plans: catalog is missing a required tier")
)
