package plans

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlSource loads plan definitions from a YAML file. The file maps tier
// names to plan fields:
//
//	free:
//	  name: Free
//	  credit_allowance: 250
//	  byok_allowed: false
//	  storage_mb: 500
//	  agents: 1
//	  seats: 1
type yamlSource struct {
	path string
}

// NewYAMLSource returns a Source reading plan definitions from path.
// The file is read on every Load so a catalog reload picks up edits.
func NewYAMLSource(path string) Source {
	return &yamlSource{path: path}
}

func (s *yamlSource) Load(ctx context.Context) (map[Tier]Plan, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}

	var parsed map[string]Plan
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, fmt.Errorf("parse %s: %w", s.path, err))
	}

	plans := make(map[Tier]Plan, len(parsed))
	for name, plan := range parsed {
		tier := Tier(name)
		plan.Tier = tier
		plans[tier] = plan
	}
	return plans, nil
}
