package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile builds a catalog from a YAML override file. Sections left empty in
// the file keep their built-in defaults, so a deployment can swap just the
// term lists while keeping the stock pattern sets.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}

	var override Spec
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("lexicon: parse %s: %w", path, err)
	}

	return New(merge(defaultSpec(), override))
}

func merge(base, override Spec) Spec {
	if len(override.Terms) > 0 {
		base.Terms = override.Terms
	}
	if len(override.Signals.Limit) > 0 {
		base.Signals.Limit = override.Signals.Limit
	}
	if len(override.Signals.Exclusion) > 0 {
		base.Signals.Exclusion = override.Signals.Exclusion
	}
	if len(override.Signals.Inclusion) > 0 {
		base.Signals.Inclusion = override.Signals.Inclusion
	}
	if len(override.Patterns.Vague) > 0 {
		base.Patterns.Vague = override.Patterns.Vague
	}
	if len(override.Patterns.Promise) > 0 {
		base.Patterns.Promise = override.Patterns.Promise
	}
	if len(override.Patterns.OwnershipClear) > 0 {
		base.Patterns.OwnershipClear = override.Patterns.OwnershipClear
	}
	if len(override.Patterns.OwnershipVague) > 0 {
		base.Patterns.OwnershipVague = override.Patterns.OwnershipVague
	}
	return base
}
