// Package taxonomy defines the versioned skill taxonomy: the mapping from
// free-text goals to canonical domain keys, and each domain's ordered list
// of foundational skill requirements. The taxonomy is configuration data,
// not code — the seed ships as an embedded YAML document so trigger lists
// and prerequisite orderings can be reviewed and tested independently.
package taxonomy

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/pathcraft/internal/learnpath"
)

//go:embed taxonomy.yaml
var seedYAML []byte

// RequiredSkill is one foundational skill a domain expects, with the
// minimum level a learner must hold before the requirement is considered
// met. Skills listed earlier in a domain are prerequisites of skills
// listed later.
type RequiredSkill struct {
	Name        string               `yaml:"name"`
	MinLevel    learnpath.SkillLevel `yaml:"min_level"`
	Title       string               `yaml:"title"`
	Description string               `yaml:"description"`
}

// Domain is one canonical goal category.
type Domain struct {
	Key      string          `yaml:"key"`
	Name     string          `yaml:"name"`
	Triggers []string        `yaml:"triggers"`
	Skills   []RequiredSkill `yaml:"skills"`
}

// Taxonomy is the full versioned table.
type Taxonomy struct {
	Version int      `yaml:"version"`
	Domains []Domain `yaml:"domains"`

	byKey map[string]*Domain
}

// Load parses and validates a taxonomy document.
func Load(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("invalid taxonomy: %w", err)
	}
	t.index()
	return &t, nil
}

// Default returns the embedded seed taxonomy. The seed is validated by
// tests, so a parse failure here is a build defect.
func Default() *Taxonomy {
	t, err := Load(seedYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded taxonomy is invalid: %v", err))
	}
	return t
}

func (t *Taxonomy) index() {
	t.byKey = make(map[string]*Domain, len(t.Domains))
	for i := range t.Domains {
		t.byKey[t.Domains[i].Key] = &t.Domains[i]
	}
}

// DomainByKey returns the domain for a canonical key, or an error if the
// key is unknown.
func (t *Taxonomy) DomainByKey(key string) (Domain, error) {
	d, ok := t.byKey[key]
	if !ok {
		return Domain{}, fmt.Errorf("domain not found: %q", key)
	}
	return *d, nil
}

// Keys returns all domain keys in declaration order.
func (t *Taxonomy) Keys() []string {
	keys := make([]string, len(t.Domains))
	for i, d := range t.Domains {
		keys[i] = d.Key
	}
	return keys
}
