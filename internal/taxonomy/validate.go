package taxonomy

import (
	"fmt"
	"strings"
)

// validate performs all structural checks on the taxonomy document.
// Returns a combined error describing all problems found, or nil if valid.
func (t *Taxonomy) validate() error {
	var errs []string

	if t.Version <= 0 {
		errs = append(errs, "version must be a positive integer")
	}
	if len(t.Domains) == 0 {
		errs = append(errs, "taxonomy has no domains")
	}

	keySet := make(map[string]bool, len(t.Domains))
	for _, d := range t.Domains {
		if d.Key == "" {
			errs = append(errs, "domain with empty key")
			continue
		}
		if keySet[d.Key] {
			errs = append(errs, fmt.Sprintf("duplicate domain key: %q", d.Key))
		}
		keySet[d.Key] = true

		if len(d.Triggers) == 0 {
			errs = append(errs, fmt.Sprintf("domain %q has no trigger phrases", d.Key))
		}
		for _, trig := range d.Triggers {
			if strings.TrimSpace(trig) == "" {
				errs = append(errs, fmt.Sprintf("domain %q has an empty trigger phrase", d.Key))
			}
		}

		skillSet := make(map[string]bool, len(d.Skills))
		for _, s := range d.Skills {
			if s.Name == "" {
				errs = append(errs, fmt.Sprintf("domain %q has a skill with no name", d.Key))
				continue
			}
			if skillSet[s.Name] {
				errs = append(errs, fmt.Sprintf("domain %q lists skill %q twice", d.Key, s.Name))
			}
			skillSet[s.Name] = true
			if !s.MinLevel.Valid() {
				errs = append(errs, fmt.Sprintf("domain %q skill %q has unknown min_level %q", d.Key, s.Name, s.MinLevel))
			}
			if s.Title == "" {
				errs = append(errs, fmt.Sprintf("domain %q skill %q has no milestone title", d.Key, s.Name))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d problem(s):\n  - %s", len(errs), strings.Join(errs, "\n  - "))
	}
	return nil
}
