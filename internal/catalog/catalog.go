// Package catalog exposes the immutable industry reference table the
// projection engine is parameterized by. The table is embedded: it is
// constructed once at process start and never changes at runtime.
package catalog

import (
	"fmt"

	"emissions-platform/internal/models"
)

// Catalog is an immutable, insertion-ordered mapping from industry name to
// its reference profile. The zero value is unusable; construct with New or
// NewFromProfiles.
type Catalog struct {
	names    []string
	profiles map[string]*models.IndustryProfile
}

// New returns a catalog holding the built-in industry reference data.
func New() *Catalog {
	c, err := NewFromProfiles(defaultProfiles())
	if err != nil {
		// The embedded table is validated by tests; a failure here means the
		// binary itself is broken.
		panic(fmt.Sprintf("catalog: embedded profiles invalid: %v", err))
	}
	return c
}

// NewFromProfiles builds a catalog from an explicit profile list, preserving
// order. Every profile is validated; duplicates are rejected.
func NewFromProfiles(profiles []*models.IndustryProfile) (*Catalog, error) {
	c := &Catalog{
		profiles: make(map[string]*models.IndustryProfile, len(profiles)),
	}

	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		if _, exists := c.profiles[p.Name]; exists {
			return nil, &models.InvalidParameterError{
				Field:   "name",
				Value:   p.Name,
				Message: fmt.Sprintf("duplicate industry profile %q", p.Name),
			}
		}
		c.names = append(c.names, p.Name)
		c.profiles[p.Name] = p
	}

	return c, nil
}

// List returns the industry names in catalog order. The returned slice is a
// copy; callers may not mutate catalog state through it.
func (c *Catalog) List() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Get returns the profile for the named industry, or a NotFoundError if the
// name is absent.
func (c *Catalog) Get(name string) (*models.IndustryProfile, error) {
	p, ok := c.profiles[name]
	if !ok {
		return nil, &models.NotFoundError{
			Resource: "industry_profile",
			ID:       name,
		}
	}
	return p, nil
}

// Len returns the number of industries in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}
