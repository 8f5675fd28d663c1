package catalog

import (
	"errors"
	"testing"

	"emissions-platform/internal/models"
)

func TestNew_EmbeddedProfilesAreValid(t *testing.T) {
	c := New()

	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", c.Len())
	}

	for _, name := range c.List() {
		p, err := c.Get(name)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", name, err)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("profile %q invalid: %v", name, err)
		}
		if p.Reductions.Conservative > p.Reductions.Ambitious ||
			p.Reductions.Ambitious > p.Reductions.Breakthrough {
			t.Errorf("profile %q: reduction tiers out of order", name)
		}
		if 100-p.Reductions.Breakthrough < 0 {
			t.Errorf("profile %q: breakthrough residual negative", name)
		}
	}
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	c := New()

	want := []string{
		"Food, Beverage & Tobacco",
		"Capital Goods",
		"Consumer Goods",
		"Financial Services",
		"Retail",
	}

	got := c.List()
	if len(got) != len(want) {
		t.Fatalf("List() returned %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	c := New()

	names := c.List()
	names[0] = "mutated"

	if c.List()[0] == "mutated" {
		t.Error("List() must return a copy, not internal state")
	}
}

func TestGet_UnknownIndustry(t *testing.T) {
	c := New()

	_, err := c.Get("Aerospace")
	if err == nil {
		t.Fatal("Get() expected error for unknown industry")
	}

	var notFound *models.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("error = %T, want *models.NotFoundError", err)
	}
}

func TestNewFromProfiles_RejectsInvalidAndDuplicate(t *testing.T) {
	valid := &models.IndustryProfile{
		Name:             "Valid",
		Scope3Percentage: 80,
		Reductions:       models.ReductionScenarios{Conservative: 70, Ambitious: 80, Breakthrough: 90},
		GrowthRateBounds: models.Range{Min: 0, Max: 5},
	}

	t.Run("out-of-order reductions", func(t *testing.T) {
		bad := *valid
		bad.Name = "Bad"
		bad.Reductions = models.ReductionScenarios{Conservative: 90, Ambitious: 80, Breakthrough: 95}

		if _, err := NewFromProfiles([]*models.IndustryProfile{&bad}); err == nil {
			t.Error("NewFromProfiles() expected error for out-of-order reductions")
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		dup := *valid
		if _, err := NewFromProfiles([]*models.IndustryProfile{valid, &dup}); err == nil {
			t.Error("NewFromProfiles() expected error for duplicate profile")
		}
	})
}
