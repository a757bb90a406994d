package planning_test

import (
	"testing"

	"touchline/internal/domain/planning"
)

// TestCatalog_Consistency checks the fixed catalog's internal invariants.
func TestCatalog_Consistency(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range planning.Catalog() {
		if c.Key == "" || c.DisplayName == "" {
			t.Errorf("category %+v missing key or display name", c)
		}
		if seen[c.Key] {
			t.Errorf("duplicate category key %q", c.Key)
		}
		seen[c.Key] = true
		if c.Key == planning.CycleKey {
			t.Errorf("category key %q collides with the reserved cycle key", c.Key)
		}

		switch c.Kind {
		case planning.KindToggle:
			if c.Color == "" {
				t.Errorf("toggle category %q has no on-state color", c.Key)
			}
			if len(c.Options) != 0 {
				t.Errorf("toggle category %q declares options", c.Key)
			}
		case planning.KindDropdown:
			if len(c.Options) == 0 {
				t.Errorf("dropdown category %q has no options", c.Key)
			}
			for _, o := range c.Options {
				if c.OptionColors[o] == "" {
					t.Errorf("dropdown category %q option %q has no color", c.Key, o)
				}
			}
		default:
			t.Errorf("category %q has unknown kind %q", c.Key, c.Kind)
		}
	}
}

// TestOptionsFor returns options for dropdowns only.
func TestOptionsFor(t *testing.T) {
	if opts := planning.OptionsFor("load"); len(opts) == 0 {
		t.Error("OptionsFor(load) returned none")
	}
	if opts := planning.OptionsFor("strength_test"); opts != nil {
		t.Errorf("OptionsFor(toggle) = %v, want nil", opts)
	}
	if opts := planning.OptionsFor("nope"); opts != nil {
		t.Errorf("OptionsFor(unknown) = %v, want nil", opts)
	}
}

// TestDailyTags checks glyph/color completeness and lookup.
func TestDailyTags(t *testing.T) {
	for _, tag := range planning.DailyTags() {
		if tag.Code == "" || tag.Glyph == "" || tag.Color == "" {
			t.Errorf("daily tag %+v incomplete", tag)
		}
		got, ok := planning.DailyTagByCode(tag.Code)
		if !ok || got != tag {
			t.Errorf("DailyTagByCode(%q) = %+v, %v", tag.Code, got, ok)
		}
	}
	if _, ok := planning.DailyTagByCode("banquet"); ok {
		t.Error("DailyTagByCode accepted an unknown code")
	}
}
