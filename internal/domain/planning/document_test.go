package planning_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"touchline/internal/domain/planning"
)

// TestDocument_SetToggle tests toggle semantics and kind enforcement.
func TestDocument_SetToggle(t *testing.T) {
	d := planning.NewDocument("s1", "t1")

	if err := d.SetToggle(3, "strength_test"); err != nil {
		t.Fatalf("SetToggle() error = %v", err)
	}
	if !d.ToggleOn(3, "strength_test") {
		t.Error("toggle should be on after first flip")
	}

	// Involution: flipping twice restores the original value.
	if err := d.SetToggle(3, "strength_test"); err != nil {
		t.Fatalf("SetToggle() error = %v", err)
	}
	if d.ToggleOn(3, "strength_test") {
		t.Error("toggle should be off after second flip")
	}

	if err := d.SetToggle(0, "load"); !errors.Is(err, planning.ErrNotToggle) {
		t.Errorf("SetToggle() on dropdown category error = %v, want ErrNotToggle", err)
	}
	if err := d.SetToggle(0, "nope"); !errors.Is(err, planning.ErrUnknownCategory) {
		t.Errorf("SetToggle() on unknown category error = %v, want ErrUnknownCategory", err)
	}
}

// TestDocument_SetDropdownOption tests option validation and the unset sentinel.
func TestDocument_SetDropdownOption(t *testing.T) {
	d := planning.NewDocument("s1", "t1")

	if err := d.SetDropdownOption(1, "load", "High"); err != nil {
		t.Fatalf("SetDropdownOption() error = %v", err)
	}
	if opt, ok := d.Option(1, "load"); !ok || opt != "High" {
		t.Errorf("Option() = %q, %v, want High, true", opt, ok)
	}

	// An undeclared option is rejected and the document is unchanged.
	err := d.SetDropdownOption(1, "load", "Extreme")
	if !errors.Is(err, planning.ErrInvalidOption) {
		t.Errorf("SetDropdownOption() error = %v, want ErrInvalidOption", err)
	}
	if opt, _ := d.Option(1, "load"); opt != "High" {
		t.Errorf("rejected mutation changed the cell to %q", opt)
	}

	// The unset sentinel removes the cell.
	if err := d.SetDropdownOption(1, "load", planning.UnsetOption); err != nil {
		t.Fatalf("SetDropdownOption(unset) error = %v", err)
	}
	if _, ok := d.Option(1, "load"); ok {
		t.Error("cell should be absent after unset")
	}

	if err := d.SetDropdownOption(1, "strength_test", "High"); !errors.Is(err, planning.ErrNotDropdown) {
		t.Errorf("SetDropdownOption() on toggle category error = %v, want ErrNotDropdown", err)
	}
}

// TestDocument_SetCycleLabel tests that empty text is stored, not removed.
func TestDocument_SetCycleLabel(t *testing.T) {
	d := planning.NewDocument("s1", "t1")

	d.SetCycleLabel(4, "C2")
	if got := d.CycleLabel(4); got != "C2" {
		t.Errorf("CycleLabel() = %q, want C2", got)
	}

	d.SetCycleLabel(4, "")
	if got := d.CycleLabel(4); got != "" {
		t.Errorf("CycleLabel() after clearing = %q, want empty", got)
	}
}

// TestDocument_ToggleDailyTag tests set semantics on day cells.
func TestDocument_ToggleDailyTag(t *testing.T) {
	d := planning.NewDocument("s1", "t1")

	if err := d.ToggleDailyTag(2, 5, "match"); err != nil {
		t.Fatalf("ToggleDailyTag() error = %v", err)
	}
	if err := d.ToggleDailyTag(2, 5, "home"); err != nil {
		t.Fatalf("ToggleDailyTag() error = %v", err)
	}
	if got := d.DayTags(2, 5); !reflect.DeepEqual(got, []string{"match", "home"}) {
		t.Errorf("DayTags() = %v, want [match home]", got)
	}

	// Toggling an existing tag removes it; a second toggle restores the set.
	if err := d.ToggleDailyTag(2, 5, "match"); err != nil {
		t.Fatalf("ToggleDailyTag() error = %v", err)
	}
	if got := d.DayTags(2, 5); !reflect.DeepEqual(got, []string{"home"}) {
		t.Errorf("DayTags() after removal = %v, want [home]", got)
	}
	if err := d.ToggleDailyTag(2, 5, "match"); err != nil {
		t.Fatalf("ToggleDailyTag() error = %v", err)
	}
	if got := d.DayTags(2, 5); !reflect.DeepEqual(got, []string{"home", "match"}) {
		t.Errorf("DayTags() after re-add = %v, want [home match]", got)
	}

	if err := d.ToggleDailyTag(2, 7, "match"); !errors.Is(err, planning.ErrInvalidDay) {
		t.Errorf("ToggleDailyTag(day=7) error = %v, want ErrInvalidDay", err)
	}
	if err := d.ToggleDailyTag(2, 5, "banquet"); !errors.Is(err, planning.ErrUnknownTag) {
		t.Errorf("ToggleDailyTag(unknown tag) error = %v, want ErrUnknownTag", err)
	}
}

// TestDocument_ClearDaily empties a day cell in one action.
func TestDocument_ClearDaily(t *testing.T) {
	d := planning.NewDocument("s1", "t1")
	_ = d.ToggleDailyTag(2, 5, "match")
	_ = d.ToggleDailyTag(2, 5, "home")

	if err := d.ClearDaily(2, 5); err != nil {
		t.Fatalf("ClearDaily() error = %v", err)
	}
	if got := d.DayTags(2, 5); len(got) != 0 {
		t.Errorf("DayTags() after clear = %v, want empty", got)
	}

	if err := d.ClearDaily(2, -1); !errors.Is(err, planning.ErrInvalidDay) {
		t.Errorf("ClearDaily(day=-1) error = %v, want ErrInvalidDay", err)
	}
}

// TestDocument_TotalOverWeekIndex records against indices outside any
// generated range rather than failing.
func TestDocument_TotalOverWeekIndex(t *testing.T) {
	d := planning.NewDocument("s1", "t1")

	if err := d.SetToggle(99, "video_analysis"); err != nil {
		t.Fatalf("SetToggle(week=99) error = %v", err)
	}
	if !d.ToggleOn(99, "video_analysis") {
		t.Error("dormant week index should still hold the value")
	}
}

// TestDocument_JSONRoundTrip preserves cells, daily tags and mesocycles.
func TestDocument_JSONRoundTrip(t *testing.T) {
	d := planning.NewDocument("s1", "t1")
	d.Mesocycles = []string{"C1", "C2"}
	_ = d.SetToggle(0, "strength_test")
	_ = d.SetDropdownOption(1, "macrocycle", "Competition")
	d.SetCycleLabel(1, "C1")
	_ = d.ToggleDailyTag(2, 5, "match")
	_ = d.ToggleDailyTag(2, 5, "away")

	body, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got planning.Document
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !reflect.DeepEqual(&got, d) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", &got, d)
	}
}

// TestDocument_Clone is a deep copy: mutating the clone leaves the original alone.
func TestDocument_Clone(t *testing.T) {
	d := planning.NewDocument("s1", "t1")
	_ = d.ToggleDailyTag(0, 0, "match")

	c := d.Clone()
	_ = c.ToggleDailyTag(0, 0, "home")
	_ = c.SetToggle(0, "regeneration")

	if got := d.DayTags(0, 0); !reflect.DeepEqual(got, []string{"match"}) {
		t.Errorf("original day tags changed to %v", got)
	}
	if d.ToggleOn(0, "regeneration") {
		t.Error("original toggle changed by clone mutation")
	}
}
