package planning_test

import (
	"errors"
	"testing"

	"touchline/internal/domain/planning"
)

// TestFocusController_SingleActiveTarget verifies that opening any edit
// target closes the previous one.
func TestFocusController_SingleActiveTarget(t *testing.T) {
	c := planning.NewFocusController()

	if got := c.Current().Kind; got != planning.FocusIdle {
		t.Fatalf("new controller state = %v, want idle", got)
	}

	if err := c.OpenDropdown(2, "load"); err != nil {
		t.Fatalf("OpenDropdown() error = %v", err)
	}
	if got := c.Current(); got.Kind != planning.FocusDropdown || got.WeekIndex != 2 || got.CategoryKey != "load" {
		t.Errorf("Current() = %+v, want dropdown week 2 load", got)
	}

	// Opening the daily popup implicitly closes the dropdown.
	if err := c.OpenDailyPopup(4, 6); err != nil {
		t.Fatalf("OpenDailyPopup() error = %v", err)
	}
	if got := c.Current(); got.Kind != planning.FocusDaily || got.WeekIndex != 4 || got.DayIndex != 6 {
		t.Errorf("Current() = %+v, want daily popup week 4 day 6", got)
	}

	// And beginning a cycle edit closes the popup.
	c.BeginCycleEdit(1, "C1")
	if got := c.Current(); got.Kind != planning.FocusCycle || got.Draft != "C1" {
		t.Errorf("Current() = %+v, want cycle edit seeded with C1", got)
	}

	c.Close()
	if got := c.Current().Kind; got != planning.FocusIdle {
		t.Errorf("state after Close() = %v, want idle", got)
	}
}

// TestFocusController_OpenDropdownValidation rejects non-dropdown targets.
func TestFocusController_OpenDropdownValidation(t *testing.T) {
	c := planning.NewFocusController()

	if err := c.OpenDropdown(0, "strength_test"); !errors.Is(err, planning.ErrNotDropdown) {
		t.Errorf("OpenDropdown(toggle category) error = %v, want ErrNotDropdown", err)
	}
	if err := c.OpenDropdown(0, "nope"); !errors.Is(err, planning.ErrUnknownCategory) {
		t.Errorf("OpenDropdown(unknown category) error = %v, want ErrUnknownCategory", err)
	}
	if err := c.OpenDailyPopup(0, 9); !errors.Is(err, planning.ErrInvalidDay) {
		t.Errorf("OpenDailyPopup(day=9) error = %v, want ErrInvalidDay", err)
	}
	// A rejected open leaves the controller idle.
	if got := c.Current().Kind; got != planning.FocusIdle {
		t.Errorf("state after rejected opens = %v, want idle", got)
	}
}

// TestFocusController_CycleCommit tests the draft/commit/cancel path.
func TestFocusController_CycleCommit(t *testing.T) {
	c := planning.NewFocusController()

	c.BeginCycleEdit(3, "C1")
	if err := c.SetDraft("C2"); err != nil {
		t.Fatalf("SetDraft() error = %v", err)
	}
	week, text, err := c.CommitCycle()
	if err != nil {
		t.Fatalf("CommitCycle() error = %v", err)
	}
	if week != 3 || text != "C2" {
		t.Errorf("CommitCycle() = (%d, %q), want (3, C2)", week, text)
	}
	if got := c.Current().Kind; got != planning.FocusIdle {
		t.Errorf("state after commit = %v, want idle", got)
	}

	// Commit and draft edits outside an active cycle edit are rejected.
	if _, _, err := c.CommitCycle(); !errors.Is(err, planning.ErrNotCycleEditing) {
		t.Errorf("CommitCycle() while idle error = %v, want ErrNotCycleEditing", err)
	}
	if err := c.SetDraft("x"); !errors.Is(err, planning.ErrNotCycleEditing) {
		t.Errorf("SetDraft() while idle error = %v, want ErrNotCycleEditing", err)
	}

	// Escape discards the draft.
	c.BeginCycleEdit(3, "C2")
	_ = c.SetDraft("scratch")
	if err := c.CancelCycle(); err != nil {
		t.Fatalf("CancelCycle() error = %v", err)
	}
	if got := c.Current().Kind; got != planning.FocusIdle {
		t.Errorf("state after cancel = %v, want idle", got)
	}
}
