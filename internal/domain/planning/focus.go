package planning

import (
	"errors"
	"fmt"
)

// Focus state machine errors
var (
	ErrNotCycleEditing = errors.New("no cycle edit in progress")
)

// FocusKind names the active edit target.
type FocusKind string

const (
	FocusIdle     FocusKind = "idle"
	FocusDropdown FocusKind = "dropdown"
	FocusCycle    FocusKind = "cycle"
	FocusDaily    FocusKind = "daily"
)

// Focus is the tagged union describing which cell, if any, is being edited.
// At most one edit target is active at a time.
type Focus struct {
	Kind        FocusKind
	WeekIndex   int
	CategoryKey string // FocusDropdown
	DayIndex    int    // FocusDaily
	Draft       string // FocusCycle: uncommitted label text
}

// FocusController governs the single active edit target. Opening any target
// implicitly closes the previous one, so two popups can never be pending
// against the same document. Toggle cells bypass the controller entirely.
type FocusController struct {
	current Focus
}

// NewFocusController returns a controller in the Idle state.
func NewFocusController() *FocusController {
	return &FocusController{current: Focus{Kind: FocusIdle}}
}

// Current returns the active focus target.
func (c *FocusController) Current() Focus {
	return c.current
}

// OpenDropdown opens the option popup for a dropdown cell.
// PRE: categoryKey names a Dropdown-kind catalog category
// POST: the dropdown is the only active target
func (c *FocusController) OpenDropdown(weekIndex int, categoryKey string) error {
	cat, ok := CategoryByKey(categoryKey)
	if !ok {
		return fmt.Errorf("%q: %w", categoryKey, ErrUnknownCategory)
	}
	if cat.Kind != KindDropdown {
		return fmt.Errorf("%q: %w", categoryKey, ErrNotDropdown)
	}
	c.current = Focus{Kind: FocusDropdown, WeekIndex: weekIndex, CategoryKey: categoryKey}
	return nil
}

// OpenDailyPopup opens the multi-select tag popup for a day cell.
// PRE: dayIndex in [0,6]
// POST: the daily popup is the only active target
func (c *FocusController) OpenDailyPopup(weekIndex, dayIndex int) error {
	if dayIndex < 0 || dayIndex > 6 {
		return fmt.Errorf("day %d: %w", dayIndex, ErrInvalidDay)
	}
	c.current = Focus{Kind: FocusDaily, WeekIndex: weekIndex, DayIndex: dayIndex}
	return nil
}

// BeginCycleEdit opens the cycle text editor seeded with the cell's current
// label.
// POST: the cycle editor is the only active target, draft holds currentText
func (c *FocusController) BeginCycleEdit(weekIndex int, currentText string) {
	c.current = Focus{Kind: FocusCycle, WeekIndex: weekIndex, Draft: currentText}
}

// SetDraft replaces the uncommitted cycle text.
// PRE: a cycle edit is in progress
func (c *FocusController) SetDraft(text string) error {
	if c.current.Kind != FocusCycle {
		return ErrNotCycleEditing
	}
	c.current.Draft = text
	return nil
}

// CommitCycle closes the cycle editor and hands back the week and draft for
// the SetCycleLabel mutation (Enter or focus loss).
// PRE: a cycle edit is in progress
// POST: controller is Idle
func (c *FocusController) CommitCycle() (weekIndex int, text string, err error) {
	if c.current.Kind != FocusCycle {
		return 0, "", ErrNotCycleEditing
	}
	weekIndex, text = c.current.WeekIndex, c.current.Draft
	c.current = Focus{Kind: FocusIdle}
	return weekIndex, text, nil
}

// CancelCycle discards the draft without mutating (Escape).
// PRE: a cycle edit is in progress
// POST: controller is Idle
func (c *FocusController) CancelCycle() error {
	if c.current.Kind != FocusCycle {
		return ErrNotCycleEditing
	}
	c.current = Focus{Kind: FocusIdle}
	return nil
}

// Close returns to Idle from any state (option selected, clear affordance, or
// outside click).
func (c *FocusController) Close() {
	c.current = Focus{Kind: FocusIdle}
}
