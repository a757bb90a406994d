package planning

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrUnknownCategory = errors.New("category is not in the catalog")
	ErrNotToggle       = errors.New("category is not a toggle")
	ErrNotDropdown     = errors.New("category is not a dropdown")
	ErrInvalidOption   = errors.New("option is not declared for the category")
	ErrUnknownTag      = errors.New("daily tag is not in the tag set")
	ErrInvalidDay      = errors.New("day index must be between 0 and 6")
)

// UnsetOption is the sentinel a dropdown mutation sends to clear the cell.
const UnsetOption = "unset"

// CellKind tags the variant stored in a Cell.
type CellKind string

const (
	CellToggle CellKind = "toggle"
	CellChoice CellKind = "choice"
	CellTags   CellKind = "tags"
	CellText   CellKind = "text"
)

// Cell is the tagged-variant value at one grid position. Exactly one payload
// field is meaningful, selected by Kind; which variant is legal for a given
// key is enforced at the mutation boundary against the catalog.
type Cell struct {
	Kind   CellKind `json:"kind"`
	On     bool     `json:"on,omitempty"`     // CellToggle
	Option string   `json:"option,omitempty"` // CellChoice
	Tags   []string `json:"tags,omitempty"`   // CellTags: duplicate-free, insertion ordered
	Text   string   `json:"text,omitempty"`   // CellText
}

// WeekPlan holds one week's annotations: category cells (plus the cycle label
// under CycleKey) and the per-day tag cells.
type WeekPlan struct {
	Cells map[string]Cell `json:"cells,omitempty"`
	Daily map[int]Cell    `json:"daily,omitempty"`
}

// Document is the in-memory planning grid for one season. Week indices held
// in Weeks may exceed the season's currently generated range; such entries
// are dormant, never rendered and never deleted.
type Document struct {
	SeasonID   string           `json:"season_id"`
	TeamID     string           `json:"team_id"`
	Mesocycles []string         `json:"mesocycles,omitempty"`
	Weeks      map[int]WeekPlan `json:"planning,omitempty"`
}

// NewDocument returns an empty planning document for a season.
func NewDocument(seasonID, teamID string) *Document {
	return &Document{SeasonID: seasonID, TeamID: teamID, Weeks: map[int]WeekPlan{}}
}

// setCell stores a category cell, creating the week's maps only when they
// gain an entry so untouched weeks round-trip as absent.
func (d *Document) setCell(weekIndex int, key string, c Cell) {
	if d.Weeks == nil {
		d.Weeks = map[int]WeekPlan{}
	}
	w := d.Weeks[weekIndex]
	if w.Cells == nil {
		w.Cells = map[string]Cell{}
	}
	w.Cells[key] = c
	d.Weeks[weekIndex] = w
}

func (d *Document) setDaily(weekIndex, dayIndex int, c Cell) {
	if d.Weeks == nil {
		d.Weeks = map[int]WeekPlan{}
	}
	w := d.Weeks[weekIndex]
	if w.Daily == nil {
		w.Daily = map[int]Cell{}
	}
	w.Daily[dayIndex] = c
	d.Weeks[weekIndex] = w
}

// SetToggle flips a toggle category's cell for the week (absent counts as
// off). Total over the week index.
// PRE: categoryKey names a Toggle-kind catalog category
// POST: the cell's boolean is inverted
func (d *Document) SetToggle(weekIndex int, categoryKey string) error {
	cat, ok := CategoryByKey(categoryKey)
	if !ok {
		return fmt.Errorf("%q: %w", categoryKey, ErrUnknownCategory)
	}
	if cat.Kind != KindToggle {
		return fmt.Errorf("%q: %w", categoryKey, ErrNotToggle)
	}

	cur := d.Weeks[weekIndex].Cells[categoryKey]
	d.setCell(weekIndex, categoryKey, Cell{Kind: CellToggle, On: !cur.On})
	return nil
}

// SetDropdownOption replaces a dropdown category's cell for the week.
// The UnsetOption sentinel removes the cell.
// PRE: categoryKey names a Dropdown-kind catalog category
// POST: cell holds option, or is absent when option is the unset sentinel
func (d *Document) SetDropdownOption(weekIndex int, categoryKey, option string) error {
	cat, ok := CategoryByKey(categoryKey)
	if !ok {
		return fmt.Errorf("%q: %w", categoryKey, ErrUnknownCategory)
	}
	if cat.Kind != KindDropdown {
		return fmt.Errorf("%q: %w", categoryKey, ErrNotDropdown)
	}

	if option == UnsetOption {
		if w, ok := d.Weeks[weekIndex]; ok && w.Cells != nil {
			delete(w.Cells, categoryKey)
		}
		return nil
	}
	declared := false
	for _, o := range cat.Options {
		if o == option {
			declared = true
			break
		}
	}
	if !declared {
		return fmt.Errorf("%q for %q: %w", option, categoryKey, ErrInvalidOption)
	}
	d.setCell(weekIndex, categoryKey, Cell{Kind: CellChoice, Option: option})
	return nil
}

// SetCycleLabel replaces the week's free-text cycle label. An empty string is
// stored as an explicitly empty label, not removed.
func (d *Document) SetCycleLabel(weekIndex int, text string) {
	d.setCell(weekIndex, CycleKey, Cell{Kind: CellText, Text: text})
}

// ToggleDailyTag adds the tag to the day's set if absent, removes it if
// present. Set semantics: no duplicates, insertion order preserved.
// PRE: dayIndex in [0,6]; tagCode is in the fixed daily tag set
func (d *Document) ToggleDailyTag(weekIndex, dayIndex int, tagCode string) error {
	if dayIndex < 0 || dayIndex > 6 {
		return fmt.Errorf("day %d: %w", dayIndex, ErrInvalidDay)
	}
	if _, ok := DailyTagByCode(tagCode); !ok {
		return fmt.Errorf("%q: %w", tagCode, ErrUnknownTag)
	}

	cell := d.Weeks[weekIndex].Daily[dayIndex]
	for i, t := range cell.Tags {
		if t == tagCode {
			tags := append(append([]string(nil), cell.Tags[:i]...), cell.Tags[i+1:]...)
			d.setDaily(weekIndex, dayIndex, Cell{Kind: CellTags, Tags: tags})
			return nil
		}
	}
	d.setDaily(weekIndex, dayIndex, Cell{Kind: CellTags, Tags: append(cell.Tags, tagCode)})
	return nil
}

// ClearDaily empties the day's tag set in one action.
// PRE: dayIndex in [0,6]
func (d *Document) ClearDaily(weekIndex, dayIndex int) error {
	if dayIndex < 0 || dayIndex > 6 {
		return fmt.Errorf("day %d: %w", dayIndex, ErrInvalidDay)
	}
	if w, ok := d.Weeks[weekIndex]; ok && w.Daily != nil {
		delete(w.Daily, dayIndex)
	}
	return nil
}

// ToggleOn reports whether a toggle cell is on for the week.
func (d *Document) ToggleOn(weekIndex int, categoryKey string) bool {
	if w, ok := d.Weeks[weekIndex]; ok {
		return w.Cells[categoryKey].On
	}
	return false
}

// Option returns a dropdown cell's value and whether it is set.
func (d *Document) Option(weekIndex int, categoryKey string) (string, bool) {
	if w, ok := d.Weeks[weekIndex]; ok {
		if c, ok := w.Cells[categoryKey]; ok && c.Kind == CellChoice {
			return c.Option, true
		}
	}
	return "", false
}

// CycleLabel returns the week's cycle label ("" when never set or cleared).
func (d *Document) CycleLabel(weekIndex int) string {
	if w, ok := d.Weeks[weekIndex]; ok {
		return w.Cells[CycleKey].Text
	}
	return ""
}

// DayTags returns the day's tag set in insertion order.
func (d *Document) DayTags(weekIndex, dayIndex int) []string {
	if w, ok := d.Weeks[weekIndex]; ok {
		return w.Daily[dayIndex].Tags
	}
	return nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{SeasonID: d.SeasonID, TeamID: d.TeamID}
	if d.Mesocycles != nil {
		out.Mesocycles = append([]string(nil), d.Mesocycles...)
	}
	out.Weeks = cloneWeeks(d.Weeks)
	return out
}

func cloneWeeks(weeks map[int]WeekPlan) map[int]WeekPlan {
	out := make(map[int]WeekPlan, len(weeks))
	for i, w := range weeks {
		out[i] = cloneWeek(w)
	}
	return out
}

func cloneWeek(w WeekPlan) WeekPlan {
	c := WeekPlan{}
	if w.Cells != nil {
		c.Cells = make(map[string]Cell, len(w.Cells))
		for k, cell := range w.Cells {
			c.Cells[k] = cloneCell(cell)
		}
	}
	if w.Daily != nil {
		c.Daily = make(map[int]Cell, len(w.Daily))
		for k, cell := range w.Daily {
			c.Daily[k] = cloneCell(cell)
		}
	}
	return c
}

func cloneCell(c Cell) Cell {
	if c.Tags != nil {
		c.Tags = append([]string(nil), c.Tags...)
	}
	return c
}
