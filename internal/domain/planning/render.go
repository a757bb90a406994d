package planning

import "strings"

// PlaceholderLabel is rendered for an empty cycle cell, whether the label was
// never set or explicitly cleared.
const PlaceholderLabel = "-"

// ResolvedCell is the display projection of one grid cell.
type ResolvedCell struct {
	Color string `json:"color,omitempty"`
	Label string `json:"label,omitempty"`
}

// ResolveCategoryCell derives the display color/label for a toggle or
// dropdown cell.
// POST: zero value for an unset cell; dropdown label is the stored option
func ResolveCategoryCell(d *Document, weekIndex int, cat CategoryDefinition) ResolvedCell {
	switch cat.Kind {
	case KindToggle:
		if d.ToggleOn(weekIndex, cat.Key) {
			return ResolvedCell{Color: cat.Color}
		}
	case KindDropdown:
		if opt, ok := d.Option(weekIndex, cat.Key); ok {
			return ResolvedCell{Color: cat.OptionColors[opt], Label: opt}
		}
	}
	return ResolvedCell{}
}

// ResolveDailyCell derives the display color/label for a day cell: the first
// added tag's color (display fallback, not a data fact) and the concatenation
// of all tag glyphs.
func ResolveDailyCell(d *Document, weekIndex, dayIndex int) ResolvedCell {
	tags := d.DayTags(weekIndex, dayIndex)
	if len(tags) == 0 {
		return ResolvedCell{}
	}

	var glyphs []string
	for _, code := range tags {
		if t, ok := DailyTagByCode(code); ok {
			glyphs = append(glyphs, t.Glyph)
		}
	}
	cell := ResolvedCell{Label: strings.Join(glyphs, "")}
	if t, ok := DailyTagByCode(tags[0]); ok {
		cell.Color = t.Color
	}
	return cell
}

// ResolveCycleCell derives the display label for the week's cycle cell.
func ResolveCycleCell(d *Document, weekIndex int) ResolvedCell {
	if text := d.CycleLabel(weekIndex); text != "" {
		return ResolvedCell{Label: text}
	}
	return ResolvedCell{Label: PlaceholderLabel}
}
