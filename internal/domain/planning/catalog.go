package planning

// CategoryKind distinguishes the two single-value cell kinds a category can
// declare. The daily tag row and the cycle label row are not catalog
// categories; they have fixed keys and their own cell variants.
type CategoryKind string

const (
	KindToggle   CategoryKind = "toggle"
	KindDropdown CategoryKind = "dropdown"
)

// CycleKey is the reserved week-cell key holding the free-text cycle label.
const CycleKey = "cycle"

// CategoryDefinition describes one annotatable dimension of a week.
// The catalog is build-time configuration, never user data.
type CategoryDefinition struct {
	Key          string
	DisplayName  string
	Kind         CategoryKind
	Group        string
	Color        string            // toggle-on color (Toggle kind)
	Options      []string          // ordered (Dropdown kind)
	OptionColors map[string]string // per-option cell color (Dropdown kind)
}

// DailyTag is one of the fixed short codes a day cell can carry.
type DailyTag struct {
	Code  string
	Glyph string
	Color string
}

// The fixed category catalog, in rendering order.
var categories = []CategoryDefinition{
	{
		Key:         "macrocycle",
		DisplayName: "Macrocycle",
		Kind:        KindDropdown,
		Group:       "periodization",
		Options:     []string{"Preparation", "Competition", "Transition"},
		OptionColors: map[string]string{
			"Preparation": "#2f80ed",
			"Competition": "#eb5757",
			"Transition":  "#27ae60",
		},
	},
	{
		Key:         "load",
		DisplayName: "Training load",
		Kind:        KindDropdown,
		Group:       "periodization",
		Options:     []string{"Low", "Medium", "High", "Taper"},
		OptionColors: map[string]string{
			"Low":    "#6fcf97",
			"Medium": "#f2c94c",
			"High":   "#eb5757",
			"Taper":  "#56ccf2",
		},
	},
	{
		Key:         "strength_focus",
		DisplayName: "Strength focus",
		Kind:        KindDropdown,
		Group:       "strength",
		Options:     []string{"Hypertrophy", "Max strength", "Power", "Maintenance"},
		OptionColors: map[string]string{
			"Hypertrophy":  "#bb6bd9",
			"Max strength": "#9b51e0",
			"Power":        "#f2994a",
			"Maintenance":  "#828282",
		},
	},
	{
		Key:         "strength_test",
		DisplayName: "Strength test",
		Kind:        KindToggle,
		Group:       "testing",
		Color:       "#9b51e0",
	},
	{
		Key:         "performance_test",
		DisplayName: "Performance test",
		Kind:        KindToggle,
		Group:       "testing",
		Color:       "#2d9cdb",
	},
	{
		Key:         "video_analysis",
		DisplayName: "Video analysis",
		Kind:        KindToggle,
		Group:       "support",
		Color:       "#333333",
	},
	{
		Key:         "regeneration",
		DisplayName: "Regeneration week",
		Kind:        KindToggle,
		Group:       "support",
		Color:       "#27ae60",
	},
}

// The fixed daily tag set, in rendering order.
var dailyTags = []DailyTag{
	{Code: "match", Glyph: "M", Color: "#eb5757"},
	{Code: "home", Glyph: "H", Color: "#2f80ed"},
	{Code: "away", Glyph: "A", Color: "#f2994a"},
	{Code: "period-start", Glyph: "PS", Color: "#27ae60"},
	{Code: "period-end", Glyph: "PE", Color: "#219653"},
	{Code: "pause", Glyph: "P", Color: "#828282"},
	{Code: "test", Glyph: "T", Color: "#9b51e0"},
}

// Catalog returns the fixed category definitions in rendering order.
func Catalog() []CategoryDefinition {
	return categories
}

// CategoryByKey looks up a category definition.
// POST: ok is false when the key is not in the catalog
func CategoryByKey(key string) (CategoryDefinition, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return CategoryDefinition{}, false
}

// OptionsFor returns the declared option list for a dropdown category, or nil
// for toggle categories and unknown keys.
func OptionsFor(key string) []string {
	c, ok := CategoryByKey(key)
	if !ok || c.Kind != KindDropdown {
		return nil
	}
	return c.Options
}

// DailyTags returns the fixed daily tag set in rendering order.
func DailyTags() []DailyTag {
	return dailyTags
}

// DailyTagByCode looks up a daily tag definition.
func DailyTagByCode(code string) (DailyTag, bool) {
	for _, t := range dailyTags {
		if t.Code == code {
			return t, true
		}
	}
	return DailyTag{}, false
}
