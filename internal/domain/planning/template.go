package planning

import (
	"errors"
	"strings"
	"time"
)

// Template errors
var (
	ErrEmptyTemplateName = errors.New("template name cannot be empty")
	ErrEmptyTemplateTeam = errors.New("template team ID cannot be empty")
)

// Template is an immutable named snapshot of a planning document, reusable
// across seasons. WeekCount records the grid size at capture time and is
// informational only; apply never checks it against the target.
type Template struct {
	ID         string           `json:"id"`
	TeamID     string           `json:"team_id"`
	Name       string           `json:"name"`
	Mesocycles []string         `json:"mesocycles,omitempty"`
	Weeks      map[int]WeekPlan `json:"planning,omitempty"`
	WeekCount  int              `json:"week_count"`
	CreatedAt  time.Time        `json:"created_at"`
}

// Validate checks the template's invariants.
// POST: returns nil if valid, error describing the first violation otherwise
func (t *Template) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyTemplateName
	}
	if t.TeamID == "" {
		return ErrEmptyTemplateTeam
	}
	return nil
}

// Snapshot captures a document's planning content as a template. Pure
// projection: the document is not mutated and the template shares no state
// with it.
func Snapshot(d *Document, weekCount int, name string) Template {
	c := d.Clone()
	return Template{
		TeamID:     d.TeamID,
		Name:       name,
		Mesocycles: c.Mesocycles,
		Weeks:      c.Weeks,
		WeekCount:  weekCount,
	}
}

// Apply overlays a template onto a document: every week index present in the
// template replaces that week's entire annotation object in the target;
// weeks absent from the template are left untouched. Indices beyond the
// target season's generated range are stored but stay dormant.
// POST: returns the overlaid copy; the input document is not mutated
func Apply(t Template, d *Document) *Document {
	out := d.Clone()
	if out.Weeks == nil {
		out.Weeks = map[int]WeekPlan{}
	}
	for i, w := range t.Weeks {
		out.Weeks[i] = cloneWeek(w)
	}
	if t.Mesocycles != nil {
		out.Mesocycles = append([]string(nil), t.Mesocycles...)
	}
	return out
}
