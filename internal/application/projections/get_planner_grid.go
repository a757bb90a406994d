package projections

import (
	"context"
	"errors"
	"fmt"

	planningStore "touchline/internal/adapters/storage/planning"
	"touchline/internal/domain/planning"
	"touchline/internal/domain/season"
)

// PlannerGridSeasonStore defines the season store interface needed by the
// planner grid projection.
type PlannerGridSeasonStore interface {
	GetByID(ctx context.Context, id string) (season.Season, error)
}

// PlannerGridPlanningStore defines the planning store interface needed by the
// planner grid projection.
type PlannerGridPlanningStore interface {
	Find(ctx context.Context, seasonID, teamID string) (planningStore.Record, error)
}

// GetPlannerGridQuery carries input for the planner grid projection.
type GetPlannerGridQuery struct {
	SeasonID string
	TeamID   string
}

// GridWeek is one rendered week column: the header dates, the cycle cell and
// the seven day cells.
type GridWeek struct {
	Index      int                     `json:"index"`
	StartDate  string                  `json:"start_date"` // YYYY-MM-DD
	EndDate    string                  `json:"end_date"`   // YYYY-MM-DD
	MonthLabel string                  `json:"month_label"`
	Cycle      planning.ResolvedCell   `json:"cycle"`
	Days       []planning.ResolvedCell `json:"days"` // index 0 = Monday
}

// GridRow is one rendered category row, cells aligned with the week columns.
type GridRow struct {
	Key         string                  `json:"key"`
	DisplayName string                  `json:"display_name"`
	Group       string                  `json:"group,omitempty"`
	Kind        planning.CategoryKind   `json:"kind"`
	Options     []string                `json:"options,omitempty"`
	Cells       []planning.ResolvedCell `json:"cells"`
}

// GetPlannerGridResult is the fully resolved grid, consumed by the editor UI
// and by the static image/PDF export collaborator.
type GetPlannerGridResult struct {
	SeasonID   string     `json:"season_id"`
	SeasonName string     `json:"season_name"`
	TeamID     string     `json:"team_id"`
	Mesocycles []string   `json:"mesocycles,omitempty"`
	Weeks      []GridWeek `json:"weeks"`
	Rows       []GridRow  `json:"rows"`
}

// GetPlannerGridDeps holds dependencies for the planner grid projection.
type GetPlannerGridDeps struct {
	SeasonStore   PlannerGridSeasonStore
	PlanningStore PlannerGridPlanningStore
}

// QueryGetPlannerGrid resolves the planning document against the season's
// generated weeks. Document entries outside the generated range are dormant
// and never appear in the result.
// PRE: query.SeasonID and query.TeamID are non-empty, season exists
// POST: one GridWeek per generated week, one GridRow per catalog category
func QueryGetPlannerGrid(ctx context.Context, query GetPlannerGridQuery, deps GetPlannerGridDeps) (GetPlannerGridResult, error) {
	if query.SeasonID == "" || query.TeamID == "" {
		return GetPlannerGridResult{}, fmt.Errorf("season_id and team_id are required")
	}

	s, err := deps.SeasonStore.GetByID(ctx, query.SeasonID)
	if err != nil {
		return GetPlannerGridResult{}, err
	}

	doc := planning.NewDocument(s.ID, query.TeamID)
	rec, err := deps.PlanningStore.Find(ctx, s.ID, query.TeamID)
	if err == nil {
		doc = rec.Document
	} else if !errors.Is(err, planningStore.ErrNotFound) {
		return GetPlannerGridResult{}, err
	}

	weeks := season.SeasonWeeks(s)
	result := GetPlannerGridResult{
		SeasonID:   s.ID,
		SeasonName: s.Name,
		TeamID:     query.TeamID,
		Mesocycles: doc.Mesocycles,
		Weeks:      make([]GridWeek, 0, len(weeks)),
	}

	for _, w := range weeks {
		gw := GridWeek{
			Index:      w.Index,
			StartDate:  w.StartDate.Format("2006-01-02"),
			EndDate:    w.EndDate.Format("2006-01-02"),
			MonthLabel: w.MonthLabel,
			Cycle:      planning.ResolveCycleCell(doc, w.Index),
			Days:       make([]planning.ResolvedCell, season.DaysPerWeek),
		}
		for day := 0; day < season.DaysPerWeek; day++ {
			gw.Days[day] = planning.ResolveDailyCell(doc, w.Index, day)
		}
		result.Weeks = append(result.Weeks, gw)
	}

	for _, cat := range planning.Catalog() {
		row := GridRow{
			Key:         cat.Key,
			DisplayName: cat.DisplayName,
			Group:       cat.Group,
			Kind:        cat.Kind,
			Options:     cat.Options,
			Cells:       make([]planning.ResolvedCell, 0, len(weeks)),
		}
		for _, w := range weeks {
			row.Cells = append(row.Cells, planning.ResolveCategoryCell(doc, w.Index, cat))
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}
