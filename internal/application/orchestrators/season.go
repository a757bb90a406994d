package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"touchline/internal/domain/season"
)

// SeasonStoreForOrchestrator defines the season store interface needed by the
// season orchestrators.
type SeasonStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (season.Season, error)
	Save(ctx context.Context, s season.Season) error
	Delete(ctx context.Context, id string) error
	ListByTeamID(ctx context.Context, teamID string) ([]season.Season, error)
}

// PlanningCascadeStore is the slice of the planning store the season
// orchestrators need for the delete cascade.
type PlanningCascadeStore interface {
	DeleteBySeasonID(ctx context.Context, seasonID string) error
}

// --- Create Season ---

// CreateSeasonInput carries input for the create season orchestrator.
type CreateSeasonInput struct {
	TeamID    string
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// CreateSeasonDeps holds dependencies for CreateSeason.
type CreateSeasonDeps struct {
	SeasonStore SeasonStoreForOrchestrator
	GenerateID  func() string
}

// CreateSeasonResult carries the created season and its freshly generated
// week grid. The planning document row is created lazily by the first
// autosave; creation only initializes the empty in-memory grid.
type CreateSeasonResult struct {
	Season season.Season
	Weeks  []season.WeekDescriptor
}

// ExecuteCreateSeason creates a new season and becomes the team's active one.
// PRE: Name non-empty, StartDate <= EndDate
// POST: Season persisted; result carries the generated week descriptors
func ExecuteCreateSeason(ctx context.Context, input CreateSeasonInput, deps CreateSeasonDeps) (CreateSeasonResult, error) {
	s := season.Season{
		ID:        deps.GenerateID(),
		TeamID:    input.TeamID,
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := s.Validate(); err != nil {
		return CreateSeasonResult{}, err
	}
	if err := deps.SeasonStore.Save(ctx, s); err != nil {
		return CreateSeasonResult{}, err
	}

	weeks := season.SeasonWeeks(s)
	slog.Info("season_event", "event", "season_created", "season_id", s.ID, "team_id", s.TeamID, "weeks", len(weeks))
	return CreateSeasonResult{Season: s, Weeks: weeks}, nil
}

// --- Update Season ---

// UpdateSeasonInput carries input for the update season orchestrator.
type UpdateSeasonInput struct {
	SeasonID  string
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// UpdateSeasonDeps holds dependencies for UpdateSeason.
type UpdateSeasonDeps struct {
	SeasonStore SeasonStoreForOrchestrator
}

// ExecuteUpdateSeason changes a season's name or date range. Planning data
// recorded against week indices that fall outside a shrunk range is kept
// dormant, never deleted; re-expanding the range later makes it visible
// again.
// PRE: SeasonID non-empty, season exists, same validation as create
// POST: Season updated; result carries the regenerated week descriptors
func ExecuteUpdateSeason(ctx context.Context, input UpdateSeasonInput, deps UpdateSeasonDeps) (CreateSeasonResult, error) {
	if input.SeasonID == "" {
		return CreateSeasonResult{}, errors.New("season ID is required")
	}

	s, err := deps.SeasonStore.GetByID(ctx, input.SeasonID)
	if err != nil {
		return CreateSeasonResult{}, err
	}
	s.Name = input.Name
	s.StartDate = input.StartDate
	s.EndDate = input.EndDate
	if err := s.Validate(); err != nil {
		return CreateSeasonResult{}, err
	}
	if err := deps.SeasonStore.Save(ctx, s); err != nil {
		return CreateSeasonResult{}, err
	}

	weeks := season.SeasonWeeks(s)
	slog.Info("season_event", "event", "season_updated", "season_id", s.ID, "weeks", len(weeks))
	return CreateSeasonResult{Season: s, Weeks: weeks}, nil
}

// --- Delete Season ---

// DeleteSeasonInput carries input for the delete season orchestrator.
type DeleteSeasonInput struct {
	SeasonID string
}

// DeleteSeasonDeps holds dependencies for DeleteSeason.
type DeleteSeasonDeps struct {
	SeasonStore   SeasonStoreForOrchestrator
	PlanningStore PlanningCascadeStore
}

// DeleteSeasonResult names the season to fall back to when the deleted one
// was active. HasFallback is false when the team has no seasons left.
type DeleteSeasonResult struct {
	Fallback    season.Season
	HasFallback bool
}

// ExecuteDeleteSeason irreversibly deletes a season. The planning document is
// removed before the season row so no orphaned planning record can survive.
// PRE: SeasonID non-empty, season exists
// POST: Season and its planning document are gone; fallback is the team's
// most recent remaining season
func ExecuteDeleteSeason(ctx context.Context, input DeleteSeasonInput, deps DeleteSeasonDeps) (DeleteSeasonResult, error) {
	if input.SeasonID == "" {
		return DeleteSeasonResult{}, errors.New("season ID is required")
	}

	s, err := deps.SeasonStore.GetByID(ctx, input.SeasonID)
	if err != nil {
		return DeleteSeasonResult{}, err
	}

	if err := deps.PlanningStore.DeleteBySeasonID(ctx, s.ID); err != nil {
		return DeleteSeasonResult{}, err
	}
	if err := deps.SeasonStore.Delete(ctx, s.ID); err != nil {
		return DeleteSeasonResult{}, err
	}

	remaining, err := deps.SeasonStore.ListByTeamID(ctx, s.TeamID)
	if err != nil {
		return DeleteSeasonResult{}, err
	}

	slog.Info("season_event", "event", "season_deleted", "season_id", s.ID, "team_id", s.TeamID, "remaining", len(remaining))
	if len(remaining) == 0 {
		return DeleteSeasonResult{}, nil
	}
	return DeleteSeasonResult{Fallback: remaining[0], HasFallback: true}, nil
}
