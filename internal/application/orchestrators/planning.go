package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	planningStore "touchline/internal/adapters/storage/planning"
	"touchline/internal/domain/planning"
)

// SaveNoticeSeconds is how long the client shows the manual-save notice
// before clearing it.
const SaveNoticeSeconds = 4

// PlanningStoreForOrchestrator defines the planning store interface needed by
// the planner orchestrators (the upsert protocol of the persistence boundary).
type PlanningStoreForOrchestrator interface {
	Find(ctx context.Context, seasonID, teamID string) (planningStore.Record, error)
	Insert(ctx context.Context, record planningStore.Record) error
	Update(ctx context.Context, id string, document *planning.Document, updatedAt time.Time) error
}

// PlanningDeps holds dependencies for the planner mutation orchestrators.
type PlanningDeps struct {
	PlanningStore PlanningStoreForOrchestrator
	GenerateID    func() string
	Now           func() time.Time
}

// MutationResult carries a mutation's outcome. The mutation is always applied
// to the returned document; Saved reports whether the autosave reached the
// store, and SaveError holds the transient user-facing notice when it didn't.
type MutationResult struct {
	Document  *planning.Document
	Saved     bool
	SaveError string
}

// loadOrNewDocument fetches the season's planning document, or starts an
// empty one when the season has never been annotated (lazy creation).
func loadOrNewDocument(ctx context.Context, deps PlanningDeps, seasonID, teamID string) (*planning.Document, error) {
	rec, err := deps.PlanningStore.Find(ctx, seasonID, teamID)
	if errors.Is(err, planningStore.ErrNotFound) {
		return planning.NewDocument(seasonID, teamID), nil
	}
	if err != nil {
		return nil, err
	}
	return rec.Document, nil
}

// autosave runs the find-then-upsert cycle. The read and write are not
// wrapped in a transaction; if a racing session inserts first, our insert
// hits the UNIQUE(season_id, team_id) constraint and we retry the lookup
// once so the race degrades to an update.
func autosave(ctx context.Context, deps PlanningDeps, doc *planning.Document) error {
	now := deps.Now()
	rec, err := deps.PlanningStore.Find(ctx, doc.SeasonID, doc.TeamID)
	if err == nil {
		return deps.PlanningStore.Update(ctx, rec.ID, doc, now)
	}
	if !errors.Is(err, planningStore.ErrNotFound) {
		return err
	}

	insertErr := deps.PlanningStore.Insert(ctx, planningStore.Record{
		ID:        deps.GenerateID(),
		Document:  doc,
		UpdatedAt: now,
	})
	if insertErr == nil {
		return nil
	}
	if rec, err := deps.PlanningStore.Find(ctx, doc.SeasonID, doc.TeamID); err == nil {
		slog.Warn("planning_event", "event", "autosave_insert_race", "season_id", doc.SeasonID)
		return deps.PlanningStore.Update(ctx, rec.ID, doc, now)
	}
	return insertErr
}

// finishMutation persists the mutated document. Persistence failures do not
// roll back the in-memory mutation (optimistic local state); they surface as
// a transient notice.
func finishMutation(ctx context.Context, deps PlanningDeps, doc *planning.Document, event string, args ...any) MutationResult {
	if err := autosave(ctx, deps, doc); err != nil {
		slog.Error("planning_event", append([]any{"event", event + "_save_failed", "season_id", doc.SeasonID, "error", err}, args...)...)
		return MutationResult{Document: doc, Saved: false, SaveError: "could not save the plan, changes are kept locally"}
	}
	slog.Info("planning_event", append([]any{"event", event, "season_id", doc.SeasonID}, args...)...)
	return MutationResult{Document: doc, Saved: true}
}

// --- Cell mutations ---

// SetToggleInput carries input for the toggle cell mutation.
type SetToggleInput struct {
	SeasonID    string
	TeamID      string
	WeekIndex   int
	CategoryKey string
}

// ExecuteSetToggle flips a toggle cell and autosaves.
// PRE: CategoryKey names a Toggle-kind category
// POST: Cell flipped; document persisted via find-then-upsert
func ExecuteSetToggle(ctx context.Context, input SetToggleInput, deps PlanningDeps) (MutationResult, error) {
	doc, err := loadOrNewDocument(ctx, deps, input.SeasonID, input.TeamID)
	if err != nil {
		return MutationResult{}, err
	}
	if err := doc.SetToggle(input.WeekIndex, input.CategoryKey); err != nil {
		return MutationResult{}, err
	}
	return finishMutation(ctx, deps, doc, "toggle_set", "week", input.WeekIndex, "category", input.CategoryKey), nil
}

// SetDropdownOptionInput carries input for the dropdown cell mutation.
type SetDropdownOptionInput struct {
	SeasonID    string
	TeamID      string
	WeekIndex   int
	CategoryKey string
	Option      string
}

// ExecuteSetDropdownOption replaces a dropdown cell and autosaves. An
// unrecognized option is rejected before any state changes.
// PRE: CategoryKey names a Dropdown-kind category; Option declared or the
// unset sentinel
func ExecuteSetDropdownOption(ctx context.Context, input SetDropdownOptionInput, deps PlanningDeps) (MutationResult, error) {
	doc, err := loadOrNewDocument(ctx, deps, input.SeasonID, input.TeamID)
	if err != nil {
		return MutationResult{}, err
	}
	if err := doc.SetDropdownOption(input.WeekIndex, input.CategoryKey, input.Option); err != nil {
		return MutationResult{}, err
	}
	return finishMutation(ctx, deps, doc, "option_set", "week", input.WeekIndex, "category", input.CategoryKey), nil
}

// SetCycleLabelInput carries input for the cycle label mutation.
type SetCycleLabelInput struct {
	SeasonID  string
	TeamID    string
	WeekIndex int
	Text      string
}

// ExecuteSetCycleLabel replaces a week's free-text cycle label and autosaves.
// An empty string stores an explicitly cleared label.
func ExecuteSetCycleLabel(ctx context.Context, input SetCycleLabelInput, deps PlanningDeps) (MutationResult, error) {
	doc, err := loadOrNewDocument(ctx, deps, input.SeasonID, input.TeamID)
	if err != nil {
		return MutationResult{}, err
	}
	doc.SetCycleLabel(input.WeekIndex, input.Text)
	return finishMutation(ctx, deps, doc, "cycle_set", "week", input.WeekIndex), nil
}

// ToggleDailyTagInput carries input for the day tag toggle mutation.
type ToggleDailyTagInput struct {
	SeasonID  string
	TeamID    string
	WeekIndex int
	DayIndex  int
	Tag       string
}

// ExecuteToggleDailyTag toggles a tag's membership in a day cell's set and
// autosaves.
// PRE: DayIndex in [0,6], Tag in the fixed tag set
func ExecuteToggleDailyTag(ctx context.Context, input ToggleDailyTagInput, deps PlanningDeps) (MutationResult, error) {
	doc, err := loadOrNewDocument(ctx, deps, input.SeasonID, input.TeamID)
	if err != nil {
		return MutationResult{}, err
	}
	if err := doc.ToggleDailyTag(input.WeekIndex, input.DayIndex, input.Tag); err != nil {
		return MutationResult{}, err
	}
	return finishMutation(ctx, deps, doc, "daily_tag_toggled", "week", input.WeekIndex, "day", input.DayIndex, "tag", input.Tag), nil
}

// ClearDailyInput carries input for the day clear mutation.
type ClearDailyInput struct {
	SeasonID  string
	TeamID    string
	WeekIndex int
	DayIndex  int
}

// ExecuteClearDaily empties a day cell's tag set in one action and autosaves.
// PRE: DayIndex in [0,6]
func ExecuteClearDaily(ctx context.Context, input ClearDailyInput, deps PlanningDeps) (MutationResult, error) {
	doc, err := loadOrNewDocument(ctx, deps, input.SeasonID, input.TeamID)
	if err != nil {
		return MutationResult{}, err
	}
	if err := doc.ClearDaily(input.WeekIndex, input.DayIndex); err != nil {
		return MutationResult{}, err
	}
	return finishMutation(ctx, deps, doc, "daily_cleared", "week", input.WeekIndex, "day", input.DayIndex), nil
}

// --- Manual save ---

// ManualSaveInput carries the editor's whole in-memory document.
type ManualSaveInput struct {
	Document *planning.Document
}

// ManualSaveResult carries the user-facing save status. The notice clears
// client-side after NoticeSeconds.
type ManualSaveResult struct {
	Saved         bool
	Message       string
	NoticeSeconds int
}

// ExecuteManualSave persists the whole current document unconditionally
// (last write wins at document granularity).
// PRE: Document is non-nil with season and team set
// POST: Document upserted; result reports success or failure for the notice
func ExecuteManualSave(ctx context.Context, input ManualSaveInput, deps PlanningDeps) (ManualSaveResult, error) {
	if input.Document == nil || input.Document.SeasonID == "" || input.Document.TeamID == "" {
		return ManualSaveResult{}, errors.New("a document with season and team is required")
	}

	if err := autosave(ctx, deps, input.Document); err != nil {
		slog.Error("planning_event", "event", "manual_save_failed", "season_id", input.Document.SeasonID, "error", err)
		return ManualSaveResult{Saved: false, Message: "saving failed", NoticeSeconds: SaveNoticeSeconds}, nil
	}
	slog.Info("planning_event", "event", "manual_save", "season_id", input.Document.SeasonID)
	return ManualSaveResult{Saved: true, Message: "plan saved", NoticeSeconds: SaveNoticeSeconds}, nil
}
