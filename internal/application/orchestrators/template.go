package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"touchline/internal/domain/planning"
	"touchline/internal/domain/season"
)

// TemplateStoreForOrchestrator defines the template store interface needed by
// the template orchestrators.
type TemplateStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (planning.Template, error)
	Save(ctx context.Context, t planning.Template) error
	Delete(ctx context.Context, id string) error
}

// --- Snapshot ---

// SnapshotTemplateInput carries input for the snapshot orchestrator.
type SnapshotTemplateInput struct {
	SeasonID string
	TeamID   string
	Name     string
}

// SnapshotTemplateDeps holds dependencies for SnapshotTemplate.
type SnapshotTemplateDeps struct {
	SeasonStore   SeasonStoreForOrchestrator
	PlanningStore PlanningStoreForOrchestrator
	TemplateStore TemplateStoreForOrchestrator
	GenerateID    func() string
	Now           func() time.Time
}

// ExecuteSnapshotTemplate captures the season's planning document as a named
// reusable template. The week count recorded is the season's generated count
// at capture time; it is informational metadata only.
// PRE: season exists, Name non-empty
// POST: Template persisted; the source document is untouched
func ExecuteSnapshotTemplate(ctx context.Context, input SnapshotTemplateInput, deps SnapshotTemplateDeps) (planning.Template, error) {
	s, err := deps.SeasonStore.GetByID(ctx, input.SeasonID)
	if err != nil {
		return planning.Template{}, err
	}

	pdeps := PlanningDeps{PlanningStore: deps.PlanningStore, GenerateID: deps.GenerateID, Now: deps.Now}
	doc, err := loadOrNewDocument(ctx, pdeps, input.SeasonID, input.TeamID)
	if err != nil {
		return planning.Template{}, err
	}

	tpl := planning.Snapshot(doc, len(season.SeasonWeeks(s)), input.Name)
	tpl.ID = deps.GenerateID()
	tpl.CreatedAt = deps.Now()
	if err := tpl.Validate(); err != nil {
		return planning.Template{}, err
	}
	if err := deps.TemplateStore.Save(ctx, tpl); err != nil {
		return planning.Template{}, err
	}

	slog.Info("template_event", "event", "template_created", "template_id", tpl.ID, "team_id", tpl.TeamID, "week_count", tpl.WeekCount)
	return tpl, nil
}

// --- Apply ---

// ApplyTemplateInput carries input for the apply orchestrator.
type ApplyTemplateInput struct {
	TemplateID string
	SeasonID   string
	TeamID     string
}

// ApplyTemplateDeps holds dependencies for ApplyTemplate.
type ApplyTemplateDeps struct {
	PlanningStore PlanningStoreForOrchestrator
	TemplateStore TemplateStoreForOrchestrator
	GenerateID    func() string
	Now           func() time.Time
}

// ExecuteApplyTemplate overlays a template onto the season's planning
// document and persists the result. Week indices beyond the season's current
// range are stored but stay dormant; no week-count compatibility check is
// performed.
// PRE: template exists
// POST: Target weeks present in the template are wholly replaced and the
// document is upserted
func ExecuteApplyTemplate(ctx context.Context, input ApplyTemplateInput, deps ApplyTemplateDeps) (MutationResult, error) {
	tpl, err := deps.TemplateStore.GetByID(ctx, input.TemplateID)
	if err != nil {
		return MutationResult{}, err
	}

	pdeps := PlanningDeps{PlanningStore: deps.PlanningStore, GenerateID: deps.GenerateID, Now: deps.Now}
	doc, err := loadOrNewDocument(ctx, pdeps, input.SeasonID, input.TeamID)
	if err != nil {
		return MutationResult{}, err
	}

	out := planning.Apply(tpl, doc)
	return finishMutation(ctx, pdeps, out, "template_applied", "template_id", tpl.ID), nil
}

// --- Delete ---

// DeleteTemplateInput carries input for the delete orchestrator.
type DeleteTemplateInput struct {
	TemplateID string
}

// DeleteTemplateDeps holds dependencies for DeleteTemplate.
type DeleteTemplateDeps struct {
	TemplateStore TemplateStoreForOrchestrator
}

// ExecuteDeleteTemplate removes a saved template.
// PRE: TemplateID non-empty
// POST: Template is gone; planning documents it was applied to keep their
// content
func ExecuteDeleteTemplate(ctx context.Context, input DeleteTemplateInput, deps DeleteTemplateDeps) error {
	if input.TemplateID == "" {
		return errors.New("template ID is required")
	}
	if err := deps.TemplateStore.Delete(ctx, input.TemplateID); err != nil {
		return err
	}
	slog.Info("template_event", "event", "template_deleted", "template_id", input.TemplateID)
	return nil
}
