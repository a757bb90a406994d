package orchestrators_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"touchline/internal/application/orchestrators"
	"touchline/internal/domain/planning"
	"touchline/internal/domain/season"
)

// mockTemplateStore is an in-memory template store.
type mockTemplateStore struct {
	templates map[string]planning.Template
}

func newMockTemplateStore() *mockTemplateStore {
	return &mockTemplateStore{templates: map[string]planning.Template{}}
}

func (m *mockTemplateStore) GetByID(ctx context.Context, id string) (planning.Template, error) {
	if t, ok := m.templates[id]; ok {
		return t, nil
	}
	return planning.Template{}, errors.New("template not found")
}

func (m *mockTemplateStore) Save(ctx context.Context, t planning.Template) error {
	m.templates[t.ID] = t
	return nil
}

func (m *mockTemplateStore) Delete(ctx context.Context, id string) error {
	delete(m.templates, id)
	return nil
}

// TestExecuteSnapshotTemplate records the season's generated week count as
// metadata.
func TestExecuteSnapshotTemplate(t *testing.T) {
	var log []string
	seasons := newMockSeasonStore(&log)
	seasons.seasons["s1"] = season.Season{
		ID: "s1", TeamID: "t1", Name: "2024/25",
		StartDate: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 9, 22, 0, 0, 0, 0, time.UTC),
	}
	plans := newMockPlanningStore()
	pdeps := testDeps(plans)
	templates := newMockTemplateStore()

	// Annotate the grid first.
	if _, err := orchestrators.ExecuteSetCycleLabel(context.Background(), orchestrators.SetCycleLabelInput{
		SeasonID: "s1", TeamID: "t1", WeekIndex: 1, Text: "C1",
	}, pdeps); err != nil {
		t.Fatal(err)
	}

	deps := orchestrators.SnapshotTemplateDeps{
		SeasonStore:   seasons,
		PlanningStore: plans,
		TemplateStore: templates,
		GenerateID:    pdeps.GenerateID,
		Now:           pdeps.Now,
	}
	tpl, err := orchestrators.ExecuteSnapshotTemplate(context.Background(), orchestrators.SnapshotTemplateInput{
		SeasonID: "s1", TeamID: "t1", Name: "Autumn block",
	}, deps)
	if err != nil {
		t.Fatalf("ExecuteSnapshotTemplate() error = %v", err)
	}
	if tpl.WeekCount != 3 {
		t.Errorf("WeekCount = %d, want 3 generated weeks", tpl.WeekCount)
	}
	if tpl.Weeks[1].Cells[planning.CycleKey].Text != "C1" {
		t.Error("snapshot is missing the cycle label")
	}
	if _, ok := templates.templates[tpl.ID]; !ok {
		t.Error("template was not persisted")
	}

	// An empty name is rejected before persisting.
	if _, err := orchestrators.ExecuteSnapshotTemplate(context.Background(), orchestrators.SnapshotTemplateInput{
		SeasonID: "s1", TeamID: "t1", Name: " ",
	}, deps); !errors.Is(err, planning.ErrEmptyTemplateName) {
		t.Errorf("error = %v, want ErrEmptyTemplateName", err)
	}
}

// TestExecuteApplyTemplate overlays onto a season with no document yet and
// persists the result, dormant indices included.
func TestExecuteApplyTemplate(t *testing.T) {
	plans := newMockPlanningStore()
	pdeps := testDeps(plans)
	templates := newMockTemplateStore()

	src := planning.NewDocument("s1", "t1")
	for i := 0; i < 10; i++ {
		src.SetCycleLabel(i, "C1")
	}
	tpl := planning.Snapshot(src, 10, "ten weeks")
	tpl.ID = "tpl1"
	templates.templates["tpl1"] = tpl

	deps := orchestrators.ApplyTemplateDeps{
		PlanningStore: plans,
		TemplateStore: templates,
		GenerateID:    pdeps.GenerateID,
		Now:           pdeps.Now,
	}
	got, err := orchestrators.ExecuteApplyTemplate(context.Background(), orchestrators.ApplyTemplateInput{
		TemplateID: "tpl1", SeasonID: "s2", TeamID: "t1",
	}, deps)
	if err != nil {
		t.Fatalf("ExecuteApplyTemplate() error = %v", err)
	}
	if !got.Saved {
		t.Errorf("apply result not saved: %q", got.SaveError)
	}
	rec, err := plans.Find(context.Background(), "s2", "t1")
	if err != nil {
		t.Fatalf("applied document not persisted: %v", err)
	}
	// All ten template weeks land in the target, including ones past any
	// 6-week season's range.
	for i := 0; i < 10; i++ {
		if rec.Document.CycleLabel(i) != "C1" {
			t.Errorf("week %d cycle label missing after apply", i)
		}
	}
}

// TestExecuteDeleteTemplate removes the stored template only.
func TestExecuteDeleteTemplate(t *testing.T) {
	templates := newMockTemplateStore()
	templates.templates["tpl1"] = planning.Template{ID: "tpl1", TeamID: "t1", Name: "x"}

	err := orchestrators.ExecuteDeleteTemplate(context.Background(), orchestrators.DeleteTemplateInput{TemplateID: "tpl1"},
		orchestrators.DeleteTemplateDeps{TemplateStore: templates})
	if err != nil {
		t.Fatalf("ExecuteDeleteTemplate() error = %v", err)
	}
	if _, ok := templates.templates["tpl1"]; ok {
		t.Error("template still present")
	}

	if err := orchestrators.ExecuteDeleteTemplate(context.Background(), orchestrators.DeleteTemplateInput{},
		orchestrators.DeleteTemplateDeps{TemplateStore: templates}); err == nil {
		t.Error("empty template ID accepted")
	}
}
