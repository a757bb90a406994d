package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"touchline/internal/application/orchestrators"
)

// templateSummaryJSON is the wire shape for the template picker list.
type templateSummaryJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	WeekCount int    `json:"week_count"`
	CreatedAt string `json:"created_at"`
}

// handleTemplates handles GET/POST/DELETE for /api/templates
func handleTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		teamID := r.URL.Query().Get("team_id")
		if teamID == "" {
			http.Error(w, "team_id is required", http.StatusBadRequest)
			return
		}
		templates, err := stores.TemplateStore.ListByTeamID(ctx, teamID)
		if err != nil {
			internalError(w, err)
			return
		}
		out := make([]templateSummaryJSON, 0, len(templates))
		for _, t := range templates {
			out = append(out, templateSummaryJSON{
				ID:        t.ID,
				Name:      t.Name,
				WeekCount: t.WeekCount,
				CreatedAt: t.CreatedAt.Format(time.RFC3339),
			})
		}
		writeJSON(w, http.StatusOK, out)

	case "POST":
		var input struct {
			SeasonID string `json:"season_id"`
			TeamID   string `json:"team_id"`
			Name     string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		tpl, err := orchestrators.ExecuteSnapshotTemplate(ctx, orchestrators.SnapshotTemplateInput{
			SeasonID: input.SeasonID,
			TeamID:   input.TeamID,
			Name:     input.Name,
		}, orchestrators.SnapshotTemplateDeps{
			SeasonStore:   stores.SeasonStore,
			PlanningStore: stores.PlanningStore,
			TemplateStore: stores.TemplateStore,
			GenerateID:    uuid.NewString,
			Now:           time.Now,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, templateSummaryJSON{
			ID:        tpl.ID,
			Name:      tpl.Name,
			WeekCount: tpl.WeekCount,
			CreatedAt: tpl.CreatedAt.Format(time.RFC3339),
		})

	case "DELETE":
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := orchestrators.ExecuteDeleteTemplate(ctx, orchestrators.DeleteTemplateInput{TemplateID: id},
			orchestrators.DeleteTemplateDeps{TemplateStore: stores.TemplateStore}); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleTemplateApply handles POST for /api/templates/apply
func handleTemplateApply(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		TemplateID string `json:"template_id"`
		SeasonID   string `json:"season_id"`
		TeamID     string `json:"team_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteApplyTemplate(r.Context(), orchestrators.ApplyTemplateInput{
		TemplateID: input.TemplateID,
		SeasonID:   input.SeasonID,
		TeamID:     input.TeamID,
	}, orchestrators.ApplyTemplateDeps{
		PlanningStore: stores.PlanningStore,
		TemplateStore: stores.TemplateStore,
		GenerateID:    uuid.NewString,
		Now:           time.Now,
	})
	if err != nil {
		http.Error(w, "template not found", http.StatusNotFound)
		return
	}
	writeMutation(w, result)
}
