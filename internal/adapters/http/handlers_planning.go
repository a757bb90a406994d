package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"touchline/internal/application/orchestrators"
	"touchline/internal/application/projections"
	"touchline/internal/domain/planning"
)

func planningDeps() orchestrators.PlanningDeps {
	return orchestrators.PlanningDeps{
		PlanningStore: stores.PlanningStore,
		GenerateID:    uuid.NewString,
		Now:           time.Now,
	}
}

// mutationJSON is the wire shape for a planner mutation outcome. The client
// keeps rendering the returned document even when the autosave failed.
type mutationJSON struct {
	Document  *planning.Document `json:"document"`
	Saved     bool               `json:"saved"`
	SaveError string             `json:"save_error,omitempty"`
}

func writeMutation(w http.ResponseWriter, result orchestrators.MutationResult) {
	writeJSON(w, http.StatusOK, mutationJSON{
		Document:  result.Document,
		Saved:     result.Saved,
		SaveError: result.SaveError,
	})
}

// handlePlannerGrid handles GET for /api/planner/grid
func handlePlannerGrid(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetPlannerGrid(r.Context(), projections.GetPlannerGridQuery{
		SeasonID: r.URL.Query().Get("season_id"),
		TeamID:   r.URL.Query().Get("team_id"),
	}, projections.GetPlannerGridDeps{
		SeasonStore:   stores.SeasonStore,
		PlanningStore: stores.PlanningStore,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handlePlannerToggle handles POST for /api/planner/toggle
func handlePlannerToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		SeasonID    string `json:"season_id"`
		TeamID      string `json:"team_id"`
		WeekIndex   int    `json:"week_index"`
		CategoryKey string `json:"category_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteSetToggle(r.Context(), orchestrators.SetToggleInput{
		SeasonID:    input.SeasonID,
		TeamID:      input.TeamID,
		WeekIndex:   input.WeekIndex,
		CategoryKey: input.CategoryKey,
	}, planningDeps())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeMutation(w, result)
}

// handlePlannerOption handles POST for /api/planner/option
func handlePlannerOption(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		SeasonID    string `json:"season_id"`
		TeamID      string `json:"team_id"`
		WeekIndex   int    `json:"week_index"`
		CategoryKey string `json:"category_key"`
		Option      string `json:"option"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteSetDropdownOption(r.Context(), orchestrators.SetDropdownOptionInput{
		SeasonID:    input.SeasonID,
		TeamID:      input.TeamID,
		WeekIndex:   input.WeekIndex,
		CategoryKey: input.CategoryKey,
		Option:      input.Option,
	}, planningDeps())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeMutation(w, result)
}

// handlePlannerCycle handles POST for /api/planner/cycle
func handlePlannerCycle(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		SeasonID  string `json:"season_id"`
		TeamID    string `json:"team_id"`
		WeekIndex int    `json:"week_index"`
		Text      string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteSetCycleLabel(r.Context(), orchestrators.SetCycleLabelInput{
		SeasonID:  input.SeasonID,
		TeamID:    input.TeamID,
		WeekIndex: input.WeekIndex,
		Text:      input.Text,
	}, planningDeps())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeMutation(w, result)
}

// handlePlannerDailyToggle handles POST for /api/planner/daily/toggle
func handlePlannerDailyToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		SeasonID  string `json:"season_id"`
		TeamID    string `json:"team_id"`
		WeekIndex int    `json:"week_index"`
		DayIndex  int    `json:"day_index"`
		Tag       string `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteToggleDailyTag(r.Context(), orchestrators.ToggleDailyTagInput{
		SeasonID:  input.SeasonID,
		TeamID:    input.TeamID,
		WeekIndex: input.WeekIndex,
		DayIndex:  input.DayIndex,
		Tag:       input.Tag,
	}, planningDeps())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeMutation(w, result)
}

// handlePlannerDailyClear handles POST for /api/planner/daily/clear
func handlePlannerDailyClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		SeasonID  string `json:"season_id"`
		TeamID    string `json:"team_id"`
		WeekIndex int    `json:"week_index"`
		DayIndex  int    `json:"day_index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteClearDaily(r.Context(), orchestrators.ClearDailyInput{
		SeasonID:  input.SeasonID,
		TeamID:    input.TeamID,
		WeekIndex: input.WeekIndex,
		DayIndex:  input.DayIndex,
	}, planningDeps())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeMutation(w, result)
}

// handlePlannerSave handles POST for /api/planner/save
func handlePlannerSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		Document *planning.Document `json:"document"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteManualSave(r.Context(), orchestrators.ManualSaveInput{
		Document: input.Document,
	}, planningDeps())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Saved         bool   `json:"saved"`
		Message       string `json:"message"`
		NoticeSeconds int    `json:"notice_seconds"`
	}{result.Saved, result.Message, result.NoticeSeconds})
}
