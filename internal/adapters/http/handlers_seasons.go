package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"touchline/internal/application/orchestrators"
	domain "touchline/internal/domain/season"
)

// seasonJSON is the wire shape for a season; dates travel as YYYY-MM-DD.
type seasonJSON struct {
	ID        string `json:"id"`
	TeamID    string `json:"team_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func toSeasonJSON(s domain.Season) seasonJSON {
	return seasonJSON{
		ID:        s.ID,
		TeamID:    s.TeamID,
		Name:      s.Name,
		StartDate: s.StartDate.Format("2006-01-02"),
		EndDate:   s.EndDate.Format("2006-01-02"),
	}
}

// weekJSON is the wire shape for a generated week descriptor.
type weekJSON struct {
	Index      int    `json:"index"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	MonthLabel string `json:"month_label"`
}

func toWeeksJSON(weeks []domain.WeekDescriptor) []weekJSON {
	out := make([]weekJSON, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, weekJSON{
			Index:      w.Index,
			StartDate:  w.StartDate.Format("2006-01-02"),
			EndDate:    w.EndDate.Format("2006-01-02"),
			MonthLabel: w.MonthLabel,
		})
	}
	return out
}

// handleSeasons handles GET/POST/PUT/DELETE for /api/seasons
func handleSeasons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		teamID := r.URL.Query().Get("team_id")
		if teamID == "" {
			http.Error(w, "team_id is required", http.StatusBadRequest)
			return
		}
		seasons, err := stores.SeasonStore.ListByTeamID(ctx, teamID)
		if err != nil {
			internalError(w, err)
			return
		}
		out := make([]seasonJSON, 0, len(seasons))
		for _, s := range seasons {
			out = append(out, toSeasonJSON(s))
		}
		writeJSON(w, http.StatusOK, out)

	case "POST":
		var input struct {
			TeamID    string `json:"team_id"`
			Name      string `json:"name"`
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		startDate, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			http.Error(w, "invalid start_date format (use YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		endDate, err := time.Parse("2006-01-02", input.EndDate)
		if err != nil {
			http.Error(w, "invalid end_date format (use YYYY-MM-DD)", http.StatusBadRequest)
			return
		}

		result, err := orchestrators.ExecuteCreateSeason(ctx, orchestrators.CreateSeasonInput{
			TeamID:    input.TeamID,
			Name:      input.Name,
			StartDate: startDate,
			EndDate:   endDate,
		}, orchestrators.CreateSeasonDeps{
			SeasonStore: stores.SeasonStore,
			GenerateID:  uuid.NewString,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, struct {
			Season seasonJSON `json:"season"`
			Weeks  []weekJSON `json:"weeks"`
		}{toSeasonJSON(result.Season), toWeeksJSON(result.Weeks)})

	case "PUT":
		var input struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		startDate, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			http.Error(w, "invalid start_date format (use YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		endDate, err := time.Parse("2006-01-02", input.EndDate)
		if err != nil {
			http.Error(w, "invalid end_date format (use YYYY-MM-DD)", http.StatusBadRequest)
			return
		}

		result, err := orchestrators.ExecuteUpdateSeason(ctx, orchestrators.UpdateSeasonInput{
			SeasonID:  input.ID,
			Name:      input.Name,
			StartDate: startDate,
			EndDate:   endDate,
		}, orchestrators.UpdateSeasonDeps{SeasonStore: stores.SeasonStore})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, struct {
			Season seasonJSON `json:"season"`
			Weeks  []weekJSON `json:"weeks"`
		}{toSeasonJSON(result.Season), toWeeksJSON(result.Weeks)})

	case "DELETE":
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		result, err := orchestrators.ExecuteDeleteSeason(ctx, orchestrators.DeleteSeasonInput{SeasonID: id},
			orchestrators.DeleteSeasonDeps{
				SeasonStore:   stores.SeasonStore,
				PlanningStore: stores.PlanningStore,
			})
		if err != nil {
			http.Error(w, "season not found", http.StatusNotFound)
			return
		}
		out := struct {
			Fallback *seasonJSON `json:"fallback,omitempty"`
		}{}
		if result.HasFallback {
			fb := toSeasonJSON(result.Fallback)
			out.Fallback = &fb
		}
		writeJSON(w, http.StatusOK, out)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
