package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"touchline/internal/adapters/http/middleware"
	planningStore "touchline/internal/adapters/storage/planning"
	seasonStore "touchline/internal/adapters/storage/season"
	templateStore "touchline/internal/adapters/storage/template"
)

// Stores holds all storage dependencies.
type Stores struct {
	SeasonStore   seasonStore.Store
	PlanningStore planningStore.Store
	TemplateStore templateStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// NewMux wires HTTP handlers for the planner.
func NewMux(staticDir string, s *Stores, csrfKey []byte, trustedOrigins []string) http.Handler {
	stores = s

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: RequestLog -> RateLimit -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey, trustedOrigins),
		middleware.RateLimit(limiter),
		middleware.RequestLog,
	)
}

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/seasons", handleSeasons)
	mux.HandleFunc("/api/planner/grid", handlePlannerGrid)
	mux.HandleFunc("/api/planner/toggle", handlePlannerToggle)
	mux.HandleFunc("/api/planner/option", handlePlannerOption)
	mux.HandleFunc("/api/planner/cycle", handlePlannerCycle)
	mux.HandleFunc("/api/planner/daily/toggle", handlePlannerDailyToggle)
	mux.HandleFunc("/api/planner/daily/clear", handlePlannerDailyClear)
	mux.HandleFunc("/api/planner/save", handlePlannerSave)
	mux.HandleFunc("/api/templates", handleTemplates)
	mux.HandleFunc("/api/templates/apply", handleTemplateApply)
}

// writeJSON encodes a JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// internalError hides details from the client and logs them server-side.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("http_internal_error", "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
