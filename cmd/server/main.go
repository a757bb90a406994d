package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	_ "modernc.org/sqlite"

	web "touchline/internal/adapters/http"
	"touchline/internal/adapters/storage"
	planningStore "touchline/internal/adapters/storage/planning"
	seasonStore "touchline/internal/adapters/storage/season"
	templateStore "touchline/internal/adapters/storage/template"
	"touchline/internal/application/orchestrators"
	"touchline/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// devCSRFKey is only used outside production when no key is configured.
const devCSRFKey = "touchline-dev-only-0123456789abc"

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("TOUCHLINE_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dsn := cfg.Database.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	seasons := seasonStore.NewSQLiteStore(db)
	stores := &web.Stores{
		SeasonStore:   seasons,
		PlanningStore: planningStore.NewSQLiteStore(db),
		TemplateStore: templateStore.NewSQLiteStore(db),
	}

	// Seed a demo season for development only
	if !cfg.IsProduction() {
		if err := seedDemoSeason(context.Background(), seasons); err != nil {
			log.Fatalf("failed to seed demo season: %v", err)
		}
	}

	csrfKey := cfg.Server.CSRFKey
	if csrfKey == "" {
		if cfg.IsProduction() {
			log.Fatal("TOUCHLINE_CSRF_KEY is required in production")
		}
		csrfKey = devCSRFKey
	}
	if len(csrfKey) != 32 {
		log.Fatalf("CSRF key must be 32 bytes, got %d", len(csrfKey))
	}

	// Nightly backup via VACUUM INTO
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 3 * * *", func() {
		if err := os.MkdirAll(cfg.Database.BackupDir, 0o755); err != nil {
			slog.Error("backup_failed", "error", err)
			return
		}
		dest := filepath.Join(cfg.Database.BackupDir, "touchline-"+time.Now().Format("20060102-150405")+".db")
		if err := storage.BackupTo(db, dest); err != nil {
			slog.Error("backup_failed", "error", err)
			return
		}
		slog.Info("backup_done", "dest", dest)
	}); err != nil {
		log.Fatalf("failed to schedule backups: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	mux := web.NewMux("static", stores, []byte(csrfKey), []string{"localhost"})

	log.Printf("Touchline %s starting on %s (env=%s)", version, cfg.Server.Addr, cfg.Env)
	if err := http.ListenAndServe(cfg.Server.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// seedDemoSeason creates a season for the demo team when it has none, so a
// fresh development database opens straight into a usable planner.
func seedDemoSeason(ctx context.Context, seasons seasonStore.Store) error {
	const demoTeam = "demo-team"

	existing, err := seasons.ListByTeamID(ctx, demoTeam)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	start := time.Date(time.Now().Year(), time.August, 1, 0, 0, 0, 0, time.UTC)
	_, err = orchestrators.ExecuteCreateSeason(ctx, orchestrators.CreateSeasonInput{
		TeamID:    demoTeam,
		Name:      "Demo season",
		StartDate: start,
		EndDate:   start.AddDate(0, 10, 0),
	}, orchestrators.CreateSeasonDeps{SeasonStore: seasons, GenerateID: uuid.NewString})
	return err
}
