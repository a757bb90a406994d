package template

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	domain "touchline/internal/domain/planning"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new TemplateStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// templateBody is the JSON shape of the body column: the captured planning
// content, without the metadata columns.
type templateBody struct {
	Mesocycles []string                `json:"mesocycles,omitempty"`
	Weeks      map[int]domain.WeekPlan `json:"planning,omitempty"`
}

// GetByID retrieves a Template by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Template, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, team_id, name, body, week_count, created_at FROM planning_template WHERE id = ?", id)
	return scanTemplate(row.Scan)
}

// Save persists a Template to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Template) error {
	body, err := json.Marshal(templateBody{Mesocycles: entity.Mesocycles, Weeks: entity.Weeks})
	if err != nil {
		return fmt.Errorf("failed to encode template body: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO planning_template (id, team_id, name, body, week_count, created_at) VALUES (?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET team_id=excluded.team_id, name=excluded.name, body=excluded.body, week_count=excluded.week_count",
		entity.ID, entity.TeamID, entity.Name, string(body), entity.WeekCount, entity.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes a Template from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM planning_template WHERE id = ?", id)
	return err
}

// ListByTeamID retrieves a team's templates, newest first.
// PRE: teamID is non-empty
// POST: Returns matching entities ordered by created_at descending
func (s *SQLiteStore) ListByTeamID(ctx context.Context, teamID string) ([]domain.Template, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, team_id, name, body, week_count, created_at FROM planning_template WHERE team_id = ? ORDER BY created_at DESC", teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Template
	for rows.Next() {
		entity, err := scanTemplate(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanTemplate(scan func(dest ...any) error) (domain.Template, error) {
	var entity domain.Template
	var body, createdStr string
	err := scan(&entity.ID, &entity.TeamID, &entity.Name, &body, &entity.WeekCount, &createdStr)
	if err == sql.ErrNoRows {
		return domain.Template{}, fmt.Errorf("template not found: %w", err)
	}
	if err != nil {
		return domain.Template{}, err
	}

	var b templateBody
	if err := json.Unmarshal([]byte(body), &b); err != nil {
		return domain.Template{}, fmt.Errorf("corrupt template %s: %w", entity.ID, err)
	}
	entity.Mesocycles = b.Mesocycles
	entity.Weeks = b.Weeks
	entity.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	return entity, nil
}
