package season

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	domain "touchline/internal/domain/season"
)

const dateFormat = "2006-01-02"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SeasonStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Season by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Season, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, team_id, name, start_date, end_date FROM season WHERE id = ?", id)
	var entity domain.Season
	var startStr, endStr string
	err := row.Scan(&entity.ID, &entity.TeamID, &entity.Name, &startStr, &endStr)
	if err == sql.ErrNoRows {
		return domain.Season{}, fmt.Errorf("season not found: %w", err)
	}
	if err != nil {
		return domain.Season{}, err
	}
	entity.StartDate, _ = time.Parse(dateFormat, startStr)
	entity.EndDate, _ = time.Parse(dateFormat, endStr)
	return entity, nil
}

// Save persists a Season to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Season) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO season (id, team_id, name, start_date, end_date) VALUES (?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET team_id=excluded.team_id, name=excluded.name, start_date=excluded.start_date, end_date=excluded.end_date",
		entity.ID, entity.TeamID, entity.Name, entity.StartDate.Format(dateFormat), entity.EndDate.Format(dateFormat),
	)
	return err
}

// Delete removes a Season from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM season WHERE id = ?", id)
	return err
}

// ListByTeamID retrieves a team's seasons, most recent start date first, for
// the season selector.
// PRE: teamID is non-empty
// POST: Returns matching entities ordered by start_date descending
func (s *SQLiteStore) ListByTeamID(ctx context.Context, teamID string) ([]domain.Season, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, team_id, name, start_date, end_date FROM season WHERE team_id = ? ORDER BY start_date DESC", teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Season
	for rows.Next() {
		var entity domain.Season
		var startStr, endStr string
		if err := rows.Scan(&entity.ID, &entity.TeamID, &entity.Name, &startStr, &endStr); err != nil {
			return nil, err
		}
		entity.StartDate, _ = time.Parse(dateFormat, startStr)
		entity.EndDate, _ = time.Parse(dateFormat, endStr)
		results = append(results, entity)
	}
	return results, rows.Err()
}
