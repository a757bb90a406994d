package planning

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

// NewSQLiteStore creates a new PlanningStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Find retrieves the planning document for a (season, team) key.
// PRE: seasonID and teamID are non-empty
// POST: Returns the record, or ErrNotFound when no row exists
func (s *SQLiteStore) Find(ctx context.Context, seasonID, teamID string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, body, updated_at FROM planning_document WHERE season_id = ? AND team_id = ?",
		seasonID, teamID,
	)
	var rec Record
	var body, updatedStr string
	err := row.Scan(&rec.ID, &body, &updatedStr)
	if err == sql.ErrNoRows {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}

	var doc domain.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return Record{}, fmt.Errorf("corrupt planning document %s: %w", rec.ID, err)
	}
	rec.Document = &doc
	rec.UpdatedAt, _ = time.Parse(time.RFC3339, updatedStr)
	return rec, nil
}

// Insert creates a new planning document row.
// PRE: record.ID is non-empty, record.Document is non-nil
// POST: Row is created; the UNIQUE(season_id, team_id) constraint rejects a
// second row for the same key
func (s *SQLiteStore) Insert(ctx context.Context, record Record) error {
	body, err := json.Marshal(record.Document)
	if err != nil {
		return fmt.Errorf("failed to encode planning document: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO planning_document (id, season_id, team_id, body, updated_at) VALUES (?, ?, ?, ?, ?)",
		record.ID, record.Document.SeasonID, record.Document.TeamID, string(body), record.UpdatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Update replaces an existing row's document body.
// PRE: id names an existing row
// POST: Body and updated_at are replaced
func (s *SQLiteStore) Update(ctx context.Context, id string, document *domain.Document, updatedAt time.Time) error {
	body, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to encode planning document: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		"UPDATE planning_document SET body = ?, updated_at = ? WHERE id = ?",
		string(body), updatedAt.UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBySeasonID removes a season's planning document (cascade from season
// deletion).
// PRE: seasonID is non-empty
// POST: No planning document remains for the season
func (s *SQLiteStore) DeleteBySeasonID(ctx context.Context, seasonID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM planning_document WHERE season_id = ?", seasonID)
	return err
}
