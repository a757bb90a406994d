package planning

import (
	"context"
	"errors"
	"time"

	domain "touchline/internal/domain/planning"
)

// ErrNotFound is returned when no planning document exists for a key.
var ErrNotFound = errors.New("planning document not found")

// Record is a stored planning document row.
type Record struct {
	ID        string
	Document  *domain.Document
	UpdatedAt time.Time
}

// Store persists planning documents keyed by (season, team). Insert must
// surface a constraint violation when a row for the key already exists, so a
// racing double-insert fails loudly instead of duplicating the document.
type Store interface {
	Find(ctx context.Context, seasonID, teamID string) (Record, error)
	Insert(ctx context.Context, record Record) error
	Update(ctx context.Context, id string, document *domain.Document, updatedAt time.Time) error
	DeleteBySeasonID(ctx context.Context, seasonID string) error
}
