package season

import (
	"context"

	domain "touchline/internal/domain/season"
)

// Store persists Season state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Season, error)
	Save(ctx context.Context, value domain.Season) error
	Delete(ctx context.Context, id string) error
	ListByTeamID(ctx context.Context, teamID string) ([]domain.Season, error)
}
