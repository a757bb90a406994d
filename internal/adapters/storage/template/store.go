package template

import (
	"context"

	domain "touchline/internal/domain/planning"
)

// Store persists planning templates.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Template, error)
	Save(ctx context.Context, value domain.Template) error
	Delete(ctx context.Context, id string) error
	ListByTeamID(ctx context.Context, teamID string) ([]domain.Template, error)
}
