package season

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyName      = errors.New("season name cannot be empty")
	ErrEmptyTeamID    = errors.New("season team ID cannot be empty")
	ErrEmptyStartDate = errors.New("start date cannot be zero")
	ErrEmptyEndDate   = errors.New("end date cannot be zero")
	ErrInvalidDates   = errors.New("start date must be on or before end date")
)

// Season is a named planning horizon owned by a team.
type Season struct {
	ID        string
	TeamID    string
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// Validate checks if the Season has valid data.
// PRE: Season struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Season) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if s.TeamID == "" {
		return ErrEmptyTeamID
	}
	if s.StartDate.IsZero() {
		return ErrEmptyStartDate
	}
	if s.EndDate.IsZero() {
		return ErrEmptyEndDate
	}
	if s.EndDate.Before(s.StartDate) {
		return ErrInvalidDates
	}
	return nil
}

// Contains returns true if the given date falls within the season.
// PRE: date is a valid time
// INVARIANT: Season fields are not mutated
func (s *Season) Contains(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	start := s.StartDate.Truncate(24 * time.Hour)
	end := s.EndDate.Truncate(24 * time.Hour)
	return (d.Equal(start) || d.After(start)) && (d.Equal(end) || d.Before(end))
}
