package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jonstaff/OneRepMax/internal/formula"
	"github.com/jonstaff/OneRepMax/internal/models"
)

func validateLift(l models.Lift) error {
	if strings.TrimSpace(l.Exercise) == "" {
		return fmt.Errorf("%w: exercise name is empty", ErrInvalidLift)
	}
	if l.Reps < 0 {
		return fmt.Errorf("%w: negative reps %d", ErrInvalidLift, l.Reps)
	}
	if !formula.IsValid(l.Estimated1RM) {
		return fmt.Errorf("%w: estimate for %s is not a finite number", ErrInvalidLift, l.Exercise)
	}
	return nil
}

// ExerciseExists reports whether any lift has been logged for name, ignoring
// case.
func (s *Storage) ExerciseExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM lifts WHERE exercise = ?)",
		name,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check exercise existence: %w", err)
	}

	return exists, nil
}
