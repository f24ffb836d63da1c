package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonstaff/OneRepMax/internal/logger"
	"github.com/jonstaff/OneRepMax/internal/models"
	"go.uber.org/zap"
)

const liftColumns = `id, exercise, weight, reps, performed_at, notes, formula, estimated_1rm`

// SaveLift stores l, assigning an ID and timestamp when they are missing.
// It returns the stored lift.
func (s *Storage) SaveLift(ctx context.Context, l models.Lift) (models.Lift, error) {
	if err := validateLift(l); err != nil {
		return models.Lift{}, err
	}
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.PerformedAt.IsZero() {
		l.PerformedAt = time.Now()
	}
	l.PerformedAt = l.PerformedAt.UTC()

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO lifts (`+liftColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID,
		l.Exercise,
		l.Weight,
		l.Reps,
		l.PerformedAt.Format(time.RFC3339),
		l.Notes,
		l.Formula,
		l.Estimated1RM,
	)
	if err != nil {
		return models.Lift{}, fmt.Errorf("failed to save lift: %w", err)
	}

	logger.L().Debug("lift saved",
		zap.String("id", l.ID),
		zap.String("exercise", l.Exercise),
		zap.Float32("estimated_1rm", l.Estimated1RM),
	)
	return l, nil
}

// ListLifts returns lifts, newest first. An empty exercise matches every
// exercise and a non-positive limit returns all rows.
func (s *Storage) ListLifts(ctx context.Context, exercise string, limit int) ([]models.Lift, error) {
	query := `SELECT ` + liftColumns + ` FROM lifts`
	var args []any
	if exercise != "" {
		query += ` WHERE exercise = ?`
		args = append(args, exercise)
	}
	query += ` ORDER BY performed_at DESC, rowid DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list lifts: %w", err)
	}
	defer rows.Close()

	var lifts []models.Lift
	for rows.Next() {
		l, err := scanLift(rows)
		if err != nil {
			return nil, err
		}
		lifts = append(lifts, *l)
	}
	return lifts, rows.Err()
}

// BestLift returns the lift with the highest stored estimate for exercise.
func (s *Storage) BestLift(ctx context.Context, exercise string) (*models.Lift, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+liftColumns+` FROM lifts
		WHERE exercise = ?
		ORDER BY estimated_1rm DESC, performed_at ASC
		LIMIT 1`,
		exercise,
	)

	l, err := scanLift(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no lifts for %s: %w", exercise, ErrNotFound)
	}
	return l, err
}

func (s *Storage) DeleteLift(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM lifts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lift: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete lift: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("lift %s: %w", id, ErrNotFound)
	}

	logger.L().Debug("lift deleted", zap.String("id", id))
	return nil
}

// Exercises lists the distinct exercise names that have lifts.
func (s *Storage) Exercises(ctx context.Context) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT exercise FROM lifts GROUP BY exercise ORDER BY exercise`)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLift(sc scanner) (*models.Lift, error) {
	var l models.Lift
	var performedAt string
	var notes sql.NullString

	err := sc.Scan(
		&l.ID,
		&l.Exercise,
		&l.Weight,
		&l.Reps,
		&performedAt,
		&notes,
		&l.Formula,
		&l.Estimated1RM,
	)
	if err != nil {
		return nil, err
	}

	l.Notes = notes.String
	l.PerformedAt, err = time.Parse(time.RFC3339, performedAt)
	if err != nil {
		return nil, fmt.Errorf("lift %s has a malformed timestamp: %w", l.ID, err)
	}
	return &l, nil
}
