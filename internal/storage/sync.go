package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/jonstaff/OneRepMax/internal/logger"
	"github.com/jonstaff/OneRepMax/internal/models"
	"go.uber.org/zap"
)

// ExportLiftsToTOML writes every stored lift, oldest first, to outputPath in
// the same [[lift]] format accepted by the import command.
func (s *Storage) ExportLiftsToTOML(ctx context.Context, outputPath string) (int, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+liftColumns+` FROM lifts ORDER BY performed_at ASC, rowid ASC`)
	if err != nil {
		return 0, fmt.Errorf("failed to query lifts: %w", err)
	}
	defer rows.Close()

	var dump models.LiftImport
	for rows.Next() {
		l, err := scanLift(rows)
		if err != nil {
			return 0, err
		}
		dump.Lifts = append(dump.Lifts, models.LiftTOML{
			Exercise: l.Exercise,
			Weight:   l.Weight,
			Reps:     l.Reps,
			Date:     l.PerformedAt,
			Notes:    l.Notes,
			Formula:  l.Formula,
		})
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(dump); err != nil {
		return 0, fmt.Errorf("encoding TOML: %w", err)
	}
	return len(dump.Lifts), f.Close()
}

// ImportLifts stores all lifts in one transaction; either every lift is saved
// or none is.
func (s *Storage) ImportLifts(ctx context.Context, lifts []models.Lift) error {
	for i := range lifts {
		if err := validateLift(lifts[i]); err != nil {
			return fmt.Errorf("lift %d: %w", i+1, err)
		}
		if lifts[i].ID == "" {
			lifts[i].ID = uuid.New().String()
		}
		if lifts[i].PerformedAt.IsZero() {
			lifts[i].PerformedAt = time.Now()
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO lifts (`+liftColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, l := range lifts {
		_, err := stmt.ExecContext(ctx,
			l.ID,
			l.Exercise,
			l.Weight,
			l.Reps,
			l.PerformedAt.UTC().Format(time.RFC3339),
			l.Notes,
			l.Formula,
			l.Estimated1RM,
		)
		if err != nil {
			return fmt.Errorf("inserting lift %d (%s): %w", i+1, l.Exercise, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	logger.L().Debug("lifts imported", zap.Int("count", len(lifts)))
	return nil
}
