package utils

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/jonstaff/OneRepMax/internal/models"
)

func ParseLiftsFromTOML(path string) (*models.LiftImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lifts models.LiftImport
	if err := toml.Unmarshal(data, &lifts); err != nil {
		return nil, err
	}

	return &lifts, nil
}

// ToLifts converts parsed TOML entries into lifts. Entries without a formula
// use defaultFormula.
func ToLifts(in *models.LiftImport, defaultFormula string) ([]models.Lift, error) {
	lifts := make([]models.Lift, 0, len(in.Lifts))
	for i, lt := range in.Lifts {
		l := models.Lift{
			Exercise:    lt.Exercise,
			Weight:      lt.Weight,
			Reps:        lt.Reps,
			PerformedAt: lt.Date,
			Notes:       lt.Notes,
		}

		name := lt.Formula
		if name == "" {
			name = defaultFormula
		}
		if err := EstimateLift(&l, name); err != nil {
			return nil, fmt.Errorf("lift %d (%s): %w", i+1, lt.Exercise, err)
		}
		lifts = append(lifts, l)
	}
	return lifts, nil
}
