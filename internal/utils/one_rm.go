package utils

import (
	"fmt"

	"github.com/jonstaff/OneRepMax/internal/formula"
	"github.com/jonstaff/OneRepMax/internal/models"
)

// EstimateLift fills in the formula and estimated 1RM of l using the named
// formula. A lift of zero reps has no meaningful estimate and keeps 0.
func EstimateLift(l *models.Lift, name string) error {
	f, err := formula.Lookup(name)
	if err != nil {
		return err
	}

	l.Formula = f.Name
	if l.Reps == 0 {
		l.Estimated1RM = 0
		return nil
	}

	l.Estimated1RM = f.Func(l.Weight, float32(l.Reps))
	if !formula.IsValid(l.Estimated1RM) {
		return fmt.Errorf("%s is undefined for %d reps", f.Label, l.Reps)
	}
	return nil
}
