// Package chart derives training loads from an estimated 1RM: the weight a
// formula predicts for a given rep count, and percentage-based working sets.
package chart

import (
	"math"

	"github.com/jonstaff/OneRepMax/internal/formula"
)

type RepMax struct {
	Reps    int
	Weight  float32
	Percent float32 // Weight as a percentage of the 1RM.
}

type Percentage struct {
	Percent float32
	Weight  float32
}

var DefaultPercents = []float32{50, 60, 65, 70, 75, 80, 85, 90, 95, 100}

// RepMaxes predicts the heaviest weight liftable for 1..maxReps reps given a
// 1RM. Every formula is affine in the weight, f(w, r) = a(r)*w + b(r), so the
// prediction is (oneRM - b) / a. Rows where the formula is singular carry NaN
// or Inf; check them with formula.IsValid. Percent is likewise not finite
// when oneRM is zero.
func RepMaxes(oneRM float32, maxReps int, f formula.Func) []RepMax {
	if maxReps < 1 {
		return nil
	}

	out := make([]RepMax, 0, maxReps)
	for r := 1; r <= maxReps; r++ {
		reps := float32(r)
		b := float64(f(0, reps))
		a := float64(f(1, reps)) - b
		w := float32((float64(oneRM) - b) / a)
		out = append(out, RepMax{
			Reps:    r,
			Weight:  w,
			Percent: w / oneRM * 100,
		})
	}
	return out
}

// Percentages returns the working weight at each percent of oneRM, rounded to
// the nearest increment.
func Percentages(oneRM float32, percents []float32, increment float32) []Percentage {
	if len(percents) == 0 {
		percents = DefaultPercents
	}

	out := make([]Percentage, 0, len(percents))
	for _, p := range percents {
		out = append(out, Percentage{
			Percent: p,
			Weight:  RoundTo(oneRM*p/100, increment),
		})
	}
	return out
}

// RoundTo rounds v to the nearest multiple of increment. A non-positive
// increment leaves v unchanged.
func RoundTo(v, increment float32) float32 {
	if increment <= 0 {
		return v
	}
	return float32(math.Round(float64(v)/float64(increment)) * float64(increment))
}
