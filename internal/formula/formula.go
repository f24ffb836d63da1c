// Package formula holds the regression formulas used to estimate a one rep
// max from a submaximal set. Every function is pure and follows IEEE-754
// semantics: singular inputs yield +Inf, -Inf or NaN instead of an error.
//
// Weight terms such as 100*w are single precision products; everything
// after them is evaluated in double precision and narrowed on return.
package formula

import "math"

// Epley: w * (1 + r/30).
func Epley(w, r float32) float32 {
	return w * (1 + r/30)
}

// Brzycki: w * 36 / (37 - r). Singular at r = 37.
func Brzycki(w, r float32) float32 {
	return w * 36 / (37 - r)
}

// Lander: 100w / (101.3 - 2.67123r). Singular near r = 37.93.
func Lander(w, r float32) float32 {
	return float32(float64(100*w) / (101.3 - 2.67123*float64(r)))
}

// The Lombardi exponent is the single precision 0.1 widened to double.
const lombardiExp = float64(float32(0.1))

// Lombardi: w * r^0.1. NaN for negative reps.
func Lombardi(w, r float32) float32 {
	return float32(float64(w) * math.Pow(float64(r), lombardiExp))
}

// Mayhew computes 100w/52.2 + 41.9e^(-0.055r).
//
// The exponential term sits outside the division. Use MayhewCanonical for
// the published form.
func Mayhew(w, r float32) float32 {
	return float32(float64(100*w)/52.2 + 41.9*math.Exp(-0.055*float64(r)))
}

// MayhewCanonical: 100w / (52.2 + 41.9e^(-0.055r)).
func MayhewCanonical(w, r float32) float32 {
	return float32(float64(100*w) / (52.2 + 41.9*math.Exp(-0.055*float64(r))))
}

// OConner: w * (1 + 0.025r).
func OConner(w, r float32) float32 {
	return float32(float64(w) * (1 + 0.025*float64(r)))
}

// Wathan: 100w / (48.8 + 53.8e^(-0.075r)). The denominator never reaches
// zero for real r.
func Wathan(w, r float32) float32 {
	return float32(float64(100*w) / (48.8 + 53.8*math.Exp(-0.075*float64(r))))
}

// IsValid reports whether v is a usable estimate (neither NaN nor infinite).
func IsValid(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
