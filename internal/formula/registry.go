package formula

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownFormula = errors.New("unknown formula")

// Func maps a weight and rep count to an estimated 1RM.
type Func func(weight, reps float32) float32

type Formula struct {
	Name       string // Lookup key, e.g. "oconner".
	Label      string // Display name, e.g. "O'Conner".
	Expression string
	Func       Func
}

type Estimate struct {
	Formula string  `json:"formula"`
	Label   string  `json:"label"`
	Value   float32 `json:"value"`
}

var standard = []Formula{
	{Name: "epley", Label: "Epley", Expression: "w * (1 + r/30)", Func: Epley},
	{Name: "brzycki", Label: "Brzycki", Expression: "w * 36 / (37 - r)", Func: Brzycki},
	{Name: "lander", Label: "Lander", Expression: "100w / (101.3 - 2.67123r)", Func: Lander},
	{Name: "lombardi", Label: "Lombardi", Expression: "w * r^0.1", Func: Lombardi},
	{Name: "mayhew", Label: "Mayhew", Expression: "100w/52.2 + 41.9e^(-0.055r)", Func: Mayhew},
	{Name: "oconner", Label: "O'Conner", Expression: "w * (1 + 0.025r)", Func: OConner},
	{Name: "wathan", Label: "Wathan", Expression: "100w / (48.8 + 53.8e^(-0.075r))", Func: Wathan},
}

var mayhewCanonical = Formula{
	Name:       "mayhew-canonical",
	Label:      "Mayhew (canonical)",
	Expression: "100w / (52.2 + 41.9e^(-0.055r))",
	Func:       MayhewCanonical,
}

// All returns the seven standard formulas. The slice is a copy.
func All() []Formula {
	out := make([]Formula, len(standard))
	copy(out, standard)
	return out
}

// Lookup finds a formula by name, ignoring case and apostrophes. The
// canonical Mayhew variant is only reachable through Lookup.
func Lookup(name string) (Formula, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "'", "")
	key = strings.ReplaceAll(key, " ", "-")

	if key == mayhewCanonical.Name {
		return mayhewCanonical, nil
	}
	for _, f := range standard {
		if f.Name == key {
			return f, nil
		}
	}
	return Formula{}, fmt.Errorf("%w: %q", ErrUnknownFormula, name)
}

// Available returns the standard formulas followed by the opt-in variants.
func Available() []Formula {
	return append(All(), mayhewCanonical)
}

// Names lists every name accepted by Lookup.
func Names() []string {
	avail := Available()
	names := make([]string, 0, len(avail))
	for _, f := range avail {
		names = append(names, f.Name)
	}
	return names
}

// EstimateAll evaluates every standard formula for one set.
func EstimateAll(w, r float32) []Estimate {
	out := make([]Estimate, 0, len(standard))
	for _, f := range standard {
		out = append(out, Estimate{Formula: f.Name, Label: f.Label, Value: f.Func(w, r)})
	}
	return out
}

// Average is the mean of the finite standard estimates, or NaN if none is.
func Average(w, r float32) float32 {
	var sum float64
	var n int
	for _, e := range EstimateAll(w, r) {
		if !IsValid(e.Value) {
			continue
		}
		sum += float64(e.Value)
		n++
	}
	if n == 0 {
		return float32(math.NaN())
	}
	return float32(sum / float64(n))
}
