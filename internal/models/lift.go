package models

import "time"

type Lift struct {
	ID           string    `json:"id"`
	Exercise     string    `json:"exercise"`
	Weight       float32   `json:"weight"`
	Reps         int       `json:"reps"`
	PerformedAt  time.Time `json:"performed_at"`
	Notes        string    `json:"notes"`
	Formula      string    `json:"formula"`       // Formula used for Estimated1RM.
	Estimated1RM float32   `json:"estimated_1rm"`
}

//
// For TOML parsing only
//

type LiftTOML struct {
	Exercise string    `toml:"exercise"`
	Weight   float32   `toml:"weight"`
	Reps     int       `toml:"reps"`
	Date     time.Time `toml:"date,omitempty"`
	Notes    string    `toml:"notes,omitempty"`
	Formula  string    `toml:"formula,omitempty"`
}

type LiftImport struct {
	Lifts []LiftTOML `toml:"lift"`
}
