package models

// HoldEntry is one allocation counter of the HOLD table.
type HoldEntry struct {
	// ClassCode is the trimmed KLA value.
	ClassCode string `json:"kla"`
	// StartValue is the trimmed AKT value, matched against the first
	// position value of an activity.
	StartValue string `json:"akt"`
	// Remaining is the number of activities still allowed, never negative.
	Remaining int `json:"pos"`
}
