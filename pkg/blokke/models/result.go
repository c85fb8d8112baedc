package models

// Result is the outcome of one conversion run.
type Result struct {
	// Activities contains all activities in block order, then column order.
	Activities []Activity `json:"activities"`
	// Hold contains the HOLD entries as left after the run.
	Hold []HoldEntry `json:"hold,omitempty"`
	// Blocks is the number of blocks processed.
	Blocks int `json:"-"`
	// Window is the position window located in the BLOKKE header.
	Window Window `json:"-"`
}
