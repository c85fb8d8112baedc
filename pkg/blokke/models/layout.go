package models

// Window describes the contiguous run of position columns in a table.
type Window struct {
	// Start is the 0-based index of the first position column.
	Start int `json:"start"`
	// Len is the number of position columns, 0 when none were found.
	Len int `json:"len"`
}

// Empty reports whether the window has no columns.
func (w Window) Empty() bool {
	return w.Len <= 0
}

// Column converts a window-relative column into a table column index.
func (w Window) Column(col int) int {
	return w.Start + col
}

// BlockLayout holds column indexes of the BLOKKE table.
type BlockLayout struct {
	Class int `json:"kla"`
	Group int `json:"blok"`
	Code  int `json:"per"`
}

// HoldLayout holds column indexes of the HOLD table.
type HoldLayout struct {
	Class     int `json:"kla"`
	Start     int `json:"akt"`
	Remaining int `json:"pos"`
}

// DefaultBlockLayout returns the BLOKKE layout of the reference workbook.
func DefaultBlockLayout() BlockLayout {
	return BlockLayout{Class: 0, Group: 1, Code: 2}
}

// DefaultHoldLayout returns the HOLD layout of the reference workbook.
func DefaultHoldLayout() HoldLayout {
	return HoldLayout{Class: 0, Start: 1, Remaining: 2}
}
