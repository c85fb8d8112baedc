package models

// Block represents all rows belonging to one (class, group) unit,
// including continuation rows with blank class and group cells.
type Block struct {
	// ClassCode is the KLA value the block was keyed by.
	ClassCode string `json:"kla"`
	// GroupCode is the BLOK value the block was keyed by.
	GroupCode string `json:"blok"`
	// Rows contains the block rows in source order.
	Rows []Row `json:"rows"`
}
