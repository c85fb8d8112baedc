package models

// Activity is one matched span of position columns within a block.
type Activity struct {
	// ClassCode is the KLA of the block the activity was produced from.
	ClassCode string `json:"kla"`
	// Label is the activity name (AKT_NAVN), either the group name alone
	// or the group name followed by the 1-based start column.
	Label string `json:"akt_navn"`
	// Span is the number of position columns covered (POS).
	Span int `json:"pos"`
	// Code is the run of digits allocated from the block's PER string.
	// Empty when the digits could not be matched to the span.
	Code string `json:"per"`
}
