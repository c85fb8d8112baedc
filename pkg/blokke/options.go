// Package blokke converts BLOKKE scheduling tables into activities.
package blokke

import (
	"github.com/ukaji3/blokke-go/pkg/blokke/block"
	"github.com/ukaji3/blokke-go/pkg/blokke/models"
	"go.uber.org/zap"
)

// TableSpec selects a table in the source.
type TableSpec struct {
	// Name is the sheet name, matched exactly and then case-insensitively.
	Name string
	// Index is the 0-based sheet index used when no sheet has Name.
	// A negative value disables the fallback.
	Index int
	// Range optionally restricts the table to an A1 range such as "A1:L200".
	Range string
}

// Options configures a conversion run.
type Options struct {
	// Hold selects the HOLD table.
	Hold TableSpec
	// Blocks selects the BLOKKE table.
	Blocks TableSpec
	// HoldLayout holds the column indexes of the HOLD table.
	HoldLayout models.HoldLayout
	// BlockLayout holds the column indexes of the BLOKKE table.
	BlockLayout models.BlockLayout
	// Marker is the header text identifying the first position column.
	Marker string
	// MaxPositions bounds the number of position columns scanned.
	MaxPositions int
	// Logger receives debug information. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns options matching the reference workbook layout.
func DefaultOptions() Options {
	return Options{
		Hold:         TableSpec{Name: "HOLD", Index: 4},
		Blocks:       TableSpec{Name: "BLOKKE", Index: 7},
		HoldLayout:   models.DefaultHoldLayout(),
		BlockLayout:  models.DefaultBlockLayout(),
		Marker:       block.DefaultMarker,
		MaxPositions: block.DefaultMaxPositions,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
