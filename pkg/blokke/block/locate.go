// Package block splits a BLOKKE table into blocks and locates its position
// columns.
package block

import (
	"strings"

	"github.com/ukaji3/blokke-go/pkg/blokke/models"
	"golang.org/x/text/cases"
)

const (
	// DefaultMarker is the header text identifying position columns.
	DefaultMarker = "POS"
	// DefaultMaxPositions is the number of position columns of the reference workbook.
	DefaultMaxPositions = 8
)

// Locate finds the first header cell containing marker (case-insensitive) and
// returns a window of at most limit columns starting there. The window is empty
// when no header matches.
func Locate(header models.Row, marker string, limit int) models.Window {
	if marker == "" {
		marker = DefaultMarker
	}
	if limit <= 0 {
		limit = DefaultMaxPositions
	}

	fold := cases.Fold()
	needle := fold.String(marker)

	start := -1
	for i, h := range header {
		if h != "" && strings.Contains(fold.String(h), needle) {
			start = i
			break
		}
	}
	if start < 0 {
		return models.Window{}
	}

	n := min(limit, len(header)-start)
	if n <= 0 {
		return models.Window{}
	}
	return models.Window{Start: start, Len: n}
}
