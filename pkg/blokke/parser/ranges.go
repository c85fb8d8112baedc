package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/blokke-go/pkg/blokke/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range string like $A$1:$L$200 or 'Sheet'!A1:L200.
// A sheet prefix is accepted and ignored.
func ParseRange(ref string) (models.CellRange, error) {
	rangeStr := strings.TrimSpace(ref)
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return models.CellRange{}, fmt.Errorf("invalid range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}

// Clip restricts a table to the given range. Row and column numbers of the
// range are relative to the table's first row and column.
func Clip(t models.Table, area models.CellRange) models.Table {
	clipped := models.Table{Name: t.Name, Index: t.Index}
	for rowIdx, row := range t.Rows {
		rowNum := rowIdx + 1
		if rowNum < area.R1 || rowNum > area.R2 {
			continue
		}
		r := make(models.Row, area.C2-area.C1+1)
		for c := area.C1; c <= area.C2; c++ {
			r[c-area.C1] = row.Cell(c - 1)
		}
		clipped.Rows = append(clipped.Rows, r)
	}
	return clipped
}
