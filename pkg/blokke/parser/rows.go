package parser

import (
	"github.com/ukaji3/blokke-go/pkg/blokke/models"
	"github.com/xuri/excelize/v2"
)

// ExtractRows reads all rows of a sheet as fixed-width string rows.
// Leading blank rows are dropped so that the first row returned is the header;
// every row is padded to the right edge of the sheet's data bounds.
func ExtractRows(f *excelize.File, sheetName string) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return normalizeRows(rows), nil
}

func normalizeRows(rows [][]string) []models.Row {
	first, last, width := dataBounds(rows)
	if first < 0 {
		return nil
	}

	result := make([]models.Row, 0, last-first+1)
	for _, row := range rows[first : last+1] {
		r := make(models.Row, width)
		copy(r, row)
		result = append(result, r)
	}
	return result
}

// dataBounds returns the first and last rows holding a non-blank cell and the
// number of columns up to the rightmost non-blank cell. first is -1 when all
// cells are blank.
func dataBounds(rows [][]string) (first, last, width int) {
	first, last = -1, -1
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if models.IsBlank(cell) {
				continue
			}
			if first < 0 {
				first = rowIdx
			}
			last = rowIdx
			width = max(width, colIdx+1)
		}
	}
	return
}
