package output

import (
	"context"
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/ukaji3/blokke-go/pkg/blokke/models"
	"github.com/xuri/excelize/v2"
)

const (
	// DefaultActivitiesSheet is the sheet receiving the activity table.
	DefaultActivitiesSheet = "Activities"
	// HoldSheet is the sheet receiving the final HOLD state.
	HoldSheet = "HOLD"

	maxColWidth = 60
)

// XLSX saves the result as a new workbook at Path.
type XLSX struct {
	Path string
	// Sheet names the activities sheet, DefaultActivitiesSheet when empty.
	Sheet string
	// IncludeHold adds a sheet with the HOLD entries left after the run.
	IncludeHold bool
}

func (x XLSX) Write(_ context.Context, res *models.Result) error {
	f, err := Workbook(res, x.Sheet, x.IncludeHold)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(x.Path); err != nil {
		return fmt.Errorf("unable to save workbook %s: %w", x.Path, err)
	}
	return nil
}

// Workbook builds an in-memory workbook holding the result.
func Workbook(res *models.Result, sheet string, includeHold bool) (*excelize.File, error) {
	if sheet == "" {
		sheet = DefaultActivitiesSheet
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to name sheet %q: %w", sheet, err)
	}

	rows := make([][]interface{}, 0, len(res.Activities)+1)
	rows = append(rows, []interface{}{"KLA", "AKT_NAVN", "POS", "PER"})
	for _, a := range res.Activities {
		rows = append(rows, []interface{}{a.ClassCode, a.Label, a.Span, a.Code})
	}
	if err := writeSheet(f, sheet, rows); err != nil {
		f.Close()
		return nil, err
	}

	if includeHold && sheet != HoldSheet {
		if _, err := f.NewSheet(HoldSheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("unable to create sheet %q: %w", HoldSheet, err)
		}
		rows = rows[:0]
		rows = append(rows, []interface{}{"KLA", "AKT", "POS"})
		for _, h := range res.Hold {
			rows = append(rows, []interface{}{h.ClassCode, h.StartValue, h.Remaining})
		}
		if err := writeSheet(f, HoldSheet, rows); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// writeSheet stores rows from A1 and fits column widths to the content.
// Strings are stored as text so codes keep leading zeros.
func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	var widths []int
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("unable to write row %d of %q: %w", i+1, sheet, err)
		}
		for c, v := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			widths[c] = max(widths[c], runewidth.StringWidth(fmt.Sprint(v)))
		}
	}

	for c, w := range widths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, float64(min(w+2, maxColWidth))); err != nil {
			return fmt.Errorf("unable to size column %s of %q: %w", col, sheet, err)
		}
	}
	return nil
}
