// Package parser provides the spreadsheet side of the conversion: it reads
// workbook sheets into models.Table values.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/blokke-go/pkg/blokke/models"
	"github.com/xuri/excelize/v2"
)

// ErrTableNotFound indicates that no sheet matched the requested name or index.
var ErrTableNotFound = errors.New("table not found")

// Workbook exposes the sheets of an xlsx file as tables.
type Workbook struct {
	f *excelize.File
}

// Open opens the xlsx file at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Workbook{f: f}, nil
}

// New wraps an already opened excelize file.
func New(f *excelize.File) *Workbook {
	return &Workbook{f: f}
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Names returns sheet names in workbook order.
func (w *Workbook) Names() []string {
	return w.f.GetSheetList()
}

// Table returns the sheet matching name, or the sheet at index when no sheet
// has that name. An empty name or a negative index disables that lookup.
func (w *Workbook) Table(name string, index int) (models.Table, error) {
	names := w.f.GetSheetList()
	idx := resolve(names, name, index)
	if idx < 0 {
		return models.Table{}, fmt.Errorf("%w: name %q, index %d", ErrTableNotFound, name, index)
	}
	rows, err := ExtractRows(w.f, names[idx])
	if err != nil {
		return models.Table{}, fmt.Errorf("unable to read sheet %q: %w", names[idx], err)
	}
	return models.Table{Name: names[idx], Index: idx, Rows: rows}, nil
}

// Tables is an in-memory table source.
type Tables []models.Table

// Table returns the table matching name, or the table at index.
func (ts Tables) Table(name string, index int) (models.Table, error) {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name
	}
	idx := resolve(names, name, index)
	if idx < 0 {
		return models.Table{}, fmt.Errorf("%w: name %q, index %d", ErrTableNotFound, name, index)
	}
	t := ts[idx]
	t.Index = idx
	return t, nil
}

// resolve picks a sheet by exact name, then by case-insensitive name, then by index.
func resolve(names []string, name string, index int) int {
	if name != "" {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		for i, n := range names {
			if strings.EqualFold(strings.TrimSpace(n), strings.TrimSpace(name)) {
				return i
			}
		}
	}
	if index >= 0 && index < len(names) {
		return index
	}
	return -1
}
