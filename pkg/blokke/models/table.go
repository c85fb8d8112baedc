package models

// Table is a named table read from a source workbook.
type Table struct {
	// Name is the sheet name the table was read from.
	Name string `json:"name"`
	// Index is the 0-based position of the sheet in the workbook.
	Index int `json:"index"`
	// Rows contains all rows including the header row.
	Rows []Row `json:"rows,omitempty"`
}

// Header returns the first row of the table, or nil for an empty table.
func (t Table) Header() Row {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Body returns all rows after the header.
func (t Table) Body() []Row {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}
