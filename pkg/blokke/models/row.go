// Package models defines data structures shared by the conversion pipeline.
package models

import "strings"

// Row is a single table row aligned to its table header.
// Null cells are represented by the empty string.
type Row []string

// Cell returns the cell value at index i, or "" when i is out of range.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// IsBlank reports whether the cell at index i is null or whitespace only.
func (r Row) IsBlank(i int) bool {
	return IsBlank(r.Cell(i))
}

// IsEmpty reports whether every cell of the row is blank.
func (r Row) IsEmpty() bool {
	for _, v := range r {
		if !IsBlank(v) {
			return false
		}
	}
	return true
}

// IsBlank reports whether s is empty or consists of white space only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
