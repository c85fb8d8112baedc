package blokke

import (
	"errors"
	"fmt"

	"github.com/ukaji3/blokke-go/pkg/blokke/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrTableNotFound indicates a required table is absent from the source.
var ErrTableNotFound = parser.ErrTableNotFound

// ErrMissingHeader indicates a table has no header row.
var ErrMissingHeader = errors.New("missing header row")

// ConversionError represents a structural problem with the source.
type ConversionError struct {
	Table     string
	Component string // "source", "range", "header"
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error in table %q (%s): %v", e.Table, e.Component, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(table, component string, err error) *ConversionError {
	return &ConversionError{
		Table:     table,
		Component: component,
		Err:       err,
	}
}
