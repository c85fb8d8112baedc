// Package activity turns blocks into activities.
//
// For every block the position window is scanned left to right. At each
// column the widest span of at least two columns is searched in which every
// row repeats one value; such a span becomes one activity. When no span
// qualifies, a column holding any value becomes a single-column activity.
//
// Each activity receives a group of digits from the block's PER string that
// sums to its span, and decrements the HOLD entry keyed by the block class
// and the span's first value. Whether that entry is exhausted decides the
// label of the next activity in the block.
package activity

import (
	"fmt"

	"github.com/ukaji3/blokke-go/pkg/blokke/models"
	"go.uber.org/zap"
)

// Registry is the HOLD state consulted and updated per activity.
type Registry interface {
	Decrement(class, start string)
	IsZero(class, start string) bool
}

// Extractor produces activities for blocks of one BLOKKE table.
type Extractor struct {
	reg    Registry
	window models.Window
	layout models.BlockLayout
	log    *zap.Logger
}

// New creates an extractor working on the given position window.
func New(reg Registry, window models.Window, layout models.BlockLayout, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{reg: reg, window: window, layout: layout, log: log}
}

// Extract returns the activities of a block in column order.
// A nil or empty block yields no activities.
func (e *Extractor) Extract(b *models.Block) []models.Activity {
	if b == nil || len(b.Rows) == 0 || e.window.Empty() {
		return nil
	}

	first := b.Rows[0]
	var (
		class     = first.Cell(e.layout.Class)
		group     = first.Cell(e.layout.Group)
		cursor    = NewCursor(first.Cell(e.layout.Code))
		m         = project(b.Rows, e.window)
		useSimple bool
		result    []models.Activity
	)

	emit := func(col, span int) {
		code := cursor.Take(span)
		if code == "" {
			e.log.Debug("Unable to allocate PER digits",
				zap.String("kla", class), zap.String("blok", group),
				zap.Int("column", col+1), zap.Int("span", span), zap.String("rest", cursor.Rest()))
		}

		label := group
		if !useSimple {
			label = fmt.Sprintf("%s %d", group, col+1)
		}
		result = append(result, models.Activity{ClassCode: class, Label: label, Span: span, Code: code})

		start := first.Cell(e.window.Column(col))
		e.reg.Decrement(class, start)
		useSimple = e.reg.IsZero(class, start)
	}

	for col := 0; col < e.window.Len; {
		span := m.largestMatch(col)
		switch {
		case span >= 2 && !m.blank(col, span):
			emit(col, span)
			col += span
		case !m.blank(col, 1):
			emit(col, 1)
			col++
		default:
			col++
		}
	}
	return result
}
