// Package hold keeps the HOLD allocation counters consulted while activities
// are produced.
package hold

import (
	"strings"

	"github.com/ukaji3/blokke-go/pkg/blokke/models"
	"go.uber.org/zap"
)

// Registry holds HOLD entries keyed by (class, start value).
// Entries are matched by linear scan and the first match wins.
// NOTE: not safe for concurrent use.
type Registry struct {
	entries []models.HoldEntry
}

// NewRegistry creates a registry from existing entries.
func NewRegistry(entries ...models.HoldEntry) *Registry {
	r := &Registry{entries: make([]models.HoldEntry, 0, len(entries))}
	for _, e := range entries {
		e.ClassCode = strings.TrimSpace(e.ClassCode)
		e.StartValue = strings.TrimSpace(e.StartValue)
		e.Remaining = max(0, e.Remaining)
		r.entries = append(r.entries, e)
	}
	return r
}

// Load builds a registry from the HOLD table. The header row and rows with a
// blank class or start value are skipped; a blank or unparsable count is 0.
func Load(table models.Table, layout models.HoldLayout, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}

	var entries []models.HoldEntry
	for i, row := range table.Body() {
		class, start := row.Cell(layout.Class), row.Cell(layout.Start)
		if models.IsBlank(class) || models.IsBlank(start) {
			continue
		}

		raw := row.Cell(layout.Remaining)
		remaining, ok := models.ParseInt(raw)
		if !ok && !models.IsBlank(raw) {
			log.Debug("Unable to parse HOLD count, using 0",
				zap.String("table", table.Name), zap.Int("row", i+2), zap.String("value", raw))
		}

		entries = append(entries, models.HoldEntry{
			ClassCode:  class,
			StartValue: start,
			Remaining:  remaining,
		})
	}

	r := NewRegistry(entries...)
	log.Debug("HOLD registry loaded", zap.String("table", table.Name), zap.Int("entries", len(r.entries)))
	return r
}

func (r *Registry) find(class, start string) *models.HoldEntry {
	class, start = strings.TrimSpace(class), strings.TrimSpace(start)
	for i := range r.entries {
		if r.entries[i].ClassCode == class && r.entries[i].StartValue == start {
			return &r.entries[i]
		}
	}
	return nil
}

// Decrement lowers the remaining count of the matching entry by one, never
// below zero. Unknown keys are ignored.
func (r *Registry) Decrement(class, start string) {
	if e := r.find(class, start); e != nil {
		e.Remaining = max(0, e.Remaining-1)
	}
}

// IsZero reports whether a matching entry exists and is exhausted.
func (r *Registry) IsZero(class, start string) bool {
	e := r.find(class, start)
	return e != nil && e.Remaining == 0
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of all entries in load order.
func (r *Registry) Entries() []models.HoldEntry {
	out := make([]models.HoldEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
