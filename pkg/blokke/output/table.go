package output

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ukaji3/blokke-go/pkg/blokke/models"
)

// Minimal column widths of the console table. Wider values extend their
// cell and are never truncated.
const (
	klaWidth     = 6
	aktNavnWidth = 12
	posWidth     = 4
	perWidth     = 6
)

// Table prints activities as a bordered text table.
type Table struct {
	W io.Writer
}

func (t Table) Write(_ context.Context, res *models.Result) error {
	return RenderTable(t.W, res.Activities)
}

// RenderTable writes the activities table to w, one bordered line per
// activity.
func RenderTable(w io.Writer, acts []models.Activity) error {
	border := "+" + strings.Repeat("-", klaWidth) +
		"+" + strings.Repeat("-", aktNavnWidth) +
		"+" + strings.Repeat("-", posWidth) +
		"+" + strings.Repeat("-", perWidth) + "+\n"

	var b strings.Builder
	b.WriteString("Activities:\n")
	b.WriteString(border)
	b.WriteString(tableLine("KLA", "AKT_NAVN", "POS", "PER"))
	b.WriteString(border)
	for _, a := range acts {
		b.WriteString(tableLine(a.ClassCode, a.Label, strconv.Itoa(a.Span), a.Code))
		b.WriteString(border)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("unable to write table: %w", err)
	}
	return nil
}

func tableLine(kla, akt, pos, per string) string {
	return "|" + runewidth.FillRight(kla, klaWidth) +
		"|" + runewidth.FillRight(akt, aktNavnWidth) +
		"|" + runewidth.FillRight(pos, posWidth) +
		"|" + runewidth.FillRight(per, perWidth) + "|\n"
}
