package block

import "github.com/ukaji3/blokke-go/pkg/blokke/models"

// Literal key of a header row repeated inside the table body.
const (
	headerClass = "KLA"
	headerGroup = "BLOK"
)

type key struct {
	class, group string
}

// Segment groups rows into blocks keyed by (class, group) in a single pass.
//
// Rows with a blank class cell continue the current block, or open a new block
// under their own key when none is open. A keyed row starts a new block when
// its key differs from the last key seen. Embedded header rows are skipped.
func Segment(rows []models.Row, layout models.BlockLayout) []models.Block {
	var (
		blocks  []models.Block
		current *models.Block
		lastKey key
	)

	open := func(k key, row models.Row) {
		current = &models.Block{ClassCode: k.class, GroupCode: k.group, Rows: []models.Row{row}}
		lastKey = k
	}
	flush := func() {
		if current != nil && len(current.Rows) > 0 {
			blocks = append(blocks, *current)
		}
	}

	for _, row := range rows {
		k := key{class: row.Cell(layout.Class), group: row.Cell(layout.Group)}
		if k.class == headerClass && k.group == headerGroup {
			continue
		}

		if models.IsBlank(k.class) {
			if current == nil {
				open(k, row)
				continue
			}
			current.Rows = append(current.Rows, row)
			continue
		}

		if current != nil && k == lastKey {
			current.Rows = append(current.Rows, row)
			continue
		}

		flush()
		open(k, row)
	}
	flush()

	return blocks
}
