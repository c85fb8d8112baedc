package activity

import "github.com/ukaji3/blokke-go/pkg/blokke/models"

// matrix is the projection of a block onto its position window.
// Blank cells are normalized to "".
type matrix [][]string

func project(rows []models.Row, w models.Window) matrix {
	m := make(matrix, len(rows))
	for r, row := range rows {
		vals := make([]string, w.Len)
		for c := range vals {
			if v := row.Cell(w.Column(c)); !models.IsBlank(v) {
				vals[c] = v
			}
		}
		m[r] = vals
	}
	return m
}

func (m matrix) cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// largestMatch returns the widest span starting at col, down to 2 columns,
// in which every row holds one repeated value (or only blanks).
// It returns 0 when no such span exists.
func (m matrix) largestMatch(col int) int {
	for span := m.cols() - col; span >= 2; span-- {
		if m.matches(col, span) {
			return span
		}
	}
	return 0
}

func (m matrix) matches(col, span int) bool {
	for _, row := range m {
		first := row[col]
		for c := col; c < col+span; c++ {
			if row[c] != first {
				return false
			}
		}
	}
	return true
}

// blank reports whether every cell in [col, col+span) is blank for all rows.
func (m matrix) blank(col, span int) bool {
	for _, row := range m {
		for c := col; c < col+span; c++ {
			if row[c] != "" {
				return false
			}
		}
	}
	return true
}
