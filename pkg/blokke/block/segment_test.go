package block

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/blokke-go/pkg/blokke/models"
)

var layout = models.BlockLayout{Class: 0, Group: 1, Code: 2}

func TestSegmentGroupsRowsByClassAndGroup(t *testing.T) {
	rows := []models.Row{
		{"A", "1", "da"},
		{"", "", "da"},
		{"B", "2", "ty"},
		{"", "", "eø"},
	}

	blocks := Segment(rows, layout)

	require.Len(t, blocks, 2)
	require.Equal(t, "A", blocks[0].ClassCode)
	require.Equal(t, "1", blocks[0].GroupCode)
	require.Equal(t, []models.Row{{"A", "1", "da"}, {"", "", "da"}}, blocks[0].Rows)
	require.Equal(t, "B", blocks[1].ClassCode)
	require.Equal(t, "2", blocks[1].GroupCode)
	require.Equal(t, "ty", blocks[1].Rows[0].Cell(2))
	require.Equal(t, "eø", blocks[1].Rows[1].Cell(2))
}

func TestSegmentAppendsContinuationRows(t *testing.T) {
	rows := []models.Row{
		{"1a", "1", "da"},
		{"", "", "da"},
		{" ", "", "da"},
	}

	blocks := Segment(rows, layout)

	require.Len(t, blocks, 1)
	require.Len(t, blocks[0].Rows, 3)
}

func TestSegmentStartsNewBlockOnKeyChange(t *testing.T) {
	rows := []models.Row{
		{"A", "1"},
		{"B", "2"},
		{"A", "1"},
	}

	blocks := Segment(rows, layout)

	require.Len(t, blocks, 3)
	require.Equal(t, "A", blocks[0].ClassCode)
	require.Equal(t, "B", blocks[1].ClassCode)
	require.Equal(t, "A", blocks[2].ClassCode)
}

func TestSegmentRepeatedKeyContinuesBlock(t *testing.T) {
	rows := []models.Row{
		{"A", "1", "x"},
		{"", "", "y"},
		{"A", "1", "z"},
		{"A", "2", "w"},
	}

	blocks := Segment(rows, layout)

	require.Len(t, blocks, 2)
	require.Len(t, blocks[0].Rows, 3)
	require.Equal(t, "2", blocks[1].GroupCode)
}

func TestSegmentSkipsEmbeddedHeader(t *testing.T) {
	rows := []models.Row{
		{"KLA", "BLOK", "PER"},
		{"A", "1", "11"},
		{"KLA", "BLOK", "PER"},
		{"", "", ""},
	}

	blocks := Segment(rows, layout)

	require.Len(t, blocks, 1)
	require.Len(t, blocks[0].Rows, 2)
}

func TestSegmentLeadingContinuationOpensBlock(t *testing.T) {
	rows := []models.Row{
		{"", "", "da"},
		{"", "", "da"},
		{"A", "1", "ty"},
	}

	blocks := Segment(rows, layout)

	require.Len(t, blocks, 2)
	require.Equal(t, "", blocks[0].ClassCode)
	require.Equal(t, "", blocks[0].GroupCode)
	require.Len(t, blocks[0].Rows, 2)
	require.Equal(t, "A", blocks[1].ClassCode)
}

func TestSegmentEmptyInput(t *testing.T) {
	require.Empty(t, Segment(nil, layout))
}
