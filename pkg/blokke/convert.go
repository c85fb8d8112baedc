package blokke

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/blokke-go/pkg/blokke/activity"
	"github.com/ukaji3/blokke-go/pkg/blokke/block"
	"github.com/ukaji3/blokke-go/pkg/blokke/hold"
	"github.com/ukaji3/blokke-go/pkg/blokke/models"
	"github.com/ukaji3/blokke-go/pkg/blokke/parser"
	"go.uber.org/zap"
)

// TableSource provides named tables. parser.Workbook and parser.Tables
// implement it.
type TableSource interface {
	Table(name string, index int) (models.Table, error)
}

// TableSink persists the result of a conversion.
type TableSink interface {
	Write(ctx context.Context, res *models.Result) error
}

// OpenWorkbook opens the xlsx workbook at path as a TableSource.
func OpenWorkbook(path string) (*parser.Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	wb, err := parser.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook: %w", err)
	}
	return wb, nil
}

// ConvertFile converts the xlsx workbook at path.
func ConvertFile(ctx context.Context, path string, opts Options) (*models.Result, error) {
	wb, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return Convert(ctx, wb, opts)
}

// Run converts src and hands the result to sink.
func Run(ctx context.Context, src TableSource, sink TableSink, opts Options) (*models.Result, error) {
	res, err := Convert(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	if err := sink.Write(ctx, res); err != nil {
		return res, fmt.Errorf("unable to write activities: %w", err)
	}
	return res, nil
}

// Convert extracts activities from the BLOKKE table of src, consulting and
// updating the HOLD registry as it goes. Blocks are processed strictly in
// source order.
func Convert(ctx context.Context, src TableSource, opts Options) (*models.Result, error) {
	log := opts.logger()

	holdTable, err := loadTable(src, opts.Hold)
	if err != nil {
		return nil, err
	}
	blockTable, err := loadTable(src, opts.Blocks)
	if err != nil {
		return nil, err
	}

	header := blockTable.Header()
	if header == nil {
		return nil, NewConversionError(blockTable.Name, "header", ErrMissingHeader)
	}

	reg := hold.Load(holdTable, opts.HoldLayout, log)

	window := block.Locate(header, opts.Marker, opts.MaxPositions)
	if window.Empty() {
		log.Warn("No position columns found", zap.String("table", blockTable.Name), zap.String("marker", opts.Marker))
	} else {
		log.Debug("Position columns located", zap.String("table", blockTable.Name),
			zap.Int("start", window.Start+1), zap.Int("count", window.Len))
	}

	var rows []models.Row
	for _, row := range blockTable.Body() {
		if !row.IsEmpty() {
			rows = append(rows, row)
		}
	}
	blocks := block.Segment(rows, opts.BlockLayout)
	log.Debug("Blocks segmented", zap.Int("rows", len(rows)), zap.Int("blocks", len(blocks)))

	ext := activity.New(reg, window, opts.BlockLayout, log)
	res := &models.Result{Window: window, Blocks: len(blocks)}
	for i := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		acts := ext.Extract(&blocks[i])
		log.Debug("Block processed",
			zap.String("kla", blocks[i].ClassCode), zap.String("blok", blocks[i].GroupCode),
			zap.Int("rows", len(blocks[i].Rows)), zap.Int("activities", len(acts)))
		res.Activities = append(res.Activities, acts...)
	}
	res.Hold = reg.Entries()

	log.Info("Conversion finished", zap.Int("blocks", res.Blocks), zap.Int("activities", len(res.Activities)))
	return res, nil
}

func loadTable(src TableSource, ts TableSpec) (models.Table, error) {
	t, err := src.Table(ts.Name, ts.Index)
	if err != nil {
		return models.Table{}, NewConversionError(ts.Name, "source", err)
	}
	if ts.Range == "" {
		return t, nil
	}
	area, err := parser.ParseRange(ts.Range)
	if err != nil {
		return models.Table{}, NewConversionError(t.Name, "range", err)
	}
	return parser.Clip(t, area), nil
}
