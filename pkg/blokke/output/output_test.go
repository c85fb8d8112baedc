package output

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/blokke-go/pkg/blokke/models"
	"github.com/xuri/excelize/v2"
)

func sampleResult() *models.Result {
	return &models.Result{
		Activities: []models.Activity{
			{ClassCode: "2d", Label: "BLOK1 1", Span: 2, Code: "2"},
			{ClassCode: "2d", Label: "BLOK1 3", Span: 2, Code: "011"},
			{ClassCode: "3a", Label: "Æbler og pærer", Span: 1, Code: ""},
		},
		Hold: []models.HoldEntry{
			{ClassCode: "3a", StartValue: "ma", Remaining: 0},
		},
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, sampleResult().Activities[:2]))

	want := "Activities:\n" +
		"+------+------------+----+------+\n" +
		"|KLA   |AKT_NAVN    |POS |PER   |\n" +
		"+------+------------+----+------+\n" +
		"|2d    |BLOK1 1     |2   |2     |\n" +
		"+------+------------+----+------+\n" +
		"|2d    |BLOK1 3     |2   |011   |\n" +
		"+------+------------+----+------+\n"
	require.Equal(t, want, buf.String())
}

func TestRenderTableWideValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, sampleResult().Activities[2:]))
	require.Contains(t, buf.String(), "|3a    |Æbler og pærer|1   |      |\n")
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleResult(), false)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"activities": [
			{"kla": "2d", "akt_navn": "BLOK1 1", "pos": 2, "per": "2"},
			{"kla": "2d", "akt_navn": "BLOK1 3", "pos": 2, "per": "011"},
			{"kla": "3a", "akt_navn": "Æbler og pærer", "pos": 1, "per": ""}
		],
		"hold": [{"kla": "3a", "akt": "ma", "pos": 0}]
	}`, string(data))

	data, err = ToJSON(&models.Result{Blocks: 3}, true)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"activities\": []\n}", string(data))
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{W: &buf}.Write(context.Background(), &models.Result{}))
	require.Equal(t, "{\"activities\":[]}\n", buf.String())

	res := sampleResult()
	buf.Reset()
	require.NoError(t, JSON{W: &buf}.Write(context.Background(), res))
	require.NotContains(t, buf.String(), "hold")
	require.Len(t, res.Hold, 1)

	buf.Reset()
	require.NoError(t, JSON{W: &buf, Hold: true}.Write(context.Background(), res))
	require.Contains(t, buf.String(), `"hold":[{"kla":"3a","akt":"ma","pos":0}]`)
}

func TestXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, XLSX{Path: path, IncludeHold: true}.Write(context.Background(), sampleResult()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{DefaultActivitiesSheet, HoldSheet}, f.GetSheetList())

	rows, err := f.GetRows(DefaultActivitiesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, []string{"KLA", "AKT_NAVN", "POS", "PER"}, rows[0])
	require.Equal(t, []string{"2d", "BLOK1 3", "2", "011"}, rows[2])

	typ, err := f.GetCellType(DefaultActivitiesSheet, "C2")
	require.NoError(t, err)
	require.NotEqual(t, excelize.CellTypeSharedString, typ)

	hold, err := f.GetRows(HoldSheet)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"KLA", "AKT", "POS"}, {"3a", "ma", "0"}}, hold)

	width, err := f.GetColWidth(DefaultActivitiesSheet, "B")
	require.NoError(t, err)
	require.Equal(t, 16.0, width)
}

func TestWorkbookCustomSheetWithoutHold(t *testing.T) {
	f, err := Workbook(sampleResult(), "Aktiviteter", false)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Aktiviteter"}, f.GetSheetList())
}

type copyCall struct {
	table   pgx.Identifier
	columns []string
	rows    [][]any
}

type fakeDB struct {
	execs    []string
	copies   []copyCall
	execErr  error
	copyLoss int64
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakeDB) CopyFrom(_ context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
	c := copyCall{table: table, columns: columns}
	for src.Next() {
		vals, err := src.Values()
		if err != nil {
			return 0, err
		}
		c.rows = append(c.rows, vals)
	}
	f.copies = append(f.copies, c)
	return int64(len(c.rows)) - f.copyLoss, src.Err()
}

func TestPostgres(t *testing.T) {
	db := &fakeDB{}
	run := uuid.New()

	sink := Postgres{DB: db, Table: "sched.activities", RunID: run}
	require.NoError(t, sink.Write(context.Background(), sampleResult()))

	require.Len(t, db.execs, 1)
	require.Contains(t, db.execs[0], `CREATE TABLE IF NOT EXISTS "sched"."activities"`)

	require.Len(t, db.copies, 1)
	c := db.copies[0]
	require.Equal(t, pgx.Identifier{"sched", "activities"}, c.table)
	require.Equal(t, []string{"run_id", "seq", "kla", "akt_navn", "pos", "per"}, c.columns)
	require.Equal(t, []any{run, int32(2), "2d", "BLOK1 3", int32(2), "011"}, c.rows[1])
}

func TestPostgresDefaultTable(t *testing.T) {
	require.Equal(t, pgx.Identifier{DefaultPostgresTable}, Postgres{}.identifier())
}

func TestPostgresErrors(t *testing.T) {
	db := &fakeDB{execErr: errors.New("permission denied")}
	err := Postgres{DB: db}.Write(context.Background(), sampleResult())
	require.ErrorContains(t, err, "permission denied")
	require.Empty(t, db.copies)

	db = &fakeDB{copyLoss: 1}
	err = Postgres{DB: db}.Write(context.Background(), sampleResult())
	require.ErrorContains(t, err, "copied 2 of 3")
}

type failingSink struct {
	err   error
	calls int
}

func (f *failingSink) Write(context.Context, *models.Result) error {
	f.calls++
	return f.err
}

func TestMulti(t *testing.T) {
	a := &failingSink{err: errors.New("first")}
	b := &failingSink{}
	c := &failingSink{err: errors.New("third")}

	err := Multi{a, nil, b, c}.Write(context.Background(), sampleResult())
	require.ErrorContains(t, err, "first")
	require.ErrorContains(t, err, "third")
	require.Equal(t, 1, a.calls)
	require.Equal(t, 1, b.calls)
	require.Equal(t, 1, c.calls)

	require.NoError(t, Multi{b}.Write(context.Background(), sampleResult()))
}
