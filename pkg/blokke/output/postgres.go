package output

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ukaji3/blokke-go/pkg/blokke/models"
)

// DefaultPostgresTable receives activities when no table is configured.
const DefaultPostgresTable = "blokke_activities"

var postgresColumns = []string{"run_id", "seq", "kla", "akt_navn", "pos", "per"}

// DB is the subset of *pgx.Conn, *pgxpool.Pool and pgx.Tx used by Postgres.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Postgres bulk-loads activities into a table, creating it when missing.
// Every run is stored under its own run id; seq keeps the activity order.
type Postgres struct {
	DB DB
	// Table may be schema qualified ("public.activities").
	Table string
	RunID uuid.UUID
}

func (p Postgres) identifier() pgx.Identifier {
	name := p.Table
	if name == "" {
		name = DefaultPostgresTable
	}
	return pgx.Identifier(strings.Split(name, "."))
}

func (p Postgres) Write(ctx context.Context, res *models.Result) error {
	ident := p.identifier()

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	run_id   uuid    NOT NULL,
	seq      integer NOT NULL,
	kla      text    NOT NULL,
	akt_navn text    NOT NULL,
	pos      integer NOT NULL,
	per      text    NOT NULL,
	PRIMARY KEY (run_id, seq)
)`, ident.Sanitize())
	if _, err := p.DB.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("unable to create table %s: %w", ident.Sanitize(), err)
	}

	n, err := p.DB.CopyFrom(ctx, ident, postgresColumns, pgx.CopyFromRows(copyRows(p.RunID, res.Activities)))
	if err != nil {
		return fmt.Errorf("unable to copy activities into %s: %w", ident.Sanitize(), err)
	}
	if int(n) != len(res.Activities) {
		return fmt.Errorf("copied %d of %d activities into %s", n, len(res.Activities), ident.Sanitize())
	}
	return nil
}

func copyRows(runID uuid.UUID, acts []models.Activity) [][]any {
	rows := make([][]any, len(acts))
	for i, a := range acts {
		rows[i] = []any{runID, int32(i + 1), a.ClassCode, a.Label, int32(a.Span), a.Code}
	}
	return rows
}
