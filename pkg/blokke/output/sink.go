// Package output renders conversion results: console table, JSON, xlsx and
// PostgreSQL.
package output

import (
	"context"

	"github.com/ukaji3/blokke-go/pkg/blokke/models"
	"go.uber.org/multierr"
)

// Sink receives a conversion result.
type Sink interface {
	Write(ctx context.Context, res *models.Result) error
}

// Multi writes the result to every sink in order. A failing sink does not
// stop the others; all errors are returned combined.
type Multi []Sink

func (m Multi) Write(ctx context.Context, res *models.Result) error {
	var err error
	for _, s := range m {
		if s == nil {
			continue
		}
		err = multierr.Append(err, s.Write(ctx, res))
	}
	return err
}
