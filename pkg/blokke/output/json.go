package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ukaji3/blokke-go/pkg/blokke/models"
)

// ToJSON serializes the result. Activities are always an array, even when
// there are none.
func ToJSON(res *models.Result, pretty bool) ([]byte, error) {
	out := *res
	if out.Activities == nil {
		out.Activities = []models.Activity{}
	}
	if pretty {
		return json.MarshalIndent(&out, "", "  ")
	}
	return json.Marshal(&out)
}

// JSON writes the serialized result followed by a newline.
type JSON struct {
	W      io.Writer
	Pretty bool
	// Hold keeps the HOLD entries in the output.
	Hold bool
}

func (j JSON) Write(_ context.Context, res *models.Result) error {
	if !j.Hold && res.Hold != nil {
		r := *res
		r.Hold = nil
		res = &r
	}
	data, err := ToJSON(res, j.Pretty)
	if err != nil {
		return fmt.Errorf("unable to serialize result: %w", err)
	}
	if _, err := j.W.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	return nil
}
