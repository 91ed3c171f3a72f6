package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/anjali-pebl/DataApp-sub000/internal/model"
	"github.com/anjali-pebl/DataApp-sub000/internal/output"
)

// Output writes JSON-encoded flattened rows to stdout.
type Output struct {
	enc *json.Encoder
}

// New creates a stdout Output, optionally pretty-printed.
func New(pretty bool) *Output {
	return newWriter(os.Stdout, pretty)
}

func newWriter(w io.Writer, pretty bool) *Output {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc}
}

func (o *Output) Write(_ context.Context, row model.FlattenedTaxon) error {
	if err := o.enc.Encode(output.FromTaxon(row)); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
