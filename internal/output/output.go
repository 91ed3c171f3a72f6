package output

import (
	"context"

	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

// Output defines the interface for flattened-row destinations.
type Output interface {
	Write(ctx context.Context, row model.FlattenedTaxon) error
	Close() error
}
