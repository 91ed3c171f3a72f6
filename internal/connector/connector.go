// Package connector defines the taxonomy lookup interface and the
// provider registry. Lookup services (WoRMS, GBIF) are black boxes that
// return a partial kingdom…species lineage plus confidence, source, and
// a stable taxon identifier for a species name.
package connector

import (
	"context"
	"errors"
	"time"

	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

// ErrNotFound is returned when a lookup service has no record for the
// queried name. Callers degrade gracefully: the record keeps empty
// metadata and the builder places it from whatever it already carries.
var ErrNotFound = errors.New("taxon not found")

// Connector is the interface all taxonomy lookup providers implement.
type Connector interface {
	// Lookup resolves a cleaned species name to its taxonomy metadata.
	Lookup(ctx context.Context, cfg LookupConfig, name string) (model.TaxonMetadata, error)
}

// LookupConfig holds provider-specific lookup settings.
type LookupConfig struct {
	Provider string
	// Endpoint overrides the provider's default REST base URL.
	Endpoint string
	Timeout  time.Duration
	Extra    map[string]string
}
