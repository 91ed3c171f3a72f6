package connector

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/anjali-pebl/DataApp-sub000/internal/engine/nomenclature"
	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

const (
	defaultCacheSize   = 1024
	defaultConcurrency = 4
)

// Enricher fills in missing taxonomy metadata on occurrence records by
// querying a lookup provider with bounded concurrency. Lookups are
// cached, so re-deriving a view after the record set changes does not
// re-query names already resolved.
type Enricher struct {
	conn        Connector
	cfg         LookupConfig
	cache       *lru.Cache[string, model.TaxonMetadata]
	concurrency int
}

// NewEnricher creates an Enricher for the given provider connector.
// cacheSize and concurrency fall back to defaults when non-positive.
func NewEnricher(conn Connector, cfg LookupConfig, cacheSize, concurrency int) (*Enricher, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	cache, err := lru.New[string, model.TaxonMetadata](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("enricher: %w", err)
	}
	return &Enricher{conn: conn, cfg: cfg, cache: cache, concurrency: concurrency}, nil
}

// Enrich returns a copy of records with taxonomy metadata filled in for
// every record that lacked a hierarchy. Lookup failures degrade
// gracefully: the record keeps its empty metadata and a warning is
// logged. The input slice is not modified.
func (e *Enricher) Enrich(ctx context.Context, records []model.OccurrenceRecord) []model.OccurrenceRecord {
	out := make([]model.OccurrenceRecord, len(records))
	copy(out, records)

	// Resolve each distinct cleaned name once.
	var names []string
	seen := map[string]bool{}
	for _, rec := range out {
		if !rec.Metadata.FullHierarchy.IsEmpty() {
			continue
		}
		name := nomenclature.Clean(rec.Species)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	resolved := make([]model.TaxonMetadata, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, name := range names {
		if md, ok := e.cache.Get(name); ok {
			resolved[i] = md
			continue
		}
		g.Go(func() error {
			md, err := e.conn.Lookup(gctx, e.cfg, name)
			if err != nil {
				slog.Warn("taxonomy lookup failed", "name", name, "provider", e.cfg.Provider, "error", err)
				return nil
			}
			resolved[i] = md
			e.cache.Add(name, md)
			return nil
		})
	}
	// Workers swallow lookup errors, so Wait only reports ctx cancellation.
	_ = g.Wait()

	byName := make(map[string]model.TaxonMetadata, len(names))
	for i, name := range names {
		byName[name] = resolved[i]
	}
	for i := range out {
		if !out[i].Metadata.FullHierarchy.IsEmpty() {
			continue
		}
		if md, ok := byName[nomenclature.Clean(out[i].Species)]; ok {
			out[i].Metadata = md
		}
	}
	return out
}
