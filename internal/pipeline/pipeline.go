// Package pipeline wires ingest, optional taxonomy enrichment, the
// tree engine, and an output into one batch run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/anjali-pebl/DataApp-sub000/internal/connector"
	"github.com/anjali-pebl/DataApp-sub000/internal/engine"
	"github.com/anjali-pebl/DataApp-sub000/internal/model"
	"github.com/anjali-pebl/DataApp-sub000/internal/output"
)

// Pipeline connects an optional enricher, the engine, and an output.
type Pipeline struct {
	enricher *connector.Enricher // nil disables lookup enrichment
	engine   *engine.Engine
	output   output.Output
}

// New creates a Pipeline from the given components. enricher may be nil.
func New(enricher *connector.Enricher, eng *engine.Engine, out output.Output) *Pipeline {
	return &Pipeline{
		enricher: enricher,
		engine:   eng,
		output:   out,
	}
}

// Run processes one full record set: enrich (when configured), build
// the tree, flatten it, and write every row to the output. The caller
// re-invokes Run whenever the underlying record set changes; no state
// carries over between runs.
func (p *Pipeline) Run(ctx context.Context, records []model.OccurrenceRecord) (engine.Result, error) {
	if p.enricher != nil {
		records = p.enricher.Enrich(ctx, records)
	}

	result := p.engine.Process(records)

	for _, row := range result.Flattened {
		if err := p.output.Write(ctx, row); err != nil {
			return result, fmt.Errorf("pipeline output: %w", err)
		}
	}
	return result, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
