// Package engine orchestrates the build → flatten pipeline that turns
// occurrence records into the heatmap view model.
package engine

import (
	"github.com/anjali-pebl/DataApp-sub000/internal/engine/flatten"
	"github.com/anjali-pebl/DataApp-sub000/internal/engine/treebuilder"
	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

// Engine turns record collections into assembled trees and flattened
// row lists. Stateless; the tree is rebuilt from the full record set on
// every call, so concurrent use from independent call sites is safe.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// Result is one complete derivation from a record set.
type Result struct {
	Root      *model.TreeNode
	Flattened []model.FlattenedTaxon
}

// Process builds the taxonomic tree from the records and flattens it.
func (e *Engine) Process(records []model.OccurrenceRecord) Result {
	root := treebuilder.Build(records)
	return Result{
		Root:      root,
		Flattened: flatten.Flatten(root),
	}
}
