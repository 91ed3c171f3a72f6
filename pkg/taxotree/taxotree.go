package taxotree

import (
	"github.com/anjali-pebl/DataApp-sub000/internal/engine/flatten"
	"github.com/anjali-pebl/DataApp-sub000/internal/engine/linkage"
	"github.com/anjali-pebl/DataApp-sub000/internal/engine/nomenclature"
	"github.com/anjali-pebl/DataApp-sub000/internal/engine/treebuilder"
	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

// Aliases for the model entities, so callers never import internal
// packages.
type (
	OccurrenceRecord = model.OccurrenceRecord
	TaxonMetadata    = model.TaxonMetadata
	PartialHierarchy = model.PartialHierarchy
	Rank             = model.Rank
	TreeNode         = model.TreeNode
	FlattenedTaxon   = model.FlattenedTaxon
	TaxonLinks       = model.TaxonLinks
	ParentLink       = model.ParentLink
	ChildLink        = model.ChildLink
)

// Canonical ranks, broadest to narrowest, plus the unknown fallback.
const (
	RankKingdom = model.RankKingdom
	RankPhylum  = model.RankPhylum
	RankClass   = model.RankClass
	RankOrder   = model.RankOrder
	RankFamily  = model.RankFamily
	RankGenus   = model.RankGenus
	RankSpecies = model.RankSpecies
	RankUnknown = model.RankUnknown
)

// BuildTaxonomicTree assembles the records into a single rooted tree.
// It never fails: records without usable hierarchy information are
// inserted as direct children of the root, and an empty record set
// yields a childless root named "Life".
func BuildTaxonomicTree(records []OccurrenceRecord) *TreeNode {
	return treebuilder.Build(records)
}

// FlattenTreeForHeatmap linearizes the tree into display order: a
// depth-first pre-order walk that skips the synthetic root. Indentation
// is a function of rank, not depth.
func FlattenTreeForHeatmap(root *TreeNode) []FlattenedTaxon {
	return flatten.Flatten(root)
}

// ResolveParentChildLinks computes which of the visible rows are direct
// parent/child pairs and assigns each group a shared color for the
// renderer's connective marks. visible restricts the rows considered
// (nil means all rows are visible).
func ResolveParentChildLinks(flattened []FlattenedTaxon, visible map[string]bool) map[string]TaxonLinks {
	return linkage.Resolve(flattened, visible)
}

// CleanName strips rank annotations ("Gadus sp." → "Gadus",
// "Actinopterygii (class)." → "Actinopterygii") from a raw species
// label. Idempotent.
func CleanName(raw string) string {
	return nomenclature.Clean(raw)
}

// GetRankColor returns the legend color for a rank.
func GetRankColor(r Rank) string {
	return r.Color()
}

// GetRankLetter returns the one-letter abbreviation for a rank.
func GetRankLetter(r Rank) string {
	return r.Letter()
}
