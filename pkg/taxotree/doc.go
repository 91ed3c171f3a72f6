// Package taxotree assembles species-occurrence records into a rooted
// taxonomic tree and linearizes it into the ordered, indented row list
// that drives heatmap and tree visualizations.
//
// Quick start:
//
//	root := taxotree.BuildTaxonomicTree(records)
//	rows := taxotree.FlattenTreeForHeatmap(root)
//	links := taxotree.ResolveParentChildLinks(rows, nil)
//
// All three functions are pure: they keep no state between calls and
// treat their inputs as read-only, so re-deriving the view on every
// render is safe, including from concurrent call sites.
package taxotree
