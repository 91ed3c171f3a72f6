// Package linkage computes which adjacent rows of the flattened view
// are direct parent/child pairs, assigning each pair group a shared
// color for the renderer's connective marks.
package linkage

import (
	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

// palette is the fixed cycling color set for linkage marks. Colors are
// assigned in traversal order, so repeated renders are stable whenever
// the visible row set is stable.
var palette = []string{
	"#e11d48", "#2563eb", "#16a34a", "#d97706",
	"#7c3aed", "#0891b2", "#db2777", "#65a30d",
}

// Resolve computes the parent/child linkage map for the rows currently
// on screen. flattened is the full ordered row list; visible restricts
// it to the on-screen subset (nil means everything is visible; rows are
// matched by cleaned name, falling back to the original raw label since
// UI visibility state is keyed by it). The result maps taxon name to
// its linkage roles. Pure: no state survives the call.
func Resolve(flattened []model.FlattenedTaxon, visible map[string]bool) map[string]model.TaxonLinks {
	rows := visibleRows(flattened, visible)

	// children[i] holds the row indexes that are direct children of
	// row i: later rows at exactly indent+1 whose path contains row
	// i's name, before the scan exits row i's subtree.
	children := make(map[int][]int)
	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			if rows[j].IndentLevel <= rows[i].IndentLevel {
				break
			}
			if rows[j].IndentLevel == rows[i].IndentLevel+1 && pathContains(rows[j].Path, rows[i].Name) {
				children[i] = append(children[i], j)
			}
		}
	}

	links := make(map[string]model.TaxonLinks)
	next := 0
	for i := range rows {
		kids := children[i]
		if len(kids) == 0 {
			continue
		}
		color := palette[next%len(palette)]
		next++

		dual := false
		for _, k := range kids {
			if len(children[k]) > 0 {
				dual = true
				break
			}
		}

		entry := links[rows[i].Name]
		entry.AsParent = &model.ParentLink{Color: color, ChildIsDual: dual}
		links[rows[i].Name] = entry

		for _, k := range kids {
			child := links[rows[k].Name]
			if child.AsChild == nil {
				child.AsChild = &model.ChildLink{Color: color}
			}
			links[rows[k].Name] = child
		}
	}
	return links
}

func visibleRows(flattened []model.FlattenedTaxon, visible map[string]bool) []model.FlattenedTaxon {
	if visible == nil {
		return flattened
	}
	rows := make([]model.FlattenedTaxon, 0, len(flattened))
	for _, ft := range flattened {
		if visible[ft.Name] || (ft.Node != nil && ft.Node.OriginalName != "" && visible[ft.Node.OriginalName]) {
			rows = append(rows, ft)
		}
	}
	return rows
}

func pathContains(path []string, name string) bool {
	for _, p := range path {
		if p == name {
			return true
		}
	}
	return false
}
