// Package flatten linearizes a taxonomic tree into the ordered row list
// that drives heatmap and indented-tree rendering.
package flatten

import (
	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

// Flatten walks the tree depth-first in pre-order, skipping the
// synthetic root, and emits one row per node. Indentation comes from
// the rank table, not traversal depth, so rows keep their taxonomic
// alignment even when a branch elides intermediate ranks. Child order
// is whatever the builder established; no re-sorting happens here.
func Flatten(root *model.TreeNode) []model.FlattenedTaxon {
	var out []model.FlattenedTaxon
	var walk func(n *model.TreeNode, path []string)
	walk = func(n *model.TreeNode, path []string) {
		for _, c := range n.Children {
			out = append(out, model.FlattenedTaxon{
				Name:        c.Name,
				Rank:        c.Rank,
				IndentLevel: c.Rank.IndentLevel(),
				Path:        path,
				Node:        c,
			})
			childPath := make([]string, len(path), len(path)+1)
			copy(childPath, path)
			walk(c, append(childPath, c.Name))
		}
	}
	walk(root, nil)
	return out
}
