package model

// FlattenedTaxon is one row of the linearized tree: the view model the
// heatmap renderer consumes.
type FlattenedTaxon struct {
	Name        string   `json:"name"`
	Rank        Rank     `json:"rank"`
	IndentLevel int      `json:"indentLevel"`
	// Path lists ancestor cleaned names from kingdom level down,
	// excluding the synthetic root.
	Path []string `json:"path"`
	// Node is a read-only back-reference to the originating tree node.
	Node *TreeNode `json:"-"`
}

// ParentLink marks a flattened entry that has at least one direct child
// among the visible rows.
type ParentLink struct {
	Color string `json:"color"`
	// ChildIsDual is true when any of this parent's children is itself
	// a parent; the renderer offsets the marker so the two marks don't
	// collide.
	ChildIsDual bool `json:"childIsDual"`
}

// ChildLink marks a flattened entry as a direct child of a visible
// parent, carrying the parent's assigned color.
type ChildLink struct {
	Color string `json:"color"`
}

// TaxonLinks is the per-taxon linkage record. A node in the middle of a
// chain carries both roles.
type TaxonLinks struct {
	AsParent *ParentLink `json:"asParent,omitempty"`
	AsChild  *ChildLink  `json:"asChild,omitempty"`
}
