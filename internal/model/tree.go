package model

// TreeNode is one taxon in the assembled tree. Children are owned by
// their parent; the structure is single-rooted and acyclic.
type TreeNode struct {
	Name string `json:"name"`
	// OriginalName holds the raw input label when cleaning changed it.
	// UI visibility state elsewhere is keyed by the raw label, so it
	// must survive the build.
	OriginalName string      `json:"originalName,omitempty"`
	Rank         Rank        `json:"rank"`
	Children     []*TreeNode `json:"children,omitempty"`

	// IsLeaf marks the terminal node of an input record's path.
	IsLeaf bool `json:"isLeaf"`
	// CSVEntry is true iff this node corresponds to an actual input
	// record, as opposed to a synthesized ancestor. It can be set on an
	// existing synthetic node later, but never unset.
	CSVEntry bool `json:"csvEntry"`

	// SpeciesCount is the number of CSV-entry nodes in this subtree,
	// inclusive of the node itself.
	SpeciesCount int `json:"speciesCount"`

	SiteOccurrences map[string]int `json:"siteOccurrences,omitempty"`
	Confidence      string         `json:"confidence,omitempty"`
	Source          string         `json:"source,omitempty"`
	TaxonID         string         `json:"taxonId,omitempty"`
}

// RootName is the name of the synthetic root node.
const RootName = "Life"

// NewRoot returns the synthetic root every built tree hangs from.
func NewRoot() *TreeNode {
	return &TreeNode{Name: RootName, Rank: RankUnknown}
}

// FindDescendant walks the subtree depth-first (in child order) and
// returns the first node matching (name, rank), excluding the receiver
// itself, or nil.
func (n *TreeNode) FindDescendant(name string, rank Rank) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name && c.Rank == rank {
			return c
		}
		if found := c.FindDescendant(name, rank); found != nil {
			return found
		}
	}
	return nil
}
