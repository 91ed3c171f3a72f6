// Package treebuilder assembles flat occurrence records into a single
// rooted taxonomic tree. Records carry partial lineages of varying
// completeness from external lookups; the builder reconciles them into
// one hierarchy with a deterministic child order.
package treebuilder

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/anjali-pebl/DataApp-sub000/internal/engine/nomenclature"
	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

// fallbackKingdom is synthesized for orphan phylum/class entries whose
// hierarchy carries nothing above them.
const fallbackKingdom = "Animalia"

// Build assembles the records into one rooted tree. It is total:
// malformed or empty metadata degrades to root-level placement, and an
// empty record set yields a childless root. The input slice is treated
// as read-only.
func Build(records []model.OccurrenceRecord) *model.TreeNode {
	b := &builder{
		root:  model.NewRoot(),
		index: map[*model.TreeNode]map[childKey]*model.TreeNode{},
	}

	// Most complete lineage first, so rich records establish the
	// canonical ancestor chains that sparse records for the same taxon
	// must reuse. The tie-breaks make the tree a function of record
	// content, not input order.
	sorted := make([]model.OccurrenceRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].Metadata.FullHierarchy.Completeness(), sorted[j].Metadata.FullHierarchy.Completeness()
		if ci != cj {
			return ci > cj
		}
		if sorted[i].Species != sorted[j].Species {
			return sorted[i].Species < sorted[j].Species
		}
		return sorted[i].Site < sorted[j].Site
	})

	for _, rec := range sorted {
		b.insert(rec)
	}

	recount(b.root)
	sortChildren(b.root)
	return b.root
}

// childKey is the per-parent dedup key: no two siblings share it.
type childKey struct {
	name string
	rank model.Rank
}

type builder struct {
	root  *model.TreeNode
	index map[*model.TreeNode]map[childKey]*model.TreeNode
}

// pathStep is one ancestor to walk or create during insertion.
type pathStep struct {
	name string
	rank model.Rank
}

func (b *builder) insert(rec model.OccurrenceRecord) {
	cleaned, rank := nomenclature.Analyze(rec.Species, rec.Metadata.FullHierarchy, rec.Metadata.TaxonomyRank)
	if cleaned == "" {
		slog.Warn("skipping record with empty species label", "raw", rec.Species, "site", rec.Site)
		return
	}

	node := b.root
	for _, step := range b.ancestorSteps(cleaned, rank, rec.Metadata.FullHierarchy) {
		node = b.child(node, step.name, step.rank)
	}
	term := b.child(node, cleaned, rank)

	term.IsLeaf = true
	term.CSVEntry = true
	if term.OriginalName == "" && cleaned != strings.TrimSpace(rec.Species) {
		term.OriginalName = strings.TrimSpace(rec.Species)
	}
	if rec.Site != "" {
		if term.SiteOccurrences == nil {
			term.SiteOccurrences = map[string]int{}
		}
		term.SiteOccurrences[rec.Site] += rec.Count
	}
	if term.Confidence == "" {
		term.Confidence = rec.Metadata.Confidence
	}
	if term.Source == "" {
		term.Source = rec.Metadata.Source
	}
	if term.TaxonID == "" {
		term.TaxonID = rec.Metadata.TaxonID
	}
}

// ancestorSteps builds the ancestor chain for an entry from the
// hierarchy levels above its rank, skipping empty fields and
// self-references. A higher-order entry missing the level that would
// normally place it first tries to reuse the chain of an existing
// (name, rank) node; failing that, orphan phylum/class entries are
// parked under a synthesized kingdom rather than under the root.
func (b *builder) ancestorSteps(cleaned string, rank model.Rank, h model.PartialHierarchy) []pathStep {
	var steps []pathStep
	for _, r := range model.CanonicalRanks {
		if r.OrderIndex() >= rank.OrderIndex() {
			break
		}
		v := h.Level(r)
		if v == "" || v == cleaned {
			continue
		}
		steps = append(steps, pathStep{name: v, rank: r})
	}

	if rank != model.RankSpecies && rank != model.RankUnknown {
		if parent, ok := rank.ParentLevel(); ok && h.Level(parent) == "" {
			if existing := b.root.FindDescendant(cleaned, rank); existing != nil {
				if reused := stepsTo(b.root, existing); reused != nil {
					slog.Warn("ambiguous taxon placement: reusing existing ancestor chain",
						"name", cleaned, "rank", rank)
					return reused
				}
			}
			if len(steps) == 0 && (rank == model.RankPhylum || rank == model.RankClass) {
				steps = []pathStep{{name: fallbackKingdom, rank: model.RankKingdom}}
			}
		}
	}
	return steps
}

// child returns the existing child of parent matching (name, rank), or
// creates one. Lookup is a per-parent map, not a scan of Children.
func (b *builder) child(parent *model.TreeNode, name string, rank model.Rank) *model.TreeNode {
	key := childKey{name: name, rank: rank}
	kids := b.index[parent]
	if kids == nil {
		kids = map[childKey]*model.TreeNode{}
		b.index[parent] = kids
	}
	if c, ok := kids[key]; ok {
		return c
	}
	c := &model.TreeNode{Name: name, Rank: rank}
	parent.Children = append(parent.Children, c)
	kids[key] = c
	return c
}

// stepsTo returns the ancestor chain (root excluded) leading to target,
// or nil if target is not in the subtree.
func stepsTo(n *model.TreeNode, target *model.TreeNode) []pathStep {
	for _, c := range n.Children {
		if c == target {
			return []pathStep{}
		}
		if sub := stepsTo(c, target); sub != nil {
			return append([]pathStep{{name: c.Name, rank: c.Rank}}, sub...)
		}
	}
	return nil
}

// recount recomputes SpeciesCount bottom-up: the number of CSV-entry
// nodes in each subtree, inclusive. A taxon that is both a CSV entry
// and a parent of more specific CSV entries contributes itself plus
// its children.
func recount(n *model.TreeNode) int {
	total := 0
	for _, c := range n.Children {
		total += recount(c)
	}
	if n.CSVEntry {
		total++
	}
	n.SpeciesCount = total
	return total
}

// descendantCSV reports whether any strict descendant is a CSV entry.
// Valid only after recount.
func descendantCSV(n *model.TreeNode) bool {
	if n.CSVEntry {
		return n.SpeciesCount > 1
	}
	return n.SpeciesCount > 0
}

// sortChildren orders every sibling list: complete chains (a CSV entry
// with CSV descendants) first, then nodes with CSV descendants, then
// CSV entries, then canonical rank order, then name. A biologist
// scanning the rendered tree sees taxa with both direct data and
// specified descendants before dead ends.
func sortChildren(n *model.TreeNode) {
	for _, c := range n.Children {
		sortChildren(c)
	}
	sort.SliceStable(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]

		ac := a.CSVEntry && descendantCSV(a)
		bc := b.CSVEntry && descendantCSV(b)
		if ac != bc {
			return ac
		}
		if da, db := descendantCSV(a), descendantCSV(b); da != db {
			return da
		}
		if a.CSVEntry != b.CSVEntry {
			return a.CSVEntry
		}
		if oa, ob := a.Rank.OrderIndex(), b.Rank.OrderIndex(); oa != ob {
			return oa < ob
		}
		return a.Name < b.Name
	})
}
