package model

// OccurrenceRecord is one input row: a species observed at a site,
// with an optional taxonomy lookup result attached.
type OccurrenceRecord struct {
	Species  string        `json:"species"`
	Site     string        `json:"site"`
	Count    int           `json:"count"`
	Metadata TaxonMetadata `json:"metadata,omitempty"`
}

// TaxonMetadata carries the external taxonomy lookup result for a record.
// All fields are optional; lookups of varying confidence populate varying
// subsets of the hierarchy.
type TaxonMetadata struct {
	FullHierarchy PartialHierarchy `json:"fullHierarchy,omitempty"`
	Confidence    string           `json:"confidence,omitempty"` // "high", "medium", "low"
	Source        string           `json:"source,omitempty"`     // "worms", "gbif", "unknown"
	TaxonID       string           `json:"taxonId,omitempty"`
	TaxonomyRank  string           `json:"taxonomyRank,omitempty"` // rank hint, e.g. "sp.", "fam."
}

// PartialHierarchy is a possibly incomplete kingdom…species lineage.
type PartialHierarchy struct {
	Kingdom string `json:"kingdom,omitempty"`
	Phylum  string `json:"phylum,omitempty"`
	Class   string `json:"class,omitempty"`
	Order   string `json:"order,omitempty"`
	Family  string `json:"family,omitempty"`
	Genus   string `json:"genus,omitempty"`
	Species string `json:"species,omitempty"`
}

// Level returns the hierarchy value at the given rank ("" if absent
// or the rank has no hierarchy field).
func (h PartialHierarchy) Level(r Rank) string {
	switch r {
	case RankKingdom:
		return h.Kingdom
	case RankPhylum:
		return h.Phylum
	case RankClass:
		return h.Class
	case RankOrder:
		return h.Order
	case RankFamily:
		return h.Family
	case RankGenus:
		return h.Genus
	case RankSpecies:
		return h.Species
	}
	return ""
}

// Completeness counts the populated hierarchy levels. Records with
// higher completeness establish ancestor chains before sparser ones.
func (h PartialHierarchy) Completeness() int {
	n := 0
	for _, r := range CanonicalRanks {
		if h.Level(r) != "" {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no hierarchy level is populated.
func (h PartialHierarchy) IsEmpty() bool {
	return h.Completeness() == 0
}
