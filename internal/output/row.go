package output

import "github.com/anjali-pebl/DataApp-sub000/internal/model"

// Row is the serialized form of one flattened taxon: everything a
// row-based renderer needs, with the legend lookups pre-applied.
type Row struct {
	Name            string         `json:"name"`
	OriginalName    string         `json:"originalName,omitempty"`
	Rank            model.Rank     `json:"rank"`
	RankLetter      string         `json:"rankLetter"`
	RankColor       string         `json:"rankColor"`
	IndentLevel     int            `json:"indentLevel"`
	Path            []string       `json:"path"`
	CSVEntry        bool           `json:"csvEntry"`
	SpeciesCount    int            `json:"speciesCount"`
	SiteOccurrences map[string]int `json:"siteOccurrences,omitempty"`
	Confidence      string         `json:"confidence,omitempty"`
	Source          string         `json:"source,omitempty"`
	TaxonID         string         `json:"taxonId,omitempty"`
}

// FromTaxon builds the serialized row for a flattened taxon.
func FromTaxon(ft model.FlattenedTaxon) Row {
	row := Row{
		Name:        ft.Name,
		Rank:        ft.Rank,
		RankLetter:  ft.Rank.Letter(),
		RankColor:   ft.Rank.Color(),
		IndentLevel: ft.IndentLevel,
		Path:        ft.Path,
	}
	if row.Path == nil {
		row.Path = []string{}
	}
	if n := ft.Node; n != nil {
		row.OriginalName = n.OriginalName
		row.CSVEntry = n.CSVEntry
		row.SpeciesCount = n.SpeciesCount
		row.SiteOccurrences = n.SiteOccurrences
		row.Confidence = n.Confidence
		row.Source = n.Source
		row.TaxonID = n.TaxonID
	}
	return row
}
