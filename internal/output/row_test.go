package output

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

func TestFromTaxon(t *testing.T) {
	node := &model.TreeNode{
		Name:            "Gadus",
		OriginalName:    "Gadus sp.",
		Rank:            model.RankGenus,
		CSVEntry:        true,
		SpeciesCount:    2,
		SiteOccurrences: map[string]int{"B": 1},
		Confidence:      "high",
		Source:          "worms",
		TaxonID:         "125732",
	}
	ft := model.FlattenedTaxon{
		Name:        "Gadus",
		Rank:        model.RankGenus,
		IndentLevel: 5,
		Path:        []string{"Animalia", "Chordata", "Actinopterygii", "Gadiformes", "Gadidae"},
		Node:        node,
	}

	got := FromTaxon(ft)

	want := Row{
		Name:            "Gadus",
		OriginalName:    "Gadus sp.",
		Rank:            model.RankGenus,
		RankLetter:      model.RankGenus.Letter(),
		RankColor:       model.RankGenus.Color(),
		IndentLevel:     5,
		Path:            ft.Path,
		CSVEntry:        true,
		SpeciesCount:    2,
		SiteOccurrences: map[string]int{"B": 1},
		Confidence:      "high",
		Source:          "worms",
		TaxonID:         "125732",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("row (-want +got):\n%s", diff)
	}
}

func TestFromTaxonNilPathSerializesAsEmptyList(t *testing.T) {
	row := FromTaxon(model.FlattenedTaxon{Name: "Animalia", Rank: model.RankKingdom})
	if row.Path == nil {
		t.Fatal("nil path must become an empty slice so JSON emits [] not null")
	}
}
