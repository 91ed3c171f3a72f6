package flatten

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/anjali-pebl/DataApp-sub000/internal/engine/treebuilder"
	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

func gadusTree() *model.TreeNode {
	lineage := model.PartialHierarchy{
		Kingdom: "Animalia", Phylum: "Chordata", Class: "Actinopterygii",
		Order: "Gadiformes", Family: "Gadidae", Genus: "Gadus",
	}
	full := lineage
	full.Species = "Gadus morhua"
	return treebuilder.Build([]model.OccurrenceRecord{
		{Species: "Gadus morhua", Site: "A", Count: 3, Metadata: model.TaxonMetadata{FullHierarchy: full}},
		{Species: "Gadus sp.", Site: "B", Count: 1, Metadata: model.TaxonMetadata{FullHierarchy: lineage}},
	})
}

func TestFlattenEmptyTree(t *testing.T) {
	rows := Flatten(model.NewRoot())
	if len(rows) != 0 {
		t.Fatalf("expected empty sequence, got %d rows", len(rows))
	}
}

func TestFlattenSkipsRootAndKeepsChildOrder(t *testing.T) {
	rows := Flatten(gadusTree())

	var names []string
	for _, r := range rows {
		if r.Name == model.RootName {
			t.Fatal("synthetic root must not appear in the flattened view")
		}
		names = append(names, r.Name)
	}
	want := []string{
		"Animalia", "Chordata", "Actinopterygii",
		"Gadiformes", "Gadidae", "Gadus", "Gadus morhua",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("row order (-want +got):\n%s", diff)
	}
}

func TestFlattenIndentIsRankNotDepth(t *testing.T) {
	rows := Flatten(gadusTree())

	want := map[string]int{
		"Animalia":       0,
		"Chordata":       0,
		"Actinopterygii": 2,
		"Gadiformes":     3,
		"Gadidae":        4,
		"Gadus":          5,
		"Gadus morhua":   6,
	}
	for _, r := range rows {
		if r.IndentLevel != want[r.Name] {
			t.Fatalf("%s: indent %d, want %d", r.Name, r.IndentLevel, want[r.Name])
		}
		if r.IndentLevel != r.Rank.IndentLevel() {
			t.Fatalf("%s: indent %d is not a pure function of rank %s", r.Name, r.IndentLevel, r.Rank)
		}
	}
}

func TestFlattenIndentIgnoresElidedRanks(t *testing.T) {
	// A class placed directly under a synthesized kingdom still
	// indents as a class.
	root := treebuilder.Build([]model.OccurrenceRecord{
		{Species: "Actinopterygii (class).", Site: "A", Count: 1,
			Metadata: model.TaxonMetadata{FullHierarchy: model.PartialHierarchy{Class: "Actinopterygii"}}},
	})
	rows := Flatten(root)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].Name != "Actinopterygii" || rows[1].IndentLevel != 2 {
		t.Fatalf("class row = %q indent %d, want Actinopterygii indent 2", rows[1].Name, rows[1].IndentLevel)
	}
}

func TestFlattenPathExcludesRoot(t *testing.T) {
	rows := Flatten(gadusTree())

	byName := map[string]model.FlattenedTaxon{}
	for _, r := range rows {
		byName[r.Name] = r
	}

	if len(byName["Animalia"].Path) != 0 {
		t.Fatalf("kingdom path = %v, want empty", byName["Animalia"].Path)
	}
	wantPath := []string{"Animalia", "Chordata", "Actinopterygii", "Gadiformes", "Gadidae", "Gadus"}
	if diff := cmp.Diff(wantPath, byName["Gadus morhua"].Path); diff != "" {
		t.Fatalf("Gadus morhua path (-want +got):\n%s", diff)
	}
}

func TestFlattenNodeBackReference(t *testing.T) {
	rows := Flatten(gadusTree())
	for _, r := range rows {
		if r.Node == nil {
			t.Fatalf("%s: missing node back-reference", r.Name)
		}
		if r.Node.Name != r.Name || r.Node.Rank != r.Rank {
			t.Fatalf("%s: back-reference mismatch", r.Name)
		}
	}
}
