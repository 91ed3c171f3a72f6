package ingest

import (
	"strings"
	"testing"
)

func TestReadBasic(t *testing.T) {
	csv := `species,site,count
Gadus morhua,A,3
Gadus sp.,B,1
`
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Species != "Gadus morhua" || records[0].Site != "A" || records[0].Count != 3 {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
}

func TestReadHierarchyColumns(t *testing.T) {
	csv := `species,site,count,kingdom,phylum,class,order,family,genus
Gadus morhua,A,3,Animalia,Chordata,Actinopterygii,Gadiformes,Gadidae,Gadus
`
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	h := records[0].Metadata.FullHierarchy
	if h.Kingdom != "Animalia" || h.Genus != "Gadus" {
		t.Fatalf("hierarchy not parsed: %+v", h)
	}
	if h.Completeness() != 6 {
		t.Fatalf("completeness = %d, want 6", h.Completeness())
	}
}

func TestReadAggregatesDuplicateRows(t *testing.T) {
	csv := `species,site,count
Gadus morhua,A,3
Gadus morhua,A,2
Gadus morhua,B,1
`
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 aggregated records, got %d", len(records))
	}
	// First-occurrence order preserved, counts summed.
	if records[0].Site != "A" || records[0].Count != 5 {
		t.Fatalf("aggregated record = %+v, want site A count 5", records[0])
	}
	if records[1].Site != "B" || records[1].Count != 1 {
		t.Fatalf("second record = %+v", records[1])
	}
}

func TestReadDefaultsCountToOne(t *testing.T) {
	csv := `species,site
Gadus morhua,A
`
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if records[0].Count != 1 {
		t.Fatalf("count = %d, want default 1", records[0].Count)
	}
}

func TestReadSkipsBlankSpecies(t *testing.T) {
	csv := `species,site,count
,A,3
Gadus morhua,A,1
`
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected blank species skipped, got %d records", len(records))
	}
}

func TestReadMissingSpeciesColumn(t *testing.T) {
	csv := `name,site
Gadus morhua,A
`
	if _, err := Read(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for missing species column")
	}
}

func TestReadInvalidCount(t *testing.T) {
	csv := `species,site,count
Gadus morhua,A,lots
`
	if _, err := Read(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for non-numeric count")
	}
}

func TestReadEmptyInput(t *testing.T) {
	records, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
