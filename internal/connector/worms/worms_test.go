package worms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anjali-pebl/DataApp-sub000/internal/connector"
)

func TestLookupPrefersAcceptedRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/AphiaRecordsByName/Gadus morhua" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`[
			{"AphiaID":1,"scientificname":"Gadus callarias","status":"unaccepted","rank":"Species",
			 "kingdom":"Animalia","phylum":"Chordata","class":"Actinopteri","order":"Gadiformes",
			 "family":"Gadidae","genus":"Gadus"},
			{"AphiaID":126436,"scientificname":"Gadus morhua","status":"accepted","rank":"Species",
			 "kingdom":"Animalia","phylum":"Chordata","class":"Actinopteri","order":"Gadiformes",
			 "family":"Gadidae","genus":"Gadus"}
		]`))
	}))
	defer srv.Close()

	md, err := (&Connector{}).Lookup(context.Background(), connector.LookupConfig{Endpoint: srv.URL}, "Gadus morhua")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if md.TaxonID != "126436" {
		t.Fatalf("TaxonID = %s, want the accepted record's 126436", md.TaxonID)
	}
	if md.Confidence != "high" || md.Source != "worms" {
		t.Fatalf("metadata = %+v", md)
	}
	if md.FullHierarchy.Species != "Gadus morhua" || md.FullHierarchy.Genus != "Gadus" {
		t.Fatalf("hierarchy = %+v", md.FullHierarchy)
	}
}

func TestLookupNonSpeciesRankLeavesSpeciesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"AphiaID":125732,"scientificname":"Gadus","status":"accepted","rank":"Genus",
			"kingdom":"Animalia","phylum":"Chordata","class":"Actinopteri","order":"Gadiformes",
			"family":"Gadidae","genus":"Gadus"}]`))
	}))
	defer srv.Close()

	md, err := (&Connector{}).Lookup(context.Background(), connector.LookupConfig{Endpoint: srv.URL}, "Gadus")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if md.FullHierarchy.Species != "" {
		t.Fatalf("genus lookup must not set Species, got %q", md.FullHierarchy.Species)
	}
	if md.TaxonomyRank != "genus" {
		t.Fatalf("TaxonomyRank = %q, want genus", md.TaxonomyRank)
	}
}

func TestLookupNoContentIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, err := (&Connector{}).Lookup(context.Background(), connector.LookupConfig{Endpoint: srv.URL}, "Nonexistius")
	if !errors.Is(err, connector.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookup404IsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := (&Connector{}).Lookup(context.Background(), connector.LookupConfig{Endpoint: srv.URL}, "Nonexistius")
	if !errors.Is(err, connector.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConfidenceFor(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{"accepted", "high"},
		{"Accepted", "high"},
		{"unaccepted", "medium"},
		{"alternate representation", "medium"},
		{"nomen dubium", "low"},
		{"", "low"},
	}
	for _, tc := range cases {
		if got := confidenceFor(tc.status); got != tc.want {
			t.Errorf("confidenceFor(%q) = %s, want %s", tc.status, got, tc.want)
		}
	}
}

func TestRegistered(t *testing.T) {
	if _, err := connector.Get("worms"); err != nil {
		t.Fatalf("worms not registered: %v", err)
	}
}
