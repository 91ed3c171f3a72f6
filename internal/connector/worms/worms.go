// Package worms implements taxonomy lookup against the WoRMS (World
// Register of Marine Species) REST API.
package worms

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/anjali-pebl/DataApp-sub000/internal/connector"
	"github.com/anjali-pebl/DataApp-sub000/internal/connector/httpclient"
	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

const defaultEndpoint = "https://www.marinespecies.org/rest"

func init() {
	connector.Register("worms", func() connector.Connector {
		return &Connector{}
	})
}

// Connector implements connector.Connector for WoRMS.
type Connector struct{}

// aphiaRecord is the subset of a WoRMS AphiaRecord this core consumes.
type aphiaRecord struct {
	AphiaID        int    `json:"AphiaID"`
	ScientificName string `json:"scientificname"`
	Status         string `json:"status"`
	Rank           string `json:"rank"`
	Kingdom        string `json:"kingdom"`
	Phylum         string `json:"phylum"`
	Class          string `json:"class"`
	Order          string `json:"order"`
	Family         string `json:"family"`
	Genus          string `json:"genus"`
	ValidName      string `json:"valid_name"`
}

// Lookup queries AphiaRecordsByName for the given name. When several
// records match, an accepted record wins over unaccepted synonyms.
func (c *Connector) Lookup(ctx context.Context, cfg connector.LookupConfig, name string) (model.TaxonMetadata, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	client := httpclient.New(endpoint, httpclient.WithTimeout(cfg.Timeout))

	var records []aphiaRecord
	query := url.Values{"like": {"false"}, "marine_only": {"false"}}
	err := client.GetJSON(ctx, "/AphiaRecordsByName/"+url.PathEscape(name), query, &records)
	if err != nil {
		var apiErr *httpclient.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
			return model.TaxonMetadata{}, connector.ErrNotFound
		}
		return model.TaxonMetadata{}, err
	}
	if len(records) == 0 {
		return model.TaxonMetadata{}, connector.ErrNotFound
	}

	rec := records[0]
	for _, r := range records {
		if strings.EqualFold(r.Status, "accepted") {
			rec = r
			break
		}
	}

	md := model.TaxonMetadata{
		FullHierarchy: model.PartialHierarchy{
			Kingdom: rec.Kingdom,
			Phylum:  rec.Phylum,
			Class:   rec.Class,
			Order:   rec.Order,
			Family:  rec.Family,
			Genus:   rec.Genus,
		},
		Confidence:   confidenceFor(rec.Status),
		Source:       "worms",
		TaxonID:      strconv.Itoa(rec.AphiaID),
		TaxonomyRank: strings.ToLower(rec.Rank),
	}
	if strings.EqualFold(rec.Rank, "species") {
		md.FullHierarchy.Species = rec.ScientificName
	}
	return md, nil
}

// confidenceFor maps a WoRMS record status to a lookup confidence.
func confidenceFor(status string) string {
	switch strings.ToLower(status) {
	case "accepted":
		return "high"
	case "unaccepted", "alternate representation":
		return "medium"
	default:
		return "low"
	}
}
