// Package gbif implements taxonomy lookup against the GBIF backbone
// species-match API.
package gbif

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/anjali-pebl/DataApp-sub000/internal/connector"
	"github.com/anjali-pebl/DataApp-sub000/internal/connector/httpclient"
	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

const defaultEndpoint = "https://api.gbif.org/v1"

func init() {
	connector.Register("gbif", func() connector.Connector {
		return &Connector{}
	})
}

// Connector implements connector.Connector for the GBIF backbone.
type Connector struct{}

// matchResponse is the subset of a GBIF species/match response this
// core consumes.
type matchResponse struct {
	UsageKey       int    `json:"usageKey"`
	ScientificName string `json:"scientificName"`
	CanonicalName  string `json:"canonicalName"`
	Rank           string `json:"rank"`
	MatchType      string `json:"matchType"`
	Confidence     int    `json:"confidence"`
	Kingdom        string `json:"kingdom"`
	Phylum         string `json:"phylum"`
	Class          string `json:"class"`
	Order          string `json:"order"`
	Family         string `json:"family"`
	Genus          string `json:"genus"`
	Species        string `json:"species"`
}

// Lookup queries species/match for the given name. GBIF answers every
// query with 200; a matchType of NONE means no usable match.
func (c *Connector) Lookup(ctx context.Context, cfg connector.LookupConfig, name string) (model.TaxonMetadata, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	client := httpclient.New(endpoint, httpclient.WithTimeout(cfg.Timeout))

	var resp matchResponse
	query := url.Values{"name": {name}, "strict": {"false"}}
	if err := client.GetJSON(ctx, "/species/match", query, &resp); err != nil {
		return model.TaxonMetadata{}, err
	}
	if resp.MatchType == "" || strings.EqualFold(resp.MatchType, "NONE") {
		return model.TaxonMetadata{}, connector.ErrNotFound
	}

	return model.TaxonMetadata{
		FullHierarchy: model.PartialHierarchy{
			Kingdom: resp.Kingdom,
			Phylum:  resp.Phylum,
			Class:   resp.Class,
			Order:   resp.Order,
			Family:  resp.Family,
			Genus:   resp.Genus,
			Species: resp.Species,
		},
		Confidence:   confidenceFor(resp.MatchType, resp.Confidence),
		Source:       "gbif",
		TaxonID:      strconv.Itoa(resp.UsageKey),
		TaxonomyRank: strings.ToLower(resp.Rank),
	}, nil
}

// confidenceFor maps GBIF match type and numeric confidence to the
// three-level scale the tree builder consumes.
func confidenceFor(matchType string, confidence int) string {
	switch {
	case strings.EqualFold(matchType, "EXACT") && confidence >= 95:
		return "high"
	case strings.EqualFold(matchType, "EXACT") || confidence >= 80:
		return "medium"
	default:
		return "low"
	}
}
