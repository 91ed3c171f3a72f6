// Package testdata embeds a labeled corpus of raw species labels as
// they arrive from field surveys, for validating name cleaning and
// rank inference against real annotation conventions.
package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a labeled raw species label.
type CorpusEntry struct {
	Raw          string `json:"raw"`
	ExpectedName string `json:"expected_name"`
	ExpectedRank string `json:"expected_rank"`
	Description  string `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
