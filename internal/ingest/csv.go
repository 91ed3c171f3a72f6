// Package ingest reads occurrence records from CSV. Expected layout is
// long format — one row per species×site observation — with a header
// naming at least a species column; site, count, and per-rank hierarchy
// columns are optional.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

// ReadFile reads occurrence records from the CSV file at path.
func ReadFile(path string) ([]model.OccurrenceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses occurrence records from CSV. Duplicate species×site rows
// are aggregated: counts are summed and the first populated hierarchy
// fields win. First-occurrence order is preserved.
func Read(r io.Reader) ([]model.OccurrenceRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ingest: read header: %w", err)
	}

	cols := columnIndex(header)
	speciesCol, ok := cols["species"]
	if !ok {
		return nil, fmt.Errorf("ingest: missing required column %q", "species")
	}

	type entry struct {
		key string
		rec *model.OccurrenceRecord
	}
	var order []*entry
	index := map[string]*entry{}

	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: %w", line, err)
		}

		species := field(row, speciesCol)
		if species == "" {
			continue
		}
		site := field(row, col(cols, "site"))

		count := 1
		if c, ok := cols["count"]; ok && field(row, c) != "" {
			count, err = strconv.Atoi(field(row, c))
			if err != nil || count < 0 {
				return nil, fmt.Errorf("ingest: line %d: invalid count %q", line, field(row, c))
			}
		}

		key := species + "\x00" + site
		e, exists := index[key]
		if !exists {
			e = &entry{key: key, rec: &model.OccurrenceRecord{Species: species, Site: site}}
			index[key] = e
			order = append(order, e)
		}
		e.rec.Count += count
		mergeHierarchy(&e.rec.Metadata.FullHierarchy, row, cols)
	}

	records := make([]model.OccurrenceRecord, 0, len(order))
	for _, e := range order {
		records = append(records, *e.rec)
	}
	return records, nil
}

// columnIndex maps lower-cased header names to their positions.
func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

// col returns the position of an optional column, or -1 when absent.
func col(cols map[string]int, name string) int {
	if i, ok := cols[name]; ok {
		return i
	}
	return -1
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// mergeHierarchy copies per-rank columns into the hierarchy, keeping
// already-populated fields.
func mergeHierarchy(h *model.PartialHierarchy, row []string, cols map[string]int) {
	set := func(dst *string, name string) {
		if *dst != "" {
			return
		}
		if i, ok := cols[name]; ok {
			*dst = field(row, i)
		}
	}
	set(&h.Kingdom, "kingdom")
	set(&h.Phylum, "phylum")
	set(&h.Class, "class")
	set(&h.Order, "order")
	set(&h.Family, "family")
	set(&h.Genus, "genus")
	set(&h.Species, "species_full")
}
