// Package nomenclature normalizes raw species labels and infers the
// taxonomic rank a record describes. Field data arrives with mixed
// annotation conventions ("Gadus sp.", "Actinopterygii (class).",
// "Polychaeta (class.)"); the tables here are the single place those
// conventions are enumerated.
package nomenclature

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/anjali-pebl/DataApp-sub000/internal/model"
)

// annotationRule pairs one annotation token with the rank it implies.
// Rules are matched in order; dotted abbreviations precede their
// undotted unabbreviated forms so the regexp alternation prefers them.
type annotationRule struct {
	token string
	rank  model.Rank
}

// parenRules cover parenthetical annotations: "Name (tok)" with an
// optional stray period after the closing paren.
var parenRules = []annotationRule{
	{"phyl.", model.RankPhylum},
	{"gigaclass.", model.RankClass},
	{"infraclass.", model.RankClass},
	{"class.", model.RankClass},
	{"ord.", model.RankOrder},
	{"fam.", model.RankFamily},
	{"gen.", model.RankGenus},
	{"sp.", model.RankSpecies},
	{"kingdom", model.RankKingdom},
	{"phylum", model.RankPhylum},
	{"class", model.RankClass},
	{"order", model.RankOrder},
	{"family", model.RankFamily},
	{"genus", model.RankGenus},
	{"species", model.RankSpecies},
}

// trailingRules cover un-parenthesized trailing tokens: "Gadus sp.",
// "Nematoda spp". An unqualified "Genus sp." means the identification
// stops at genus, so sp./spp. map to genus here, not species.
var trailingRules = []annotationRule{
	{"sp", model.RankGenus},
	{"spp", model.RankGenus},
	{"gen", model.RankGenus},
	{"fam", model.RankFamily},
	{"ord", model.RankOrder},
	{"class", model.RankClass},
}

var (
	parenRe    = compileAlternation(parenRules, `(?i)\s*\((`, `)\)\.?\s*$`)
	trailingRe = compileAlternation(trailingRules, `(?i)\s+(`, `)\.?\s*$`)
)

func compileAlternation(rules []annotationRule, prefix, suffix string) *regexp.Regexp {
	alts := make([]string, len(rules))
	for i, r := range rules {
		alts[i] = regexp.QuoteMeta(r.token)
	}
	return regexp.MustCompile(prefix + strings.Join(alts, "|") + suffix)
}

func ruleRank(rules []annotationRule, token string) (model.Rank, bool) {
	token = strings.ToLower(token)
	for _, r := range rules {
		if r.token == token {
			return r.rank, true
		}
	}
	return model.RankUnknown, false
}

// Annotation is the rank implication carried by a label's annotation.
type Annotation struct {
	Rank model.Rank
	// Parenthetical distinguishes "(sp.)" (species) from a trailing
	// "sp." (genus); the two forms rank differently.
	Parenthetical bool
}

// Strip returns the cleaned label and the annotation it carried, if
// any. Annotations can stack ("Gadus (gen.) sp."), so stripping repeats
// until no pattern matches; the outermost annotation found is the rank
// signal. Cleaning is idempotent: a cleaned label strips to itself.
func Strip(raw string) (string, *Annotation) {
	s := strings.TrimSpace(norm.NFC.String(raw))
	var ann *Annotation

	for {
		stripped := s

		if m := parenRe.FindStringSubmatch(stripped); m != nil {
			if ann == nil {
				if rank, ok := ruleRank(parenRules, m[1]); ok {
					ann = &Annotation{Rank: rank, Parenthetical: true}
				}
			}
			stripped = strings.TrimSpace(stripped[:len(stripped)-len(m[0])])
		}

		if m := trailingRe.FindStringSubmatch(stripped); m != nil {
			if ann == nil {
				if rank, ok := ruleRank(trailingRules, m[1]); ok {
					ann = &Annotation{Rank: rank}
				}
			}
			stripped = strings.TrimSpace(stripped[:len(stripped)-len(m[0])])
		}

		if stripped == s {
			return s, ann
		}
		s = stripped
	}
}

// Clean returns the label with all rank annotations stripped.
func Clean(raw string) string {
	cleaned, _ := Strip(raw)
	return cleaned
}

// hintRanks maps external metadata rank hints to ranks. Unlike a
// trailing "sp." on a label, a "sp." hint is a declared rank and maps
// to species. Full rank names are accepted because WoRMS and GBIF
// return them verbatim.
var hintRanks = map[string]model.Rank{
	"king":    model.RankKingdom,
	"kingdom": model.RankKingdom,
	"phyl":    model.RankPhylum,
	"phylum":  model.RankPhylum,
	"class":   model.RankClass,
	"ord":     model.RankOrder,
	"order":   model.RankOrder,
	"fam":     model.RankFamily,
	"family":  model.RankFamily,
	"gen":     model.RankGenus,
	"genus":   model.RankGenus,
	"sp":      model.RankSpecies,
	"species": model.RankSpecies,
}

// HintRank maps a metadata rank hint ("sp.", "fam.", "Genus", …) to a
// rank. Unrecognized hints report false.
func HintRank(hint string) (model.Rank, bool) {
	key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(hint), "."))
	r, ok := hintRanks[key]
	return r, ok
}

// hierarchyMatchOrder is the narrowest-first order in which a cleaned
// name is compared against its own declared hierarchy.
var hierarchyMatchOrder = []model.Rank{
	model.RankGenus, model.RankFamily, model.RankOrder,
	model.RankClass, model.RankPhylum, model.RankKingdom,
}

// Analyze cleans a raw species label and determines the rank the record
// describes. Priority: the record's own hierarchy naming the cleaned
// label at a higher level, then a parenthetical annotation, then a
// trailing token, then the metadata rank hint, then species.
func Analyze(raw string, h model.PartialHierarchy, hint string) (string, model.Rank) {
	cleaned, ann := Strip(raw)

	for _, r := range hierarchyMatchOrder {
		if h.Level(r) != "" && h.Level(r) == cleaned {
			return cleaned, r
		}
	}
	if ann != nil {
		return cleaned, ann.Rank
	}
	if hint != "" {
		if r, ok := HintRank(hint); ok {
			return cleaned, r
		}
	}
	return cleaned, model.RankSpecies
}
