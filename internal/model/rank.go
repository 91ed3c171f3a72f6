package model

// Rank is one of the seven canonical taxonomic levels, or RankUnknown.
type Rank string

const (
	RankKingdom Rank = "kingdom"
	RankPhylum  Rank = "phylum"
	RankClass   Rank = "class"
	RankOrder   Rank = "order"
	RankFamily  Rank = "family"
	RankGenus   Rank = "genus"
	RankSpecies Rank = "species"
	RankUnknown Rank = "unknown"
)

// CanonicalRanks lists the seven named ranks from broadest to narrowest.
var CanonicalRanks = []Rank{
	RankKingdom, RankPhylum, RankClass, RankOrder,
	RankFamily, RankGenus, RankSpecies,
}

// rankOrder gives each rank a sort position (kingdom first, unknown last).
var rankOrder = map[Rank]int{
	RankKingdom: 0,
	RankPhylum:  1,
	RankClass:   2,
	RankOrder:   3,
	RankFamily:  4,
	RankGenus:   5,
	RankSpecies: 6,
	RankUnknown: 7,
}

// OrderIndex returns the rank's canonical sort position.
// Unrecognized ranks sort with unknown.
func (r Rank) OrderIndex() int {
	if i, ok := rankOrder[r]; ok {
		return i
	}
	return rankOrder[RankUnknown]
}

// indentLevels maps rank to heatmap row indentation. Indentation is a
// function of rank, not tree depth, so rows line up even when a branch
// elides intermediate ranks.
var indentLevels = map[Rank]int{
	RankKingdom: 0,
	RankPhylum:  0,
	RankClass:   2,
	RankOrder:   3,
	RankFamily:  4,
	RankGenus:   5,
	RankSpecies: 6,
	RankUnknown: 0,
}

// IndentLevel returns the display indentation for the rank.
func (r Rank) IndentLevel() int {
	if lvl, ok := indentLevels[r]; ok {
		return lvl
	}
	return 0
}

// parentLevels maps each rank to the hierarchy level that normally
// places it (its immediate parent in a fully populated lineage).
var parentLevels = map[Rank]Rank{
	RankPhylum:  RankKingdom,
	RankClass:   RankPhylum,
	RankOrder:   RankClass,
	RankFamily:  RankOrder,
	RankGenus:   RankFamily,
	RankSpecies: RankGenus,
}

// ParentLevel returns the rank expected to hold this rank's parent,
// and whether one exists (kingdom and unknown have none).
func (r Rank) ParentLevel() (Rank, bool) {
	p, ok := parentLevels[r]
	return p, ok
}

// rankColors drives the renderer's legend.
var rankColors = map[Rank]string{
	RankKingdom: "#8b5cf6",
	RankPhylum:  "#6366f1",
	RankClass:   "#3b82f6",
	RankOrder:   "#06b6d4",
	RankFamily:  "#10b981",
	RankGenus:   "#f59e0b",
	RankSpecies: "#ef4444",
	RankUnknown: "#9ca3af",
}

// Color returns the legend color for the rank.
func (r Rank) Color() string {
	if c, ok := rankColors[r]; ok {
		return c
	}
	return rankColors[RankUnknown]
}

// rankLetters are the single-letter abbreviations shown beside rows.
var rankLetters = map[Rank]string{
	RankKingdom: "K",
	RankPhylum:  "P",
	RankClass:   "C",
	RankOrder:   "O",
	RankFamily:  "F",
	RankGenus:   "G",
	RankSpecies: "S",
	RankUnknown: "?",
}

// Letter returns the one-letter abbreviation for the rank.
func (r Rank) Letter() string {
	if l, ok := rankLetters[r]; ok {
		return l
	}
	return rankLetters[RankUnknown]
}
