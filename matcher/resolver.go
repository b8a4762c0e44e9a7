package matcher

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"therme-scraper/scraper"
)

// DefaultThreshold is the minimum similarity score a fuzzy candidate must
// reach before it counts as a match.
const DefaultThreshold = 60

// Result is the outcome of resolving one schedule name. Detail is nil when
// nothing cleared the threshold; Score is a 0-100 confidence, not a
// probability.
type Result struct {
	Detail *scraper.ActivityDetail
	Score  int
}

// scorers are the similarity functions the best-effort stage runs, in
// order. Ties between scorers keep the result from the earlier one, so the
// order here is part of the resolver's observable behavior.
var scorers = []struct {
	name  string
	score func(s1, s2 string) int
}{
	{"ratio", func(s1, s2 string) int { return fuzzy.Ratio(s1, s2) }},
	{"partial", func(s1, s2 string) int { return fuzzy.PartialRatio(s1, s2) }},
	{"tokenSort", func(s1, s2 string) int { return fuzzy.TokenSortRatio(s1, s2) }},
	{"tokenSet", func(s1, s2 string) int { return fuzzy.TokenSetRatio(s1, s2) }},
}

// Resolve finds the catalog record best matching a schedule name.
//
// Three stages run in priority order, each returning as soon as it
// succeeds: exact case-insensitive equality (score 100), then a greedy
// containment scan, then a best-effort search across all four scorers.
// The containment stage takes the first candidate in catalog order whose
// lowercased form contains (or is contained by) the query and whose score
// clears the threshold; it does not look for a later, better candidate.
// That greediness is long-standing observable behavior and must stay.
func Resolve(name string, idx *Index, threshold int) Result {
	for _, title := range idx.titles {
		if strings.EqualFold(name, title) {
			return Result{Detail: idx.Lookup(title), Score: 100}
		}
	}

	nameLower := strings.ToLower(name)
	for _, title := range idx.titles {
		titleLower := strings.ToLower(title)
		if !strings.Contains(titleLower, nameLower) && !strings.Contains(nameLower, titleLower) {
			continue
		}
		score := fuzzy.Ratio(name, title)
		if s := fuzzy.PartialRatio(name, title); s > score {
			score = s
		}
		if s := fuzzy.TokenSortRatio(name, title); s > score {
			score = s
		}
		if score >= threshold {
			return Result{Detail: idx.Lookup(title), Score: score}
		}
	}

	best := Result{}
	for _, sc := range scorers {
		for _, title := range idx.titles {
			score := sc.score(name, title)
			if score < threshold {
				continue
			}
			// Strict comparison: an equal score from a later scorer
			// (or a later title) never displaces the earlier winner.
			if score > best.Score {
				best = Result{Detail: idx.Lookup(title), Score: score}
			}
		}
	}
	return best
}
