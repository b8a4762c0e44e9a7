package matcher

import "therme-scraper/scraper"

// Summary reports how well a weekly schedule reconciles with the catalog.
type Summary struct {
	TotalEntries int
	Matched      int
	Unmatched    []string
}

// Unmatched returns the canonical titles never matched by any of the given
// schedule names, in catalog order. The input collection needs no
// particular order; the output is deterministic.
func Unmatched(scheduleNames []string, idx *Index, threshold int) []string {
	matched := make(map[string]bool)
	for _, name := range scheduleNames {
		if res := Resolve(name, idx, threshold); res.Detail != nil {
			matched[res.Detail.Title] = true
		}
	}

	unmatched := make([]string, 0)
	for _, title := range idx.titles {
		if !matched[title] {
			unmatched = append(unmatched, title)
		}
	}
	return unmatched
}

// Summarize resolves every entry of the weekly schedule and reports the
// totals plus the unmatched catalog titles.
func Summarize(week scraper.WeekSchedule, idx *Index, threshold int) Summary {
	summary := Summary{}
	names := make(map[string]bool)
	for _, day := range week {
		if day == nil {
			continue
		}
		for _, entry := range day.Activities {
			summary.TotalEntries++
			names[entry.Name] = true
			if res := Resolve(entry.Name, idx, threshold); res.Detail != nil {
				summary.Matched++
			}
		}
	}

	distinct := make([]string, 0, len(names))
	for name := range names {
		distinct = append(distinct, name)
	}
	summary.Unmatched = Unmatched(distinct, idx, threshold)
	return summary
}
