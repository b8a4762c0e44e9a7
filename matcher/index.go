// Package matcher resolves free-text schedule names against the canonical
// activity catalog using fuzzy string scoring.
package matcher

import "therme-scraper/scraper"

// Index is an immutable lookup over the detail catalog: the catalog-order
// title sequence plus a title->detail map. Build it once and share it;
// it is read-only afterwards and safe for concurrent use.
type Index struct {
	titles  []string
	byTitle map[string]*scraper.ActivityDetail
}

// NewIndex builds an Index from the catalog. When the catalog carries the
// same title twice, the later record wins the map entry but both titles
// stay in the ordered sequence.
func NewIndex(catalog *scraper.Catalog) *Index {
	idx := &Index{
		titles:  make([]string, 0, len(catalog.Activities)),
		byTitle: make(map[string]*scraper.ActivityDetail, len(catalog.Activities)),
	}
	for i := range catalog.Activities {
		detail := &catalog.Activities[i]
		idx.titles = append(idx.titles, detail.Title)
		idx.byTitle[detail.Title] = detail
	}
	return idx
}

// Titles returns the catalog-order title sequence. Callers must not modify it.
func (idx *Index) Titles() []string {
	return idx.titles
}

// Lookup returns the detail record for a canonical title, or nil.
func (idx *Index) Lookup(title string) *scraper.ActivityDetail {
	return idx.byTitle[title]
}

// Len returns the number of titles in the index.
func (idx *Index) Len() int {
	return len(idx.titles)
}
