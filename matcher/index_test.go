package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"therme-scraper/scraper"
)

func catalogOf(titles ...string) *scraper.Catalog {
	catalog := &scraper.Catalog{}
	for _, title := range titles {
		catalog.Activities = append(catalog.Activities, scraper.ActivityDetail{
			Title: title,
			URL:   "https://therme.ro/activity/" + title,
		})
	}
	catalog.Total = len(catalog.Activities)
	return catalog
}

func TestIndexKeepsCatalogOrder(t *testing.T) {
	idx := NewIndex(catalogOf("Salt Sauna", "Aufguss Ritual", "Mineral Pool"))

	assert.Equal(t, []string{"Salt Sauna", "Aufguss Ritual", "Mineral Pool"}, idx.Titles())
	assert.Equal(t, 3, idx.Len())

	detail := idx.Lookup("Aufguss Ritual")
	require.NotNil(t, detail)
	assert.Equal(t, "Aufguss Ritual", detail.Title)

	assert.Nil(t, idx.Lookup("Missing"))
}

func TestIndexDuplicateTitles(t *testing.T) {
	catalog := catalogOf("Salt Sauna", "Salt Sauna")
	catalog.Activities[0].Description = "first"
	catalog.Activities[1].Description = "second"

	idx := NewIndex(catalog)

	// Both copies stay in the ordered sequence; the later record wins the map.
	assert.Equal(t, []string{"Salt Sauna", "Salt Sauna"}, idx.Titles())
	require.NotNil(t, idx.Lookup("Salt Sauna"))
	assert.Equal(t, "second", idx.Lookup("Salt Sauna").Description)
}
