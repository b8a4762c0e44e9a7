package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"therme-scraper/scraper"
)

func TestUnmatchedEmptySchedule(t *testing.T) {
	idx := NewIndex(catalogOf("Salt Sauna", "Aufguss Ritual", "Mineral Pool"))

	unmatched := Unmatched(nil, idx, DefaultThreshold)
	assert.Equal(t, []string{"Salt Sauna", "Aufguss Ritual", "Mineral Pool"}, unmatched)
}

func TestUnmatchedFullSchedule(t *testing.T) {
	idx := NewIndex(catalogOf("Salt Sauna", "Aufguss Ritual", "Mineral Pool"))

	names := []string{"salt sauna", "AUFGUSS RITUAL", "Mineral Pool"}
	assert.Empty(t, Unmatched(names, idx, DefaultThreshold))
}

func TestUnmatchedKeepsCatalogOrder(t *testing.T) {
	idx := NewIndex(catalogOf("Salt Sauna", "Aufguss Ritual", "Mineral Pool", "Steam Bath"))

	unmatched := Unmatched([]string{"aufguss ritual"}, idx, DefaultThreshold)
	assert.Equal(t, []string{"Salt Sauna", "Mineral Pool", "Steam Bath"}, unmatched)
}

func TestSummarize(t *testing.T) {
	idx := NewIndex(catalogOf("Salt Sauna", "Aufguss Ritual", "Mineral Pool"))

	week := scraper.WeekSchedule{
		"Monday": &scraper.DaySchedule{
			Theme: "Monday - Ritual Day",
			Activities: []scraper.ScheduleEntry{
				{Name: "salt sauna", Location: "Sauna Panoramica", Time: "18:00 - 19:00"},
				{Name: "does not exist anywhere", Location: "Nowhere"},
			},
		},
		"Tuesday": &scraper.DaySchedule{
			Activities: []scraper.ScheduleEntry{
				{Name: "Aufguss Ritual", Time: "12:00"},
			},
		},
	}

	summary := Summarize(week, idx, DefaultThreshold)
	assert.Equal(t, 3, summary.TotalEntries)
	assert.Equal(t, 2, summary.Matched)
	assert.Equal(t, []string{"Mineral Pool"}, summary.Unmatched)
}

func TestRoundTrip(t *testing.T) {
	// Catalog title "Salt Sauna", schedule spelling "salt sauna": exact
	// match at score 100, so the title never shows up as unmatched.
	idx := NewIndex(catalogOf("Salt Sauna"))

	res := Resolve("salt sauna", idx, DefaultThreshold)
	require.NotNil(t, res.Detail)
	assert.Equal(t, "Salt Sauna", res.Detail.Title)
	assert.Equal(t, 100, res.Score)

	assert.Empty(t, Unmatched([]string{"salt sauna"}, idx, DefaultThreshold))
}
