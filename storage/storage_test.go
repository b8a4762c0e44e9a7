package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"therme-scraper/scraper"
)

func TestScheduleRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "schedule.json")

	week := scraper.WeekSchedule{
		"Monday": &scraper.DaySchedule{
			Theme: "Monday - Ritual Day",
			Activities: []scraper.ScheduleEntry{
				{Name: "Aufguss Ritual", Location: "Amfiteatru Sauna", Time: "18:00 - 18:15", Tier: scraper.TierGalaxy},
			},
		},
	}

	require.NoError(t, SaveSchedule(filename, week))

	loaded, err := LoadSchedule(filename)
	require.NoError(t, err)
	assert.Equal(t, week, loaded)
}

func TestActivitiesRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "activities.json")

	activities := []scraper.Activity{
		{Name: "Salt Sauna", Location: "Sauna Panoramica", Tier: scraper.TierPalm, Link: "https://therme.ro/activity/salt-sauna"},
		{Name: "Quiet Lounge", Location: "Relaxation area"},
	}

	require.NoError(t, SaveActivities(filename, activities))

	loaded, err := LoadActivities(filename)
	require.NoError(t, err)
	assert.Equal(t, activities, loaded)

	// The envelope matches the layout the details scrape expects.
	raw, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"activities"`)
}

func TestCatalogRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "catalog.json")

	catalog := &scraper.Catalog{
		Activities: []scraper.ActivityDetail{
			{
				Title:   "Salt Sauna",
				Images:  []string{"https://cdn.mytherme.app/serve/hero-1?w=1200&h=630"},
				Program: "Program\nLuni\nSauna\n10:00",
				URL:     "https://therme.ro/activity/salt-sauna",
			},
		},
		Total: 1,
	}

	require.NoError(t, SaveCatalog(filename, catalog))

	loaded, err := LoadCatalog(filename)
	require.NoError(t, err)
	assert.Equal(t, catalog, loaded)

	// URLs are stored verbatim, not HTML-escaped.
	raw, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "w=1200&h=630")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadSchedule(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
