// Package storage saves and loads the scraped JSON snapshots.
package storage

import (
	"encoding/json"
	"os"

	"therme-scraper/scraper"
)

// SaveSchedule writes the weekly schedule to a JSON file.
func SaveSchedule(filename string, week scraper.WeekSchedule) error {
	return saveJSON(filename, week)
}

// LoadSchedule reads a weekly schedule JSON file.
func LoadSchedule(filename string) (scraper.WeekSchedule, error) {
	var week scraper.WeekSchedule
	if err := loadJSON(filename, &week); err != nil {
		return nil, err
	}
	return week, nil
}

// activitiesFile is the envelope the listing scrape is saved in.
type activitiesFile struct {
	Activities []scraper.Activity `json:"activities"`
}

// SaveActivities writes the activity listing to a JSON file.
func SaveActivities(filename string, activities []scraper.Activity) error {
	return saveJSON(filename, activitiesFile{Activities: activities})
}

// LoadActivities reads an activity listing JSON file.
func LoadActivities(filename string) ([]scraper.Activity, error) {
	var file activitiesFile
	if err := loadJSON(filename, &file); err != nil {
		return nil, err
	}
	return file.Activities, nil
}

// SaveCatalog writes the detail catalog to a JSON file.
func SaveCatalog(filename string, catalog *scraper.Catalog) error {
	return saveJSON(filename, catalog)
}

// LoadCatalog reads a detail catalog JSON file.
func LoadCatalog(filename string) (*scraper.Catalog, error) {
	var catalog scraper.Catalog
	if err := loadJSON(filename, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func saveJSON(filename string, v interface{}) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

func loadJSON(filename string, v interface{}) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(v)
}
