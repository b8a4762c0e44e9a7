package scraper

import "strings"

// ScheduleEntry represents one activity slot on the weekly schedule page.
type ScheduleEntry struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Time     string `json:"time"`
	Tier     string `json:"tier,omitempty"`
}

// DaySchedule holds the theme and activities for a single day.
type DaySchedule struct {
	Theme      string          `json:"theme"`
	Activities []ScheduleEntry `json:"activities"`
}

// WeekSchedule maps English day names to their schedule.
type WeekSchedule map[string]*DaySchedule

// Activity represents one entry on the all-activities listing page.
type Activity struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Tier     string `json:"tier,omitempty"`
	Link     string `json:"link"`
}

// Section represents one content block on an activity detail page.
type Section struct {
	Heading string   `json:"heading,omitempty"`
	Content []string `json:"content,omitempty"`
	Images  []string `json:"images,omitempty"`
}

// ActivityDetail represents the full scraped detail page for one activity.
// Title acts as the canonical name the schedule is matched against.
type ActivityDetail struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Sections    []Section `json:"sections"`
	Program     string    `json:"program,omitempty"`
	Tier        string    `json:"tier,omitempty"`
	URL         string    `json:"url"`
}

// Catalog is the saved output of a details scrape run.
type Catalog struct {
	Activities  []ActivityDetail `json:"activities"`
	Total       int              `json:"total"`
	Interrupted bool             `json:"interrupted"`
}

// Tier labels used across the site, keyed to their border colors.
const (
	TierGalaxy  = "GALAXY"
	TierPalm    = "THE PALM"
	TierElysium = "ELYSIUM"
)

// TierColors maps each tier to the hex color the site styles it with.
var TierColors = map[string]string{
	TierGalaxy:  "#FE216E",
	TierPalm:    "#43B2D2",
	TierElysium: "#00C754",
}

// TierForColor returns the tier a border color encodes, or "".
func TierForColor(color string) string {
	for tier, hex := range TierColors {
		if strings.EqualFold(color, hex) {
			return tier
		}
	}
	return ""
}
