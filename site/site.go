// Package site renders the reconciled weekly schedule as a static HTML
// page and can serve it for preview.
package site

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"therme-scraper/matcher"
	"therme-scraper/program"
	"therme-scraper/scraper"
)

//go:embed templates/schedule.html
var templateFS embed.FS

var templates = template.Must(template.New("schedule.html").Funcs(template.FuncMap{
	"nl2br": nl2br,
}).ParseFS(templateFS, "templates/schedule.html"))

const defaultBorderColor = "#cccccc"

// Page is the full view model handed to the schedule template.
type Page struct {
	Days        []DayView
	Unscheduled []CardView
	GeneratedAt string
	Tiers       []TierView
}

// TierView is one legend entry.
type TierView struct {
	Name  string
	Color string
}

// DayView is one day tab.
type DayView struct {
	Name       string
	ID         string
	Theme      string
	Activities []CardView
}

// CardView is one activity card, with its resolved detail record when the
// matcher found one.
type CardView struct {
	Name        string
	Location    string
	Time        string
	BorderColor string
	CollapseID  string
	Detail      *scraper.ActivityDetail
	Score       int
	Rows        []program.Row
	RawProgram  string
}

// Generate resolves the weekly schedule against the catalog, renders the
// page to outputFile, and returns the reconciliation summary.
func Generate(week scraper.WeekSchedule, catalog *scraper.Catalog, threshold int, outputFile string) (matcher.Summary, error) {
	idx := matcher.NewIndex(catalog)

	page := Page{
		GeneratedAt: time.Now().Format("2006-01-02 15:04"),
		Tiers: []TierView{
			{scraper.TierGalaxy, scraper.TierColors[scraper.TierGalaxy]},
			{scraper.TierPalm, scraper.TierColors[scraper.TierPalm]},
			{scraper.TierElysium, scraper.TierColors[scraper.TierElysium]},
		},
	}

	for _, day := range scraper.Days {
		view := DayView{Name: day, ID: strings.ToLower(day)}
		if daySchedule := week[day]; daySchedule != nil {
			view.Theme = daySchedule.Theme
			for i, entry := range daySchedule.Activities {
				card := CardView{
					Name:        entry.Name,
					Location:    entry.Location,
					Time:        entry.Time,
					BorderColor: borderColor(entry.Tier),
					CollapseID:  fmt.Sprintf("collapse-%s-%d", view.ID, i),
				}
				if res := matcher.Resolve(entry.Name, idx, threshold); res.Detail != nil {
					card.Detail = res.Detail
					card.Score = res.Score
					fillProgram(&card)
				}
				view.Activities = append(view.Activities, card)
			}
		}
		page.Days = append(page.Days, view)
	}

	summary := matcher.Summarize(week, idx, threshold)
	for i, title := range summary.Unmatched {
		card := CardView{
			Name:       title,
			CollapseID: fmt.Sprintf("collapse-unscheduled-%d", i),
		}
		if detail := idx.Lookup(title); detail != nil {
			card.Detail = detail
			card.BorderColor = borderColor(detail.Tier)
			fillProgram(&card)
		} else {
			card.BorderColor = defaultBorderColor
		}
		page.Unscheduled = append(page.Unscheduled, card)
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return summary, fmt.Errorf("error creating output file: %v", err)
	}
	defer file.Close()

	if err := templates.ExecuteTemplate(file, "schedule.html", page); err != nil {
		return summary, fmt.Errorf("error rendering schedule page: %v", err)
	}
	return summary, nil
}

// fillProgram parses the detail record's program text into rows; when no
// row comes out the raw text is shown instead.
func fillProgram(card *CardView) {
	if card.Detail.Program == "" {
		return
	}
	card.Rows = program.Parse(card.Detail.Program, card.Detail.Title)
	if len(card.Rows) == 0 {
		card.RawProgram = card.Detail.Program
	}
}

func borderColor(tier string) string {
	if color, ok := scraper.TierColors[tier]; ok {
		return color
	}
	return defaultBorderColor
}

// nl2br escapes text and turns newlines into <br> tags.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
