package scraper

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// NewSession returns the HTTP client the scrapers share.
func NewSession() *http.Client {
	return &http.Client{}
}

// FetchDocument downloads a page and parses it with goquery.
func FetchDocument(session *http.Client, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Add("User-Agent", userAgent)

	resp, err := session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %v", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error fetching %s: status code %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML: %v", err)
	}
	return doc, nil
}

var (
	borderLeftStyle  = regexp.MustCompile(`border-left.*solid`)
	borderLeftColor  = regexp.MustCompile(`(?i)border-left:\s*3px\s+solid\s+(#[0-9A-Fa-f]{6})`)
	nameLocationLine = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)\s*$`)
	leadingTime      = regexp.MustCompile(`^\d{1,2}:\d{2}`)
)

// ScrapeSchedule fetches the weekly activities schedule page and returns
// the parsed week.
func ScrapeSchedule(session *http.Client, pageURL string) (WeekSchedule, error) {
	fmt.Println("Fetching schedule page...")
	doc, err := FetchDocument(session, pageURL)
	if err != nil {
		return nil, err
	}
	return ParseSchedule(doc), nil
}

// ParseSchedule extracts the weekly schedule from the page document. The
// page lays each day out as a tab panel; when that structure yields almost
// nothing a plain-text scan of the whole page runs as a fallback.
func ParseSchedule(doc *goquery.Document) WeekSchedule {
	week := WeekSchedule{}
	for _, day := range Days {
		week[day] = &DaySchedule{Activities: []ScheduleEntry{}}
	}

	fmt.Println("Parsing schedule data...")
	tabs := doc.Find("div.page-tab")
	fmt.Printf("Found %d tab panels\n", tabs.Length())

	tabs.Each(func(i int, tab *goquery.Selection) {
		tabID, _ := tab.Attr("data-tab-id")

		theme := strings.TrimSpace(tab.Find("h1,h2,h3,h4,h5,h6").First().Text())
		if theme == "" {
			return
		}

		day := DayFromText(theme)
		if day == "" && tabID != "" {
			// The theme heading names no day; fall back to the tab
			// navigation label, which is in Romanian.
			nav := doc.Find(fmt.Sprintf(`a[data-tab-id=%q]`, tabID)).First()
			day = EnglishDay(nav.Text())
		}
		if day == "" {
			return
		}

		week[day].Theme = theme
		fmt.Printf("Found: %s (%s)\n", theme, day)

		tab.Find("div[style]").Each(func(j int, s *goquery.Selection) {
			style, _ := s.Attr("style")
			if !borderLeftStyle.MatchString(style) {
				return
			}

			tier := ""
			if m := borderLeftColor.FindStringSubmatch(style); m != nil {
				tier = TierForColor(m[1])
			}

			entry, ok := splitScheduleText(strings.TrimSpace(s.Text()))
			if !ok {
				return
			}
			entry.Tier = tier
			week[day].Activities = append(week[day].Activities, entry)
		})
	})

	if countEntries(week) < 10 {
		fmt.Println("Trying alternative parsing method...")
		parseScheduleText(doc.Text(), week)
	}

	return week
}

// splitScheduleText splits "Name (Location) 18:00 - 19:00" into its parts.
// The time, when present, follows the closing parenthesis.
func splitScheduleText(text string) (ScheduleEntry, bool) {
	activityPart, timePart := text, ""
	if i := strings.LastIndex(text, ")"); i >= 0 {
		activityPart = text[:i+1]
		timePart = strings.TrimSpace(text[i+1:])
	}

	m := nameLocationLine.FindStringSubmatch(activityPart)
	if m == nil {
		return ScheduleEntry{}, false
	}
	return ScheduleEntry{
		Name:     strings.TrimSpace(m[1]),
		Location: strings.TrimSpace(m[2]),
		Time:     timePart,
	}, true
}

// parseScheduleText scans the page's plain text for day sections and
// "Name (Location)" lines with a following time line. Only fills in what
// the tab walk missed.
func parseScheduleText(text string, week WeekSchedule) {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}

	// First pass: where each day's section starts. Day headings are short
	// lines naming the English day.
	sectionStart := map[string]int{}
	for idx, line := range lines {
		for _, day := range Days {
			if _, seen := sectionStart[day]; seen {
				continue
			}
			if len(line) < 50 && strings.Contains(line, day) {
				sectionStart[day] = idx
				if week[day].Theme == "" {
					week[day].Theme = line
					fmt.Printf("Found: %s\n", line)
				}
			}
		}
	}

	// Second pass: activities between one day heading and the next.
	for _, day := range Days {
		start, ok := sectionStart[day]
		if !ok {
			continue
		}
		end := len(lines)
		for _, other := range Days {
			if idx, ok := sectionStart[other]; ok && idx > start && idx < end {
				end = idx
			}
		}

		for i := start + 1; i < end; i++ {
			m := nameLocationLine.FindStringSubmatch(lines[i])
			if m == nil {
				continue
			}
			entry := ScheduleEntry{
				Name:     strings.TrimSpace(m[1]),
				Location: strings.TrimSpace(m[2]),
			}
			if i+1 < len(lines) && leadingTime.MatchString(lines[i+1]) {
				entry.Time = lines[i+1]
				i++
			}
			if !containsEntry(week[day].Activities, entry) {
				week[day].Activities = append(week[day].Activities, entry)
			}
		}
	}
}

func containsEntry(entries []ScheduleEntry, entry ScheduleEntry) bool {
	for _, e := range entries {
		if e == entry {
			return true
		}
	}
	return false
}

func countEntries(week WeekSchedule) int {
	total := 0
	for _, day := range week {
		total += len(day.Activities)
	}
	return total
}
