package scraper

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ScrapeActivities fetches the all-activities listing page and returns the
// catalog entry list.
func ScrapeActivities(session *http.Client, pageURL string) ([]Activity, error) {
	fmt.Println("Fetching activities page...")
	doc, err := FetchDocument(session, pageURL)
	if err != nil {
		return nil, err
	}
	return ParseActivities(doc, pageURL), nil
}

// ParseActivities extracts the activity list from the listing page. Each
// container holds an h3 with the name; the rest of its text is the tier
// label followed by the location.
func ParseActivities(doc *goquery.Document, pageURL string) []Activity {
	fmt.Println("Parsing activities data...")

	base, _ := url.Parse(pageURL)
	var activities []Activity

	containers := doc.Find("div.attactev-body")
	fmt.Printf("Found %d activity containers\n", containers.Length())

	containers.Each(func(i int, container *goquery.Selection) {
		name := strings.TrimSpace(container.Find("h3").First().Text())
		if name == "" {
			return
		}

		remaining := strings.Replace(container.Text(), name, "", 1)
		remaining = strings.Join(strings.Fields(remaining), " ")

		activity := Activity{Name: name}
		for _, tier := range []string{TierPalm, TierGalaxy, TierElysium} {
			if strings.Contains(remaining, tier) {
				activity.Tier = tier
				remaining = strings.TrimSpace(strings.Replace(remaining, tier, "", 1))
				break
			}
		}
		activity.Location = remaining

		if href, ok := container.Find("a[href]").First().Attr("href"); ok {
			activity.Link = resolveLink(base, href)
		} else if href, ok := container.Closest("a[href]").Attr("href"); ok {
			activity.Link = resolveLink(base, href)
		}

		activities = append(activities, activity)
	})

	return activities
}

func resolveLink(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
