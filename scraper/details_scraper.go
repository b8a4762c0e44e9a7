package scraper

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// excludedImage is a shared background that appears on every activity page.
const excludedImage = "https://cdn.mytherme.app/serve/6c654bc1-d1f0-49d3-80b0-4b8680b072ff"

var bgImageURL = regexp.MustCompile(`url\('([^']+)'\)`)

// sectionClasses mark the content blocks worth keeping. htmlcontent is
// excluded here because it carries the program text, captured separately.
var sectionClasses = []string{"media23-latcontent", "media23-carousel", "combo-largesmall-content"}

// FetchActivityDetails downloads one activity page and extracts its detail
// record. name is the listing name, used when the page has no hero title.
func FetchActivityDetails(session *http.Client, pageURL, name string) (*ActivityDetail, error) {
	doc, err := FetchDocument(session, pageURL)
	if err != nil {
		return nil, err
	}
	detail := ParseActivityDetails(doc, pageURL, name)
	return detail, nil
}

// ParseActivityDetails extracts the detail record from an activity page.
func ParseActivityDetails(doc *goquery.Document, pageURL, name string) *ActivityDetail {
	detail := &ActivityDetail{
		Title:  name,
		URL:    pageURL,
		Images: []string{},
	}

	hero := doc.Find("div.pagecover").First()
	if h1 := strings.TrimSpace(hero.Find("h1").First().Text()); h1 != "" {
		detail.Title = h1
	}
	detail.Description = strings.TrimSpace(hero.Find("div.element-content p").First().Text())

	// Hero and gallery images live in bg-image divs with CDN URLs in
	// their inline style.
	doc.Find("div.bg-image").Each(func(i int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		if imgURL, ok := cdnImageURL(style); ok && imgURL != excludedImage {
			detail.Images = append(detail.Images, imgURL)
		}
	})

	doc.Find("div").Each(func(i int, div *goquery.Selection) {
		class, _ := div.Attr("class")
		if !hasSectionClass(class) {
			return
		}
		if section, ok := parseSection(div); ok {
			detail.Sections = append(detail.Sections, section)
		}
	})

	if htmlcontent := doc.Find("div.htmlcontent").First(); htmlcontent.Length() > 0 {
		detail.Program = strings.Join(textLines(htmlcontent), "\n")
	}

	detail.Tier = detailTier(doc)
	return detail
}

func hasSectionClass(class string) bool {
	for _, want := range sectionClasses {
		if strings.Contains(class, want) {
			return true
		}
	}
	return false
}

func parseSection(div *goquery.Selection) (Section, bool) {
	section := Section{
		Heading: strings.TrimSpace(div.Find("h2").First().Text()),
	}

	div.Find("p").Each(func(i int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if len(text) > 10 {
			section.Content = append(section.Content, text)
		}
	})

	div.Find("img[src]").Each(func(i int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		if strings.Contains(src, "mytherme.app") || strings.Contains(src, "/serve/") {
			section.Images = append(section.Images, src)
		}
	})
	div.Find("div.bg-image").Each(func(i int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		if imgURL, ok := cdnImageURL(style); ok {
			section.Images = append(section.Images, imgURL)
		}
	})

	if section.Heading == "" && len(section.Content) == 0 && len(section.Images) == 0 {
		return Section{}, false
	}
	return section, true
}

// cdnImageURL pulls a CDN image URL out of an inline background style.
func cdnImageURL(style string) (string, bool) {
	m := bgImageURL.FindStringSubmatch(style)
	if m == nil {
		return "", false
	}
	imgURL := m[1]
	if !strings.Contains(imgURL, "mytherme.app") && !strings.Contains(imgURL, "/serve/") {
		return "", false
	}
	return imgURL, true
}

// detailTier reads the tier from the colored border-left styling on the
// detail page. The detail pages use a different palette than the schedule
// page for THE PALM.
func detailTier(doc *goquery.Document) string {
	tier := ""
	doc.Find("div[style]").EachWithBreak(func(i int, s *goquery.Selection) bool {
		style, _ := s.Attr("style")
		if !strings.Contains(style, "border-left") {
			return true
		}
		lower := strings.ToLower(style)
		switch {
		case strings.Contains(lower, "#6141f3") || strings.Contains(style, "rgb(97, 65, 243)"):
			tier = TierPalm
		case strings.Contains(lower, "#fe216e") || strings.Contains(style, "rgb(254, 33, 110)"):
			tier = TierGalaxy
		case strings.Contains(lower, "#00c754") || strings.Contains(style, "rgb(0, 199, 84)"):
			tier = TierElysium
		default:
			return true
		}
		return false
	})
	return tier
}

// textLines walks the selection's nodes and returns each text node's
// trimmed content, in document order.
func textLines(sel *goquery.Selection) []string {
	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				lines = append(lines, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return lines
}

// ScrapeDetails fetches the detail page for each activity in the given
// range (1-based, inclusive; zero values mean the whole list). Requests
// are paced by delay. A close on stop ends the run early and marks the
// catalog as interrupted.
func ScrapeDetails(session *http.Client, activities []Activity, start, end int, delay time.Duration, stop <-chan struct{}) *Catalog {
	if start > 0 && end >= start {
		fmt.Printf("Processing activities %d to %d\n", start, end)
		if end > len(activities) {
			end = len(activities)
		}
		if start > end {
			start = end + 1
		}
		activities = activities[start-1 : end]
	}

	catalog := &Catalog{Activities: []ActivityDetail{}}
	totalSections, totalImages := 0, 0

	fmt.Printf("\nFetching details for %d activities...\n", len(activities))

	for idx, activity := range activities {
		select {
		case <-stop:
			fmt.Printf("\nInterrupted; saving progress: %d activities processed\n", len(catalog.Activities))
			catalog.Interrupted = true
			catalog.Total = len(catalog.Activities)
			return catalog
		default:
		}

		fmt.Printf("\n[%d/%d] %s\n", idx+1, len(activities), activity.Name)
		fmt.Printf("  URL: %s\n", activity.Link)

		detail, err := FetchActivityDetails(session, activity.Link, activity.Name)
		if err != nil {
			fmt.Printf("  Error fetching %s: %v\n", activity.Name, err)
			continue
		}

		catalog.Activities = append(catalog.Activities, *detail)

		numImages := 0
		for _, section := range detail.Sections {
			numImages += len(section.Images)
		}
		totalSections += len(detail.Sections)
		totalImages += numImages
		fmt.Printf("  Fetched: %d sections, %d images\n", len(detail.Sections), numImages)
		if detail.Tier != "" {
			fmt.Printf("  Tier: %s\n", detail.Tier)
		}

		// Be polite to the site between requests.
		time.Sleep(delay)
	}

	catalog.Total = len(catalog.Activities)
	fmt.Printf("\nSuccessfully fetched %d activities (%d sections, %d images)\n",
		catalog.Total, totalSections, totalImages)
	return catalog
}
