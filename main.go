package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"therme-scraper/calendar"
	"therme-scraper/config"
	"therme-scraper/scraper"
	"therme-scraper/site"
	"therme-scraper/storage"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	switch os.Args[1] {
	case "schedule":
		runSchedule(cfg)
	case "activities":
		runActivities(cfg)
	case "details":
		start, end := detailsRange(os.Args[2:])
		runDetails(cfg, start, end)
	case "generate":
		runGenerate(cfg)
	case "ical":
		runCalendar(cfg)
	case "all":
		runAll(cfg)
	case "daemon":
		runDaemon(cfg)
	case "serve":
		site.StartServer(cfg.HTTPPort, cfg.OutputFile, cfg.CalendarFile)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: therme-scraper <mode>")
	fmt.Println("Modes:")
	fmt.Println("  schedule             scrape the weekly schedule page")
	fmt.Println("  activities           scrape the all-activities listing")
	fmt.Println("  details [start end]  scrape activity detail pages (1-based range)")
	fmt.Println("  generate             render the schedule page from saved data")
	fmt.Println("  ical                 export the weekly schedule as an ICS feed")
	fmt.Println("  all                  run the full pipeline")
	fmt.Println("  daemon               rerun the full pipeline on an interval")
	fmt.Println("  serve                serve the generated page over HTTP")
}

func detailsRange(args []string) (int, int) {
	if len(args) < 2 {
		return 0, 0
	}
	start, err1 := strconv.Atoi(args[0])
	end, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return 0, 0
	}
	return start, end
}

func runSchedule(cfg *config.Config) {
	session := scraper.NewSession()
	week, err := scraper.ScrapeSchedule(session, cfg.ScheduleURL)
	if err != nil {
		log.Fatalf("Error scraping schedule: %v", err)
	}
	if err := storage.SaveSchedule(cfg.ScheduleFile, week); err != nil {
		log.Fatalf("Error saving schedule: %v", err)
	}
	fmt.Printf("Schedule saved to %s\n", cfg.ScheduleFile)
	printScheduleSummary(week)
}

func runActivities(cfg *config.Config) {
	session := scraper.NewSession()
	activities, err := scraper.ScrapeActivities(session, cfg.ActivitiesURL)
	if err != nil {
		log.Fatalf("Error scraping activities: %v", err)
	}
	if err := storage.SaveActivities(cfg.ActivitiesFile, activities); err != nil {
		log.Fatalf("Error saving activities: %v", err)
	}
	fmt.Printf("Activities saved to %s\n", cfg.ActivitiesFile)
	fmt.Printf("Total activities found: %d\n", len(activities))
}

func runDetails(cfg *config.Config, start, end int) {
	activities, err := storage.LoadActivities(cfg.ActivitiesFile)
	if err != nil {
		log.Fatalf("Error loading activities (run the activities mode first): %v", err)
	}

	// A Ctrl+C during the run still saves the progress made so far.
	stop := make(chan struct{})
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		close(stop)
	}()
	defer signal.Stop(interrupt)

	session := scraper.NewSession()
	delay := time.Duration(cfg.FetchDelayMS) * time.Millisecond
	catalog := scraper.ScrapeDetails(session, activities, start, end, delay, stop)

	if err := storage.SaveCatalog(cfg.CatalogFile, catalog); err != nil {
		log.Fatalf("Error saving catalog: %v", err)
	}
	fmt.Printf("Saved to %s\n", cfg.CatalogFile)
}

func runGenerate(cfg *config.Config) {
	week, err := storage.LoadSchedule(cfg.ScheduleFile)
	if err != nil {
		log.Fatalf("Error loading schedule: %v", err)
	}
	catalog, err := storage.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("Error loading catalog: %v", err)
	}

	summary, err := site.Generate(week, catalog, cfg.MatchThreshold, cfg.OutputFile)
	if err != nil {
		log.Fatalf("Error generating schedule page: %v", err)
	}

	fmt.Printf("Enhanced HTML page generated: %s\n", cfg.OutputFile)
	fmt.Printf("\n  Total schedule items: %d\n", summary.TotalEntries)
	fmt.Printf("  Matched with details: %d\n", summary.Matched)
	if summary.TotalEntries > 0 {
		rate := float64(summary.Matched) / float64(summary.TotalEntries) * 100
		fmt.Printf("  Match rate: %.1f%%\n", rate)
	} else {
		fmt.Println("  Match rate: N/A (no activities found)")
	}
	fmt.Printf("  Unscheduled activities: %d\n", len(summary.Unmatched))
}

func runCalendar(cfg *config.Config) {
	week, err := storage.LoadSchedule(cfg.ScheduleFile)
	if err != nil {
		log.Fatalf("Error loading schedule: %v", err)
	}
	if err := calendar.WriteCalendar(cfg.CalendarFile, week, time.Now()); err != nil {
		log.Fatalf("Error writing calendar: %v", err)
	}
	fmt.Printf("Calendar saved to %s\n", cfg.CalendarFile)
}

func runAll(cfg *config.Config) {
	runSchedule(cfg)
	runActivities(cfg)
	runDetails(cfg, 0, 0)
	runGenerate(cfg)
	runCalendar(cfg)
}

func runDaemon(cfg *config.Config) {
	interval := time.Duration(cfg.DaemonMinutes) * time.Minute
	for {
		runAll(cfg)
		fmt.Printf("Sleeping for %s...\n", interval)
		time.Sleep(interval)
	}
}

func printScheduleSummary(week scraper.WeekSchedule) {
	total := 0
	for _, day := range scraper.Days {
		daySchedule := week[day]
		if daySchedule == nil {
			continue
		}
		fmt.Printf("\n%s\n", day)
		if daySchedule.Theme != "" {
			fmt.Printf("  Theme: %s\n", daySchedule.Theme)
		}
		fmt.Printf("  Activities: %d\n", len(daySchedule.Activities))
		total += len(daySchedule.Activities)
	}
	fmt.Printf("\nTotal activities: %d\n", total)
}
