package site

import (
	"fmt"
	"log"
	"net/http"
)

// StartServer serves the generated page and calendar feed for preview.
// Blocks until the server fails.
func StartServer(port, outputFile, calendarFile string) {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, outputFile)
	})
	http.HandleFunc("/schedule.ics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		http.ServeFile(w, r, calendarFile)
	})

	log.Printf("Starting HTTP server on http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", port), nil))
}
