package config

import (
	"encoding/json"
	"os"
)

type Config struct {
	ScheduleURL    string `json:"schedule_url"`
	ActivitiesURL  string `json:"activities_url"`
	ScheduleFile   string `json:"schedule_file"`
	ActivitiesFile string `json:"activities_file"`
	CatalogFile    string `json:"catalog_file"`
	OutputFile     string `json:"output_file"`
	CalendarFile   string `json:"calendar_file"`
	FetchDelayMS   int    `json:"fetch_delay_ms"`
	MatchThreshold int    `json:"match_threshold"`
	HTTPPort       string `json:"http_port"`
	DaemonMinutes  int    `json:"daemon_minutes"`
}

// LoadConfig reads the JSON config file and fills in defaults for any
// missing fields. A missing file is not an error; defaults are returned.
func LoadConfig(filename string) (*Config, error) {
	cfg := &Config{}

	file, err := os.Open(filename)
	if err == nil {
		defer file.Close()
		decoder := json.NewDecoder(file)
		if err := decoder.Decode(cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.ScheduleURL == "" {
		cfg.ScheduleURL = "https://therme.ro/activities-schedule"
	}
	if cfg.ActivitiesURL == "" {
		cfg.ActivitiesURL = "https://therme.ro/activities"
	}
	if cfg.ScheduleFile == "" {
		cfg.ScheduleFile = "therme_schedule.json"
	}
	if cfg.ActivitiesFile == "" {
		cfg.ActivitiesFile = "therme_activities.json"
	}
	if cfg.CatalogFile == "" {
		cfg.CatalogFile = "therme_activities_detailed.json"
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = "index.html"
	}
	if cfg.CalendarFile == "" {
		cfg.CalendarFile = "therme_schedule.ics"
	}
	if cfg.FetchDelayMS == 0 {
		cfg.FetchDelayMS = 500
	}
	if cfg.MatchThreshold == 0 {
		cfg.MatchThreshold = 60
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8100"
	}
	if cfg.DaemonMinutes == 0 {
		cfg.DaemonMinutes = 360
	}
}
