package main

import (
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

type Config struct {
	SlackBotToken string `yaml:"slack_bot_token"`

	DBPath          string `yaml:"db_path"`
	ReportChannelID string `yaml:"report_channel_id"`
	Timezone        string `yaml:"timezone"`

	PassSchedule   string `yaml:"pass_schedule"`
	ReportSchedule string `yaml:"report_schedule"`

	FailureMarker string `yaml:"failure_marker"`
	LinkLabel     string `yaml:"link_label"`

	Locations      map[string]string `yaml:"locations"`       // channel ID -> location name
	LocationColors map[string]string `yaml:"location_colors"` // location name -> row hint
	Categories     []CategoryRule    `yaml:"categories"`

	Location *time.Location `yaml:"-"`
}

func LoadConfig(configPath string) Config {
	var cfg Config

	if configPath == "" {
		configPath = "config.yaml"
		if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
			configPath = envPath
		}
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values. The bot token is expected to arrive this
	// way in production; it is never logged.
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.ReportChannelID, "REPORT_CHANNEL_ID")
	envOverride(&cfg.Timezone, "TIMEZONE")
	envOverride(&cfg.PassSchedule, "PASS_SCHEDULE")
	envOverride(&cfg.ReportSchedule, "REPORT_SCHEDULE")

	// Defaults
	if cfg.DBPath == "" {
		cfg.DBPath = "./ticketbot.db"
	}
	if cfg.PassSchedule == "" {
		cfg.PassSchedule = "0 * * * *"
	}
	if cfg.ReportSchedule == "" {
		cfg.ReportSchedule = "0 9 * * *"
	}
	if cfg.FailureMarker == "" {
		cfg.FailureMarker = "[message unavailable]"
	}
	if cfg.LinkLabel == "" {
		cfg.LinkLabel = "Slack Thread"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategoryRules()
	}

	if cfg.SlackBotToken == "" {
		log.Fatalf("Required config 'slack_bot_token' is not set (via config.yaml or env var)")
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(cfg.PassSchedule); err != nil {
		log.Fatalf("invalid pass_schedule '%s': %v", cfg.PassSchedule, err)
	}
	if _, err := parser.Parse(cfg.ReportSchedule); err != nil {
		log.Fatalf("invalid report_schedule '%s': %v", cfg.ReportSchedule, err)
	}

	if cfg.Timezone == "Local" {
		cfg.Location = time.Local
	} else {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			log.Fatalf("invalid timezone '%s': %v", cfg.Timezone, err)
		}
		cfg.Location = loc
	}

	return cfg
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

// DefaultCategoryRules is the rule set used when the config file carries
// none. Sites with their own taxonomy override it wholesale.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{
			Name: "Hardware",
			Groups: []SearchGroup{
				{Mode: "or", Phrases: []string{"laptop", "monitor", "keyboard", "mouse", "docking station", "printer", "headset"}},
				{Mode: "exact", Phrases: []string{"RAM", "SSD"}},
			},
		},
		{
			Name: "Software",
			Groups: []SearchGroup{
				{Mode: "or", Phrases: []string{"software", "install", "outlook", "excel", "browser", "update"}},
			},
		},
		{
			Name: "Licensing",
			Groups: []SearchGroup{
				{Mode: "or", Phrases: []string{"license", "licence", "subscription", "activation key"}},
			},
		},
		{
			Name: "Access",
			Groups: []SearchGroup{
				{Mode: "or", Phrases: []string{"password", "vpn", "account locked", "permissions", "access"}},
			},
		},
	}
}
