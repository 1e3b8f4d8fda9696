package main

import (
	"log"

	"github.com/slack-go/slack"
	"github.com/spf13/pflag"
)

func main() {
	var configPath string
	var once bool
	pflag.StringVar(&configPath, "config", "", "path to config file (default config.yaml, or CONFIG_PATH)")
	pflag.BoolVar(&once, "once", false, "run one dedup+reconcile pass plus the status report, then exit")
	pflag.Parse()

	cfg := LoadConfig(configPath)

	store, err := OpenStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open ticket store: %v", err)
	}
	defer store.Close()

	api := slack.New(
		cfg.SlackBotToken,
		slack.OptionHTTPClient(externalHTTPClient),
	)
	fetcher := NewSlackFetcher(api)
	notifier := NewSlackNotifier(api)
	engine := NewEngine(cfg, store, fetcher)

	if once {
		RunPass(store, engine)
		SendStatusReport(store, notifier, cfg.ReportChannelID)
		return
	}

	StartPassScheduler(cfg, store, engine)
	StartReportScheduler(cfg, store, notifier)

	log.Println("Starting Ticket Bot...")
	select {}
}
