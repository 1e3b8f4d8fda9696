package main

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Passes only make sense while the helpdesk is staffed; weekend firings are
// skipped, not rescheduled.
func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// RunPass executes one full dedup + reconcile pass. Safe to invoke
// redundantly: the engine only fills blank fields.
func RunPass(store TicketStore, engine *Engine) (int, PassSummary) {
	removed, err := Deduplicate(store)
	if err != nil {
		log.Printf("dedup error: %v", err)
	}
	if removed > 0 {
		log.Printf("dedup removed %d duplicate row(s)", removed)
	}
	return removed, engine.Run()
}

// StartPassScheduler runs the dedup+reconcile pass on a standard 5-field
// cron expression (minute hour day-of-month month day-of-week).
// An empty schedule disables it.
func StartPassScheduler(cfg Config, store TicketStore, engine *Engine) {
	startCronLoop("pass", cfg.PassSchedule, cfg.Location, func() {
		RunPass(store, engine)
	})
}

// StartReportScheduler posts the open-ticket summary on its own schedule.
func StartReportScheduler(cfg Config, store TicketStore, notifier Notifier) {
	startCronLoop("status report", cfg.ReportSchedule, cfg.Location, func() {
		SendStatusReport(store, notifier, cfg.ReportChannelID)
	})
}

func startCronLoop(name, schedule string, loc *time.Location, run func()) {
	if schedule == "" {
		log.Printf("%s scheduler disabled (no schedule configured)", name)
		return
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		log.Printf("Invalid %s schedule '%s': %v, scheduler disabled", name, schedule, err)
		return
	}
	log.Printf("%s scheduled (cron: %s)", name, schedule)

	go func() {
		for {
			now := time.Now().In(loc)
			next := sched.Next(now)
			wait := next.Sub(now)
			log.Printf("Next %s at %s (in %s)", name, next.Format("Mon Jan 2 15:04"), wait.Round(time.Minute))

			time.Sleep(wait)

			if isWeekend(time.Now().In(loc)) {
				log.Printf("%s skipped (weekend)", name)
				continue
			}
			run()
		}
	}()
}
