// Package jobs provides scheduled background tasks for the order tracker.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds enabled).
//
// # Available Jobs
//
// AutosaveJob writes the order log on a schedule so that an interactive
// session or a long-running server keeps an up-to-date dump without an
// explicit save.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(saveOrderLogHandler, "*/30 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed save is logged and retried on the next tick. An invalid schedule
// is reported by StartAll.
package jobs
