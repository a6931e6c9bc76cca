package jobs

import (
	"context"
	"log/slog"

	"ordertracker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultAutosaveSchedule writes the order log once a minute.
const DefaultAutosaveSchedule = "0 * * * * *"

// AutosaveJob periodically writes the order log to every configured destination.
type AutosaveJob struct {
	handler  commands.SaveOrderLogCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAutosaveJob creates a job running handler on schedule, a cron expression
// with a leading seconds field. An empty schedule selects DefaultAutosaveSchedule.
func NewAutosaveJob(handler commands.SaveOrderLogCommandHandler, schedule string, logger *slog.Logger) *AutosaveJob {
	if schedule == "" {
		schedule = DefaultAutosaveSchedule
	}
	return &AutosaveJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "autosave_job"),
	}
}

// Start registers the save on the schedule and starts the scheduler.
func (j *AutosaveJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Autosave job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running save to finish.
func (j *AutosaveJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Autosave job stopped")
}

func (j *AutosaveJob) run() {
	ctx := context.Background()
	if err := j.handler.Handle(ctx, commands.NewSaveOrderLogCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Autosave job failed", "error", err)
	}
}
