package jobs

import (
	"fmt"
	"log/slog"

	"ordertracker/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autosaveJob *AutosaveJob
}

// NewJobManager creates a job manager. An empty autosaveSchedule leaves
// autosave disabled and StartAll becomes a no-op.
func NewJobManager(
	saveOrderLogHandler commands.SaveOrderLogCommandHandler,
	autosaveSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if autosaveSchedule != "" {
		jm.autosaveJob = NewAutosaveJob(saveOrderLogHandler, autosaveSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.autosaveJob == nil {
		return nil
	}
	if err := jm.autosaveJob.Start(); err != nil {
		return fmt.Errorf("failed to start autosave job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.autosaveJob != nil {
		jm.autosaveJob.Stop()
	}
}
