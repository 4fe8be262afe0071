// Package jobs holds the scheduled background work of the process. The core
// itself is strictly synchronous request/response; jobs are operational
// extras layered on top of the read side.
package jobs

import (
	"fmt"
	"log/slog"

	"coffeequeue/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop them together.
type JobManager struct {
	queueMonitorJob *QueueMonitorJob
}

// NewJobManager creates a job manager with all required jobs wired to their
// query handlers.
func NewJobManager(queueHandler queries.GetQueueQueryHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		queueMonitorJob: NewQueueMonitorJob(queueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.queueMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start queue monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.queueMonitorJob.Stop()
}
