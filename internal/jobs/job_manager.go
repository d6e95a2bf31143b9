package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	unassignedBacklogJob *UnassignedBacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	countUnassignedHandler queries.CountUnassignedPackagesQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		unassignedBacklogJob: NewUnassignedBacklogJob(countUnassignedHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.unassignedBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start unassigned backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.unassignedBacklogJob.Stop()
}
