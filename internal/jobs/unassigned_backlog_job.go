package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// UnassignedBacklogJob periodically reports how many packages still
// have no courier. The count feeds operational dashboards; errors are
// logged and never stop the schedule.
type UnassignedBacklogJob struct {
	handler queries.CountUnassignedPackagesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewUnassignedBacklogJob creates a job that counts the unassigned
// backlog every minute.
func NewUnassignedBacklogJob(handler queries.CountUnassignedPackagesQueryHandler, logger *slog.Logger) *UnassignedBacklogJob {
	return &UnassignedBacklogJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "unassigned_backlog_job"),
	}
}

// Start begins the backlog job on a once-a-minute schedule.
func (j *UnassignedBacklogJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewCountUnassignedPackagesQuery()

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Unassigned backlog job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Unassigned package backlog", "count", count)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unassigned backlog job started (running every minute)")
	return nil
}

// Stop stops the backlog job.
func (j *UnassignedBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Unassigned backlog job stopped")
}
