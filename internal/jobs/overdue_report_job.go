package jobs

import (
	"context"
	"log/slog"
	"time"

	"smartlogi/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueReportJob periodically reports parcels stuck in transit.
// Runs every minute and logs a warning whenever overdue parcels exist.
type OverdueReportJob struct {
	handler queries.OverdueParcelsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueReportJob creates a job that surfaces overdue parcels in the logs.
func NewOverdueReportJob(handler queries.OverdueParcelsQueryHandler, logger *slog.Logger) *OverdueReportJob {
	return &OverdueReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_report_job"),
	}
}

// Start begins the overdue report job, firing at the top of every minute.
func (j *OverdueReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewOverdueParcelsQuery(time.Now().UTC())

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue report job failed", "error", err)
			return
		}
		if len(overdue) == 0 {
			return
		}

		ids := make([]string, len(overdue))
		for i, summary := range overdue {
			ids[i] = summary.ID.String()
		}
		j.logger.WarnContext(ctx, "Overdue parcels detected", "count", len(overdue), "parcelIds", ids)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue report job started (running every minute)")
	return nil
}

// Stop stops the overdue report job.
func (j *OverdueReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue report job stopped")
}
