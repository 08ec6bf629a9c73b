package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleet/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// maintenanceDueSchedule fires once a day at 06:00 so the report lands before
// the workday starts.
const maintenanceDueSchedule = "0 0 6 * * *"

// MaintenanceDueJob reports vehicles whose scheduled maintenance date has
// passed. It only reads and logs; sending a vehicle to maintenance remains an
// operator decision.
type MaintenanceDueJob struct {
	handler queries.ListMaintenanceDueQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMaintenanceDueJob creates the daily maintenance-due report job.
func NewMaintenanceDueJob(handler queries.ListMaintenanceDueQueryHandler, logger *slog.Logger) *MaintenanceDueJob {
	return &MaintenanceDueJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "maintenance_due_job"),
	}
}

// Start schedules the daily report.
func (j *MaintenanceDueJob) Start() error {
	_, err := j.cron.AddFunc(maintenanceDueSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Maintenance due job started (running daily)")
	return nil
}

// Stop stops the maintenance due job.
func (j *MaintenanceDueJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Maintenance due job stopped")
}

func (j *MaintenanceDueJob) run() {
	ctx := context.Background()
	query := queries.NewListMaintenanceDueQuery(time.Now().UTC())

	due, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Maintenance due job failed", "error", err)
		return
	}

	if len(due) == 0 {
		j.logger.InfoContext(ctx, "No vehicles due for maintenance")
		return
	}

	for _, v := range due {
		j.logger.WarnContext(ctx, "Vehicle due for maintenance",
			"vehicle_id", v.ID,
			"code", v.Code,
			"plate", v.Plate,
			"state", v.State,
			"next_maintenance", v.NextMaintenance,
			"overdue_days", v.OverdueDays,
		)
	}
}
