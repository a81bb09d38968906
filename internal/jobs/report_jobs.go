package jobs

import (
	"context"
	"time"

	"mietpark-backend/internal/logger"
	"mietpark-backend/internal/utils"
)

// LogFleetUtilization computes the trailing-30-day utilization report and
// logs the fleet percentage, giving operators a daily trend line without a
// dashboard query.
func (jr *JobRunner) LogFleetUtilization() {
	jr.runWithRecovery("log_fleet_utilization", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		to := utils.Today()
		from := to.AddDate(0, 0, -29)

		report, err := jr.services.Reports.Utilization(ctx, utils.FormatDate(from), utils.FormatDate(to), nil)
		if err != nil {
			return err
		}

		logger.WithJob("log_fleet_utilization").Info("fleet utilization",
			"von", utils.FormatDate(from),
			"bis", utils.FormatDate(to),
			"devices", len(report.Items),
			"flotte_auslastung_prozent", report.FleetUtilizationPercent,
		)
		return nil
	})
}
