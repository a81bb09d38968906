package jobs

import (
	"context"
	"time"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/logger"
	"mietpark-backend/internal/utils"
)

// MarkOverdueRentals surfaces open rentals whose agreed end date has passed.
// It only logs; closing a rental stays an explicit API action.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("mark_overdue_rentals", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		rentals, err := jr.store.RentalRepository.ListByStatuses(ctx, []domain.RentalStatus{domain.RentalStatusOpen}, nil)
		if err != nil {
			return err
		}

		today := utils.Today()
		overdue := 0
		log := logger.WithJob("mark_overdue_rentals")
		for i := range rentals {
			r := &rentals[i]
			if r.End == nil {
				continue
			}
			end, err := utils.ParseDate(*r.End)
			if err != nil {
				log.Warn("rental has unparseable end date", "rental_id", r.ID, "bis", *r.End)
				continue
			}
			if end.Before(today) {
				overdue++
				log.Warn("rental overdue",
					"rental_id", r.ID,
					"geraet_id", r.DeviceID,
					"bis", *r.End,
					"days_over", utils.DaysInclusive(end, today)-1,
				)
			}
		}
		log.Info("overdue scan finished", "open_rentals", len(rentals), "overdue", overdue)
		return nil
	})
}
