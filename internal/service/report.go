package service

import (
	"context"
	"fmt"
	"time"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/repository"
	"mietpark-backend/internal/utils"
)

type reportService struct {
	rentalRepo   repository.RentalRepository
	deviceRepo   repository.DeviceRepository
	positionRepo repository.PositionRepository

	billable []domain.RentalStatus
	now      func() time.Time
}

// ReportOption adjusts report policy. The defaults are the canonical
// deployment: permissive billing and the real clock.
type ReportOption func(*reportService)

// WithBillableStatuses narrows the statuses the billing report accepts.
func WithBillableStatuses(statuses []domain.RentalStatus) ReportOption {
	return func(s *reportService) { s.billable = statuses }
}

// WithClock overrides the "today" used for open-ended rentals.
func WithClock(now func() time.Time) ReportOption {
	return func(s *reportService) { s.now = now }
}

func NewReportService(
	rentalRepo repository.RentalRepository,
	deviceRepo repository.DeviceRepository,
	positionRepo repository.PositionRepository,
	opts ...ReportOption,
) ReportService {
	s := &reportService{
		rentalRepo:   rentalRepo,
		deviceRepo:   deviceRepo,
		positionRepo: positionRepo,
		billable:     domain.BillableStatuses,
		now:          utils.Today,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// rentalEnd resolves a rental's end date. Open-ended rentals run through
// today.
func (s *reportService) rentalEnd(r *domain.Rental) (time.Time, error) {
	if r.End == nil {
		return utils.Midnight(s.now()), nil
	}
	return utils.ParseDate(*r.End)
}

func (s *reportService) Utilization(ctx context.Context, from, to string, deviceID *int32) (*domain.UtilizationReport, error) {
	windowStart, err := utils.ParseDate(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	windowEnd, err := utils.ParseDate(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if windowEnd.Before(windowStart) {
		return nil, ErrInvalidRange
	}
	totalDays := utils.DaysInclusive(windowStart, windowEnd)

	rentals, err := s.rentalRepo.ListByStatuses(ctx, domain.UtilizationStatuses, deviceID)
	if err != nil {
		return nil, err
	}

	rentedByDevice := map[int32]int{}
	for i := range rentals {
		r := &rentals[i]
		start, err := utils.ParseDate(r.Start)
		if err != nil {
			return nil, err
		}
		end, err := s.rentalEnd(r)
		if err != nil {
			return nil, err
		}
		overlap := utils.OverlapDays(start, end, windowStart, windowEnd)
		if overlap <= 0 {
			continue
		}
		rentedByDevice[r.DeviceID] += overlap
	}

	// The device universe comes from the device table, not from the rentals,
	// so devices with zero rentals in the window still get an item.
	deviceIDs, err := s.deviceRepo.ListIDs(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.UtilizationItem, 0, len(deviceIDs))
	sumRented := 0
	for _, id := range deviceIDs {
		rented := rentedByDevice[id]
		sumRented += rented
		percent := 0.0
		if totalDays > 0 {
			percent = utils.Round2(float64(rented) / float64(totalDays) * 100.0)
		}
		items = append(items, domain.UtilizationItem{
			DeviceID:           id,
			TotalDays:          totalDays,
			RentedDays:         rented,
			UtilizationPercent: percent,
		})
	}

	fleet := 0.0
	if len(deviceIDs) > 0 && totalDays > 0 {
		fleet = utils.Round2(float64(sumRented) / float64(len(deviceIDs)*totalDays) * 100.0)
	}

	return &domain.UtilizationReport{Items: items, FleetUtilizationPercent: fleet}, nil
}

func (s *reportService) Billing(ctx context.Context, rentalID int32) (*domain.BillingReport, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, mapDBError(err)
	}
	if !s.isBillable(rental.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, rental.Status)
	}

	start, err := utils.ParseDate(rental.Start)
	if err != nil {
		return nil, err
	}
	end, err := s.rentalEnd(rental)
	if err != nil {
		return nil, err
	}
	days := utils.DaysInclusive(start, end)
	rent := utils.RentForPeriod(rental.RateValue, rental.RateUnit, days)

	positions, err := s.positionRepo.ListByRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	positionsTotal := 0.0
	costTotal := 0.0
	for _, p := range positions {
		positionsTotal += p.Quantity * p.UnitPrice
		costTotal += p.InternalCost
	}

	revenue := rent + positionsTotal
	return &domain.BillingReport{
		RentalID:       rental.ID,
		RentalDays:     days,
		RentTotal:      utils.Round2(rent),
		PositionsTotal: utils.Round2(positionsTotal),
		Revenue:        utils.Round2(revenue),
		CostTotal:      utils.Round2(costTotal),
		Margin:         utils.Round2(revenue - costTotal),
	}, nil
}

func (s *reportService) DeviceFinance(ctx context.Context, deviceID int32, from, to *string) (*domain.DeviceFinanceReport, error) {
	if _, err := s.deviceRepo.GetByID(ctx, deviceID); err != nil {
		return nil, mapDBError(err)
	}

	var windowStart, windowEnd time.Time
	windowed := from != nil && to != nil
	if windowed {
		var err error
		if windowStart, err = utils.ParseDate(*from); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if windowEnd, err = utils.ParseDate(*to); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if windowEnd.Before(windowStart) {
			return nil, ErrInvalidRange
		}
	}

	rentals, err := s.rentalRepo.ListByDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	revenue := 0.0
	cost := 0.0
	rentedDays := 0
	rentalCount := 0
	for i := range rentals {
		r := &rentals[i]
		start, err := utils.ParseDate(r.Start)
		if err != nil {
			return nil, err
		}
		end, err := s.rentalEnd(r)
		if err != nil {
			return nil, err
		}

		// The window filter only applies when both bounds are given. An
		// open end is unbounded for the match: the rental overlaps every
		// window it has started before. The today-fallback end only feeds
		// the rented-day computation below.
		if windowed && (start.After(windowEnd) || (r.End != nil && end.Before(windowStart))) {
			continue
		}
		rentalCount++

		overlapStart, overlapEnd := start, end
		if windowed {
			overlapStart, overlapEnd = windowStart, windowEnd
		}
		overlap := utils.OverlapDays(start, end, overlapStart, overlapEnd)
		rentedDays += overlap

		revenue += utils.RentForPeriod(r.RateValue, r.RateUnit, overlap)

		// Positions are counted in full even when the rental only partially
		// overlaps the window. Rent is the only prorated component.
		positions, err := s.positionRepo.ListByRental(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		for _, p := range positions {
			revenue += p.Quantity * p.UnitPrice
			cost += p.InternalCost
		}
	}

	totalDays := rentedDays
	if windowed {
		totalDays = utils.DaysInclusive(windowStart, windowEnd)
	} else if totalDays < 1 {
		totalDays = 1
	}
	utilization := 0.0
	if totalDays > 0 {
		utilization = utils.Round2(float64(rentedDays) / float64(totalDays) * 100.0)
	}

	return &domain.DeviceFinanceReport{
		DeviceID:           deviceID,
		RentalCount:        rentalCount,
		Revenue:            utils.Round2(revenue),
		Cost:               utils.Round2(cost),
		Margin:             utils.Round2(revenue - cost),
		TotalDays:          totalDays,
		RentedDays:         rentedDays,
		UtilizationPercent: utilization,
	}, nil
}

func (s *reportService) isBillable(status domain.RentalStatus) bool {
	for _, b := range s.billable {
		if b == status {
			return true
		}
	}
	return false
}
