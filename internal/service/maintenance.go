package service

import (
	"context"
	"fmt"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/repository"
	"mietpark-backend/internal/utils"
)

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	meterRepo       repository.MeterReadingRepository
	deviceRepo      repository.DeviceRepository
}

func NewMaintenanceService(
	maintenanceRepo repository.MaintenanceRepository,
	meterRepo repository.MeterReadingRepository,
	deviceRepo repository.DeviceRepository,
) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		meterRepo:       meterRepo,
		deviceRepo:      deviceRepo,
	}
}

func (s *maintenanceService) CreateMaintenance(ctx context.Context, m *domain.Maintenance) error {
	if m.Date == "" {
		m.Date = utils.FormatDate(utils.Today())
	} else if _, err := utils.ParseDate(m.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := s.deviceRepo.GetByID(ctx, m.DeviceID); err != nil {
		return fmt.Errorf("device %d: %w", m.DeviceID, mapDBError(err))
	}
	return mapDBError(s.maintenanceRepo.Create(ctx, m))
}

func (s *maintenanceService) ListMaintenance(ctx context.Context) ([]domain.Maintenance, error) {
	return s.maintenanceRepo.List(ctx)
}

// CreateMeterReading records an hour-meter snapshot and rolls the device's
// stundenzaehler forward when the reading is higher.
func (s *maintenanceService) CreateMeterReading(ctx context.Context, m *domain.MeterReading) error {
	if m.Hours < 0 {
		return fmt.Errorf("%w: stunden must not be negative", ErrValidation)
	}
	device, err := s.deviceRepo.GetByID(ctx, m.DeviceID)
	if err != nil {
		return fmt.Errorf("device %d: %w", m.DeviceID, mapDBError(err))
	}
	if err := s.meterRepo.Create(ctx, m); err != nil {
		return mapDBError(err)
	}
	if m.Hours > device.HourMeter {
		device.HourMeter = m.Hours
		if err := s.deviceRepo.Update(ctx, device); err != nil {
			return mapDBError(err)
		}
	}
	return nil
}
