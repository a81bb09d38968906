package service

import (
	"context"
	"fmt"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/repository"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	rentalRepo repository.RentalRepository
}

func NewDeviceService(deviceRepo repository.DeviceRepository, rentalRepo repository.RentalRepository) DeviceService {
	return &deviceService{deviceRepo: deviceRepo, rentalRepo: rentalRepo}
}

func (s *deviceService) CreateDevice(ctx context.Context, device *domain.Device) error {
	if err := requireName(device.Name); err != nil {
		return err
	}
	if device.Status == "" {
		device.Status = domain.DeviceStatusAvailable
	}
	if device.LocationKind == "" {
		device.LocationKind = domain.LocationYard
	}
	return mapDBError(s.deviceRepo.Create(ctx, device))
}

func (s *deviceService) GetDevice(ctx context.Context, id int32) (*domain.Device, error) {
	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return device, nil
}

func (s *deviceService) ListDevices(ctx context.Context, status *domain.DeviceStatus, location *domain.LocationKind, offset, limit int32) ([]domain.Device, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.deviceRepo.List(ctx, status, location, offset, limit)
}

func (s *deviceService) CountDevices(ctx context.Context, status *domain.DeviceStatus, location *domain.LocationKind) (int32, error) {
	return s.deviceRepo.Count(ctx, status, location)
}

func (s *deviceService) UpdateDevice(ctx context.Context, device *domain.Device) error {
	if err := requireName(device.Name); err != nil {
		return err
	}
	return mapDBError(s.deviceRepo.Update(ctx, device))
}

func (s *deviceService) DeleteDevice(ctx context.Context, id int32) error {
	return mapDBError(s.deviceRepo.Delete(ctx, id))
}

func (s *deviceService) ListDeviceRentals(ctx context.Context, deviceID int32) ([]domain.Rental, error) {
	if _, err := s.deviceRepo.GetByID(ctx, deviceID); err != nil {
		return nil, fmt.Errorf("device %d: %w", deviceID, mapDBError(err))
	}
	return s.rentalRepo.ListByDevice(ctx, deviceID)
}
