package http

import (
	"context"

	"mietpark-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Utilization(ctx context.Context, from, to string, deviceID *int32) (*domain.UtilizationReport, error) {
	args := m.Called(ctx, from, to, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UtilizationReport), args.Error(1)
}
func (m *MockReportService) Billing(ctx context.Context, rentalID int32) (*domain.BillingReport, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingReport), args.Error(1)
}
func (m *MockReportService) DeviceFinance(ctx context.Context, deviceID int32, from, to *string) (*domain.DeviceFinanceReport, error) {
	args := m.Called(ctx, deviceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeviceFinanceReport), args.Error(1)
}

// MockDeviceService
type MockDeviceService struct {
	mock.Mock
}

func (m *MockDeviceService) CreateDevice(ctx context.Context, device *domain.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}
func (m *MockDeviceService) GetDevice(ctx context.Context, id int32) (*domain.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}
func (m *MockDeviceService) ListDevices(ctx context.Context, status *domain.DeviceStatus, location *domain.LocationKind, offset, limit int32) ([]domain.Device, error) {
	args := m.Called(ctx, status, location, offset, limit)
	return args.Get(0).([]domain.Device), args.Error(1)
}
func (m *MockDeviceService) CountDevices(ctx context.Context, status *domain.DeviceStatus, location *domain.LocationKind) (int32, error) {
	args := m.Called(ctx, status, location)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockDeviceService) UpdateDevice(ctx context.Context, device *domain.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}
func (m *MockDeviceService) DeleteDevice(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockDeviceService) ListDeviceRentals(ctx context.Context, deviceID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, deviceID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRental(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalService) AddPosition(ctx context.Context, pos *domain.RentalPosition) error {
	args := m.Called(ctx, pos)
	return args.Error(0)
}
func (m *MockRentalService) StartRental(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) CloseRental(ctx context.Context, id int32, end *string) (*domain.Rental, error) {
	args := m.Called(ctx, id, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
