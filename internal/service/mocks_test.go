package service

import (
	"context"

	"mietpark-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockDeviceRepo
type MockDeviceRepo struct {
	mock.Mock
}

func (m *MockDeviceRepo) Create(ctx context.Context, device *domain.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}
func (m *MockDeviceRepo) GetByID(ctx context.Context, id int32) (*domain.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}
func (m *MockDeviceRepo) Update(ctx context.Context, device *domain.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}
func (m *MockDeviceRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockDeviceRepo) List(ctx context.Context, status *domain.DeviceStatus, location *domain.LocationKind, offset, limit int32) ([]domain.Device, error) {
	args := m.Called(ctx, status, location, offset, limit)
	return args.Get(0).([]domain.Device), args.Error(1)
}
func (m *MockDeviceRepo) Count(ctx context.Context, status *domain.DeviceStatus, location *domain.LocationKind) (int32, error) {
	args := m.Called(ctx, status, location)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockDeviceRepo) ListIDs(ctx context.Context, deviceID *int32) ([]int32, error) {
	args := m.Called(ctx, deviceID)
	return args.Get(0).([]int32), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByDevice(ctx context.Context, deviceID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, deviceID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByStatuses(ctx context.Context, statuses []domain.RentalStatus, deviceID *int32) ([]domain.Rental, error) {
	args := m.Called(ctx, statuses, deviceID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockPositionRepo
type MockPositionRepo struct {
	mock.Mock
}

func (m *MockPositionRepo) Create(ctx context.Context, pos *domain.RentalPosition) error {
	args := m.Called(ctx, pos)
	return args.Error(0)
}
func (m *MockPositionRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.RentalPosition, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.RentalPosition), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
