package repository

import (
	"context"

	"mietpark-backend/internal/domain"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id int32) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id int32) error
}

type YardRepository interface {
	Create(ctx context.Context, yard *domain.Yard) error
	GetByID(ctx context.Context, id int32) (*domain.Yard, error)
	List(ctx context.Context) ([]domain.Yard, error)
	Update(ctx context.Context, yard *domain.Yard) error
	Delete(ctx context.Context, id int32) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
}

type DeviceRepository interface {
	Create(ctx context.Context, device *domain.Device) error
	GetByID(ctx context.Context, id int32) (*domain.Device, error)
	Update(ctx context.Context, device *domain.Device) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status *domain.DeviceStatus, location *domain.LocationKind, offset, limit int32) ([]domain.Device, error)
	Count(ctx context.Context, status *domain.DeviceStatus, location *domain.LocationKind) (int32, error)
	// ListIDs enumerates device ids ascending, optionally narrowed to one
	// device. Reports use this as the device universe, so it must include
	// devices without any rentals.
	ListIDs(ctx context.Context, deviceID *int32) ([]int32, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	List(ctx context.Context) ([]domain.Rental, error)
	ListByDevice(ctx context.Context, deviceID int32) ([]domain.Rental, error)
	ListByStatuses(ctx context.Context, statuses []domain.RentalStatus, deviceID *int32) ([]domain.Rental, error)
}

type PositionRepository interface {
	Create(ctx context.Context, pos *domain.RentalPosition) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.RentalPosition, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id int32) (*domain.Invoice, error)
	SearchByNumber(ctx context.Context, number string) ([]domain.Invoice, error)
	SetPaid(ctx context.Context, id int32, paid bool) error
}

type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	List(ctx context.Context) ([]domain.Maintenance, error)
}

type MeterReadingRepository interface {
	Create(ctx context.Context, r *domain.MeterReading) error
}
