package service

import (
	"context"

	"mietpark-backend/internal/domain"
)

type MasterDataService interface {
	CreateCompany(ctx context.Context, company *domain.Company) error
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	UpdateCompany(ctx context.Context, company *domain.Company) error
	DeleteCompany(ctx context.Context, id int32) error

	CreateYard(ctx context.Context, yard *domain.Yard) error
	ListYards(ctx context.Context) ([]domain.Yard, error)
	UpdateYard(ctx context.Context, yard *domain.Yard) error
	DeleteYard(ctx context.Context, id int32) error

	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
}

type DeviceService interface {
	CreateDevice(ctx context.Context, device *domain.Device) error
	GetDevice(ctx context.Context, id int32) (*domain.Device, error)
	ListDevices(ctx context.Context, status *domain.DeviceStatus, location *domain.LocationKind, offset, limit int32) ([]domain.Device, error)
	CountDevices(ctx context.Context, status *domain.DeviceStatus, location *domain.LocationKind) (int32, error)
	UpdateDevice(ctx context.Context, device *domain.Device) error
	DeleteDevice(ctx context.Context, id int32) error
	ListDeviceRentals(ctx context.Context, deviceID int32) ([]domain.Rental, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, rental *domain.Rental) error
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	AddPosition(ctx context.Context, pos *domain.RentalPosition) error
	StartRental(ctx context.Context, id int32) (*domain.Rental, error)
	CloseRental(ctx context.Context, id int32, end *string) (*domain.Rental, error)
}

type InvoiceService interface {
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) error
	SearchInvoices(ctx context.Context, number string) ([]domain.Invoice, error)
	SetInvoicePaid(ctx context.Context, id int32, paid bool) (*domain.Invoice, error)
}

type MaintenanceService interface {
	CreateMaintenance(ctx context.Context, m *domain.Maintenance) error
	ListMaintenance(ctx context.Context) ([]domain.Maintenance, error)
	CreateMeterReading(ctx context.Context, m *domain.MeterReading) error
}

type ReportService interface {
	Utilization(ctx context.Context, from, to string, deviceID *int32) (*domain.UtilizationReport, error)
	Billing(ctx context.Context, rentalID int32) (*domain.BillingReport, error)
	DeviceFinance(ctx context.Context, deviceID int32, from, to *string) (*domain.DeviceFinanceReport, error)
}
