package postgres

import (
	"database/sql"
	"time"

	"mietpark-backend/internal/repository"
	"mietpark-backend/internal/utils"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CompanyRepository
	repository.YardRepository
	repository.CustomerRepository
	repository.DeviceRepository
	repository.RentalRepository
	repository.PositionRepository
	repository.InvoiceRepository
	repository.MaintenanceRepository
	repository.MeterReadingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		CompanyRepository:      NewCompanyRepository(db),
		YardRepository:         NewYardRepository(db),
		CustomerRepository:     NewCustomerRepository(db),
		DeviceRepository:       NewDeviceRepository(db),
		RentalRepository:       NewRentalRepository(db),
		PositionRepository:     NewPositionRepository(db),
		InvoiceRepository:      NewInvoiceRepository(db),
		MaintenanceRepository:  NewMaintenanceRepository(db),
		MeterReadingRepository: NewMeterReadingRepository(db),
	}
}

// Scan/bind helpers for nullable columns. DATE columns scan into
// sql.NullTime and are carried through the domain as yyyy-mm-dd strings.

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}

func nullInt(i *int32) sql.NullInt32 {
	if i == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: *i, Valid: true}
}

func intPtr(ni sql.NullInt32) *int32 {
	if !ni.Valid {
		return nil
	}
	i := ni.Int32
	return &i
}

func datePtr(nt sql.NullTime) *string {
	if !nt.Valid {
		return nil
	}
	s := utils.FormatDate(nt.Time)
	return &s
}

func dateString(t time.Time) string {
	return utils.FormatDate(t)
}
