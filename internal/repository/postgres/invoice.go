package postgres

import (
	"context"
	"database/sql"
	"time"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/repository"
)

type invoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	query := `INSERT INTO rechnungen (vermietung_id, nummer, datum, bezahlt) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, inv.RentalID, inv.Number, inv.Date, inv.Paid).Scan(&inv.ID)
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int32) (*domain.Invoice, error) {
	inv := &domain.Invoice{}
	var datum time.Time
	query := `SELECT id, vermietung_id, nummer, datum, bezahlt FROM rechnungen WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&inv.ID, &inv.RentalID, &inv.Number, &datum, &inv.Paid)
	if err != nil {
		return nil, err
	}
	inv.Date = dateString(datum)
	return inv, nil
}

func (r *invoiceRepository) SearchByNumber(ctx context.Context, number string) ([]domain.Invoice, error) {
	query := `SELECT id, vermietung_id, nummer, datum, bezahlt FROM rechnungen WHERE nummer ILIKE '%' || $1 || '%' ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, number)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		var datum time.Time
		if err := rows.Scan(&inv.ID, &inv.RentalID, &inv.Number, &datum, &inv.Paid); err != nil {
			return nil, err
		}
		inv.Date = dateString(datum)
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepository) SetPaid(ctx context.Context, id int32, paid bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE rechnungen SET bezahlt = $1 WHERE id = $2`, paid, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
