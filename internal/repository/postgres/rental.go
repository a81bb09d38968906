package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, geraet_id, kunde_id, von, bis, satz_wert, satz_einheit, status`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO vermietungen (geraet_id, kunde_id, von, bis, satz_wert, satz_einheit, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rt.DeviceID, rt.CustomerID, rt.Start, nullString(rt.End), rt.RateValue, rt.RateUnit, rt.Status,
	).Scan(&rt.ID)
}

func scanRental(scan func(dest ...interface{}) error) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var von time.Time
	var bis sql.NullTime
	err := scan(&rt.ID, &rt.DeviceID, &rt.CustomerID, &von, &bis, &rt.RateValue, &rt.RateUnit, &rt.Status)
	if err != nil {
		return nil, err
	}
	rt.Start = dateString(von)
	rt.End = datePtr(bis)
	return rt, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM vermietungen WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanRental(row.Scan)
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE vermietungen SET geraet_id=$1, kunde_id=$2, von=$3, bis=$4, satz_wert=$5, satz_einheit=$6, status=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query,
		rt.DeviceID, rt.CustomerID, rt.Start, nullString(rt.End), rt.RateValue, rt.RateUnit, rt.Status, rt.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM vermietungen ORDER BY id DESC`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) ListByDevice(ctx context.Context, deviceID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM vermietungen WHERE geraet_id = $1 ORDER BY von DESC`
	return r.queryRentals(ctx, query, deviceID)
}

func (r *rentalRepository) ListByStatuses(ctx context.Context, statuses []domain.RentalStatus, deviceID *int32) ([]domain.Rental, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	query := `SELECT ` + rentalColumns + ` FROM vermietungen WHERE status = ANY($1)`
	args := []interface{}{pq.Array(values)}
	if deviceID != nil {
		query += fmt.Sprintf(" AND geraet_id = $%d", len(args)+1)
		args = append(args, *deviceID)
	}
	query += ` ORDER BY id`

	return r.queryRentals(ctx, query, args...)
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows.Scan)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

type positionRepository struct {
	db *sql.DB
}

func NewPositionRepository(db *sql.DB) repository.PositionRepository {
	return &positionRepository{db: db}
}

func (r *positionRepository) Create(ctx context.Context, pos *domain.RentalPosition) error {
	query := `INSERT INTO vermietung_positionen (vermietung_id, typ, menge, vk_einzelpreis, kosten_intern)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		pos.RentalID, pos.Type, pos.Quantity, pos.UnitPrice, pos.InternalCost,
	).Scan(&pos.ID)
}

func (r *positionRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.RentalPosition, error) {
	query := `SELECT id, vermietung_id, typ, menge, vk_einzelpreis, kosten_intern FROM vermietung_positionen WHERE vermietung_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []domain.RentalPosition
	for rows.Next() {
		var p domain.RentalPosition
		if err := rows.Scan(&p.ID, &p.RentalID, &p.Type, &p.Quantity, &p.UnitPrice, &p.InternalCost); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}
