package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/repository"
)

type deviceRepository struct {
	db *sql.DB
}

func NewDeviceRepository(db *sql.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

const deviceColumns = `id, name, kategorie, modell, seriennummer, status, standort_typ, stundenzaehler, anschaffungspreis, anschaffungsdatum, baujahr, mietpreis_wert, mietpreis_einheit, vermietet_in, firma_id, mietpark_id`

func (r *deviceRepository) Create(ctx context.Context, d *domain.Device) error {
	query := `INSERT INTO geraete (name, kategorie, modell, seriennummer, status, standort_typ, stundenzaehler,
	          anschaffungspreis, anschaffungsdatum, baujahr, mietpreis_wert, mietpreis_einheit, vermietet_in, firma_id, mietpark_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	var listUnit sql.NullString
	if d.ListRateUnit != nil {
		listUnit = sql.NullString{String: string(*d.ListRateUnit), Valid: true}
	}
	return r.db.QueryRowContext(ctx, query,
		d.Name, nullString(d.Category), nullString(d.Model), nullString(d.SerialNumber),
		d.Status, d.LocationKind, d.HourMeter,
		nullFloat(d.PurchasePrice), nullString(d.PurchaseDate), nullInt(d.YearBuilt),
		nullFloat(d.ListRateValue), listUnit, nullString(d.RentedInCountry),
		d.CompanyID, nullInt(d.YardID),
	).Scan(&d.ID)
}

func scanDevice(scan func(dest ...interface{}) error) (*domain.Device, error) {
	d := &domain.Device{}
	var category, model, serial, listUnit, country sql.NullString
	var purchasePrice, listValue sql.NullFloat64
	var purchaseDate sql.NullTime
	var yearBuilt, yardID sql.NullInt32

	err := scan(&d.ID, &d.Name, &category, &model, &serial, &d.Status, &d.LocationKind, &d.HourMeter,
		&purchasePrice, &purchaseDate, &yearBuilt, &listValue, &listUnit, &country, &d.CompanyID, &yardID)
	if err != nil {
		return nil, err
	}

	d.Category = stringPtr(category)
	d.Model = stringPtr(model)
	d.SerialNumber = stringPtr(serial)
	d.PurchasePrice = floatPtr(purchasePrice)
	d.PurchaseDate = datePtr(purchaseDate)
	d.YearBuilt = intPtr(yearBuilt)
	d.ListRateValue = floatPtr(listValue)
	if listUnit.Valid {
		u := domain.RateUnit(listUnit.String)
		d.ListRateUnit = &u
	}
	d.RentedInCountry = stringPtr(country)
	d.YardID = intPtr(yardID)
	return d, nil
}

func (r *deviceRepository) GetByID(ctx context.Context, id int32) (*domain.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM geraete WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanDevice(row.Scan)
}

func (r *deviceRepository) Update(ctx context.Context, d *domain.Device) error {
	query := `UPDATE geraete SET name=$1, kategorie=$2, modell=$3, seriennummer=$4, status=$5, standort_typ=$6,
	          stundenzaehler=$7, anschaffungspreis=$8, anschaffungsdatum=$9, baujahr=$10, mietpreis_wert=$11,
	          mietpreis_einheit=$12, vermietet_in=$13, firma_id=$14, mietpark_id=$15 WHERE id=$16`
	var listUnit sql.NullString
	if d.ListRateUnit != nil {
		listUnit = sql.NullString{String: string(*d.ListRateUnit), Valid: true}
	}
	res, err := r.db.ExecContext(ctx, query,
		d.Name, nullString(d.Category), nullString(d.Model), nullString(d.SerialNumber),
		d.Status, d.LocationKind, d.HourMeter,
		nullFloat(d.PurchasePrice), nullString(d.PurchaseDate), nullInt(d.YearBuilt),
		nullFloat(d.ListRateValue), listUnit, nullString(d.RentedInCountry),
		d.CompanyID, nullInt(d.YardID), d.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *deviceRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM geraete WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *deviceRepository) List(ctx context.Context, status *domain.DeviceStatus, location *domain.LocationKind, offset, limit int32) ([]domain.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM geraete`
	where, args := deviceFilter(status, location)
	query += where

	argIdx := len(args) + 1
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []domain.Device
	for rows.Next() {
		d, err := scanDevice(rows.Scan)
		if err != nil {
			return nil, err
		}
		devices = append(devices, *d)
	}
	return devices, rows.Err()
}

func (r *deviceRepository) Count(ctx context.Context, status *domain.DeviceStatus, location *domain.LocationKind) (int32, error) {
	query := `SELECT count(id) FROM geraete`
	where, args := deviceFilter(status, location)
	query += where

	var count int32
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *deviceRepository) ListIDs(ctx context.Context, deviceID *int32) ([]int32, error) {
	query := `SELECT id FROM geraete`
	args := []interface{}{}
	if deviceID != nil {
		query += ` WHERE id = $1`
		args = append(args, *deviceID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func deviceFilter(status *domain.DeviceStatus, location *domain.LocationKind) (string, []interface{}) {
	where := ""
	args := []interface{}{}
	if status != nil {
		where += fmt.Sprintf(" WHERE status = $%d", len(args)+1)
		args = append(args, *status)
	}
	if location != nil {
		if where == "" {
			where = " WHERE"
		} else {
			where += " AND"
		}
		where += fmt.Sprintf(" standort_typ = $%d", len(args)+1)
		args = append(args, *location)
	}
	return where, args
}
