package postgres

import (
	"context"
	"database/sql"
	"time"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/repository"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	query := `INSERT INTO wartungen (geraet_id, datum, beschreibung, kosten) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.DeviceID, m.Date, nullString(m.Description), m.Cost).Scan(&m.ID)
}

func (r *maintenanceRepository) List(ctx context.Context) ([]domain.Maintenance, error) {
	query := `SELECT id, geraet_id, datum, beschreibung, kosten FROM wartungen ORDER BY datum DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Maintenance
	for rows.Next() {
		var m domain.Maintenance
		var datum time.Time
		var desc sql.NullString
		if err := rows.Scan(&m.ID, &m.DeviceID, &datum, &desc, &m.Cost); err != nil {
			return nil, err
		}
		m.Date = dateString(datum)
		m.Description = stringPtr(desc)
		records = append(records, m)
	}
	return records, rows.Err()
}

type meterReadingRepository struct {
	db *sql.DB
}

func NewMeterReadingRepository(db *sql.DB) repository.MeterReadingRepository {
	return &meterReadingRepository{db: db}
}

func (r *meterReadingRepository) Create(ctx context.Context, m *domain.MeterReading) error {
	if m.ReadAt.IsZero() {
		m.ReadAt = time.Now().UTC()
	}
	query := `INSERT INTO zaehlerstaende (geraet_id, zeitpunkt, stunden) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.DeviceID, m.ReadAt, m.Hours).Scan(&m.ID)
}
