package postgres

import (
	"context"
	"testing"
	"time"

	"mietpark-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		end := "2025-06-30"
		rental := &domain.Rental{
			DeviceID:   2,
			CustomerID: 3,
			Start:      "2025-06-01",
			End:        &end,
			RateValue:  450,
			RateUnit:   domain.RateUnitDaily,
			Status:     domain.RentalStatusReserved,
		}

		mock.ExpectQuery("INSERT INTO vermietungen").
			WithArgs(rental.DeviceID, rental.CustomerID, rental.Start, sqlmock.AnyArg(), rental.RateValue, rental.RateUnit, rental.Status).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, rental)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), rental.ID)
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("ClosedRental", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "geraet_id", "kunde_id", "von", "bis", "satz_wert", "satz_einheit", "status"}).
			AddRow(1, 2, 3, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), 450.0, "TAEGLICH", "GESCHLOSSEN")

		mock.ExpectQuery("SELECT (.+) FROM vermietungen WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, rental)
		assert.Equal(t, "2025-06-01", rental.Start)
		assert.NotNil(t, rental.End)
		assert.Equal(t, "2025-06-30", *rental.End)
	})

	t.Run("OpenEndedRental", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "geraet_id", "kunde_id", "von", "bis", "satz_wert", "satz_einheit", "status"}).
			AddRow(2, 2, 3, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), nil, 450.0, "TAEGLICH", "OFFEN")

		mock.ExpectQuery("SELECT (.+) FROM vermietungen WHERE id = \\$1").
			WithArgs(int32(2)).
			WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, 2)
		assert.NoError(t, err)
		assert.Nil(t, rental.End)
		assert.Equal(t, domain.RentalStatusOpen, rental.Status)
	})
}

func TestRentalRepository_ListByStatuses(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("AllDevices", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "geraet_id", "kunde_id", "von", "bis", "satz_wert", "satz_einheit", "status"}).
			AddRow(1, 2, 3, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), nil, 450.0, "TAEGLICH", "OFFEN").
			AddRow(2, 4, 3, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), 900.0, "MONATLICH", "GESCHLOSSEN")

		mock.ExpectQuery("SELECT (.+) FROM vermietungen WHERE status = ANY\\(\\$1\\) ORDER BY id").
			WillReturnRows(rows)

		rentals, err := repo.ListByStatuses(ctx, domain.UtilizationStatuses, nil)
		assert.NoError(t, err)
		assert.Len(t, rentals, 2)
	})

	t.Run("SingleDevice", func(t *testing.T) {
		deviceID := int32(2)
		rows := sqlmock.NewRows([]string{"id", "geraet_id", "kunde_id", "von", "bis", "satz_wert", "satz_einheit", "status"}).
			AddRow(1, 2, 3, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), nil, 450.0, "TAEGLICH", "OFFEN")

		mock.ExpectQuery("SELECT (.+) FROM vermietungen WHERE status = ANY\\(\\$1\\) AND geraet_id = \\$2 ORDER BY id").
			WillReturnRows(rows)

		rentals, err := repo.ListByStatuses(ctx, domain.UtilizationStatuses, &deviceID)
		assert.NoError(t, err)
		assert.Len(t, rentals, 1)
		assert.Equal(t, deviceID, rentals[0].DeviceID)
	})
}

func TestPositionRepository_ListByRental(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPositionRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "vermietung_id", "typ", "menge", "vk_einzelpreis", "kosten_intern"}).
			AddRow(1, 5, "MONTAGE", 2.0, 150.0, 80.0).
			AddRow(2, 5, "VERSICHERUNG", 1.0, 99.0, 0.0)

		mock.ExpectQuery("SELECT (.+) FROM vermietung_positionen WHERE vermietung_id = \\$1").
			WithArgs(int32(5)).
			WillReturnRows(rows)

		positions, err := repo.ListByRental(ctx, 5)
		assert.NoError(t, err)
		assert.Len(t, positions, 2)
		assert.Equal(t, domain.PositionTypeAssembly, positions[0].Type)
		assert.Equal(t, 2.0, positions[0].Quantity)
	})
}
