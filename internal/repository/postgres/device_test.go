package postgres

import (
	"context"
	"testing"
	"time"

	"mietpark-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDeviceRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewDeviceRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		category := "Bagger"
		rate := 450.0
		unit := domain.RateUnitDaily
		device := &domain.Device{
			Name:          "Liebherr R 920",
			Category:      &category,
			Status:        domain.DeviceStatusAvailable,
			LocationKind:  domain.LocationYard,
			HourMeter:     120.5,
			ListRateValue: &rate,
			ListRateUnit:  &unit,
			CompanyID:     1,
		}

		mock.ExpectQuery("INSERT INTO geraete").
			WithArgs(device.Name, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				device.Status, device.LocationKind, device.HourMeter,
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				device.CompanyID, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.Create(ctx, device)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), device.ID)
	})
}

func TestDeviceRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewDeviceRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "kategorie", "modell", "seriennummer", "status", "standort_typ",
			"stundenzaehler", "anschaffungspreis", "anschaffungsdatum", "baujahr", "mietpreis_wert", "mietpreis_einheit",
			"vermietet_in", "firma_id", "mietpark_id"}).
			AddRow(3, "Kubota KX080", "Bagger", nil, "KX-123", "VERFUEGBAR", "MIETPARK",
				88.0, 75000.0, time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), 2022, 380.0, "TAEGLICH",
				nil, 1, 2)

		mock.ExpectQuery("SELECT (.+) FROM geraete WHERE id = \\$1").
			WithArgs(int32(3)).
			WillReturnRows(rows)

		device, err := repo.GetByID(ctx, 3)
		assert.NoError(t, err)
		assert.NotNil(t, device)
		assert.Equal(t, int32(3), device.ID)
		assert.Equal(t, domain.DeviceStatusAvailable, device.Status)
		assert.NotNil(t, device.PurchaseDate)
		assert.Equal(t, "2023-04-01", *device.PurchaseDate)
		assert.Nil(t, device.Model)
	})
}

func TestDeviceRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewDeviceRepository(db)
	ctx := context.Background()

	t.Run("FilterByStatus", func(t *testing.T) {
		status := domain.DeviceStatusRented
		rows := sqlmock.NewRows([]string{"id", "name", "kategorie", "modell", "seriennummer", "status", "standort_typ",
			"stundenzaehler", "anschaffungspreis", "anschaffungsdatum", "baujahr", "mietpreis_wert", "mietpreis_einheit",
			"vermietet_in", "firma_id", "mietpark_id"}).
			AddRow(1, "Radlader L506", nil, nil, nil, "VERMIETET", "KUNDE",
				10.0, nil, nil, nil, nil, nil, "DE", 1, nil)

		mock.ExpectQuery("SELECT (.+) FROM geraete WHERE status = \\$1 ORDER BY id LIMIT \\$2 OFFSET \\$3").
			WithArgs(status, int32(50), int32(0)).
			WillReturnRows(rows)

		devices, err := repo.List(ctx, &status, nil, 0, 50)
		assert.NoError(t, err)
		assert.Len(t, devices, 1)
		assert.Equal(t, domain.LocationCustomer, devices[0].LocationKind)
	})
}

func TestDeviceRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewDeviceRepository(db)
	ctx := context.Background()

	t.Run("NoFilter", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(id\\) FROM geraete").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		count, err := repo.Count(ctx, nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, int32(12), count)
	})
}

func TestDeviceRepository_ListIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewDeviceRepository(db)
	ctx := context.Background()

	t.Run("All", func(t *testing.T) {
		mock.ExpectQuery("SELECT id FROM geraete ORDER BY id").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(5))

		ids, err := repo.ListIDs(ctx, nil)
		assert.NoError(t, err)
		assert.Equal(t, []int32{1, 2, 5}, ids)
	})

	t.Run("SingleDevice", func(t *testing.T) {
		id := int32(5)
		mock.ExpectQuery("SELECT id FROM geraete WHERE id = \\$1 ORDER BY id").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		ids, err := repo.ListIDs(ctx, &id)
		assert.NoError(t, err)
		assert.Equal(t, []int32{5}, ids)
	})
}
