package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/metrics"
	"mietpark-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
)

func newReportRouter(svc service.ReportService) *mux.Router {
	router := mux.NewRouter()
	NewReportHandler(svc, metrics.New()).RegisterRoutes(router)
	return router
}

func TestReportHandler_Utilization(t *testing.T) {
	t.Run("WireFieldNames", func(t *testing.T) {
		svc := new(MockReportService)
		svc.On("Utilization", tmock.Anything, "2024-01-01", "2024-01-31", (*int32)(nil)).Return(&domain.UtilizationReport{
			Items: []domain.UtilizationItem{
				{DeviceID: 1, TotalDays: 31, RentedDays: 10, UtilizationPercent: 32.26},
			},
			FleetUtilizationPercent: 32.26,
		}, nil)

		body := `{"von": "2024-01-01", "bis": "2024-01-31"}`
		req := httptest.NewRequest(http.MethodPost, "/berichte/auslastung", strings.NewReader(body))
		rec := httptest.NewRecorder()
		newReportRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Contains(t, payload, "items")
		assert.Contains(t, payload, "flotte_auslastung_prozent")
		item := payload["items"].([]interface{})[0].(map[string]interface{})
		assert.Contains(t, item, "geraet_id")
		assert.Contains(t, item, "tage_gesamt")
		assert.Contains(t, item, "tage_vermietet")
		assert.Contains(t, item, "auslastung_prozent")
	})

	t.Run("InvalidRangeIs400", func(t *testing.T) {
		svc := new(MockReportService)
		svc.On("Utilization", tmock.Anything, "2024-01-31", "2024-01-01", (*int32)(nil)).Return(nil, service.ErrInvalidRange)

		body := `{"von": "2024-01-31", "bis": "2024-01-01"}`
		req := httptest.NewRequest(http.MethodPost, "/berichte/auslastung", strings.NewReader(body))
		rec := httptest.NewRecorder()
		newReportRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var payload map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Contains(t, payload, "detail")
	})
}

func TestReportHandler_Billing(t *testing.T) {
	t.Run("WireFieldNames", func(t *testing.T) {
		svc := new(MockReportService)
		svc.On("Billing", tmock.Anything, int32(7)).Return(&domain.BillingReport{
			RentalID: 7, RentalDays: 31, RentTotal: 930.0,
			PositionsTotal: 0, Revenue: 930.0, CostTotal: 0, Margin: 930.0,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/berichte/vermietungen/7/abrechnung", nil)
		rec := httptest.NewRecorder()
		newReportRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		for _, field := range []string{"vermietung_id", "mietdauer_tage", "miete_summe", "positionen_summe", "einnahmen", "kosten_summe", "marge"} {
			assert.Contains(t, payload, field)
		}
		assert.Equal(t, 930.0, payload["miete_summe"])
	})

	t.Run("UnknownRentalIs404", func(t *testing.T) {
		svc := new(MockReportService)
		svc.On("Billing", tmock.Anything, int32(99)).Return(nil, service.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/berichte/vermietungen/99/abrechnung", nil)
		rec := httptest.NewRecorder()
		newReportRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("UnbillableStatusIs400", func(t *testing.T) {
		svc := new(MockReportService)
		svc.On("Billing", tmock.Anything, int32(8)).Return(nil, service.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodGet, "/berichte/vermietungen/8/abrechnung", nil)
		rec := httptest.NewRecorder()
		newReportRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReportHandler_DeviceFinance(t *testing.T) {
	t.Run("WireFieldNames", func(t *testing.T) {
		svc := new(MockReportService)
		from := "2024-01-01"
		to := "2024-01-31"
		svc.On("DeviceFinance", tmock.Anything, int32(3), &from, &to).Return(&domain.DeviceFinanceReport{
			DeviceID: 3, RentalCount: 2, Revenue: 1000, Cost: 100, Margin: 900,
			TotalDays: 31, RentedDays: 20, UtilizationPercent: 64.52,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/berichte/geraete/3/finanzen?von=2024-01-01&bis=2024-01-31", nil)
		rec := httptest.NewRecorder()
		newReportRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		for _, field := range []string{"geraet_id", "anzahl_vermietungen", "einnahmen", "kosten", "marge", "tage_gesamt", "tage_vermietet", "auslastung_prozent"} {
			assert.Contains(t, payload, field)
		}
	})

	t.Run("SingleWindowBoundIs400", func(t *testing.T) {
		svc := new(MockReportService)

		req := httptest.NewRequest(http.MethodGet, "/berichte/geraete/3/finanzen?von=2024-01-01", nil)
		rec := httptest.NewRecorder()
		newReportRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "DeviceFinance", tmock.Anything, tmock.Anything, tmock.Anything, tmock.Anything)
	})
}
