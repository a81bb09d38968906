package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"mietpark-backend/internal/metrics"
	"mietpark-backend/internal/service"
)

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	MasterData  service.MasterDataService
	Devices     service.DeviceService
	Rentals     service.RentalService
	Invoices    service.InvoiceService
	Maintenance service.MaintenanceService
	Reports     service.ReportService

	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

// NewRouter builds the full HTTP surface with middleware attached.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()

	router.Use(RequestIDMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware(deps.AllowedOrigins))
	if deps.Metrics != nil {
		router.Use(MetricsMiddleware(deps.Metrics))
	}

	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	if deps.Metrics != nil {
		router.Handle("/metrics", deps.Metrics.Handler()).Methods(http.MethodGet)
	}

	NewMasterDataHandler(deps.MasterData).RegisterRoutes(router)
	NewDeviceHandler(deps.Devices).RegisterRoutes(router)
	NewRentalHandler(deps.Rentals).RegisterRoutes(router)
	NewInvoiceHandler(deps.Invoices).RegisterRoutes(router)
	NewMaintenanceHandler(deps.Maintenance).RegisterRoutes(router)
	NewReportHandler(deps.Reports, deps.Metrics).RegisterRoutes(router)

	return router
}
