package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/service"
)

// MaintenanceHandler serves maintenance records and meter readings.
type MaintenanceHandler struct {
	svc service.MaintenanceService
}

func NewMaintenanceHandler(svc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc}
}

func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var m domain.Maintenance
	if !decodeBody(w, r, &m) {
		return
	}
	if err := h.svc.CreateMaintenance(r.Context(), &m); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListMaintenance(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []domain.Maintenance{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *MaintenanceHandler) CreateMeterReading(w http.ResponseWriter, r *http.Request) {
	var m domain.MeterReading
	if !decodeBody(w, r, &m) {
		return
	}
	if err := h.svc.CreateMeterReading(r.Context(), &m); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// RegisterRoutes attaches the maintenance endpoints.
func (h *MaintenanceHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/wartungen", h.Create).Methods(http.MethodPost)
	router.HandleFunc("/wartungen", h.List).Methods(http.MethodGet)
	router.HandleFunc("/zaehlerstaende", h.CreateMeterReading).Methods(http.MethodPost)
}
