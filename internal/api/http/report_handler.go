package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"mietpark-backend/internal/metrics"
	"mietpark-backend/internal/service"
)

// ReportHandler serves the reporting endpoints.
type ReportHandler struct {
	svc     service.ReportService
	metrics *metrics.Metrics
}

func NewReportHandler(svc service.ReportService, m *metrics.Metrics) *ReportHandler {
	return &ReportHandler{svc: svc, metrics: m}
}

type utilizationRequest struct {
	From     string `json:"von"`
	To       string `json:"bis"`
	DeviceID *int32 `json:"geraet_id"`
}

func (h *ReportHandler) Utilization(w http.ResponseWriter, r *http.Request) {
	var req utilizationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	report, err := h.svc.Utilization(r.Context(), req.From, req.To, req.DeviceID)
	if err != nil {
		writeError(w, err)
		return
	}
	h.metrics.IncReportRun("auslastung")
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) Billing(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	report, err := h.svc.Billing(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	h.metrics.IncReportRun("abrechnung")
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) DeviceFinance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}

	var from, to *string
	if raw := r.URL.Query().Get("von"); raw != "" {
		from = &raw
	}
	if raw := r.URL.Query().Get("bis"); raw != "" {
		to = &raw
	}
	// The window is all-or-nothing; a single bound is rejected rather than
	// silently half-applied.
	if (from == nil) != (to == nil) {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "von and bis must be given together"})
		return
	}

	report, err := h.svc.DeviceFinance(r.Context(), id, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	h.metrics.IncReportRun("geraet_finanzen")
	writeJSON(w, http.StatusOK, report)
}

// RegisterRoutes attaches the report endpoints.
func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/berichte/auslastung", h.Utilization).Methods(http.MethodPost)
	router.HandleFunc("/berichte/vermietungen/{id:[0-9]+}/abrechnung", h.Billing).Methods(http.MethodGet)
	router.HandleFunc("/berichte/geraete/{id:[0-9]+}/finanzen", h.DeviceFinance).Methods(http.MethodGet)
}
