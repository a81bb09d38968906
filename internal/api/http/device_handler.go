package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/service"
)

// DeviceHandler serves the device (Gerät) endpoints.
type DeviceHandler struct {
	svc service.DeviceService
}

func NewDeviceHandler(svc service.DeviceService) *DeviceHandler {
	return &DeviceHandler{svc: svc}
}

func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var device domain.Device
	if !decodeBody(w, r, &device) {
		return
	}
	if err := h.svc.CreateDevice(r.Context(), &device); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, device)
}

func deviceFilters(r *http.Request) (*domain.DeviceStatus, *domain.LocationKind) {
	var status *domain.DeviceStatus
	var location *domain.LocationKind
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.DeviceStatus(raw)
		status = &s
	}
	if raw := r.URL.Query().Get("standort_typ"); raw != "" {
		l := domain.LocationKind(raw)
		location = &l
	}
	return status, location
}

func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	status, location := deviceFilters(r)

	offset := int32(0)
	limit := int32(50)
	if raw := r.URL.Query().Get("skip"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil {
			offset = int32(v)
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil {
			limit = int32(v)
		}
	}

	devices, err := h.svc.ListDevices(r.Context(), status, location, offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if devices == nil {
		devices = []domain.Device{}
	}
	writeJSON(w, http.StatusOK, devices)
}

// Count writes a naked number, matching the original endpoint.
func (h *DeviceHandler) Count(w http.ResponseWriter, r *http.Request) {
	status, location := deviceFilters(r)
	count, err := h.svc.CountDevices(r.Context(), status, location)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, "%d", count)
}

func (h *DeviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	device, err := h.svc.GetDevice(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, device)
}

func (h *DeviceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	var device domain.Device
	if !decodeBody(w, r, &device) {
		return
	}
	device.ID = id
	if err := h.svc.UpdateDevice(r.Context(), &device); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, device)
}

func (h *DeviceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	if err := h.svc.DeleteDevice(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DeviceHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	rentals, err := h.svc.ListDeviceRentals(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

// RegisterRoutes attaches the device endpoints. The count route must be
// registered before the {id} route so "count" is not parsed as an id.
func (h *DeviceHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/geraete", h.Create).Methods(http.MethodPost)
	router.HandleFunc("/geraete", h.List).Methods(http.MethodGet)
	router.HandleFunc("/geraete/count", h.Count).Methods(http.MethodGet)
	router.HandleFunc("/geraete/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	router.HandleFunc("/geraete/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	router.HandleFunc("/geraete/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/geraete/{id:[0-9]+}/vermietungen", h.ListRentals).Methods(http.MethodGet)
}
