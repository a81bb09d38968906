package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/service"
)

// RentalHandler serves rentals, their lifecycle transitions and positions.
type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var rental domain.Rental
	if !decodeBody(w, r, &rental) {
		return
	}
	if err := h.svc.CreateRental(r.Context(), &rental); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.svc.ListRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Start(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	rental, err := h.svc.StartRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	var end *string
	if raw := r.URL.Query().Get("bis"); raw != "" {
		end = &raw
	}
	rental, err := h.svc.CloseRental(r.Context(), id, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) AddPosition(w http.ResponseWriter, r *http.Request) {
	var pos domain.RentalPosition
	if !decodeBody(w, r, &pos) {
		return
	}
	if err := h.svc.AddPosition(r.Context(), &pos); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pos)
}

// RegisterRoutes attaches the rental endpoints.
func (h *RentalHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/vermietungen", h.Create).Methods(http.MethodPost)
	router.HandleFunc("/vermietungen", h.List).Methods(http.MethodGet)
	router.HandleFunc("/vermietungen/{id:[0-9]+}/starten", h.Start).Methods(http.MethodPost)
	router.HandleFunc("/vermietungen/{id:[0-9]+}/schliessen", h.Close).Methods(http.MethodPost)
	router.HandleFunc("/vermietung-positionen", h.AddPosition).Methods(http.MethodPost)
}
