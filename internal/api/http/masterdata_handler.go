package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/service"
)

// MasterDataHandler serves companies, yards and customers.
type MasterDataHandler struct {
	svc service.MasterDataService
}

func NewMasterDataHandler(svc service.MasterDataService) *MasterDataHandler {
	return &MasterDataHandler{svc: svc}
}

func pathID(r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func badID(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, errorBody{Detail: "invalid id"})
}

func (h *MasterDataHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var company domain.Company
	if !decodeBody(w, r, &company) {
		return
	}
	if err := h.svc.CreateCompany(r.Context(), &company); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, company)
}

func (h *MasterDataHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.ListCompanies(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	writeJSON(w, http.StatusOK, companies)
}

func (h *MasterDataHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	var company domain.Company
	if !decodeBody(w, r, &company) {
		return
	}
	company.ID = id
	if err := h.svc.UpdateCompany(r.Context(), &company); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *MasterDataHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	if err := h.svc.DeleteCompany(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MasterDataHandler) CreateYard(w http.ResponseWriter, r *http.Request) {
	var yard domain.Yard
	if !decodeBody(w, r, &yard) {
		return
	}
	if err := h.svc.CreateYard(r.Context(), &yard); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, yard)
}

func (h *MasterDataHandler) ListYards(w http.ResponseWriter, r *http.Request) {
	yards, err := h.svc.ListYards(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if yards == nil {
		yards = []domain.Yard{}
	}
	writeJSON(w, http.StatusOK, yards)
}

func (h *MasterDataHandler) UpdateYard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	var yard domain.Yard
	if !decodeBody(w, r, &yard) {
		return
	}
	yard.ID = id
	if err := h.svc.UpdateYard(r.Context(), &yard); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, yard)
}

func (h *MasterDataHandler) DeleteYard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	if err := h.svc.DeleteYard(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MasterDataHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if !decodeBody(w, r, &customer) {
		return
	}
	if err := h.svc.CreateCustomer(r.Context(), &customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *MasterDataHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *MasterDataHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	var customer domain.Customer
	if !decodeBody(w, r, &customer) {
		return
	}
	customer.ID = id
	if err := h.svc.UpdateCustomer(r.Context(), &customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// RegisterRoutes attaches the master data endpoints.
func (h *MasterDataHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/firmen", h.CreateCompany).Methods(http.MethodPost)
	router.HandleFunc("/firmen", h.ListCompanies).Methods(http.MethodGet)
	router.HandleFunc("/firmen/{id}", h.UpdateCompany).Methods(http.MethodPut)
	router.HandleFunc("/firmen/{id}", h.DeleteCompany).Methods(http.MethodDelete)

	router.HandleFunc("/mietparks", h.CreateYard).Methods(http.MethodPost)
	router.HandleFunc("/mietparks", h.ListYards).Methods(http.MethodGet)
	router.HandleFunc("/mietparks/{id}", h.UpdateYard).Methods(http.MethodPut)
	router.HandleFunc("/mietparks/{id}", h.DeleteYard).Methods(http.MethodDelete)

	router.HandleFunc("/kunden", h.CreateCustomer).Methods(http.MethodPost)
	router.HandleFunc("/kunden", h.ListCustomers).Methods(http.MethodGet)
	router.HandleFunc("/kunden/{id}", h.UpdateCustomer).Methods(http.MethodPut)
}
