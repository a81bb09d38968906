package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/service"
)

// InvoiceHandler serves the invoice (Rechnung) endpoints.
type InvoiceHandler struct {
	svc service.InvoiceService
}

func NewInvoiceHandler(svc service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var invoice domain.Invoice
	if !decodeBody(w, r, &invoice) {
		return
	}
	if err := h.svc.CreateInvoice(r.Context(), &invoice); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, invoice)
}

func (h *InvoiceHandler) Search(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.SearchInvoices(r.Context(), r.URL.Query().Get("nummer"))
	if err != nil {
		writeError(w, err)
		return
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	writeJSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) SetPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	paid := true
	if raw := r.URL.Query().Get("bezahlt"); raw == "false" {
		paid = false
	}
	invoice, err := h.svc.SetInvoicePaid(r.Context(), id, paid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

// RegisterRoutes attaches the invoice endpoints.
func (h *InvoiceHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/rechnungen", h.Create).Methods(http.MethodPost)
	router.HandleFunc("/rechnungen/suche", h.Search).Methods(http.MethodGet)
	router.HandleFunc("/rechnungen/{id:[0-9]+}/bezahlt", h.SetPaid).Methods(http.MethodPatch)
}
