package assignment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mzumara/wms-backend/internal/modules/auth"
	"github.com/mzumara/wms-backend/internal/modules/warehouse"
)

// Handler exposes assignment and transaction-log endpoints.
type Handler struct {
	service Service
	authMW  *auth.Middleware
}

func NewHandler(service Service, authMW *auth.Middleware) *Handler {
	return &Handler{service: service, authMW: authMW}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/assignments", func(r chi.Router) {
		r.Get("/", h.listAssignments)
		r.With(h.authMW.RequireUser).Post("/", h.createAssignment)
	})
	r.Route("/api/v1/transactions", func(r chi.Router) {
		r.Get("/", h.listTransactions)
		r.With(h.authMW.RequireUser).Post("/", h.recordTransaction)
	})
}

func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.ListAssignments(r.Context()))
}

func (h *Handler) createAssignment(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a, err := h.service.CreateAssignment(r.Context(), req, auth.Actor(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), assignmentStatus(err))
		return
	}
	respond(w, http.StatusCreated, a)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.ListTransactions(r.Context()))
}

func (h *Handler) recordTransaction(w http.ResponseWriter, r *http.Request) {
	var req RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	tx, err := h.service.RecordTransaction(r.Context(), req, auth.Actor(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), assignmentStatus(err))
		return
	}
	respond(w, http.StatusCreated, tx)
}

func assignmentStatus(err error) int {
	var insufficient *warehouse.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		return http.StatusConflict
	case errors.Is(err, warehouse.ErrProductNotFound),
		errors.Is(err, warehouse.ErrSalesmanNotFound):
		return http.StatusNotFound
	case errors.Is(err, warehouse.ErrInvalidQuantity),
		errors.Is(err, warehouse.ErrEmptyAssignment),
		errors.Is(err, warehouse.ErrInvalidReason):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
