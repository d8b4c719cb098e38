package sales

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mzumara/wms-backend/internal/modules/auth"
	"github.com/mzumara/wms-backend/internal/modules/warehouse"
)

// Handler exposes salesman HTTP endpoints.
type Handler struct {
	service Service
	authMW  *auth.Middleware
}

func NewHandler(service Service, authMW *auth.Middleware) *Handler {
	return &Handler{service: service, authMW: authMW}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/sales", func(r chi.Router) {
		r.Get("/salesmen", h.listSalesmen)
		r.Get("/salesmen/{id}", h.getSalesman)
		r.Get("/salesmen/{id}/summary", h.summary)

		r.Group(func(r chi.Router) {
			r.Use(h.authMW.RequireUser)
			r.Post("/salesmen", h.createSalesman)
			r.Put("/salesmen/{id}", h.updateSalesman)
			r.Delete("/salesmen/{id}", h.deleteSalesman)
		})
	})
}

func (h *Handler) listSalesmen(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.ListSalesmen(r.Context()))
}

func (h *Handler) getSalesman(w http.ResponseWriter, r *http.Request) {
	sm, err := h.service.GetSalesman(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), salesStatus(err))
		return
	}
	respond(w, http.StatusOK, sm)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), salesStatus(err))
		return
	}
	respond(w, http.StatusOK, sum)
}

func (h *Handler) createSalesman(w http.ResponseWriter, r *http.Request) {
	var req CreateSalesmanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sm, err := h.service.CreateSalesman(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), salesStatus(err))
		return
	}
	respond(w, http.StatusCreated, sm)
}

func (h *Handler) updateSalesman(w http.ResponseWriter, r *http.Request) {
	var req UpdateSalesmanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sm, err := h.service.UpdateSalesman(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		http.Error(w, err.Error(), salesStatus(err))
		return
	}
	respond(w, http.StatusOK, sm)
}

func (h *Handler) deleteSalesman(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSalesman(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), salesStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func salesStatus(err error) int {
	if errors.Is(err, warehouse.ErrSalesmanNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
