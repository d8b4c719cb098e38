package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mzumara/wms-backend/internal/modules/auth"
	"github.com/mzumara/wms-backend/internal/modules/warehouse"
)

// Handler exposes catalog HTTP endpoints. Reads are open; mutations require
// a session.
type Handler struct {
	service Service
	authMW  *auth.Middleware
}

func NewHandler(service Service, authMW *auth.Middleware) *Handler {
	return &Handler{service: service, authMW: authMW}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/categories", h.listCategories)
		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/products/{id}/transactions", h.productTransactions)

		r.Group(func(r chi.Router) {
			r.Use(h.authMW.RequireUser)
			r.Post("/products", h.createProduct)
			r.Put("/products/{id}", h.updateProduct)
			r.Delete("/products/{id}", h.deleteProduct)
			r.Post("/products/{id}/adjust", h.adjustStock)
		})
	})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.ListCategories(r.Context()))
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	lowStockOnly := r.URL.Query().Get("low_stock") == "true"
	respond(w, http.StatusOK, h.service.ListProducts(r.Context(), lowStockOnly))
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), catalogStatus(err))
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) productTransactions(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.ProductTransactions(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.service.CreateProduct(r.Context(), req, auth.Actor(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), catalogStatus(err))
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		http.Error(w, err.Error(), catalogStatus(err))
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), catalogStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	var req AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	tx, err := h.service.AdjustStock(r.Context(), chi.URLParam(r, "id"), req, auth.Actor(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), catalogStatus(err))
		return
	}
	respond(w, http.StatusCreated, tx)
}

func catalogStatus(err error) int {
	switch {
	case errors.Is(err, warehouse.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, warehouse.ErrNegativeStock):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
