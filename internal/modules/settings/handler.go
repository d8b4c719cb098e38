package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mzumara/wms-backend/internal/modules/auth"
	"github.com/mzumara/wms-backend/internal/modules/warehouse"
)

// Handler exposes the settings endpoints.
type Handler struct {
	service Service
	authMW  *auth.Middleware
}

func NewHandler(service Service, authMW *auth.Middleware) *Handler {
	return &Handler{service: service, authMW: authMW}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/settings", func(r chi.Router) {
		r.Get("/", h.get)
		r.With(h.authMW.RequireUser).Put("/", h.update)
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Get(r.Context()))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req warehouse.UISettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ui, err := h.service.Update(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, warehouse.ErrInvalidSettings) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	respond(w, http.StatusOK, ui)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
