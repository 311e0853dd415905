package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/aquawash/api/internal/database"
	"github.com/aquawash/api/internal/enum"
	"github.com/aquawash/api/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ServiceStore defines the database methods needed by service handlers.
type ServiceStore interface {
	CreateService(ctx context.Context, arg database.CreateServiceParams) (database.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (database.Service, error)
	ListServices(ctx context.Context, status pgtype.Text) ([]database.Service, error)
	UpdateServiceStatus(ctx context.Context, arg database.UpdateServiceStatusParams) (database.Service, error)
}

// ServiceHandler handles the laundry service catalog endpoints.
type ServiceHandler struct {
	store ServiceStore
}

func NewServiceHandler(store ServiceStore) *ServiceHandler {
	return &ServiceHandler{store: store}
}

// RegisterRoutes registers customer-facing catalog endpoints.
func (h *ServiceHandler) RegisterRoutes(r chi.Router) {
	r.Get("/services", h.List)
}

// RegisterAdminRoutes registers admin catalog management endpoints.
func (h *ServiceHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/admin/services", h.List)
	r.Post("/admin/services", h.Create)
	r.Get("/admin/services/{id}", h.Get)
	r.Patch("/admin/services/{id}/status", h.UpdateStatus)
}

type createServiceRequest struct {
	Name       string `json:"name"`
	PricePerKg string `json:"price_per_kg"`
	Icon       string `json:"icon"`
}

type updateServiceStatusRequest struct {
	Status string `json:"status"`
}

type serviceResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PricePerKg string    `json:"price_per_kg"`
	Icon       *string   `json:"icon"`
	Status     string    `json:"status"`
}

// List returns the service catalog. Customers only ever see active
// services; admins can pass ?status= to filter, or nothing for all.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	status := pgtype.Text{}
	if claims == nil || !claims.IsAdmin() {
		status = pgtype.Text{String: enum.ServiceStatusActive, Valid: true}
	} else if s := r.URL.Query().Get("status"); s != "" {
		if s != enum.ServiceStatusActive && s != enum.ServiceStatusInactive {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status filter"})
			return
		}
		status = pgtype.Text{String: s, Valid: true}
	}

	services, err := h.store.ListServices(r.Context(), status)
	if err != nil {
		log.Printf("ERROR: list services: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]serviceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, toServiceResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns one catalog entry regardless of its status.
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid service ID"})
		return
	}

	service, err := h.store.GetService(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "service not found"})
			return
		}
		log.Printf("ERROR: get service: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, toServiceResponse(service))
}

// Create adds a new service to the catalog.
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	price, err := decimal.NewFromString(req.PricePerKg)
	if err != nil || price.IsNegative() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "price_per_kg must be a non-negative number"})
		return
	}

	var priceNum pgtype.Numeric
	if err := priceNum.Scan(price.StringFixed(2)); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "price_per_kg must be a non-negative number"})
		return
	}

	icon := pgtype.Text{}
	if req.Icon != "" {
		icon = pgtype.Text{String: req.Icon, Valid: true}
	}

	service, err := h.store.CreateService(r.Context(), database.CreateServiceParams{
		Name:       req.Name,
		PricePerKg: priceNum,
		Icon:       icon,
		Status:     enum.ServiceStatusActive,
	})
	if err != nil {
		log.Printf("ERROR: create service: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, toServiceResponse(service))
}

// UpdateStatus activates or deactivates a service. Deactivation hides
// it from new orders without touching existing order items.
func (h *ServiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid service ID"})
		return
	}

	var req updateServiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Status != enum.ServiceStatusActive && req.Status != enum.ServiceStatusInactive {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "status must be ACTIVE or INACTIVE"})
		return
	}

	service, err := h.store.UpdateServiceStatus(r.Context(), database.UpdateServiceStatusParams{
		ID:     id,
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "service not found"})
			return
		}
		log.Printf("ERROR: update service status: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, toServiceResponse(service))
}

func toServiceResponse(s database.Service) serviceResponse {
	resp := serviceResponse{
		ID:     s.ID,
		Name:   s.Name,
		Status: s.Status,
	}
	if s.PricePerKg.Valid {
		resp.PricePerKg = numericToString(s.PricePerKg)
	}
	if s.Icon.Valid {
		resp.Icon = &s.Icon.String
	}
	return resp
}
