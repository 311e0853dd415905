package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/aquawash/api/internal/database"
	"github.com/aquawash/api/internal/grouping"
	"github.com/aquawash/api/internal/lifecycle"
	"github.com/aquawash/api/internal/middleware"
	"github.com/aquawash/api/internal/pricing"
	"github.com/aquawash/api/internal/service"
	"github.com/aquawash/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// finalPricePending is shown to customers until the order has been
// weighed and reached READY_FOR_DELIVERY.
const finalPricePending = "final price pending weighing"

// OrderServicer handles order placement business logic.
type OrderServicer interface {
	PlaceOrder(ctx context.Context, req service.PlaceOrderRequest) (*service.PlaceOrderResult, error)
}

// OrderStore defines the database methods needed by order handlers.
type OrderStore interface {
	GetOrder(ctx context.Context, id uuid.UUID) (database.Order, error)
	GetOrderForUser(ctx context.Context, arg database.GetOrderForUserParams) (database.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]database.Order, error)
	ListOrders(ctx context.Context, arg database.ListOrdersParams) ([]database.Order, error)
	ListOrderItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]database.ListOrderItemsByOrderRow, error)
	UpdateOrder(ctx context.Context, arg database.UpdateOrderParams) (database.Order, error)
	CancelOrder(ctx context.Context, id uuid.UUID) (database.Order, error)
	GetBooking(ctx context.Context, id uuid.UUID) (database.Booking, error)
}

// Notifier pushes order events to connected clients. Satisfied by *ws.Hub.
type Notifier interface {
	BroadcastToUser(userID uuid.UUID, event ws.Event)
	BroadcastToAdmins(event ws.Event)
}

// OrderHandler handles order endpoints for customers and admins.
type OrderHandler struct {
	svc      OrderServicer
	store    OrderStore
	notifier Notifier
}

func NewOrderHandler(svc OrderServicer, store OrderStore, notifier Notifier) *OrderHandler {
	return &OrderHandler{svc: svc, store: store, notifier: notifier}
}

// RegisterRoutes registers customer order endpoints.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/orders", h.Place)
	r.Get("/orders", h.ListMine)
	r.Get("/orders/{id}", h.GetDetail)
}

// RegisterAdminRoutes registers admin fulfilment endpoints.
func (h *OrderHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/admin/orders", h.AdminList)
	r.Get("/admin/orders/{id}", h.AdminGetDetail)
	r.Patch("/admin/orders/{id}/status", h.UpdateStatus)
	r.Get("/admin/orders/{id}/reconcile", h.ReconcilePreview)
	r.Put("/admin/orders/{id}/reconcile", h.Reconcile)
	r.Delete("/admin/orders/{id}", h.Cancel)
}

// --- Request / Response types ---

type placeOrderRequest struct {
	PickupTime string                  `json:"pickup_time"`
	Address    string                  `json:"address"`
	Note       string                  `json:"note"`
	Items      []placeOrderItemRequest `json:"items"`
}

type placeOrderItemRequest struct {
	ServiceID       string `json:"service_id"`
	ItemName        string `json:"item_name"`
	Quantity        int32  `json:"quantity"`
	EstimatedWeight string `json:"estimated_weight"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type reconcileRequest struct {
	Weights map[string]string `json:"weights"` // item ID -> weight input
}

type orderResponse struct {
	ID              uuid.UUID `json:"id"`
	OrderNumber     string    `json:"order_number"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"status_label"`
	CurrentStep     int       `json:"current_step"`
	EstimatedWeight string    `json:"estimated_weight"`
	EstimatedPrice  string    `json:"estimated_price"`
	FinalWeight     *string   `json:"final_weight"`
	FinalPrice      *string   `json:"final_price"`
	PriceNote       string    `json:"price_note,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type bookingResponse struct {
	ID         uuid.UUID `json:"id"`
	PickupTime time.Time `json:"pickup_time"`
	Address    string    `json:"address"`
	Note       *string   `json:"note"`
}

type groupedItemResponse struct {
	DisplayName     string `json:"display_name"`
	ItemName        string `json:"item_name,omitempty"`
	TotalQuantity   int32  `json:"total_quantity"`
	PricePerKg      string `json:"price_per_kg"`
	EstimatedWeight string `json:"estimated_weight"`
}

type timelineStep struct {
	Status    string `json:"status"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

type orderDetailResponse struct {
	orderResponse
	Booking  *bookingResponse      `json:"booking"`
	Items    []groupedItemResponse `json:"items"`
	Timeline []timelineStep        `json:"timeline"`
}

type reconcileItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceName string    `json:"service_name"`
	Quantity    int32     `json:"quantity"`
	PricePerKg  string    `json:"price_per_kg"`
	Weight      string    `json:"weight"`
}

type reconcileResponse struct {
	OrderID     uuid.UUID               `json:"order_id"`
	Items       []reconcileItemResponse `json:"items"`
	TotalWeight string                  `json:"total_weight"`
	TotalPrice  string                  `json:"total_price"`
}

// orderEventPayload is what goes over the wire on status changes.
type orderEventPayload struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
}

// --- Customer handlers ---

// Place creates a new order with its pickup booking and line items.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	items := make([]service.PlaceOrderItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.PlaceOrderItemRequest{
			ServiceID:       it.ServiceID,
			ItemName:        it.ItemName,
			Quantity:        it.Quantity,
			EstimatedWeight: it.EstimatedWeight,
		})
	}

	result, err := h.svc.PlaceOrder(r.Context(), service.PlaceOrderRequest{
		UserID:     claims.UserID,
		PickupTime: req.PickupTime,
		Address:    req.Address,
		Note:       req.Note,
		Items:      items,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyItems),
			errors.Is(err, service.ErrEmptyAddress),
			errors.Is(err, service.ErrInvalidPickup),
			errors.Is(err, service.ErrInvalidQuantity),
			errors.Is(err, service.ErrInvalidServiceID),
			errors.Is(err, service.ErrInvalidWeight):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, service.ErrServiceNotFound):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		default:
			log.Printf("ERROR: place order: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
		return
	}

	h.broadcastOrderEvent("order_created", result.Order)

	writeJSON(w, http.StatusCreated, toOrderResponse(result.Order))
}

// ListMine returns the authenticated customer's orders, newest first.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	orders, err := h.store.ListOrdersByUser(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("ERROR: list orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetDetail returns one of the customer's own orders with its booking,
// grouped display items and progress timeline.
func (h *OrderHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	order, err := h.store.GetOrderForUser(r.Context(), database.GetOrderForUserParams{
		ID:     id,
		UserID: claims.UserID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: get order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.respondOrderDetail(w, r, order)
}

// --- Admin handlers ---

// AdminList returns all orders with optional status filter and
// limit/offset pagination.
func (h *OrderHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	status := pgtype.Text{}
	if s := r.URL.Query().Get("status"); s != "" {
		if !lifecycle.IsValid(s) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status filter"})
			return
		}
		status = pgtype.Text{String: s, Valid: true}
	}

	limit := int32(20)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		if n > 100 {
			n = 100
		}
		limit = int32(n)
	}

	offset := int32(0)
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid offset"})
			return
		}
		offset = int32(n)
	}

	orders, err := h.store.ListOrders(r.Context(), database.ListOrdersParams{
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		log.Printf("ERROR: list orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toAdminOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, resp)
}

// AdminGetDetail returns any order with booking, items and timeline.
func (h *OrderHandler) AdminGetDetail(w http.ResponseWriter, r *http.Request) {
	order, ok := h.loadOrder(w, r)
	if !ok {
		return
	}
	h.respondOrderDetail(w, r, order)
}

// UpdateStatus moves an order along the fulfilment timeline. Only the
// status column is written; final weight and price are untouched.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	order, ok := h.loadOrder(w, r)
	if !ok {
		return
	}

	var req updateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := lifecycle.ValidateTarget(req.Status); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	updated, err := h.store.UpdateOrder(r.Context(), database.UpdateOrderParams{
		ID:     order.ID,
		Status: pgtype.Text{String: req.Status, Valid: true},
	})
	if err != nil {
		log.Printf("ERROR: update order status: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.broadcastOrderEvent("order_status_updated", updated)

	writeJSON(w, http.StatusOK, toAdminOrderResponse(updated))
}

// ReconcilePreview returns the weighing sheet for an order: every item
// with its seeded weight and the derived totals.
func (h *OrderHandler) ReconcilePreview(w http.ResponseWriter, r *http.Request) {
	order, ok := h.loadOrder(w, r)
	if !ok {
		return
	}

	calc, items, ok := h.loadCalculator(w, r, order)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, toReconcileResponse(order.ID, calc, items))
}

// Reconcile records actual per-item weights and persists the derived
// final weight and price. Status is untouched.
func (h *OrderHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	order, ok := h.loadOrder(w, r)
	if !ok {
		return
	}

	if lifecycle.IsTerminal(order.Status) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "cannot reconcile a " + lifecycle.Label(order.Status) + " order"})
		return
	}

	var req reconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	calc, items, ok := h.loadCalculator(w, r, order)
	if !ok {
		return
	}

	for rawID, rawWeight := range req.Weights {
		itemID, err := uuid.Parse(rawID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID " + rawID})
			return
		}
		calc.SetWeight(itemID, rawWeight)
	}

	updated, err := h.store.UpdateOrder(r.Context(), database.UpdateOrderParams{
		ID:          order.ID,
		FinalWeight: decimalToNumeric(calc.TotalWeight()),
		FinalPrice:  decimalToNumeric(calc.TotalPrice()),
	})
	if err != nil {
		log.Printf("ERROR: reconcile order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.broadcastOrderEvent("order_reconciled", updated)

	writeJSON(w, http.StatusOK, toReconcileResponse(updated.ID, calc, items))
}

// Cancel marks an order CANCELLED. The precondition lives in the SQL:
// terminal orders are not matched, and the follow-up read
// distinguishes "gone" from "already terminal" for the error message.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	cancelled, err := h.store.CancelOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			order, getErr := h.store.GetOrder(r.Context(), id)
			if getErr == nil {
				writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "cannot cancel a " + lifecycle.Label(order.Status) + " order"})
				return
			}
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: cancel order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.broadcastOrderEvent("order_cancelled", cancelled)

	writeJSON(w, http.StatusOK, toAdminOrderResponse(cancelled))
}

// --- Helpers ---

// loadOrder fetches the order from the URL param, writing the error
// response itself when it fails.
func (h *OrderHandler) loadOrder(w http.ResponseWriter, r *http.Request) (database.Order, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return database.Order{}, false
	}

	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return database.Order{}, false
		}
		log.Printf("ERROR: get order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return database.Order{}, false
	}
	return order, true
}

// loadCalculator builds the weighing calculator for an order, seeded
// from a previous reconciliation when one exists.
func (h *OrderHandler) loadCalculator(w http.ResponseWriter, r *http.Request, order database.Order) (*pricing.Calculator, []pricing.Item, bool) {
	rows, err := h.store.ListOrderItemsByOrder(r.Context(), order.ID)
	if err != nil {
		log.Printf("ERROR: list order items: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return nil, nil, false
	}

	items := make([]pricing.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, pricing.Item{
			ID:              row.ID,
			ServiceName:     row.ServiceName,
			Quantity:        row.Quantity,
			EstimatedWeight: numericToDecimal(row.EstimatedWeight),
			PricePerKg:      numericToDecimal(row.PricePerKg),
		})
	}

	calc := pricing.NewCalculator(items, numericToDecimal(order.FinalWeight), order.FinalWeight.Valid)
	return calc, items, true
}

func (h *OrderHandler) respondOrderDetail(w http.ResponseWriter, r *http.Request, order database.Order) {
	rows, err := h.store.ListOrderItemsByOrder(r.Context(), order.ID)
	if err != nil {
		log.Printf("ERROR: list order items: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	items := make([]grouping.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, grouping.Item{
			ID:              row.ID,
			ServiceName:     row.ServiceName,
			ItemName:        row.ItemName.String,
			Quantity:        row.Quantity,
			PricePerKg:      numericToDecimal(row.PricePerKg),
			EstimatedWeight: numericToDecimal(row.EstimatedWeight),
			FinalWeight:     numericToDecimal(row.FinalWeight),
		})
	}

	grouped := grouping.GroupItems(items)
	groupedResp := make([]groupedItemResponse, 0, len(grouped))
	for _, g := range grouped {
		groupedResp = append(groupedResp, groupedItemResponse{
			DisplayName:     g.DisplayName,
			ItemName:        g.ItemName,
			TotalQuantity:   g.TotalQuantity,
			PricePerKg:      g.PricePerKg.String(),
			EstimatedWeight: g.EstimatedWeight.String(),
		})
	}

	detail := orderDetailResponse{
		orderResponse: toOrderResponse(order),
		Items:         groupedResp,
		Timeline:      buildTimeline(order.Status),
	}

	booking, err := h.store.GetBooking(r.Context(), order.BookingID)
	if err == nil {
		b := bookingResponse{
			ID:         booking.ID,
			PickupTime: booking.PickupTime,
			Address:    booking.Address,
		}
		if booking.Note.Valid {
			b.Note = &booking.Note.String
		}
		detail.Booking = &b
	} else if !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("ERROR: get booking: %v", err)
	}

	writeJSON(w, http.StatusOK, detail)
}

func buildTimeline(status string) []timelineStep {
	current := lifecycle.CurrentStepIndex(status)
	steps := make([]timelineStep, 0, len(lifecycle.ProgressSteps))
	for i, s := range lifecycle.ProgressSteps {
		steps = append(steps, timelineStep{
			Status:    s,
			Label:     lifecycle.Label(s),
			Completed: i <= current,
		})
	}
	return steps
}

// toOrderResponse builds the customer view: final weight and price are
// hidden behind the finality rule.
func toOrderResponse(o database.Order) orderResponse {
	resp := orderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		Status:          o.Status,
		StatusLabel:     lifecycle.Label(o.Status),
		CurrentStep:     lifecycle.CurrentStepIndex(o.Status),
		EstimatedWeight: numericToString(o.EstimatedWeight),
		EstimatedPrice:  numericToString(o.EstimatedPrice),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	// The placeholder covers every state where the rule fails, including
	// a delivered order that was never weighed.
	if lifecycle.FinalPriceVisible(o.Status, o.FinalWeight.Valid) {
		fw := numericToString(o.FinalWeight)
		fp := numericToString(o.FinalPrice)
		resp.FinalWeight = &fw
		resp.FinalPrice = &fp
	} else {
		resp.PriceNote = finalPricePending
	}

	return resp
}

// toAdminOrderResponse builds the admin view: reconciled fields are
// always visible once set.
func toAdminOrderResponse(o database.Order) orderResponse {
	resp := orderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		Status:          o.Status,
		StatusLabel:     lifecycle.Label(o.Status),
		CurrentStep:     lifecycle.CurrentStepIndex(o.Status),
		EstimatedWeight: numericToString(o.EstimatedWeight),
		EstimatedPrice:  numericToString(o.EstimatedPrice),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.FinalWeight.Valid {
		fw := numericToString(o.FinalWeight)
		resp.FinalWeight = &fw
	}
	if o.FinalPrice.Valid {
		fp := numericToString(o.FinalPrice)
		resp.FinalPrice = &fp
	}
	return resp
}

func toReconcileResponse(orderID uuid.UUID, calc *pricing.Calculator, items []pricing.Item) reconcileResponse {
	itemsResp := make([]reconcileItemResponse, 0, len(items))
	for _, item := range items {
		itemsResp = append(itemsResp, reconcileItemResponse{
			ID:          item.ID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			PricePerKg:  item.PricePerKg.String(),
			Weight:      calc.Weight(item.ID).String(),
		})
	}
	return reconcileResponse{
		OrderID:     orderID,
		Items:       itemsResp,
		TotalWeight: calc.TotalWeight().String(),
		TotalPrice:  calc.TotalPrice().String(),
	}
}

func (h *OrderHandler) broadcastOrderEvent(eventType string, o database.Order) {
	if h.notifier == nil {
		return
	}

	payload, err := json.Marshal(orderEventPayload{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		StatusLabel: lifecycle.Label(o.Status),
	})
	if err != nil {
		log.Printf("ERROR: marshal order event: %v", err)
		return
	}

	event := ws.Event{Type: eventType, Payload: payload}
	h.notifier.BroadcastToUser(o.UserID, event)
	h.notifier.BroadcastToAdmins(event)
}

// --- numeric helpers ---

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	val, err := n.Value()
	if err != nil || val == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(val.(string))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func numericToString(n pgtype.Numeric) string {
	return numericToDecimal(n).String()
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(d.StringFixed(2))
	return n
}
