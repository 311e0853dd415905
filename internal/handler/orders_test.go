package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aquawash/api/internal/database"
	"github.com/aquawash/api/internal/enum"
	"github.com/aquawash/api/internal/service"
	"github.com/aquawash/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type mockOrderServicer struct {
	PlaceOrderFn func(ctx context.Context, req service.PlaceOrderRequest) (*service.PlaceOrderResult, error)
}

func (m *mockOrderServicer) PlaceOrder(ctx context.Context, req service.PlaceOrderRequest) (*service.PlaceOrderResult, error) {
	return m.PlaceOrderFn(ctx, req)
}

type mockOrderStore struct {
	GetOrderFn              func(ctx context.Context, id uuid.UUID) (database.Order, error)
	GetOrderForUserFn       func(ctx context.Context, arg database.GetOrderForUserParams) (database.Order, error)
	ListOrdersByUserFn      func(ctx context.Context, userID uuid.UUID) ([]database.Order, error)
	ListOrdersFn            func(ctx context.Context, arg database.ListOrdersParams) ([]database.Order, error)
	ListOrderItemsByOrderFn func(ctx context.Context, orderID uuid.UUID) ([]database.ListOrderItemsByOrderRow, error)
	UpdateOrderFn           func(ctx context.Context, arg database.UpdateOrderParams) (database.Order, error)
	CancelOrderFn           func(ctx context.Context, id uuid.UUID) (database.Order, error)
	GetBookingFn            func(ctx context.Context, id uuid.UUID) (database.Booking, error)
}

func (m *mockOrderStore) GetOrder(ctx context.Context, id uuid.UUID) (database.Order, error) {
	return m.GetOrderFn(ctx, id)
}

func (m *mockOrderStore) GetOrderForUser(ctx context.Context, arg database.GetOrderForUserParams) (database.Order, error) {
	return m.GetOrderForUserFn(ctx, arg)
}

func (m *mockOrderStore) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]database.Order, error) {
	return m.ListOrdersByUserFn(ctx, userID)
}

func (m *mockOrderStore) ListOrders(ctx context.Context, arg database.ListOrdersParams) ([]database.Order, error) {
	return m.ListOrdersFn(ctx, arg)
}

func (m *mockOrderStore) ListOrderItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]database.ListOrderItemsByOrderRow, error) {
	return m.ListOrderItemsByOrderFn(ctx, orderID)
}

func (m *mockOrderStore) UpdateOrder(ctx context.Context, arg database.UpdateOrderParams) (database.Order, error) {
	return m.UpdateOrderFn(ctx, arg)
}

func (m *mockOrderStore) CancelOrder(ctx context.Context, id uuid.UUID) (database.Order, error) {
	return m.CancelOrderFn(ctx, id)
}

func (m *mockOrderStore) GetBooking(ctx context.Context, id uuid.UUID) (database.Booking, error) {
	return m.GetBookingFn(ctx, id)
}

type broadcastCall struct {
	userID  uuid.UUID
	toAdmin bool
	event   ws.Event
}

type mockNotifier struct {
	calls []broadcastCall
}

func (m *mockNotifier) BroadcastToUser(userID uuid.UUID, event ws.Event) {
	m.calls = append(m.calls, broadcastCall{userID: userID, event: event})
}

func (m *mockNotifier) BroadcastToAdmins(event ws.Event) {
	m.calls = append(m.calls, broadcastCall{toAdmin: true, event: event})
}

func (m *mockNotifier) eventTypes() []string {
	types := make([]string, 0, len(m.calls))
	for _, c := range m.calls {
		types = append(types, c.event.Type)
	}
	return types
}

func newOrderRouter(svc OrderServicer, store OrderStore, notifier Notifier) *chi.Mux {
	h := NewOrderHandler(svc, store, notifier)
	return newTestRouter(h.RegisterRoutes, h.RegisterAdminRoutes)
}

func sampleOrder(t *testing.T, userID uuid.UUID, status string) database.Order {
	t.Helper()
	return database.Order{
		ID:              uuid.New(),
		UserID:          userID,
		BookingID:       uuid.New(),
		OrderNumber:     "AW1756600000000",
		Status:          status,
		EstimatedWeight: makeNumeric(t, "3.00"),
		EstimatedPrice:  makeNumeric(t, "180.00"),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

// --- Placement ---

func TestPlaceOrder_Success(t *testing.T) {
	userID := uuid.New()
	notifier := &mockNotifier{}

	svc := &mockOrderServicer{
		PlaceOrderFn: func(ctx context.Context, req service.PlaceOrderRequest) (*service.PlaceOrderResult, error) {
			if req.UserID != userID {
				t.Errorf("placed for wrong user: %s", req.UserID)
			}
			return &service.PlaceOrderResult{
				Order: sampleOrder(t, userID, enum.OrderStatusPending),
			}, nil
		},
	}

	body := map[string]interface{}{
		"pickup_time": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"address":     "12 Main St",
		"items": []map[string]interface{}{
			{"service_id": uuid.NewString(), "quantity": 2},
		},
	}
	rec := doRequest(t, newOrderRouter(svc, &mockOrderStore{}, notifier), http.MethodPost, "/orders", body, userID, enum.UserRoleCustomer)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp orderResponse
	decodeBody(t, rec, &resp)
	if resp.OrderNumber == "" || resp.OrderNumber[:2] != "AW" {
		t.Errorf("order number %q missing AW prefix", resp.OrderNumber)
	}
	if resp.Status != enum.OrderStatusPending {
		t.Errorf("status = %s, want PENDING", resp.Status)
	}

	types := notifier.eventTypes()
	if len(types) != 2 || types[0] != "order_created" || types[1] != "order_created" {
		t.Errorf("expected order_created broadcast to user and admins, got %v", types)
	}
}

func TestPlaceOrder_ValidationErrorMapsTo400(t *testing.T) {
	svc := &mockOrderServicer{
		PlaceOrderFn: func(ctx context.Context, req service.PlaceOrderRequest) (*service.PlaceOrderResult, error) {
			return nil, service.ErrEmptyAddress
		},
	}
	notifier := &mockNotifier{}

	body := map[string]interface{}{"items": []map[string]interface{}{{"service_id": uuid.NewString(), "quantity": 1}}}
	rec := doRequest(t, newOrderRouter(svc, &mockOrderStore{}, notifier), http.MethodPost, "/orders", body, uuid.New(), enum.UserRoleCustomer)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(notifier.calls) != 0 {
		t.Error("no broadcast expected on failure")
	}
}

func TestPlaceOrder_InactiveServiceMapsTo422(t *testing.T) {
	svc := &mockOrderServicer{
		PlaceOrderFn: func(ctx context.Context, req service.PlaceOrderRequest) (*service.PlaceOrderResult, error) {
			return nil, service.ErrServiceNotFound
		},
	}

	body := map[string]interface{}{
		"pickup_time": time.Now().Format(time.RFC3339),
		"address":     "12 Main St",
		"items":       []map[string]interface{}{{"service_id": uuid.NewString(), "quantity": 1}},
	}
	rec := doRequest(t, newOrderRouter(svc, &mockOrderStore{}, &mockNotifier{}), http.MethodPost, "/orders", body, uuid.New(), enum.UserRoleCustomer)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

// --- Customer reads ---

func TestListMyOrders(t *testing.T) {
	userID := uuid.New()
	store := &mockOrderStore{
		ListOrdersByUserFn: func(ctx context.Context, id uuid.UUID) ([]database.Order, error) {
			if id != userID {
				t.Errorf("listed wrong user: %s", id)
			}
			return []database.Order{
				sampleOrder(t, userID, enum.OrderStatusInProcess),
				sampleOrder(t, userID, enum.OrderStatusDelivered),
			}, nil
		},
	}

	rec := doRequest(t, newOrderRouter(nil, store, nil), http.MethodGet, "/orders", nil, userID, enum.UserRoleCustomer)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp []orderResponse
	decodeBody(t, rec, &resp)
	if len(resp) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(resp))
	}
	if resp[0].CurrentStep != 2 {
		t.Errorf("IN_PROCESS step = %d, want 2", resp[0].CurrentStep)
	}
}

func TestGetOrderDetail_GroupsItemsAndTimeline(t *testing.T) {
	userID := uuid.New()
	order := sampleOrder(t, userID, enum.OrderStatusPickedUp)

	store := &mockOrderStore{
		GetOrderForUserFn: func(ctx context.Context, arg database.GetOrderForUserParams) (database.Order, error) {
			return order, nil
		},
		ListOrderItemsByOrderFn: func(ctx context.Context, orderID uuid.UUID) ([]database.ListOrderItemsByOrderRow, error) {
			return []database.ListOrderItemsByOrderRow{
				{ID: uuid.New(), ServiceName: "Wash & Fold", Quantity: 2, PricePerKg: makeNumeric(t, "60"), EstimatedWeight: makeNumeric(t, "1.0")},
				{ID: uuid.New(), ServiceName: "Wash And Fold", Quantity: 3, PricePerKg: makeNumeric(t, "60"), EstimatedWeight: makeNumeric(t, "1.5")},
				{ID: uuid.New(), ServiceName: "Ironing", Quantity: 1, PricePerKg: makeNumeric(t, "40"), EstimatedWeight: makeNumeric(t, "0.5")},
			}, nil
		},
		GetBookingFn: func(ctx context.Context, id uuid.UUID) (database.Booking, error) {
			return database.Booking{ID: id, PickupTime: time.Now(), Address: "12 Main St"}, nil
		},
	}

	rec := doRequest(t, newOrderRouter(nil, store, nil), http.MethodGet, "/orders/"+order.ID.String(), nil, userID, enum.UserRoleCustomer)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp orderDetailResponse
	decodeBody(t, rec, &resp)

	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 grouped items, got %d", len(resp.Items))
	}
	if resp.Items[0].DisplayName != "Wash & Fold" {
		t.Errorf("display name = %q, want Wash & Fold", resp.Items[0].DisplayName)
	}
	if resp.Items[0].TotalQuantity != 5 {
		t.Errorf("grouped quantity = %d, want 5", resp.Items[0].TotalQuantity)
	}

	if len(resp.Timeline) != 5 {
		t.Fatalf("expected 5 timeline steps, got %d", len(resp.Timeline))
	}
	// PICKED_UP is step 1: CONFIRMED and PICKED_UP done, rest pending.
	wantCompleted := []bool{true, true, false, false, false}
	for i, step := range resp.Timeline {
		if step.Completed != wantCompleted[i] {
			t.Errorf("step %s completed = %v, want %v", step.Status, step.Completed, wantCompleted[i])
		}
	}

	if resp.Booking == nil || resp.Booking.Address != "12 Main St" {
		t.Errorf("expected embedded booking, got %+v", resp.Booking)
	}
}

func TestGetOrderDetail_FinalPricePendingUntilReady(t *testing.T) {
	userID := uuid.New()
	order := sampleOrder(t, userID, enum.OrderStatusInProcess)
	order.FinalWeight = makeNumeric(t, "1.50")
	order.FinalPrice = makeNumeric(t, "125.00")

	store := &mockOrderStore{
		GetOrderForUserFn: func(ctx context.Context, arg database.GetOrderForUserParams) (database.Order, error) {
			return order, nil
		},
		ListOrderItemsByOrderFn: func(ctx context.Context, orderID uuid.UUID) ([]database.ListOrderItemsByOrderRow, error) {
			return nil, nil
		},
		GetBookingFn: func(ctx context.Context, id uuid.UUID) (database.Booking, error) {
			return database.Booking{}, pgx.ErrNoRows
		},
	}

	rec := doRequest(t, newOrderRouter(nil, store, nil), http.MethodGet, "/orders/"+order.ID.String(), nil, userID, enum.UserRoleCustomer)

	var resp orderDetailResponse
	decodeBody(t, rec, &resp)

	if resp.FinalPrice != nil || resp.FinalWeight != nil {
		t.Error("final fields must stay hidden before READY_FOR_DELIVERY")
	}
	if resp.PriceNote != finalPricePending {
		t.Errorf("price_note = %q, want %q", resp.PriceNote, finalPricePending)
	}
}

func TestGetOrderDetail_DeliveredWithoutWeighingShowsPlaceholder(t *testing.T) {
	userID := uuid.New()
	order := sampleOrder(t, userID, enum.OrderStatusDelivered)
	// Never weighed: final weight and price stay NULL.

	store := &mockOrderStore{
		GetOrderForUserFn: func(ctx context.Context, arg database.GetOrderForUserParams) (database.Order, error) {
			return order, nil
		},
		ListOrderItemsByOrderFn: func(ctx context.Context, orderID uuid.UUID) ([]database.ListOrderItemsByOrderRow, error) {
			return nil, nil
		},
		GetBookingFn: func(ctx context.Context, id uuid.UUID) (database.Booking, error) {
			return database.Booking{}, pgx.ErrNoRows
		},
	}

	rec := doRequest(t, newOrderRouter(nil, store, nil), http.MethodGet, "/orders/"+order.ID.String(), nil, userID, enum.UserRoleCustomer)

	var resp orderDetailResponse
	decodeBody(t, rec, &resp)

	if resp.FinalPrice != nil || resp.FinalWeight != nil {
		t.Error("unweighed order must not show final fields, delivered or not")
	}
	if resp.PriceNote != finalPricePending {
		t.Errorf("price_note = %q, want %q", resp.PriceNote, finalPricePending)
	}
}

func TestGetOrderDetail_FinalPriceVisibleWhenReady(t *testing.T) {
	userID := uuid.New()
	order := sampleOrder(t, userID, enum.OrderStatusReadyForDelivery)
	order.FinalWeight = makeNumeric(t, "1.50")
	order.FinalPrice = makeNumeric(t, "125.00")

	store := &mockOrderStore{
		GetOrderForUserFn: func(ctx context.Context, arg database.GetOrderForUserParams) (database.Order, error) {
			return order, nil
		},
		ListOrderItemsByOrderFn: func(ctx context.Context, orderID uuid.UUID) ([]database.ListOrderItemsByOrderRow, error) {
			return nil, nil
		},
		GetBookingFn: func(ctx context.Context, id uuid.UUID) (database.Booking, error) {
			return database.Booking{}, pgx.ErrNoRows
		},
	}

	rec := doRequest(t, newOrderRouter(nil, store, nil), http.MethodGet, "/orders/"+order.ID.String(), nil, userID, enum.UserRoleCustomer)

	var resp orderDetailResponse
	decodeBody(t, rec, &resp)

	if resp.FinalPrice == nil || *resp.FinalPrice != "125" {
		t.Errorf("final_price = %v, want 125", resp.FinalPrice)
	}
	if resp.FinalWeight == nil || *resp.FinalWeight != "1.5" {
		t.Errorf("final_weight = %v, want 1.5", resp.FinalWeight)
	}
	if resp.PriceNote != "" {
		t.Errorf("no price note expected, got %q", resp.PriceNote)
	}
}

func TestGetOrderDetail_OtherUsersOrderIs404(t *testing.T) {
	store := &mockOrderStore{
		GetOrderForUserFn: func(ctx context.Context, arg database.GetOrderForUserParams) (database.Order, error) {
			return database.Order{}, pgx.ErrNoRows
		},
	}

	rec := doRequest(t, newOrderRouter(nil, store, nil), http.MethodGet, "/orders/"+uuid.NewString(), nil, uuid.New(), enum.UserRoleCustomer)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

// --- Admin fulfilment ---

func TestUpdateOrderStatus_OnlyWritesStatus(t *testing.T) {
	order := sampleOrder(t, uuid.New(), enum.OrderStatusConfirmed)
	var captured database.UpdateOrderParams
	notifier := &mockNotifier{}

	store := &mockOrderStore{
		GetOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return order, nil
		},
		UpdateOrderFn: func(ctx context.Context, arg database.UpdateOrderParams) (database.Order, error) {
			captured = arg
			updated := order
			updated.Status = arg.Status.String
			return updated, nil
		},
	}

	body := map[string]string{"status": enum.OrderStatusPickedUp}
	rec := doRequest(t, newOrderRouter(nil, store, notifier), http.MethodPatch, "/admin/orders/"+order.ID.String()+"/status", body, uuid.New(), enum.UserRoleAdmin)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if !captured.Status.Valid || captured.Status.String != enum.OrderStatusPickedUp {
		t.Errorf("status param = %+v, want PICKED_UP", captured.Status)
	}
	if captured.FinalWeight.Valid || captured.FinalPrice.Valid {
		t.Error("status update must leave final weight and price untouched")
	}

	types := notifier.eventTypes()
	if len(types) != 2 || types[0] != "order_status_updated" {
		t.Errorf("expected order_status_updated broadcasts, got %v", types)
	}
}

func TestUpdateOrderStatus_UnknownStatusRejected(t *testing.T) {
	order := sampleOrder(t, uuid.New(), enum.OrderStatusConfirmed)
	store := &mockOrderStore{
		GetOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return order, nil
		},
		UpdateOrderFn: func(ctx context.Context, arg database.UpdateOrderParams) (database.Order, error) {
			t.Fatal("UpdateOrder should not be called")
			return database.Order{}, nil
		},
	}

	body := map[string]string{"status": "SHIPPED"}
	rec := doRequest(t, newOrderRouter(nil, store, nil), http.MethodPatch, "/admin/orders/"+order.ID.String()+"/status", body, uuid.New(), enum.UserRoleAdmin)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestUpdateOrderStatus_PermitsBackwardAndTerminalMoves(t *testing.T) {
	// Admins may write any known status, including moving a delivered
	// order back onto the timeline.
	for _, from := range []string{enum.OrderStatusDelivered, enum.OrderStatusCancelled, enum.OrderStatusInProcess} {
		order := sampleOrder(t, uuid.New(), from)
		store := &mockOrderStore{
			GetOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
				return order, nil
			},
			UpdateOrderFn: func(ctx context.Context, arg database.UpdateOrderParams) (database.Order, error) {
				updated := order
				updated.Status = arg.Status.String
				return updated, nil
			},
		}

		body := map[string]string{"status": enum.OrderStatusConfirmed}
		rec := doRequest(t, newOrderRouter(nil, store, &mockNotifier{}), http.MethodPatch, "/admin/orders/"+order.ID.String()+"/status", body, uuid.New(), enum.UserRoleAdmin)

		if rec.Code != http.StatusOK {
			t.Errorf("from %s: expected 200, got %d: %s", from, rec.Code, rec.Body.String())
			continue
		}

		var resp orderResponse
		decodeBody(t, rec, &resp)
		if resp.Status != enum.OrderStatusConfirmed {
			t.Errorf("from %s: status = %s, want CONFIRMED", from, resp.Status)
		}
	}
}

func TestReconcilePreview_SeedsGuidelineDefaults(t *testing.T) {
	order := sampleOrder(t, uuid.New(), enum.OrderStatusInProcess)
	itemID := uuid.New()

	store := &mockOrderStore{
		GetOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return order, nil
		},
		ListOrderItemsByOrderFn: func(ctx context.Context, orderID uuid.UUID) ([]database.ListOrderItemsByOrderRow, error) {
			return []database.ListOrderItemsByOrderRow{
				{ID: itemID, ServiceName: "Bedsheet Cleaning", Quantity: 5, PricePerKg: makeNumeric(t, "80")},
			}, nil
		},
	}

	rec := doRequest(t, newOrderRouter(nil, store, nil), http.MethodGet, "/admin/orders/"+order.ID.String()+"/reconcile", nil, uuid.New(), enum.UserRoleAdmin)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp reconcileResponse
	decodeBody(t, rec, &resp)

	// Bedsheet guideline midpoint 0.6 kg x 5 pieces.
	if resp.Items[0].Weight != "3" {
		t.Errorf("seeded weight = %s, want 3", resp.Items[0].Weight)
	}
	if resp.TotalWeight != "3" {
		t.Errorf("total weight = %s, want 3", resp.TotalWeight)
	}
	if resp.TotalPrice != "240" {
		t.Errorf("total price = %s, want 240", resp.TotalPrice)
	}
}

func TestReconcile_PersistsDerivedTotals(t *testing.T) {
	order := sampleOrder(t, uuid.New(), enum.OrderStatusInProcess)
	itemID := uuid.New()
	var captured database.UpdateOrderParams
	notifier := &mockNotifier{}

	store := &mockOrderStore{
		GetOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return order, nil
		},
		ListOrderItemsByOrderFn: func(ctx context.Context, orderID uuid.UUID) ([]database.ListOrderItemsByOrderRow, error) {
			return []database.ListOrderItemsByOrderRow{
				{ID: itemID, ServiceName: "Wash & Fold", Quantity: 3, PricePerKg: makeNumeric(t, "100"), EstimatedWeight: makeNumeric(t, "2.0")},
			}, nil
		},
		UpdateOrderFn: func(ctx context.Context, arg database.UpdateOrderParams) (database.Order, error) {
			captured = arg
			updated := order
			updated.FinalWeight = arg.FinalWeight
			updated.FinalPrice = arg.FinalPrice
			return updated, nil
		},
	}

	body := map[string]interface{}{"weights": map[string]string{itemID.String(): "1.5"}}
	rec := doRequest(t, newOrderRouter(nil, store, notifier), http.MethodPut, "/admin/orders/"+order.ID.String()+"/reconcile", body, uuid.New(), enum.UserRoleAdmin)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if !numericEquals(captured.FinalWeight, "1.50") {
		t.Errorf("final_weight = %v, want 1.50", captured.FinalWeight)
	}
	if !numericEquals(captured.FinalPrice, "150.00") {
		t.Errorf("final_price = %v, want 150.00", captured.FinalPrice)
	}
	if captured.Status.Valid {
		t.Error("reconciliation must not touch the status column")
	}

	var resp reconcileResponse
	decodeBody(t, rec, &resp)
	if resp.TotalWeight != "1.5" || resp.TotalPrice != "150" {
		t.Errorf("totals = %s / %s, want 1.5 / 150", resp.TotalWeight, resp.TotalPrice)
	}

	types := notifier.eventTypes()
	if len(types) != 2 || types[0] != "order_reconciled" {
		t.Errorf("expected order_reconciled broadcasts, got %v", types)
	}
}

func TestReconcile_TerminalOrderRejected(t *testing.T) {
	order := sampleOrder(t, uuid.New(), enum.OrderStatusCancelled)
	store := &mockOrderStore{
		GetOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return order, nil
		},
	}

	body := map[string]interface{}{"weights": map[string]string{}}
	rec := doRequest(t, newOrderRouter(nil, store, nil), http.MethodPut, "/admin/orders/"+order.ID.String()+"/reconcile", body, uuid.New(), enum.UserRoleAdmin)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCancelOrder_Success(t *testing.T) {
	order := sampleOrder(t, uuid.New(), enum.OrderStatusConfirmed)
	notifier := &mockNotifier{}

	store := &mockOrderStore{
		CancelOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			cancelled := order
			cancelled.Status = enum.OrderStatusCancelled
			return cancelled, nil
		},
	}

	rec := doRequest(t, newOrderRouter(nil, store, notifier), http.MethodDelete, "/admin/orders/"+order.ID.String(), nil, uuid.New(), enum.UserRoleAdmin)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp orderResponse
	decodeBody(t, rec, &resp)
	if resp.Status != enum.OrderStatusCancelled {
		t.Errorf("status = %s, want CANCELLED", resp.Status)
	}

	types := notifier.eventTypes()
	if len(types) != 2 || types[0] != "order_cancelled" {
		t.Errorf("expected order_cancelled broadcasts, got %v", types)
	}
}

func TestCancelOrder_AlreadyTerminal(t *testing.T) {
	order := sampleOrder(t, uuid.New(), enum.OrderStatusDelivered)
	store := &mockOrderStore{
		CancelOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return database.Order{}, pgx.ErrNoRows
		},
		GetOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return order, nil
		},
	}

	rec := doRequest(t, newOrderRouter(nil, store, nil), http.MethodDelete, "/admin/orders/"+order.ID.String(), nil, uuid.New(), enum.UserRoleAdmin)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCancelOrder_NotFound(t *testing.T) {
	store := &mockOrderStore{
		CancelOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return database.Order{}, pgx.ErrNoRows
		},
		GetOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return database.Order{}, pgx.ErrNoRows
		},
	}

	rec := doRequest(t, newOrderRouter(nil, store, nil), http.MethodDelete, "/admin/orders/"+uuid.NewString(), nil, uuid.New(), enum.UserRoleAdmin)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAdminListOrders_Pagination(t *testing.T) {
	var captured database.ListOrdersParams
	store := &mockOrderStore{
		ListOrdersFn: func(ctx context.Context, arg database.ListOrdersParams) ([]database.Order, error) {
			captured = arg
			return nil, nil
		},
	}

	rec := doRequest(t, newOrderRouter(nil, store, nil), http.MethodGet, "/admin/orders?limit=500&offset=40&status=PENDING", nil, uuid.New(), enum.UserRoleAdmin)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Limit != 100 {
		t.Errorf("limit = %d, want clamp to 100", captured.Limit)
	}
	if captured.Offset != 40 {
		t.Errorf("offset = %d, want 40", captured.Offset)
	}
	if !captured.Status.Valid || captured.Status.String != enum.OrderStatusPending {
		t.Errorf("status filter = %+v, want PENDING", captured.Status)
	}
}

func TestAdminListOrders_InvalidStatus(t *testing.T) {
	store := &mockOrderStore{
		ListOrdersFn: func(ctx context.Context, arg database.ListOrdersParams) ([]database.Order, error) {
			t.Fatal("ListOrders should not be called")
			return nil, nil
		},
	}

	rec := doRequest(t, newOrderRouter(nil, store, nil), http.MethodGet, "/admin/orders?status=SHIPPED", nil, uuid.New(), enum.UserRoleAdmin)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCustomerCannotReachAdminOrders(t *testing.T) {
	rec := doRequest(t, newOrderRouter(nil, &mockOrderStore{}, nil), http.MethodGet, "/admin/orders", nil, uuid.New(), enum.UserRoleCustomer)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
