package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aquawash/api/internal/database"
	"github.com/aquawash/api/internal/enum"
	"github.com/aquawash/api/internal/pricing"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const maxOrderNumberRetries = 3

// Errors returned by the order service.
var (
	ErrEmptyItems       = errors.New("items are required")
	ErrEmptyAddress     = errors.New("address is required")
	ErrInvalidPickup    = errors.New("invalid pickup_time")
	ErrInvalidQuantity  = errors.New("quantity must be > 0")
	ErrInvalidServiceID = errors.New("invalid service_id")
	ErrServiceNotFound  = errors.New("service not found or inactive")
	ErrInvalidWeight    = errors.New("invalid estimated_weight")
)

// TxBeginner starts a new database transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// BookingStore creates the pickup booking. The booking insert is its
// own statement, outside the order transaction: if order creation fails
// afterwards the booking row is orphaned, which is the accepted failure
// mode of the placement flow.
type BookingStore interface {
	CreateBooking(ctx context.Context, arg database.CreateBookingParams) (database.Booking, error)
}

// OrderStore defines the DB methods needed to create orders.
// Satisfied by *database.Queries (and its WithTx variant).
type OrderStore interface {
	GetActiveService(ctx context.Context, id uuid.UUID) (database.Service, error)
	CreateOrder(ctx context.Context, arg database.CreateOrderParams) (database.Order, error)
	CreateOrderItem(ctx context.Context, arg database.CreateOrderItemParams) (database.OrderItem, error)
}

// NewOrderStore creates an OrderStore from a DBTX (pool or tx).
// This allows the service to create store instances from transactions.
type NewOrderStore func(db database.DBTX) OrderStore

// PlaceOrderRequest is the validated input for placing an order.
type PlaceOrderRequest struct {
	UserID     uuid.UUID
	PickupTime string // RFC3339
	Address    string
	Note       string
	Items      []PlaceOrderItemRequest
}

// PlaceOrderItemRequest is a single line item in the order.
type PlaceOrderItemRequest struct {
	ServiceID       string
	ItemName        string
	Quantity        int32
	EstimatedWeight string // optional decimal; guideline default when empty
}

// PlaceOrderResult is the full created order with booking and items.
type PlaceOrderResult struct {
	Booking database.Booking
	Order   database.Order
	Items   []database.OrderItem
}

// OrderService handles order placement.
type OrderService struct {
	pool     TxBeginner
	bookings BookingStore
	newStore NewOrderStore
}

// NewOrderService creates a new OrderService.
func NewOrderService(pool TxBeginner, bookings BookingStore, newStore NewOrderStore) *OrderService {
	return &OrderService{pool: pool, bookings: bookings, newStore: newStore}
}

// processedItem holds a prepared order item insert.
type processedItem struct {
	params database.CreateOrderItemParams
}

// PlaceOrder validates the request, creates the pickup booking, then
// creates the order and its items in one transaction. Estimated totals
// are computed from the catalog's per-kg prices at placement time.
// Retries up to maxOrderNumberRetries times on order_number unique
// constraint violations.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResult, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if req.Address == "" {
		return nil, ErrEmptyAddress
	}
	pickupTime, err := time.Parse(time.RFC3339, req.PickupTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPickup, err)
	}
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("items[%d]: %w", i, ErrInvalidQuantity)
		}
		if _, err := uuid.Parse(item.ServiceID); err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, ErrInvalidServiceID)
		}
	}

	note := pgtype.Text{}
	if req.Note != "" {
		note = pgtype.Text{String: req.Note, Valid: true}
	}

	booking, err := s.bookings.CreateBooking(ctx, database.CreateBookingParams{
		UserID:     req.UserID,
		PickupTime: pickupTime,
		Address:    req.Address,
		Note:       note,
	})
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Retry loop: handles order_number unique constraint collisions
	// (two orders placed in the same millisecond).
	var lastErr error
	for attempt := 0; attempt < maxOrderNumberRetries; attempt++ {
		result, err := s.placeOrderTx(ctx, req, booking)
		if err == nil {
			return result, nil
		}
		if isOrderNumberConflict(err) {
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, lastErr
}

// isOrderNumberConflict checks if the error is a unique constraint
// violation on the order number (pgconn error code 23505).
func isOrderNumberConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "orders_order_number_key"
	}
	return false
}

// newOrderNumber builds the human-readable order identifier.
func newOrderNumber() string {
	return "AW" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// placeOrderTx creates the order and its items in a single transaction.
func (s *OrderService) placeOrderTx(ctx context.Context, req PlaceOrderRequest, booking database.Booking) (*PlaceOrderResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	// --- Process items: resolve services, estimate weights/prices ---
	estimatedWeight := decimal.Zero
	estimatedPrice := decimal.Zero
	var items []processedItem

	for i, item := range req.Items {
		serviceID := uuid.MustParse(item.ServiceID) // validated above

		svc, err := store.GetActiveService(ctx, serviceID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("items[%d]: %w", i, ErrServiceNotFound)
			}
			return nil, fmt.Errorf("items[%d]: get service: %w", i, err)
		}
		pricePerKg := numericToDecimal(svc.PricePerKg)

		var itemWeight decimal.Decimal
		if item.EstimatedWeight != "" {
			itemWeight, err = decimal.NewFromString(item.EstimatedWeight)
			if err != nil || itemWeight.IsNegative() {
				return nil, fmt.Errorf("items[%d]: %w", i, ErrInvalidWeight)
			}
		} else {
			itemWeight = pricing.GuidelineFor(svc.Name).DefaultWeight(item.Quantity)
		}

		estimatedWeight = estimatedWeight.Add(itemWeight)
		estimatedPrice = estimatedPrice.Add(itemWeight.Mul(pricePerKg))

		itemName := pgtype.Text{}
		if item.ItemName != "" {
			itemName = pgtype.Text{String: item.ItemName, Valid: true}
		}

		items = append(items, processedItem{
			params: database.CreateOrderItemParams{
				ServiceID:       serviceID,
				ItemName:        itemName,
				Quantity:        item.Quantity,
				EstimatedWeight: decimalToNumeric(itemWeight),
				// FinalWeight and Price stay NULL until reconciliation.
			},
		})
	}

	// --- Insert order ---
	order, err := store.CreateOrder(ctx, database.CreateOrderParams{
		UserID:          req.UserID,
		BookingID:       booking.ID,
		OrderNumber:     newOrderNumber(),
		Status:          enum.OrderStatusPending,
		EstimatedWeight: decimalToNumeric(estimatedWeight),
		EstimatedPrice:  decimalToNumeric(estimatedPrice),
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// --- Insert items ---
	var created []database.OrderItem
	for _, pi := range items {
		pi.params.OrderID = order.ID
		item, err := store.CreateOrderItem(ctx, pi.params)
		if err != nil {
			return nil, fmt.Errorf("create order item: %w", err)
		}
		created = append(created, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &PlaceOrderResult{
		Booking: booking,
		Order:   order,
		Items:   created,
	}, nil
}

// --- Helpers ---

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

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(d.StringFixed(2))
	return n
}
