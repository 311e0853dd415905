package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createOrder = `
INSERT INTO orders (user_id, booking_id, order_number, status, estimated_weight, estimated_price)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, booking_id, order_number, status, estimated_weight, final_weight,
          estimated_price, final_price, created_at, updated_at
`

type CreateOrderParams struct {
	UserID          uuid.UUID
	BookingID       uuid.UUID
	OrderNumber     string
	Status          string
	EstimatedWeight pgtype.Numeric
	EstimatedPrice  pgtype.Numeric
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder,
		arg.UserID,
		arg.BookingID,
		arg.OrderNumber,
		arg.Status,
		arg.EstimatedWeight,
		arg.EstimatedPrice,
	)
	return scanOrder(row)
}

const createOrderItem = `
INSERT INTO order_items (order_id, service_id, item_name, quantity, estimated_weight, final_weight, price)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, order_id, service_id, item_name, quantity, estimated_weight, final_weight, price, created_at
`

type CreateOrderItemParams struct {
	OrderID         uuid.UUID
	ServiceID       uuid.UUID
	ItemName        pgtype.Text
	Quantity        int32
	EstimatedWeight pgtype.Numeric
	FinalWeight     pgtype.Numeric
	Price           pgtype.Numeric
}

func (q *Queries) CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRow(ctx, createOrderItem,
		arg.OrderID,
		arg.ServiceID,
		arg.ItemName,
		arg.Quantity,
		arg.EstimatedWeight,
		arg.FinalWeight,
		arg.Price,
	)
	var i OrderItem
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.ServiceID,
		&i.ItemName,
		&i.Quantity,
		&i.EstimatedWeight,
		&i.FinalWeight,
		&i.Price,
		&i.CreatedAt,
	)
	return i, err
}

const getOrder = `
SELECT id, user_id, booking_id, order_number, status, estimated_weight, final_weight,
       estimated_price, final_price, created_at, updated_at
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrder(ctx context.Context, id uuid.UUID) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrder, id))
}

const getOrderForUser = `
SELECT id, user_id, booking_id, order_number, status, estimated_weight, final_weight,
       estimated_price, final_price, created_at, updated_at
FROM orders
WHERE id = $1 AND user_id = $2
`

type GetOrderForUserParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) GetOrderForUser(ctx context.Context, arg GetOrderForUserParams) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrderForUser, arg.ID, arg.UserID))
}

const listOrdersByUser = `
SELECT id, user_id, booking_id, order_number, status, estimated_weight, final_weight,
       estimated_price, final_price, created_at, updated_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrdersByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

const listOrders = `
SELECT id, user_id, booking_id, order_number, status, estimated_weight, final_weight,
       estimated_price, final_price, created_at, updated_at
FROM orders
WHERE $1::text IS NULL OR status = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListOrdersParams struct {
	Status pgtype.Text
	Limit  int32
	Offset int32
}

func (q *Queries) ListOrders(ctx context.Context, arg ListOrdersParams) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrders, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

// listOrderItemsByOrder denormalises the service name and per-kg price
// onto each row; the aggregator and calculator consume these directly.
const listOrderItemsByOrder = `
SELECT oi.id, oi.order_id, oi.service_id, oi.item_name, oi.quantity,
       oi.estimated_weight, oi.final_weight, oi.price,
       s.name AS service_name, s.price_per_kg
FROM order_items oi
JOIN services s ON s.id = oi.service_id
WHERE oi.order_id = $1
ORDER BY oi.created_at
`

type ListOrderItemsByOrderRow struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ServiceID       uuid.UUID
	ItemName        pgtype.Text
	Quantity        int32
	EstimatedWeight pgtype.Numeric
	FinalWeight     pgtype.Numeric
	Price           pgtype.Numeric
	ServiceName     string
	PricePerKg      pgtype.Numeric
}

func (q *Queries) ListOrderItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]ListOrderItemsByOrderRow, error) {
	rows, err := q.db.Query(ctx, listOrderItemsByOrder, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListOrderItemsByOrderRow
	for rows.Next() {
		var i ListOrderItemsByOrderRow
		if err := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.ServiceID,
			&i.ItemName,
			&i.Quantity,
			&i.EstimatedWeight,
			&i.FinalWeight,
			&i.Price,
			&i.ServiceName,
			&i.PricePerKg,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// updateOrder is the single partial-update statement behind every order
// mutation: fields left NULL in the params are not touched.
const updateOrder = `
UPDATE orders
SET status       = COALESCE($2, status),
    final_weight = COALESCE($3, final_weight),
    final_price  = COALESCE($4, final_price),
    updated_at   = now()
WHERE id = $1
RETURNING id, user_id, booking_id, order_number, status, estimated_weight, final_weight,
          estimated_price, final_price, created_at, updated_at
`

type UpdateOrderParams struct {
	ID          uuid.UUID
	Status      pgtype.Text
	FinalWeight pgtype.Numeric
	FinalPrice  pgtype.Numeric
}

func (q *Queries) UpdateOrder(ctx context.Context, arg UpdateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, updateOrder,
		arg.ID,
		arg.Status,
		arg.FinalWeight,
		arg.FinalPrice,
	)
	return scanOrder(row)
}

// cancelOrder enforces the precondition atomically: only non-terminal
// orders can be cancelled.
const cancelOrder = `
UPDATE orders
SET status = 'CANCELLED', updated_at = now()
WHERE id = $1 AND status NOT IN ('DELIVERED', 'CANCELLED')
RETURNING id, user_id, booking_id, order_number, status, estimated_weight, final_weight,
          estimated_price, final_price, created_at, updated_at
`

func (q *Queries) CancelOrder(ctx context.Context, id uuid.UUID) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, cancelOrder, id))
}

// --- scan helpers ---

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.BookingID,
		&o.OrderNumber,
		&o.Status,
		&o.EstimatedWeight,
		&o.FinalWeight,
		&o.EstimatedPrice,
		&o.FinalPrice,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

func collectOrders(rows pgx.Rows) ([]Order, error) {
	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
