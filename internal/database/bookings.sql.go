package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `
INSERT INTO bookings (user_id, pickup_time, address, note)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, pickup_time, address, note, created_at
`

type CreateBookingParams struct {
	UserID     uuid.UUID
	PickupTime time.Time
	Address    string
	Note       pgtype.Text
}

func (q *Queries) CreateBooking(ctx context.Context, arg CreateBookingParams) (Booking, error) {
	row := q.db.QueryRow(ctx, createBooking,
		arg.UserID,
		arg.PickupTime,
		arg.Address,
		arg.Note,
	)
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.PickupTime,
		&b.Address,
		&b.Note,
		&b.CreatedAt,
	)
	return b, err
}

const getBooking = `
SELECT id, user_id, pickup_time, address, note, created_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBooking(ctx context.Context, id uuid.UUID) (Booking, error) {
	row := q.db.QueryRow(ctx, getBooking, id)
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.PickupTime,
		&b.Address,
		&b.Note,
		&b.CreatedAt,
	)
	return b, err
}
