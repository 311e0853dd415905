package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID             uuid.UUID
	FullName       string
	Email          string
	Phone          pgtype.Text
	HashedPassword string
	Role           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Service struct {
	ID         uuid.UUID
	Name       string
	PricePerKg pgtype.Numeric
	Icon       pgtype.Text
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Booking struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	PickupTime time.Time
	Address    string
	Note       pgtype.Text
	CreatedAt  time.Time
}

type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	BookingID       uuid.UUID
	OrderNumber     string
	Status          string
	EstimatedWeight pgtype.Numeric
	FinalWeight     pgtype.Numeric
	EstimatedPrice  pgtype.Numeric
	FinalPrice      pgtype.Numeric
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItem struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ServiceID       uuid.UUID
	ItemName        pgtype.Text
	Quantity        int32
	EstimatedWeight pgtype.Numeric
	FinalWeight     pgtype.Numeric
	Price           pgtype.Numeric
	CreatedAt       time.Time
}
