package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createService = `
INSERT INTO services (name, price_per_kg, icon, status)
VALUES ($1, $2, $3, $4)
RETURNING id, name, price_per_kg, icon, status, created_at, updated_at
`

type CreateServiceParams struct {
	Name       string
	PricePerKg pgtype.Numeric
	Icon       pgtype.Text
	Status     string
}

func (q *Queries) CreateService(ctx context.Context, arg CreateServiceParams) (Service, error) {
	row := q.db.QueryRow(ctx, createService,
		arg.Name,
		arg.PricePerKg,
		arg.Icon,
		arg.Status,
	)
	var s Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.PricePerKg,
		&s.Icon,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

const getService = `
SELECT id, name, price_per_kg, icon, status, created_at, updated_at
FROM services
WHERE id = $1
`

func (q *Queries) GetService(ctx context.Context, id uuid.UUID) (Service, error) {
	row := q.db.QueryRow(ctx, getService, id)
	var s Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.PricePerKg,
		&s.Icon,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

const getActiveService = `
SELECT id, name, price_per_kg, icon, status, created_at, updated_at
FROM services
WHERE id = $1 AND status = 'ACTIVE'
`

func (q *Queries) GetActiveService(ctx context.Context, id uuid.UUID) (Service, error) {
	row := q.db.QueryRow(ctx, getActiveService, id)
	var s Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.PricePerKg,
		&s.Icon,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

const listServices = `
SELECT id, name, price_per_kg, icon, status, created_at, updated_at
FROM services
WHERE $1::text IS NULL OR status = $1
ORDER BY name
`

func (q *Queries) ListServices(ctx context.Context, status pgtype.Text) ([]Service, error) {
	rows, err := q.db.Query(ctx, listServices, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Service
	for rows.Next() {
		var s Service
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.PricePerKg,
			&s.Icon,
			&s.Status,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const updateServiceStatus = `
UPDATE services
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id, name, price_per_kg, icon, status, created_at, updated_at
`

type UpdateServiceStatusParams struct {
	ID     uuid.UUID
	Status string
}

func (q *Queries) UpdateServiceStatus(ctx context.Context, arg UpdateServiceStatusParams) (Service, error) {
	row := q.db.QueryRow(ctx, updateServiceStatus, arg.ID, arg.Status)
	var s Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.PricePerKg,
		&s.Icon,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}
