package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gan-2/real-estate-api/internal/models"
)

type PropertyRepo struct {
	DB DBTX
}

const createProperty = `-- name: CreateProperty
INSERT INTO properties (title, price)
VALUES ($1, $2)
RETURNING id, created_at, title, price
`

func (r *PropertyRepo) CreateProperty(ctx context.Context, title string, price decimal.Decimal) (models.Property, error) {
	rows, _ := r.DB.Query(ctx, createProperty, title, price)
	property, err := pgx.CollectOneRow(rows, rowToProperty)

	if err != nil {
		return property, fmt.Errorf("db error: %w", err)
	}

	return property, nil
}

const listProperties = `-- name: ListProperties
SELECT id, created_at, title, price FROM properties
ORDER BY id
`

func (r *PropertyRepo) ListProperties(ctx context.Context) ([]models.Property, error) {
	rows, _ := r.DB.Query(ctx, listProperties)
	properties, err := pgx.CollectRows(rows, rowToProperty)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return properties, nil
}

func rowToProperty(row pgx.CollectableRow) (models.Property, error) {
	var p models.Property
	err := row.Scan(&p.ID, &p.CreatedAt, &p.Title, &p.Price)
	return p, err
}
