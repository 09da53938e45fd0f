package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"percept-srv/internal/history/repository"
	"percept-srv/internal/model"
)

// UpsertProduct - Insert the product or return the existing row.
func (r *implRepository) UpsertProduct(ctx context.Context, name string) (model.Product, error) {
	const query = `
		INSERT INTO products (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (name) DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id, name, created_at, updated_at`

	now := time.Now().UTC()

	var p model.Product
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), name, now).
		Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.UpsertProduct: Failed to upsert product: %v", err)
		return model.Product{}, err
	}
	return p, nil
}

// GetProductByName - Get product by its unique name.
func (r *implRepository) GetProductByName(ctx context.Context, name string) (model.Product, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM products
		WHERE name = $1`

	var p model.Product
	err := r.db.QueryRowContext(ctx, query, name).
		Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Product{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.GetProductByName: Failed to get product: %v", err)
		return model.Product{}, err
	}
	return p, nil
}
