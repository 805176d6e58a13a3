package itemrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
)

type postgres struct{ pool *pgxpool.Pool }

func NewPostgres(pool *pgxpool.Pool) Repo { return &postgres{pool: pool} }

func (r *postgres) Insert(ctx context.Context, it *model.Item) error {
	const q = `
INSERT INTO items (id, name, description, price, created, is_available)
VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.pool.Exec(ctx, q, it.ID, it.Name, it.Description, it.Price, it.Created, it.IsAvailable)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrDuplicate
	}
	return err
}

func (r *postgres) ByID(ctx context.Context, id string) (*model.Item, error) {
	const q = `
SELECT id, name, description, price, created, is_available
FROM items
WHERE id = $1`
	var it model.Item
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&it.ID, &it.Name, &it.Description, &it.Price, &it.Created, &it.IsAvailable,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *postgres) List(ctx context.Context) ([]model.Item, error) {
	const q = `
SELECT id, name, description, price, created, is_available
FROM items
ORDER BY created, id`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.Created, &it.IsAvailable); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *postgres) SetAvailability(ctx context.Context, id string, available bool) error {
	const q = `
UPDATE items
SET is_available = $2
WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id, available)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
