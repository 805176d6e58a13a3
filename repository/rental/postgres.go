package rentalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
)

type postgres struct{ pool *pgxpool.Pool }

func NewPostgres(pool *pgxpool.Pool) Repo { return &postgres{pool: pool} }

func (r *postgres) Insert(ctx context.Context, rental *model.Rental) error {
	const q = `
INSERT INTO rentals (id, item_id, start_date, end_date, status, created, return_date)
VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := r.pool.Exec(ctx, q,
		rental.ID, rental.ItemID, rental.StartDate, rental.EndDate,
		string(rental.Status), rental.Created, rental.ReturnDate,
	)
	return err
}

func (r *postgres) ByID(ctx context.Context, id string) (*model.Rental, error) {
	const q = `
SELECT id, item_id, start_date, end_date, status, created, return_date
FROM rentals
WHERE id = $1`
	rental, err := scanRental(r.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rental, nil
}

func (r *postgres) ByItem(ctx context.Context, itemID string) ([]model.Rental, error) {
	const q = `
SELECT id, item_id, start_date, end_date, status, created, return_date
FROM rentals
WHERE item_id = $1`
	rows, err := r.pool.Query(ctx, q, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rental)
	}
	return out, rows.Err()
}

func (r *postgres) MarkReturned(ctx context.Context, id string, at time.Time) error {
	const q = `
UPDATE rentals
SET status = 'returned',
    return_date = $2
WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRental(row pgx.Row) (*model.Rental, error) {
	var (
		rental model.Rental
		status string
	)
	if err := row.Scan(
		&rental.ID, &rental.ItemID, &rental.StartDate, &rental.EndDate,
		&status, &rental.Created, &rental.ReturnDate,
	); err != nil {
		return nil, err
	}
	rental.Status = model.RentalStatus(status)
	return &rental, nil
}
