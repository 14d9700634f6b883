package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/logidash/internal/domain/errors"
	"github.com/polkiloo/logidash/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, customer, location, product, quantity, total, status, date, seq`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(&o.ID, &o.Customer, &o.Location, &o.Product, &o.Quantity, &o.Total, &o.Status, &o.Date, &o.Seq)
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY seq`
	return r.query(ctx, query)
}

func (r *orderRepository) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY seq DESC LIMIT $1`
	return r.query(ctx, query, limit)
}

func (r *orderRepository) query(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (id, customer, location, product, quantity, total, status, date)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING seq`
	err := r.storage.pool.QueryRow(ctx, query,
		order.ID, order.Customer, order.Location, order.Product,
		order.Quantity, order.Total, string(order.Status), order.Date,
	).Scan(&order.Seq)
	if err != nil {
		return nil, translateError(err)
	}
	return &order, nil
}

func (r *orderRepository) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	const query = `UPDATE orders SET
                       customer = COALESCE($2, customer),
                       location = COALESCE($3, location),
                       product  = COALESCE($4, product),
                       quantity = COALESCE($5, quantity),
                       total    = COALESCE($6, total),
                       status   = COALESCE($7, status),
                       date     = COALESCE($8, date)
                   WHERE id=$1
                   RETURNING ` + orderColumns

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	var o model.Order
	row := r.storage.pool.QueryRow(ctx, query, id,
		patch.Customer, patch.Location, patch.Product,
		patch.Quantity, patch.Total, status, patch.Date,
	)
	if err := scanOrder(row, &o); err != nil {
		return nil, translateError(err)
	}
	return &o, nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM orders`)
	return err
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}

func (r *orderRepository) CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	var n int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE status=$1`, string(status)).Scan(&n)
	return n, err
}

func (r *orderRepository) SumTotal(ctx context.Context) (float64, error) {
	var sum float64
	err := r.storage.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total), 0) FROM orders`).Scan(&sum)
	return sum, err
}
