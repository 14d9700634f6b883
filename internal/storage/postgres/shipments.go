package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/logidash/internal/domain/errors"
	"github.com/polkiloo/logidash/internal/domain/model"
)

type shipmentRepository struct {
	storage *Storage
}

const shipmentColumns = `id, status, eta, courier, progress, color`

func scanShipment(row pgx.Row, s *model.Shipment) error {
	return row.Scan(&s.ID, &s.Status, &s.ETA, &s.Courier, &s.Progress, &s.Color)
}

func (r *shipmentRepository) List(ctx context.Context) ([]model.Shipment, error) {
	const query = `SELECT ` + shipmentColumns + ` FROM shipments ORDER BY seq`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Shipment, 0)
	for rows.Next() {
		var s model.Shipment
		if err := scanShipment(rows, &s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *shipmentRepository) Create(ctx context.Context, shipment model.Shipment) (*model.Shipment, error) {
	const query = `INSERT INTO shipments (id, status, eta, courier, progress, color)
                   VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.storage.pool.Exec(ctx, query,
		shipment.ID, shipment.Status, shipment.ETA, shipment.Courier, shipment.Progress, shipment.Color,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &shipment, nil
}

func (r *shipmentRepository) Update(ctx context.Context, id string, patch model.ShipmentPatch) (*model.Shipment, error) {
	// eta and courier are nullable, so a presence flag decides whether to overwrite them.
	const query = `UPDATE shipments SET
                       status   = COALESCE($2, status),
                       eta      = CASE WHEN $3::boolean THEN $4::text ELSE eta END,
                       courier  = CASE WHEN $5::boolean THEN $6::text ELSE courier END,
                       progress = COALESCE($7, progress),
                       color    = COALESCE($8, color)
                   WHERE id=$1
                   RETURNING ` + shipmentColumns

	var s model.Shipment
	row := r.storage.pool.QueryRow(ctx, query, id,
		patch.Status,
		patch.ETA.Set, patch.ETA.Value,
		patch.Courier.Set, patch.Courier.Value,
		patch.Progress, patch.Color,
	)
	if err := scanShipment(row, &s); err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}

func (r *shipmentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM shipments WHERE id=$1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *shipmentRepository) DeleteAll(ctx context.Context) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM shipments`)
	return err
}

func (r *shipmentRepository) CountNotInStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM shipments WHERE status <> $1`, status).Scan(&n)
	return n, err
}
