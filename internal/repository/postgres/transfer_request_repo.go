package postgres

import (
	"context"
	"errors"
	"go-transfer-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type transferRequestRepo struct {
	db *pgxpool.Pool
}

func NewTransferRequestRepository(db *pgxpool.Pool) domain.TransferRequestRepository {
	return &transferRequestRepo{db: db}
}

const transferSelectColumns = `
	t.id, t.customer_name, t.customer_phone, t.date, t.return_date, t.return_transfer,
	t.origin_city, t.origin_address, t.destination_city, t.destination_address,
	t.tell_driver, t.vehicle_class, t.payment_method, t.comments, t.status,
	t.vehicle_id, t.created_at, t.updated_at,
	v.id, v.name, v.class, v.seats, v.image_url`

// scanTransfer scans one joined row. Vehicle columns come from a LEFT JOIN
// and are folded into a nested struct when the reference is set.
func scanTransfer(row pgx.Row) (*domain.TransferRequest, error) {
	var req domain.TransferRequest
	var vID *int64
	var vName, vClass *string
	var vSeats *int
	var vImageURL *string

	err := row.Scan(
		&req.ID, &req.CustomerName, &req.CustomerPhone, &req.Date, &req.ReturnDate, &req.ReturnTransfer,
		&req.OriginCity, &req.OriginAddress, &req.DestinationCity, &req.DestinationAddress,
		&req.TellDriver, &req.VehicleClass, &req.PaymentMethod, &req.Comments, &req.Status,
		&req.VehicleID, &req.CreatedAt, &req.UpdatedAt,
		&vID, &vName, &vClass, &vSeats, &vImageURL,
	)
	if err != nil {
		return nil, err
	}

	if vID != nil {
		req.Vehicle = &domain.Vehicle{
			ID:       *vID,
			Name:     derefString(vName),
			Class:    derefString(vClass),
			Seats:    derefInt(vSeats),
			ImageURL: vImageURL,
		}
	}
	return &req, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func (r *transferRequestRepo) Create(ctx context.Context, req *domain.TransferRequest) error {
	query := `INSERT INTO transfer_requests (customer_name, customer_phone, date, return_date, return_transfer,
                origin_city, origin_address, destination_city, destination_address,
                tell_driver, vehicle_class, payment_method, comments, status, vehicle_id,
                created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
              RETURNING id`
	return r.db.QueryRow(ctx, query,
		req.CustomerName, req.CustomerPhone, req.Date, req.ReturnDate, req.ReturnTransfer,
		req.OriginCity, req.OriginAddress, req.DestinationCity, req.DestinationAddress,
		req.TellDriver, req.VehicleClass, req.PaymentMethod, req.Comments, req.Status, req.VehicleID,
		req.CreatedAt, req.UpdatedAt,
	).Scan(&req.ID)
}

func (r *transferRequestRepo) GetByID(ctx context.Context, id int64) (*domain.TransferRequest, error) {
	query := `SELECT ` + transferSelectColumns + `
              FROM transfer_requests t
              LEFT JOIN vehicles v ON t.vehicle_id = v.id
              WHERE t.id = $1`
	req, err := scanTransfer(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Fetch returns one page ordered by created_at descending plus the total
// count for the same filter. An empty status matches every row.
func (r *transferRequestRepo) Fetch(ctx context.Context, status string, limit, offset int) ([]domain.TransferRequest, int64, error) {
	query := `SELECT ` + transferSelectColumns + `
              FROM transfer_requests t
              LEFT JOIN vehicles v ON t.vehicle_id = v.id
              WHERE ($1 = '' OR t.status = $1)
              ORDER BY t.created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reqs []domain.TransferRequest
	for rows.Next() {
		req, err := scanTransfer(rows)
		if err != nil {
			return nil, 0, err
		}
		reqs = append(reqs, *req)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transfer_requests WHERE ($1 = '' OR status = $1)`, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

func (r *transferRequestRepo) Update(ctx context.Context, req *domain.TransferRequest) error {
	query := `UPDATE transfer_requests SET
		customer_name = $2,
		customer_phone = $3,
		date = $4,
		return_date = $5,
		return_transfer = $6,
		origin_city = $7,
		origin_address = $8,
		destination_city = $9,
		destination_address = $10,
		tell_driver = $11,
		vehicle_class = $12,
		payment_method = $13,
		comments = $14,
		status = $15,
		vehicle_id = $16,
		updated_at = $17
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		req.ID, req.CustomerName, req.CustomerPhone, req.Date, req.ReturnDate, req.ReturnTransfer,
		req.OriginCity, req.OriginAddress, req.DestinationCity, req.DestinationAddress,
		req.TellDriver, req.VehicleClass, req.PaymentMethod, req.Comments, req.Status, req.VehicleID,
		req.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *transferRequestRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM transfer_requests WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
