package postgres

import (
	"context"
	"errors"
	"go-transfer-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRequestRepo struct {
	db *pgxpool.Pool
}

func NewContactRequestRepository(db *pgxpool.Pool) domain.ContactRequestRepository {
	return &contactRequestRepo{db: db}
}

func (r *contactRequestRepo) Create(ctx context.Context, req *domain.ContactRequest) error {
	query := `INSERT INTO contact_requests (name, email, phone, message, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		req.Name, req.Email, req.Phone, req.Message, req.Status,
		req.CreatedAt, req.UpdatedAt,
	).Scan(&req.ID)
}

func (r *contactRequestRepo) GetByID(ctx context.Context, id int64) (*domain.ContactRequest, error) {
	query := `SELECT id, name, email, phone, message, status, created_at, updated_at
              FROM contact_requests WHERE id = $1`
	var req domain.ContactRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.Name, &req.Email, &req.Phone, &req.Message, &req.Status,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Fetch returns one page ordered by created_at descending plus the total
// count for the same filter. An empty status matches every row.
func (r *contactRequestRepo) Fetch(ctx context.Context, status string, limit, offset int) ([]domain.ContactRequest, int64, error) {
	query := `SELECT id, name, email, phone, message, status, created_at, updated_at
              FROM contact_requests
              WHERE ($1 = '' OR status = $1)
              ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reqs []domain.ContactRequest
	for rows.Next() {
		var req domain.ContactRequest
		if err := rows.Scan(&req.ID, &req.Name, &req.Email, &req.Phone, &req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, 0, err
		}
		reqs = append(reqs, req)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_requests WHERE ($1 = '' OR status = $1)`, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

func (r *contactRequestRepo) Update(ctx context.Context, req *domain.ContactRequest) error {
	query := `UPDATE contact_requests SET
		name = $2,
		email = $3,
		phone = $4,
		message = $5,
		status = $6,
		updated_at = $7
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		req.ID, req.Name, req.Email, req.Phone, req.Message, req.Status,
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

func (r *contactRequestRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM contact_requests WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
