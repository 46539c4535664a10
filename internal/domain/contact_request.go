package domain

import (
	"context"
	"time"
)

// ContactRequest is a contact form submission persisted for follow-up.
// JSON field names are camelCase to match the website's wire format.
type ContactRequest struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactRequestInput carries the raw fields of a create submission.
type ContactRequestInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactRequestUpdate is a partial field set for merge-style updates.
// Nil fields keep their stored value. The id is never part of the merge set.
type ContactRequestUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Message *string
	Status  *string
}

type ContactRequestRepository interface {
	Create(ctx context.Context, req *ContactRequest) error
	GetByID(ctx context.Context, id int64) (*ContactRequest, error)
	Fetch(ctx context.Context, status string, limit, offset int) ([]ContactRequest, int64, error)
	Update(ctx context.Context, req *ContactRequest) error
	Delete(ctx context.Context, id int64) error
}

type ContactRequestUsecase interface {
	List(ctx context.Context, status string, page, limit int) ([]ContactRequest, Pagination, error)
	Create(ctx context.Context, input ContactRequestInput) (*ContactRequest, error)
	Update(ctx context.Context, id int64, upd ContactRequestUpdate) (*ContactRequest, error)
	Delete(ctx context.Context, id int64) error
}
