package domain

import (
	"context"
	"time"
)

// TransferRequest is a transfer booking submitted from the website.
// The referenced Vehicle is owned elsewhere and joined read-only on fetch.
type TransferRequest struct {
	ID                 int64      `json:"id"`
	CustomerName       string     `json:"customerName"`
	CustomerPhone      string     `json:"customerPhone"`
	Date               time.Time  `json:"date"`
	ReturnDate         *time.Time `json:"returnDate"`
	ReturnTransfer     bool       `json:"returnTransfer"`
	OriginCity         string     `json:"originCity"`
	OriginAddress      string     `json:"originAddress"`
	DestinationCity    string     `json:"destinationCity"`
	DestinationAddress string     `json:"destinationAddress"`
	TellDriver         bool       `json:"tellDriver"`
	VehicleClass       string     `json:"vehicleClass"`
	PaymentMethod      string     `json:"paymentMethod"`
	Comments           *string    `json:"comments"`
	Status             string     `json:"status"`
	VehicleID          *int64     `json:"vehicleId"`
	Vehicle            *Vehicle   `json:"vehicle,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// TransferRequestInput carries the raw fields of a create submission.
// Date fields arrive as strings and are parsed by the pipeline.
type TransferRequestInput struct {
	CustomerName       string
	CustomerPhone      string
	Date               string
	ReturnDate         string
	ReturnTransfer     bool
	OriginCity         string
	OriginAddress      string
	DestinationCity    string
	DestinationAddress string
	TellDriver         bool
	VehicleClass       string
	PaymentMethod      string
	Comments           string
	VehicleID          *int64
}

// TransferRequestUpdate is a partial field set for merge-style updates.
// Nil fields keep their stored value. The id is never part of the merge set.
type TransferRequestUpdate struct {
	CustomerName       *string
	CustomerPhone      *string
	Date               *string
	ReturnDate         *string
	ReturnTransfer     *bool
	OriginCity         *string
	OriginAddress      *string
	DestinationCity    *string
	DestinationAddress *string
	TellDriver         *bool
	VehicleClass       *string
	PaymentMethod      *string
	Comments           *string
	Status             *string
	VehicleID          *int64
}

type TransferRequestRepository interface {
	Create(ctx context.Context, req *TransferRequest) error
	GetByID(ctx context.Context, id int64) (*TransferRequest, error)
	Fetch(ctx context.Context, status string, limit, offset int) ([]TransferRequest, int64, error)
	Update(ctx context.Context, req *TransferRequest) error
	Delete(ctx context.Context, id int64) error
}

type TransferRequestUsecase interface {
	List(ctx context.Context, status string, page, limit int) ([]TransferRequest, Pagination, error)
	Create(ctx context.Context, input TransferRequestInput) (*TransferRequest, error)
	Update(ctx context.Context, id int64, upd TransferRequestUpdate) (*TransferRequest, error)
	Delete(ctx context.Context, id int64) error
}
