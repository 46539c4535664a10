package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-transfer-backend/internal/domain"
	"go-transfer-backend/pkg/apperror"
	"go-transfer-backend/pkg/email"
	"go-transfer-backend/pkg/logger"
)

// Accepted layouts for submitted date fields, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDate parses a submitted date string. A malformed value is a
// persistence-level failure (500), not a validation failure: the website
// always submits machine-generated values, so a bad one means a broken
// client, not a user mistake.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date value %q", s)
}

type transferRequestUsecase struct {
	repo     domain.TransferRequestRepository
	gateway  NotificationGateway
	notifyTo string
}

// NewTransferRequestUsecase creates the transfer request pipeline. notifyTo
// is the destination for admin notifications; when empty, notifications are
// skipped for this kind.
func NewTransferRequestUsecase(repo domain.TransferRequestRepository, gateway NotificationGateway, notifyTo string) domain.TransferRequestUsecase {
	return &transferRequestUsecase{
		repo:     repo,
		gateway:  gateway,
		notifyTo: notifyTo,
	}
}

func (u *transferRequestUsecase) List(ctx context.Context, status string, page, limit int) ([]domain.TransferRequest, domain.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	reqs, total, err := u.repo.Fetch(ctx, status, limit, offset)
	if err != nil {
		return nil, domain.Pagination{}, apperror.Internal("Failed to fetch transfer requests", err)
	}
	return reqs, domain.NewPagination(total, page, limit), nil
}

// Create runs the submission pipeline: validate, parse dates, persist, then
// notify best-effort. Notification is attempted strictly after the insert
// commits and its outcome never changes the result returned to the caller.
func (u *transferRequestUsecase) Create(ctx context.Context, input domain.TransferRequestInput) (*domain.TransferRequest, error) {
	if strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.CustomerPhone) == "" ||
		strings.TrimSpace(input.Date) == "" {
		return nil, apperror.BadRequest("Please fill in all required fields")
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, apperror.Internal(fmt.Sprintf("Failed to create transfer request: %v", err), err)
	}

	// A return date only means something for a return transfer.
	var returnDate *time.Time
	if input.ReturnTransfer && strings.TrimSpace(input.ReturnDate) != "" {
		rd, err := parseDate(input.ReturnDate)
		if err != nil {
			return nil, apperror.Internal(fmt.Sprintf("Failed to create transfer request: %v", err), err)
		}
		returnDate = &rd
	}

	var comments *string
	if c := strings.TrimSpace(input.Comments); c != "" {
		comments = &c
	}

	now := time.Now()
	req := &domain.TransferRequest{
		CustomerName:       strings.TrimSpace(input.CustomerName),
		CustomerPhone:      strings.TrimSpace(input.CustomerPhone),
		Date:               date,
		ReturnDate:         returnDate,
		ReturnTransfer:     input.ReturnTransfer,
		OriginCity:         input.OriginCity,
		OriginAddress:      input.OriginAddress,
		DestinationCity:    input.DestinationCity,
		DestinationAddress: input.DestinationAddress,
		TellDriver:         input.TellDriver,
		VehicleClass:       input.VehicleClass,
		PaymentMethod:      input.PaymentMethod,
		Comments:           comments,
		Status:             domain.StatusNew,
		VehicleID:          input.VehicleID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := u.repo.Create(ctx, req); err != nil {
		return nil, apperror.Internal(fmt.Sprintf("Failed to create transfer request: %v", err), err)
	}
	logger.Log.Info("transfer request saved", "id", req.ID)

	u.notify(req)

	return req, nil
}

func (u *transferRequestUsecase) notify(req *domain.TransferRequest) {
	if !u.gateway.IsConfigured() || u.notifyTo == "" {
		logger.Log.Warn("notification skipped: email gateway or destination not configured", "id", req.ID)
		return
	}

	n := email.TransferNotification{
		RequestID:          req.ID,
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		Date:               req.Date,
		ReturnTransfer:     req.ReturnTransfer,
		ReturnDate:         req.ReturnDate,
		OriginCity:         req.OriginCity,
		OriginAddress:      req.OriginAddress,
		DestinationCity:    req.DestinationCity,
		DestinationAddress: req.DestinationAddress,
		TellDriver:         req.TellDriver,
		VehicleClass:       req.VehicleClass,
		PaymentMethod:      req.PaymentMethod,
	}
	if req.Comments != nil {
		n.Comments = *req.Comments
	}

	html, err := n.HTML()
	if err != nil {
		logger.Log.Error("failed to render transfer notification", "id", req.ID, "error", err)
	}

	if u.gateway.Send(email.SendOptions{
		To:      u.notifyTo,
		Subject: n.Subject(),
		Text:    n.Text(),
		HTML:    html,
	}) {
		logger.Log.Info("transfer notification sent", "id", req.ID)
	} else {
		logger.Log.Error("transfer notification failed", "id", req.ID)
	}
}

func (u *transferRequestUsecase) Update(ctx context.Context, id int64, upd domain.TransferRequestUpdate) (*domain.TransferRequest, error) {
	req, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Transfer request not found")
	}
	if err != nil {
		return nil, apperror.Internal(fmt.Sprintf("Failed to load transfer request (request ID: %d)", id), err)
	}

	if upd.CustomerName != nil {
		req.CustomerName = *upd.CustomerName
	}
	if upd.CustomerPhone != nil {
		req.CustomerPhone = *upd.CustomerPhone
	}
	if upd.Date != nil {
		date, err := parseDate(*upd.Date)
		if err != nil {
			return nil, apperror.Internal(fmt.Sprintf("Failed to update transfer request (request ID: %d): %v", id, err), err)
		}
		req.Date = date
	}
	if upd.ReturnTransfer != nil {
		req.ReturnTransfer = *upd.ReturnTransfer
	}
	if upd.ReturnDate != nil {
		rd, err := parseDate(*upd.ReturnDate)
		if err != nil {
			return nil, apperror.Internal(fmt.Sprintf("Failed to update transfer request (request ID: %d): %v", id, err), err)
		}
		req.ReturnDate = &rd
	}
	if upd.OriginCity != nil {
		req.OriginCity = *upd.OriginCity
	}
	if upd.OriginAddress != nil {
		req.OriginAddress = *upd.OriginAddress
	}
	if upd.DestinationCity != nil {
		req.DestinationCity = *upd.DestinationCity
	}
	if upd.DestinationAddress != nil {
		req.DestinationAddress = *upd.DestinationAddress
	}
	if upd.TellDriver != nil {
		req.TellDriver = *upd.TellDriver
	}
	if upd.VehicleClass != nil {
		req.VehicleClass = *upd.VehicleClass
	}
	if upd.PaymentMethod != nil {
		req.PaymentMethod = *upd.PaymentMethod
	}
	if upd.Comments != nil {
		req.Comments = upd.Comments
	}
	if upd.Status != nil {
		req.Status = *upd.Status
	}
	if upd.VehicleID != nil {
		req.VehicleID = upd.VehicleID
		req.Vehicle = nil // joined copy is stale once the reference changes
	}

	// No return date without a return transfer.
	if !req.ReturnTransfer {
		req.ReturnDate = nil
	}
	req.UpdatedAt = time.Now()

	if err := u.repo.Update(ctx, req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Transfer request not found")
		}
		return nil, apperror.Internal(fmt.Sprintf("Failed to update transfer request (request ID: %d)", id), err)
	}
	return req, nil
}

func (u *transferRequestUsecase) Delete(ctx context.Context, id int64) error {
	err := u.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Transfer request not found")
	}
	if err != nil {
		return apperror.Internal(fmt.Sprintf("Failed to delete transfer request (request ID: %d)", id), err)
	}
	return nil
}
