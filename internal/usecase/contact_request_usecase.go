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

type contactRequestUsecase struct {
	repo     domain.ContactRequestRepository
	gateway  NotificationGateway
	notifyTo string
}

// NewContactRequestUsecase creates the contact request pipeline. notifyTo is
// the destination for admin notifications; when empty, notifications are
// skipped for this kind.
func NewContactRequestUsecase(repo domain.ContactRequestRepository, gateway NotificationGateway, notifyTo string) domain.ContactRequestUsecase {
	return &contactRequestUsecase{
		repo:     repo,
		gateway:  gateway,
		notifyTo: notifyTo,
	}
}

func (u *contactRequestUsecase) List(ctx context.Context, status string, page, limit int) ([]domain.ContactRequest, domain.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	reqs, total, err := u.repo.Fetch(ctx, status, limit, offset)
	if err != nil {
		return nil, domain.Pagination{}, apperror.Internal("Failed to fetch contact requests", err)
	}
	return reqs, domain.NewPagination(total, page, limit), nil
}

// Create runs the submission pipeline: validate, persist, then notify
// best-effort. The notification is attempted strictly after the insert
// commits because its content depends on the generated id, and its outcome
// never changes the result returned to the caller.
func (u *contactRequestUsecase) Create(ctx context.Context, input domain.ContactRequestInput) (*domain.ContactRequest, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Message) == "" {
		return nil, apperror.BadRequest("Name, email and message are required")
	}

	var phone *string
	if p := strings.TrimSpace(input.Phone); p != "" {
		phone = &p
	}

	now := time.Now()
	req := &domain.ContactRequest{
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     phone,
		Message:   input.Message,
		Status:    domain.StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.repo.Create(ctx, req); err != nil {
		return nil, apperror.Internal(fmt.Sprintf("Failed to create contact request: %v", err), err)
	}
	logger.Log.Info("contact request saved", "id", req.ID)

	u.notify(req)

	return req, nil
}

func (u *contactRequestUsecase) notify(req *domain.ContactRequest) {
	if !u.gateway.IsConfigured() || u.notifyTo == "" {
		logger.Log.Warn("notification skipped: email gateway or destination not configured", "id", req.ID)
		return
	}

	n := email.ContactNotification{
		RequestID: req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
	}
	if req.Phone != nil {
		n.Phone = *req.Phone
	}

	html, err := n.HTML()
	if err != nil {
		logger.Log.Error("failed to render contact notification", "id", req.ID, "error", err)
	}

	if u.gateway.Send(email.SendOptions{
		To:      u.notifyTo,
		Subject: n.Subject(),
		Text:    n.Text(),
		HTML:    html,
		ReplyTo: req.Email,
	}) {
		logger.Log.Info("contact notification sent", "id", req.ID)
	} else {
		logger.Log.Error("contact notification failed", "id", req.ID)
	}
}

func (u *contactRequestUsecase) Update(ctx context.Context, id int64, upd domain.ContactRequestUpdate) (*domain.ContactRequest, error) {
	req, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Contact request not found")
	}
	if err != nil {
		return nil, apperror.Internal(fmt.Sprintf("Failed to load contact request (request ID: %d)", id), err)
	}

	if upd.Name != nil {
		req.Name = *upd.Name
	}
	if upd.Email != nil {
		req.Email = *upd.Email
	}
	if upd.Phone != nil {
		req.Phone = upd.Phone
	}
	if upd.Message != nil {
		req.Message = *upd.Message
	}
	if upd.Status != nil {
		req.Status = *upd.Status
	}
	req.UpdatedAt = time.Now()

	if err := u.repo.Update(ctx, req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Contact request not found")
		}
		return nil, apperror.Internal(fmt.Sprintf("Failed to update contact request (request ID: %d)", id), err)
	}
	return req, nil
}

func (u *contactRequestUsecase) Delete(ctx context.Context, id int64) error {
	err := u.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Contact request not found")
	}
	if err != nil {
		return apperror.Internal(fmt.Sprintf("Failed to delete contact request (request ID: %d)", id), err)
	}
	return nil
}
