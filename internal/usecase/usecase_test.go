package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-transfer-backend/internal/domain"
	"go-transfer-backend/internal/usecase"
	"go-transfer-backend/pkg/apperror"
	"go-transfer-backend/pkg/email"
	"go-transfer-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

// Mock Repositories

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, req *domain.ContactRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockContactRepo) GetByID(ctx context.Context, id int64) (*domain.ContactRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactRequest), args.Error(1)
}

func (m *MockContactRepo) Fetch(ctx context.Context, status string, limit, offset int) ([]domain.ContactRequest, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	var reqs []domain.ContactRequest
	if args.Get(0) != nil {
		reqs = args.Get(0).([]domain.ContactRequest)
	}
	return reqs, args.Get(1).(int64), args.Error(2)
}

func (m *MockContactRepo) Update(ctx context.Context, req *domain.ContactRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockContactRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockTransferRepo struct {
	mock.Mock
}

func (m *MockTransferRepo) Create(ctx context.Context, req *domain.TransferRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockTransferRepo) GetByID(ctx context.Context, id int64) (*domain.TransferRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferRequest), args.Error(1)
}

func (m *MockTransferRepo) Fetch(ctx context.Context, status string, limit, offset int) ([]domain.TransferRequest, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	var reqs []domain.TransferRequest
	if args.Get(0) != nil {
		reqs = args.Get(0).([]domain.TransferRequest)
	}
	return reqs, args.Get(1).(int64), args.Error(2)
}

func (m *MockTransferRepo) Update(ctx context.Context, req *domain.TransferRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockTransferRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockGateway stands in for the email service; Configured and SendResult
// force the two outcomes the pipeline must be indifferent to.
type MockGateway struct {
	Configured bool
	SendResult bool
	SendCalls  []email.SendOptions
}

func (g *MockGateway) IsConfigured() bool {
	return g.Configured
}

func (g *MockGateway) Send(opts email.SendOptions) bool {
	g.SendCalls = append(g.SendCalls, opts)
	return g.SendResult
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestContactRequestCreate(t *testing.T) {
	t.Run("Should persist with status new and generated id", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		gateway := &MockGateway{Configured: true, SendResult: true}
		uc := usecase.NewContactRequestUsecase(mockRepo, gateway, "admin@example.com")

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ContactRequest")).
			Return(nil).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.ContactRequest).ID = 42
			})

		created, err := uc.Create(context.Background(), domain.ContactRequestInput{
			Name:    "A",
			Email:   "a@x.com",
			Message: "hi",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(42), created.ID)
		assert.Equal(t, domain.StatusNew, created.Status)
		assert.Nil(t, created.Phone, "missing phone must normalize to nil")
		assert.False(t, created.CreatedAt.IsZero())

		assert.Len(t, gateway.SendCalls, 1)
		assert.Equal(t, "admin@example.com", gateway.SendCalls[0].To)
		assert.Equal(t, "a@x.com", gateway.SendCalls[0].ReplyTo)
	})

	t.Run("Should keep submitted phone", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		gateway := &MockGateway{}
		uc := usecase.NewContactRequestUsecase(mockRepo, gateway, "")

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		created, err := uc.Create(context.Background(), domain.ContactRequestInput{
			Name:    "A",
			Email:   "a@x.com",
			Phone:   "+7 999 123-45-67",
			Message: "hi",
		})
		assert.NoError(t, err)
		if assert.NotNil(t, created.Phone) {
			assert.Equal(t, "+7 999 123-45-67", *created.Phone)
		}
	})

	t.Run("Should reject missing required fields without persisting", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactRequestUsecase(mockRepo, &MockGateway{}, "admin@example.com")

		_, err := uc.Create(context.Background(), domain.ContactRequestInput{Name: "A"})
		assert.Error(t, err)
		assert.Equal(t, 400, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should return 500 and skip email when the store fails", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		gateway := &MockGateway{Configured: true, SendResult: true}
		uc := usecase.NewContactRequestUsecase(mockRepo, gateway, "admin@example.com")

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		_, err := uc.Create(context.Background(), domain.ContactRequestInput{
			Name:    "A",
			Email:   "a@x.com",
			Message: "hi",
		})
		assert.Error(t, err)
		assert.Equal(t, 500, appErrCode(t, err))
		assert.Contains(t, err.Error(), "connection refused")
		assert.Empty(t, gateway.SendCalls, "no notification before a successful persist")
	})
}

func TestNotificationBestEffort(t *testing.T) {
	t.Run("Delivery failure must not fail the create", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		gateway := &MockGateway{Configured: true, SendResult: false}
		uc := usecase.NewContactRequestUsecase(mockRepo, gateway, "admin@example.com")

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		created, err := uc.Create(context.Background(), domain.ContactRequestInput{
			Name:    "A",
			Email:   "a@x.com",
			Message: "hi",
		})
		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Len(t, gateway.SendCalls, 1)
	})

	t.Run("Unconfigured gateway skips the send entirely", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		gateway := &MockGateway{Configured: false}
		uc := usecase.NewContactRequestUsecase(mockRepo, gateway, "admin@example.com")

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Create(context.Background(), domain.ContactRequestInput{
			Name:    "A",
			Email:   "a@x.com",
			Message: "hi",
		})
		assert.NoError(t, err)
		assert.Empty(t, gateway.SendCalls)
	})

	t.Run("Missing destination address skips the send", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		gateway := &MockGateway{Configured: true, SendResult: true}
		uc := usecase.NewContactRequestUsecase(mockRepo, gateway, "")

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Create(context.Background(), domain.ContactRequestInput{
			Name:    "A",
			Email:   "a@x.com",
			Message: "hi",
		})
		assert.NoError(t, err)
		assert.Empty(t, gateway.SendCalls)
	})
}

func TestContactRequestUpdate(t *testing.T) {
	t.Run("Unknown id returns 404 and mutates nothing", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactRequestUsecase(mockRepo, &MockGateway{}, "")

		mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.Update(context.Background(), 99, domain.ContactRequestUpdate{})
		assert.Error(t, err)
		assert.Equal(t, 404, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Merges provided fields and refreshes updated_at", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactRequestUsecase(mockRepo, &MockGateway{}, "")

		existing := &domain.ContactRequest{
			ID:      7,
			Name:    "Old",
			Email:   "old@x.com",
			Message: "old message",
			Status:  domain.StatusNew,
		}
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.ContactRequest")).Return(nil)

		newStatus := "contacted"
		updated, err := uc.Update(context.Background(), 7, domain.ContactRequestUpdate{Status: &newStatus})
		assert.NoError(t, err)
		assert.Equal(t, "contacted", updated.Status)
		assert.Equal(t, "Old", updated.Name, "unprovided fields keep their value")
		assert.Equal(t, int64(7), updated.ID, "id is immutable")
		assert.False(t, updated.UpdatedAt.IsZero())
	})
}

func TestContactRequestDelete(t *testing.T) {
	t.Run("Unknown id returns 404", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactRequestUsecase(mockRepo, &MockGateway{}, "")

		mockRepo.On("Delete", mock.Anything, int64(5)).Return(domain.ErrNotFound)

		err := uc.Delete(context.Background(), 5)
		assert.Error(t, err)
		assert.Equal(t, 404, appErrCode(t, err))
	})

	t.Run("Known id deletes cleanly", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactRequestUsecase(mockRepo, &MockGateway{}, "")

		mockRepo.On("Delete", mock.Anything, int64(5)).Return(nil)

		assert.NoError(t, uc.Delete(context.Background(), 5))
	})
}

func TestContactRequestList(t *testing.T) {
	t.Run("Computes offset and page count", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactRequestUsecase(mockRepo, &MockGateway{}, "")

		mockRepo.On("Fetch", mock.Anything, "new", 10, 20).
			Return([]domain.ContactRequest{{ID: 1}}, int64(25), nil)

		_, pagination, err := uc.List(context.Background(), "new", 3, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(25), pagination.Total)
		assert.Equal(t, 3, pagination.Page)
		assert.Equal(t, 3, pagination.Pages, "pages == ceil(25/10)")
	})

	t.Run("Clamps page and limit to sane defaults", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := usecase.NewContactRequestUsecase(mockRepo, &MockGateway{}, "")

		mockRepo.On("Fetch", mock.Anything, "", 10, 0).
			Return([]domain.ContactRequest(nil), int64(0), nil)

		_, pagination, err := uc.List(context.Background(), "", 0, -5)
		assert.NoError(t, err)
		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 10, pagination.Limit)
	})
}

func TestTransferRequestCreate(t *testing.T) {
	t.Run("Should persist with status new and parsed dates", func(t *testing.T) {
		mockRepo := new(MockTransferRepo)
		gateway := &MockGateway{Configured: true, SendResult: true}
		uc := usecase.NewTransferRequestUsecase(mockRepo, gateway, "dispatch@example.com")

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.TransferRequest")).
			Return(nil).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.TransferRequest).ID = 11
			})

		created, err := uc.Create(context.Background(), domain.TransferRequestInput{
			CustomerName:  "Ivan",
			CustomerPhone: "+79991234567",
			Date:          "2026-09-15T14:30:00Z",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(11), created.ID)
		assert.Equal(t, domain.StatusNew, created.Status)
		assert.Equal(t, 2026, created.Date.Year())
		assert.Nil(t, created.Comments)
		assert.Len(t, gateway.SendCalls, 1)
	})

	t.Run("Return date is dropped without a return transfer", func(t *testing.T) {
		mockRepo := new(MockTransferRepo)
		uc := usecase.NewTransferRequestUsecase(mockRepo, &MockGateway{}, "")

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		created, err := uc.Create(context.Background(), domain.TransferRequestInput{
			CustomerName:   "Ivan",
			CustomerPhone:  "+79991234567",
			Date:           "2026-09-15T14:30:00Z",
			ReturnDate:     "2026-09-20T10:00:00Z",
			ReturnTransfer: false,
		})
		assert.NoError(t, err)
		assert.Nil(t, created.ReturnDate)
	})

	t.Run("Return date is kept for a return transfer", func(t *testing.T) {
		mockRepo := new(MockTransferRepo)
		uc := usecase.NewTransferRequestUsecase(mockRepo, &MockGateway{}, "")

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		created, err := uc.Create(context.Background(), domain.TransferRequestInput{
			CustomerName:   "Ivan",
			CustomerPhone:  "+79991234567",
			Date:           "2026-09-15T14:30:00Z",
			ReturnDate:     "2026-09-20T10:00:00Z",
			ReturnTransfer: true,
		})
		assert.NoError(t, err)
		if assert.NotNil(t, created.ReturnDate) {
			assert.Equal(t, 20, created.ReturnDate.Day())
		}
	})

	t.Run("Missing required fields return 400 without persisting", func(t *testing.T) {
		mockRepo := new(MockTransferRepo)
		uc := usecase.NewTransferRequestUsecase(mockRepo, &MockGateway{}, "")

		_, err := uc.Create(context.Background(), domain.TransferRequestInput{
			CustomerName: "Ivan",
		})
		assert.Error(t, err)
		assert.Equal(t, 400, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Malformed date surfaces as a server error", func(t *testing.T) {
		mockRepo := new(MockTransferRepo)
		uc := usecase.NewTransferRequestUsecase(mockRepo, &MockGateway{}, "")

		_, err := uc.Create(context.Background(), domain.TransferRequestInput{
			CustomerName:  "Ivan",
			CustomerPhone: "+79991234567",
			Date:          "not-a-date",
		})
		assert.Error(t, err)
		assert.Equal(t, 500, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestTransferRequestUpdate(t *testing.T) {
	t.Run("Unknown id returns 404", func(t *testing.T) {
		mockRepo := new(MockTransferRepo)
		uc := usecase.NewTransferRequestUsecase(mockRepo, &MockGateway{}, "")

		mockRepo.On("GetByID", mock.Anything, int64(3)).Return(nil, domain.ErrNotFound)

		_, err := uc.Update(context.Background(), 3, domain.TransferRequestUpdate{})
		assert.Error(t, err)
		assert.Equal(t, 404, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Clearing return transfer also clears the return date", func(t *testing.T) {
		mockRepo := new(MockTransferRepo)
		uc := usecase.NewTransferRequestUsecase(mockRepo, &MockGateway{}, "")

		rd := time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC)
		existing := &domain.TransferRequest{
			ID:             3,
			CustomerName:   "Ivan",
			CustomerPhone:  "+79991234567",
			ReturnTransfer: true,
			ReturnDate:     &rd,
			Status:         domain.StatusNew,
		}
		mockRepo.On("GetByID", mock.Anything, int64(3)).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		noReturn := false
		updated, err := uc.Update(context.Background(), 3, domain.TransferRequestUpdate{ReturnTransfer: &noReturn})
		assert.NoError(t, err)
		assert.False(t, updated.ReturnTransfer)
		assert.Nil(t, updated.ReturnDate)
	})
}
