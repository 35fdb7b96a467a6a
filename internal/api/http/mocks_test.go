package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"booking-admin-console/internal/domain"
	"booking-admin-console/internal/service"
)

type MockAdminCodeService struct {
	mock.Mock
}

func (m *MockAdminCodeService) Approve(ctx context.Context, req *domain.AdminCodeRequest, admin domain.AdminIdentity) (*service.ApprovalOutcome, error) {
	args := m.Called(ctx, req, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ApprovalOutcome), args.Error(1)
}
func (m *MockAdminCodeService) Reject(ctx context.Context, req *domain.AdminCodeRequest, admin domain.AdminIdentity, reason string) (*service.RejectionOutcome, error) {
	args := m.Called(ctx, req, admin, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RejectionOutcome), args.Error(1)
}
func (m *MockAdminCodeService) ListRequests(ctx context.Context, status domain.AdminCodeRequestStatus) ([]domain.AdminCodeRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdminCodeRequest), args.Error(1)
}
func (m *MockAdminCodeService) GetRequest(ctx context.Context, id string) (*domain.AdminCodeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminCodeRequest), args.Error(1)
}
func (m *MockAdminCodeService) ReconcileMissingCodes(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}
func (m *MockUserService) SearchUsers(ctx context.Context, query string, limit int32) ([]domain.User, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) ListBookings(ctx context.Context, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) CreateBooking(ctx context.Context, admin domain.AdminIdentity, input service.BookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, admin, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
