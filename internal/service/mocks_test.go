package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"booking-admin-console/internal/domain"
)

type MockAdminCodeRequestRepo struct {
	mock.Mock
}

func (m *MockAdminCodeRequestRepo) Create(ctx context.Context, req *domain.AdminCodeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockAdminCodeRequestRepo) GetByID(ctx context.Context, id string) (*domain.AdminCodeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminCodeRequest), args.Error(1)
}
func (m *MockAdminCodeRequestRepo) List(ctx context.Context, status domain.AdminCodeRequestStatus) ([]domain.AdminCodeRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdminCodeRequest), args.Error(1)
}
func (m *MockAdminCodeRequestRepo) Transition(ctx context.Context, req *domain.AdminCodeRequest, from domain.AdminCodeRequestStatus) error {
	args := m.Called(ctx, req, from)
	return args.Error(0)
}
func (m *MockAdminCodeRequestRepo) ListApprovedWithoutCode(ctx context.Context) ([]domain.AdminCodeRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdminCodeRequest), args.Error(1)
}

type MockAdminCodeRepo struct {
	mock.Mock
}

func (m *MockAdminCodeRepo) Create(ctx context.Context, code *domain.AdminCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}
func (m *MockAdminCodeRepo) GetByCode(ctx context.Context, code string) (*domain.AdminCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminCode), args.Error(1)
}
func (m *MockAdminCodeRepo) GetByRequestID(ctx context.Context, requestID string) (*domain.AdminCode, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminCode), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context, limit, offset int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}
func (m *MockUserRepo) Search(ctx context.Context, query string, limit int32) ([]domain.User, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) List(ctx context.Context, limit, offset int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendSMS(ctx context.Context, toRaw, message string) domain.NotificationResult {
	args := m.Called(ctx, toRaw, message)
	return args.Get(0).(domain.NotificationResult)
}
func (m *MockSender) SendEmail(ctx context.Context, to, subject, message string, isHTML bool) domain.NotificationResult {
	args := m.Called(ctx, to, subject, message, isHTML)
	return args.Get(0).(domain.NotificationResult)
}
