package service

import (
	"context"

	"booking-admin-console/internal/domain"
)

type AdminCodeService interface {
	Approve(ctx context.Context, req *domain.AdminCodeRequest, admin domain.AdminIdentity) (*ApprovalOutcome, error)
	Reject(ctx context.Context, req *domain.AdminCodeRequest, admin domain.AdminIdentity, reason string) (*RejectionOutcome, error)
	ListRequests(ctx context.Context, status domain.AdminCodeRequestStatus) ([]domain.AdminCodeRequest, error)
	GetRequest(ctx context.Context, id string) (*domain.AdminCodeRequest, error)
	ReconcileMissingCodes(ctx context.Context) (int, error)
}

type UserService interface {
	ListUsers(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
	SearchUsers(ctx context.Context, query string, limit int32) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

type BookingService interface {
	ListBookings(ctx context.Context, page, pageSize int32) ([]domain.Booking, int32, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	CreateBooking(ctx context.Context, admin domain.AdminIdentity, input BookingInput) (*domain.Booking, error)
}
