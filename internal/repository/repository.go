package repository

import (
	"context"

	"booking-admin-console/internal/domain"
)

type AdminCodeRequestRepository interface {
	Create(ctx context.Context, req *domain.AdminCodeRequest) error
	GetByID(ctx context.Context, id string) (*domain.AdminCodeRequest, error)
	List(ctx context.Context, status domain.AdminCodeRequestStatus) ([]domain.AdminCodeRequest, error)

	// Transition replaces the stored row with req only while its status is
	// still from. A lost race returns ErrStatusConflict.
	Transition(ctx context.Context, req *domain.AdminCodeRequest, from domain.AdminCodeRequestStatus) error

	// ListApprovedWithoutCode finds approved requests whose admin_codes row
	// was never written.
	ListApprovedWithoutCode(ctx context.Context) ([]domain.AdminCodeRequest, error)
}

type AdminCodeRepository interface {
	Create(ctx context.Context, code *domain.AdminCode) error
	GetByCode(ctx context.Context, code string) (*domain.AdminCode, error)
	GetByRequestID(ctx context.Context, requestID string) (*domain.AdminCode, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, limit, offset int32) ([]domain.User, int32, error)
	Search(ctx context.Context, query string, limit int32) ([]domain.User, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, limit, offset int32) ([]domain.Booking, int32, error)
}
