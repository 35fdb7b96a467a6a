package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"booking-admin-console/internal/domain"
	"booking-admin-console/internal/logger"
	"booking-admin-console/internal/repository"
	"booking-admin-console/internal/utils"
)

// BookingInput carries dates as yyyy-mm-dd strings, as the console submits them.
type BookingInput struct {
	UserID    string `json:"user_id"`
	Resource  string `json:"resource"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
}

func NewBookingService(bookingRepo repository.BookingRepository, userRepo repository.UserRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo, userRepo: userRepo}
}

func (s *bookingService) ListBookings(ctx context.Context, page, pageSize int32) ([]domain.Booking, int32, error) {
	limit, offset := paginate(page, pageSize)
	bookings, total, err := s.bookingRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, &PersistenceError{Op: "list bookings", Err: err}
	}
	return bookings, total, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "get booking", Err: err}
	}
	return b, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, admin domain.AdminIdentity, input BookingInput) (*domain.Booking, error) {
	if strings.TrimSpace(admin.ID) == "" {
		return nil, ErrAdminIdentityMissing
	}
	if strings.TrimSpace(input.UserID) == "" || strings.TrimSpace(input.Resource) == "" {
		return nil, fmt.Errorf("%w: user_id and resource are required", ErrInvalidInput)
	}

	start, err := utils.ParseDate(input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date: %v", ErrInvalidDateRange, err)
	}
	end, err := utils.ParseDate(input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date: %v", ErrInvalidDateRange, err)
	}
	nights, err := utils.ValidateDateRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s does not exist", ErrInvalidInput, input.UserID)
		}
		return nil, &PersistenceError{Op: "get user", Err: err}
	}

	b := &domain.Booking{
		UserID:    input.UserID,
		Resource:  strings.TrimSpace(input.Resource),
		StartDate: start,
		EndDate:   end,
		Notes:     strings.TrimSpace(input.Notes),
		Status:    domain.BookingStatusConfirmed,
		CreatedBy: admin.ID,
	}
	if err := s.bookingRepo.Create(ctx, b); err != nil {
		return nil, &PersistenceError{Op: "create booking", Err: err}
	}
	logger.Info("Booking created", "bookingID", b.ID, "userID", b.UserID, "nights", nights, "createdBy", admin.ID)
	return b, nil
}
