package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"booking-admin-console/internal/domain"
	"booking-admin-console/internal/logger"
	"booking-admin-console/internal/repository"
)

const bookingColumns = `id, user_id, resource, start_date, end_date, COALESCE(notes, ''), status, created_by, created_at`

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func scanBooking(row scanner) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.UserID, &b.Resource, &b.StartDate, &b.EndDate, &b.Notes, &b.Status, &b.CreatedBy, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = domain.BookingStatusConfirmed
	}
	b.CreatedAt = time.Now().UTC()

	query := `INSERT INTO bookings (id, user_id, resource, start_date, end_date, notes, status, created_by, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	logger.DatabaseCall("insert", "bookings", "id", b.ID, "user_id", b.UserID)
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.UserID, b.Resource, b.StartDate, b.EndDate, nullString(b.Notes), b.Status, b.CreatedBy, b.CreatedAt,
	)
	if err != nil {
		logger.DatabaseResult("insert", 0, err)
		return translateError(err)
	}
	logger.DatabaseResult("insert", 1, nil)
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return b, nil
}

func (r *bookingRepository) List(ctx context.Context, limit, offset int32) ([]domain.Booking, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY start_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}
