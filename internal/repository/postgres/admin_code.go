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

type adminCodeRepository struct {
	db *sql.DB
}

func NewAdminCodeRepository(db *sql.DB) repository.AdminCodeRepository {
	return &adminCodeRepository{db: db}
}

func (r *adminCodeRepository) Create(ctx context.Context, code *domain.AdminCode) error {
	if code.ID == "" {
		code.ID = uuid.NewString()
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO admin_codes (id, code, status, is_used, created_at, approved_by, request_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	logger.DatabaseCall("insert", "admin_codes", "request_id", code.RequestID)
	_, err := r.db.ExecContext(ctx, query, code.ID, code.Code, code.Status, code.IsUsed, code.CreatedAt, code.ApprovedBy, code.RequestID)
	if err != nil {
		logger.DatabaseResult("insert", 0, err)
		return translateError(err)
	}
	logger.DatabaseResult("insert", 1, nil)
	return nil
}

func (r *adminCodeRepository) GetByCode(ctx context.Context, code string) (*domain.AdminCode, error) {
	query := `SELECT id, code, status, is_used, created_at, approved_by, request_id FROM admin_codes WHERE code = $1`
	return r.getOne(ctx, query, code)
}

func (r *adminCodeRepository) GetByRequestID(ctx context.Context, requestID string) (*domain.AdminCode, error) {
	query := `SELECT id, code, status, is_used, created_at, approved_by, request_id FROM admin_codes
	          WHERE request_id = $1 ORDER BY created_at LIMIT 1`
	return r.getOne(ctx, query, requestID)
}

func (r *adminCodeRepository) getOne(ctx context.Context, query string, arg any) (*domain.AdminCode, error) {
	c := &domain.AdminCode{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Code, &c.Status, &c.IsUsed, &c.CreatedAt, &c.ApprovedBy, &c.RequestID)
	if err != nil {
		return nil, translateError(err)
	}
	return c, nil
}
