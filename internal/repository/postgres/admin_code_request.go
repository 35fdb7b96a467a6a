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

const adminCodeRequestColumns = `id, name, email, phone_no, organization, position, department, reason, request_date, status,
	admin_code, approved_by, approved_date, code_used, code_used_date, registered_user_id,
	rejected_by, rejected_date, rejection_reason`

type adminCodeRequestRepository struct {
	db *sql.DB
}

func NewAdminCodeRequestRepository(db *sql.DB) repository.AdminCodeRequestRepository {
	return &adminCodeRequestRepository{db: db}
}

func scanAdminCodeRequest(row scanner) (*domain.AdminCodeRequest, error) {
	var (
		req              domain.AdminCodeRequest
		adminCode        sql.NullString
		approvedBy       sql.NullString
		approvedDate     sql.NullTime
		codeUsedDate     sql.NullTime
		registeredUserID sql.NullString
		rejectedBy       sql.NullString
		rejectedDate     sql.NullTime
		rejectionReason  sql.NullString
	)
	err := row.Scan(
		&req.ID, &req.Name, &req.Email, &req.PhoneNo, &req.Organization, &req.Position, &req.Department,
		&req.Reason, &req.RequestDate, &req.Status,
		&adminCode, &approvedBy, &approvedDate, &req.CodeUsed, &codeUsedDate, &registeredUserID,
		&rejectedBy, &rejectedDate, &rejectionReason,
	)
	if err != nil {
		return nil, err
	}

	req.AdminCode = adminCode.String
	req.ApprovedBy = approvedBy.String
	req.ApprovedDate = timePtr(approvedDate)
	req.CodeUsedDate = timePtr(codeUsedDate)
	req.RegisteredUserID = stringPtr(registeredUserID)
	req.RejectedBy = rejectedBy.String
	req.RejectedDate = timePtr(rejectedDate)
	req.RejectionReason = rejectionReason.String
	return &req, nil
}

func (r *adminCodeRequestRepository) Create(ctx context.Context, req *domain.AdminCodeRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.RequestDate.IsZero() {
		req.RequestDate = time.Now().UTC()
	}
	if req.Status == "" {
		req.Status = domain.AdminCodeRequestStatusPending
	}

	query := `INSERT INTO admin_code_requests (id, name, email, phone_no, organization, position, department, reason, request_date, status, code_used)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	logger.DatabaseCall("insert", "admin_code_requests", "id", req.ID)
	res, err := r.db.ExecContext(ctx, query,
		req.ID, req.Name, req.Email, req.PhoneNo, req.Organization, req.Position, req.Department,
		req.Reason, req.RequestDate, req.Status, false,
	)
	if err != nil {
		logger.DatabaseResult("insert", 0, err)
		return translateError(err)
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("insert", n, nil)
	return nil
}

func (r *adminCodeRequestRepository) GetByID(ctx context.Context, id string) (*domain.AdminCodeRequest, error) {
	query := `SELECT ` + adminCodeRequestColumns + ` FROM admin_code_requests WHERE id = $1`
	req, err := scanAdminCodeRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return req, nil
}

func (r *adminCodeRequestRepository) List(ctx context.Context, status domain.AdminCodeRequestStatus) ([]domain.AdminCodeRequest, error) {
	query := `SELECT ` + adminCodeRequestColumns + ` FROM admin_code_requests
	          WHERE ($1 = '' OR status = $1) ORDER BY request_date DESC`
	rows, err := r.db.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAdminCodeRequests(rows)
}

func (r *adminCodeRequestRepository) Transition(ctx context.Context, req *domain.AdminCodeRequest, from domain.AdminCodeRequestStatus) error {
	query := `UPDATE admin_code_requests SET
	            status = $1, admin_code = $2, approved_by = $3, approved_date = $4, code_used = $5,
	            code_used_date = $6, registered_user_id = $7, rejected_by = $8, rejected_date = $9,
	            rejection_reason = $10
	          WHERE id = $11 AND status = $12`

	logger.DatabaseCall("update", "admin_code_requests", "id", req.ID, "from", from, "to", req.Status)
	res, err := r.db.ExecContext(ctx, query,
		req.Status, nullString(req.AdminCode), nullString(req.ApprovedBy), nullTime(req.ApprovedDate), req.CodeUsed,
		nullTime(req.CodeUsedDate), nullStringPtr(req.RegisteredUserID), nullString(req.RejectedBy), nullTime(req.RejectedDate),
		nullString(req.RejectionReason),
		req.ID, from,
	)
	if err != nil {
		logger.DatabaseResult("update", 0, err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.DatabaseResult("update", 0, err)
		return err
	}
	logger.DatabaseResult("update", n, nil)
	if n == 1 {
		return nil
	}

	// Nothing matched: either the row is gone or someone else moved it.
	var current string
	err = r.db.QueryRowContext(ctx, `SELECT status FROM admin_code_requests WHERE id = $1`, req.ID).Scan(&current)
	if err != nil {
		return translateError(err)
	}
	return repository.ErrStatusConflict
}

func (r *adminCodeRequestRepository) ListApprovedWithoutCode(ctx context.Context) ([]domain.AdminCodeRequest, error) {
	query := `SELECT ` + adminCodeRequestColumns + ` FROM admin_code_requests r
	          WHERE r.status = 'approved' AND r.admin_code IS NOT NULL
	            AND r.approved_date < NOW() - INTERVAL '1 minute'
	            AND NOT EXISTS (SELECT 1 FROM admin_codes c WHERE c.request_id = r.id)
	          ORDER BY r.approved_date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAdminCodeRequests(rows)
}

func collectAdminCodeRequests(rows *sql.Rows) ([]domain.AdminCodeRequest, error) {
	var reqs []domain.AdminCodeRequest
	for rows.Next() {
		req, err := scanAdminCodeRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}
