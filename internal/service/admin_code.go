package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"booking-admin-console/internal/domain"
	"booking-admin-console/internal/logger"
	"booking-admin-console/internal/notification"
	"booking-admin-console/internal/repository"
	"booking-admin-console/internal/utils"
)

// ApprovalOutcome is returned once the approval is committed. Delivery
// failures only set NotificationFailed.
type ApprovalOutcome struct {
	Code               string                    `json:"code"`
	Request            *domain.AdminCodeRequest  `json:"request"`
	SMS                domain.NotificationResult `json:"sms"`
	Email              domain.NotificationResult `json:"email"`
	NotificationFailed bool                      `json:"notification_failed"`
}

type RejectionStatus string

const (
	RejectionNeedsReason RejectionStatus = "NEEDS_REASON"
	RejectionRejected    RejectionStatus = "REJECTED"
)

// RejectionOutcome is either a request for a reason (nothing changed) or a
// committed rejection.
type RejectionOutcome struct {
	Status             RejectionStatus            `json:"status"`
	Request            *domain.AdminCodeRequest   `json:"request,omitempty"`
	Email              *domain.NotificationResult `json:"email,omitempty"`
	NotificationFailed bool                       `json:"notification_failed"`
}

func (o *RejectionOutcome) NeedsReason() bool {
	return o.Status == RejectionNeedsReason
}

type adminCodeService struct {
	requests     repository.AdminCodeRequestRepository
	codes        repository.AdminCodeRepository
	sender       notification.Sender
	systemName   string
	generateCode func() string
	now          func() time.Time
}

type AdminCodeOption func(*adminCodeService)

func WithCodeGenerator(generate func() string) AdminCodeOption {
	return func(s *adminCodeService) { s.generateCode = generate }
}

func WithServiceClock(now func() time.Time) AdminCodeOption {
	return func(s *adminCodeService) { s.now = now }
}

func NewAdminCodeService(
	requests repository.AdminCodeRequestRepository,
	codes repository.AdminCodeRepository,
	sender notification.Sender,
	systemName string,
	opts ...AdminCodeOption,
) AdminCodeService {
	s := &adminCodeService{
		requests:     requests,
		codes:        codes,
		sender:       sender,
		systemName:   systemName,
		generateCode: utils.GenerateAdminCode,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *adminCodeService) Approve(ctx context.Context, req *domain.AdminCodeRequest, admin domain.AdminIdentity) (*ApprovalOutcome, error) {
	if err := checkPreconditions(req, admin); err != nil {
		return nil, err
	}
	logger.EnterMethod("adminCodeService.Approve", "requestID", req.ID, "adminID", admin.ID)

	code := s.generateCode()
	approvedAt := s.now().UTC()

	updated := *req
	updated.Status = domain.AdminCodeRequestStatusApproved
	updated.AdminCode = code
	updated.ApprovedBy = admin.ID
	updated.ApprovedDate = &approvedAt
	updated.CodeUsed = false
	updated.CodeUsedDate = nil
	updated.RegisteredUserID = nil

	if err := s.transition(ctx, &updated); err != nil {
		logger.ExitMethodWithError("adminCodeService.Approve", err, "requestID", req.ID)
		return nil, err
	}

	record := &domain.AdminCode{
		Code:       code,
		Status:     domain.AdminCodeStatusApproved,
		IsUsed:     false,
		CreatedAt:  approvedAt,
		ApprovedBy: admin.ID,
		RequestID:  req.ID,
	}
	if err := s.createCodeRecord(ctx, record); err != nil {
		// The request row is already approved; the reconciliation job will
		// recreate this record.
		perr := &PersistenceError{Op: "create admin code", Err: err}
		logger.ExitMethodWithError("adminCodeService.Approve", perr, "requestID", req.ID)
		return nil, perr
	}

	sms := s.sender.SendSMS(ctx, req.PhoneNo, approvalSMS(req.Name, s.systemName, code))
	email := s.sender.SendEmail(ctx, req.Email, SubjectApproved, approvalEmail(req.Name, req.PhoneNo, s.systemName), false)

	outcome := &ApprovalOutcome{
		Code:               code,
		Request:            &updated,
		SMS:                sms,
		Email:              email,
		NotificationFailed: !sms.Success || !email.Success,
	}
	if outcome.NotificationFailed {
		logger.Warn("Admin code approved with notification failures",
			"requestID", req.ID, "smsSuccess", sms.Success, "emailSuccess", email.Success)
	}
	logger.ExitMethod("adminCodeService.Approve", "requestID", req.ID, "notificationFailed", outcome.NotificationFailed)
	return outcome, nil
}

// createCodeRecord inserts the code row. A duplicate is accepted when the
// stored row already carries this request's code, which happens when
// reconciliation got there first.
func (s *adminCodeService) createCodeRecord(ctx context.Context, record *domain.AdminCode) error {
	err := s.codes.Create(ctx, record)
	if err == nil || !errors.Is(err, repository.ErrDuplicate) {
		return err
	}
	existing, lookupErr := s.codes.GetByRequestID(ctx, record.RequestID)
	if lookupErr != nil || existing.Code != record.Code {
		return err
	}
	logger.Warn("Admin code record already present", "requestID", record.RequestID)
	return nil
}

func (s *adminCodeService) Reject(ctx context.Context, req *domain.AdminCodeRequest, admin domain.AdminIdentity, reason string) (*RejectionOutcome, error) {
	if strings.TrimSpace(reason) == "" {
		return &RejectionOutcome{Status: RejectionNeedsReason}, nil
	}
	if err := checkPreconditions(req, admin); err != nil {
		return nil, err
	}
	logger.EnterMethod("adminCodeService.Reject", "requestID", req.ID, "adminID", admin.ID)

	rejectedAt := s.now().UTC()
	updated := *req
	updated.Status = domain.AdminCodeRequestStatusRejected
	updated.RejectedBy = admin.ID
	updated.RejectedDate = &rejectedAt
	updated.RejectionReason = reason

	if err := s.transition(ctx, &updated); err != nil {
		logger.ExitMethodWithError("adminCodeService.Reject", err, "requestID", req.ID)
		return nil, err
	}

	email := s.sender.SendEmail(ctx, req.Email, SubjectRejected, rejectionEmail(req.Name, reason, s.systemName), false)

	outcome := &RejectionOutcome{
		Status:             RejectionRejected,
		Request:            &updated,
		Email:              &email,
		NotificationFailed: !email.Success,
	}
	logger.ExitMethod("adminCodeService.Reject", "requestID", req.ID, "notificationFailed", outcome.NotificationFailed)
	return outcome, nil
}

func (s *adminCodeService) ListRequests(ctx context.Context, status domain.AdminCodeRequestStatus) ([]domain.AdminCodeRequest, error) {
	switch status {
	case "", domain.AdminCodeRequestStatusPending, domain.AdminCodeRequestStatusApproved, domain.AdminCodeRequestStatusRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	reqs, err := s.requests.List(ctx, status)
	if err != nil {
		return nil, &PersistenceError{Op: "list requests", Err: err}
	}
	return reqs, nil
}

func (s *adminCodeService) GetRequest(ctx context.Context, id string) (*domain.AdminCodeRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "get request", Err: err}
	}
	return req, nil
}

// ReconcileMissingCodes recreates admin_codes rows for approved requests
// whose approval was committed without one. It returns how many were repaired.
func (s *adminCodeService) ReconcileMissingCodes(ctx context.Context) (int, error) {
	reqs, err := s.requests.ListApprovedWithoutCode(ctx)
	if err != nil {
		return 0, &PersistenceError{Op: "list approved requests without code", Err: err}
	}

	repaired := 0
	var errs []error
	for _, req := range reqs {
		createdAt := s.now().UTC()
		if req.ApprovedDate != nil {
			createdAt = *req.ApprovedDate
		}
		record := &domain.AdminCode{
			Code:       req.AdminCode,
			Status:     domain.AdminCodeStatusApproved,
			IsUsed:     req.CodeUsed,
			CreatedAt:  createdAt,
			ApprovedBy: req.ApprovedBy,
			RequestID:  req.ID,
		}
		if err := s.codes.Create(ctx, record); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				logger.Warn("Admin code already present during reconciliation", "requestID", req.ID)
				continue
			}
			logger.Error("Failed to recreate admin code", "requestID", req.ID, "error", err)
			errs = append(errs, fmt.Errorf("request %s: %w", req.ID, err))
			continue
		}
		logger.Info("Recreated missing admin code", "requestID", req.ID, "approvedBy", req.ApprovedBy)
		repaired++
	}

	if len(errs) > 0 {
		return repaired, &PersistenceError{Op: "create admin code", Err: errors.Join(errs...)}
	}
	return repaired, nil
}

// transition writes updated only if the stored row is still pending.
func (s *adminCodeService) transition(ctx context.Context, updated *domain.AdminCodeRequest) error {
	err := s.requests.Transition(ctx, updated, domain.AdminCodeRequestStatusPending)
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrStatusConflict) {
		return ErrAlreadyProcessed
	}
	return &PersistenceError{Op: "update request", Err: err}
}

func checkPreconditions(req *domain.AdminCodeRequest, admin domain.AdminIdentity) error {
	if req == nil {
		return ErrRequestRequired
	}
	if strings.TrimSpace(admin.ID) == "" {
		return ErrAdminIdentityMissing
	}
	if !req.IsPending() {
		return ErrAlreadyProcessed
	}
	return nil
}
