package domain

import "time"

type AdminCodeRequestStatus string

const (
	AdminCodeRequestStatusPending  AdminCodeRequestStatus = "pending"
	AdminCodeRequestStatusApproved AdminCodeRequestStatus = "approved"
	AdminCodeRequestStatusRejected AdminCodeRequestStatus = "rejected"
)

// AdminCodeRequest is a request for elevated registration access. It is
// created as pending by the public submission flow and moves to approved or
// rejected exactly once.
type AdminCodeRequest struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Email        string                 `json:"email"`
	PhoneNo      string                 `json:"phone_no"`
	Organization string                 `json:"organization"`
	Position     string                 `json:"position"`
	Department   string                 `json:"department"`
	Reason       string                 `json:"reason"`
	RequestDate  time.Time              `json:"request_date"`
	Status       AdminCodeRequestStatus `json:"status"`

	// Populated only when Status is approved.
	AdminCode        string     `json:"admin_code,omitempty"`
	ApprovedBy       string     `json:"approved_by,omitempty"`
	ApprovedDate     *time.Time `json:"approved_date,omitempty"`
	CodeUsed         bool       `json:"code_used"`
	CodeUsedDate     *time.Time `json:"code_used_date,omitempty"`
	RegisteredUserID *string    `json:"registered_user_id,omitempty"`

	// Populated only when Status is rejected.
	RejectedBy      string     `json:"rejected_by,omitempty"`
	RejectedDate    *time.Time `json:"rejected_date,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

func (r *AdminCodeRequest) IsPending() bool {
	return r.Status == AdminCodeRequestStatusPending
}

func (r *AdminCodeRequest) IsApproved() bool {
	return r.Status == AdminCodeRequestStatusApproved
}

func (r *AdminCodeRequest) IsRejected() bool {
	return r.Status == AdminCodeRequestStatusRejected
}

// AdminIdentity is the already-authenticated admin acting on a request.
type AdminIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}
