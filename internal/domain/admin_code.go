package domain

import "time"

type AdminCodeStatus string

const (
	AdminCodeStatusApproved AdminCodeStatus = "approved"
)

// AdminCode is the one-time code issued on approval. RequestID points back to
// the originating AdminCodeRequest for lookup only.
type AdminCode struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Status     AdminCodeStatus `json:"status"`
	IsUsed     bool            `json:"is_used"`
	CreatedAt  time.Time       `json:"created_at"`
	ApprovedBy string          `json:"approved_by"`
	RequestID  string          `json:"request_id"`
}
