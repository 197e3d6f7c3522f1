package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionCreateCredit AuditAction = "CREATE_CREDIT"
	AuditActionVerifyCredit AuditAction = "VERIFY_CREDIT"
	AuditActionRejectCredit AuditAction = "REJECT_CREDIT"
	AuditActionDecryptScore AuditAction = "DECRYPT_SCORE"
	AuditActionLogin        AuditAction = "LOGIN"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Actor        string      `json:"actor"` // wallet address
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// NewCreditAudit builds an audit entry for an action on a credit.
func NewCreditAudit(actor string, action AuditAction, creditID string) *AuditLog {
	return &AuditLog{
		ID:           uuid.New(),
		Actor:        actor,
		Action:       action,
		ResourceType: "credit",
		ResourceID:   creditID,
		CreatedAt:    time.Now().UTC(),
	}
}
