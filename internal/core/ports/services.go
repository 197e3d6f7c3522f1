package ports

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

import (
	"context"
	"time"

	"biodiversity-credits/internal/core/domain"
)

// ScalarCodec turns a plaintext score into an opaque EncryptedValue and back.
// Decode(Encode(v)) == v for every finite v.
type ScalarCodec interface {
	Encode(value float64) (domain.EncryptedValue, error)
	Decode(value domain.EncryptedValue) (float64, error)
}

// TransformEngine applies a named operation to an encrypted value without
// exposing the intermediate plaintext to the caller.
type TransformEngine interface {
	Apply(op domain.OperationKind, value domain.EncryptedValue) (domain.EncryptedValue, error)
}

// CreditRegistry is the key-indexed collection of credit records.
type CreditRegistry interface {
	List(ctx context.Context) ([]domain.Credit, error)
	Get(ctx context.Context, id string) (*domain.Credit, error)
	Create(ctx context.Context, req CreateCreditRequest) (*domain.Credit, error)
	// UpdateStatus rewrites a single record; newScore is optional.
	UpdateStatus(ctx context.Context, id string, status domain.CreditStatus, newScore *domain.EncryptedValue) (*domain.Credit, error)
}

// CreateCreditRequest holds the ecological metrics submitted by an owner.
type CreateCreditRequest struct {
	Owner        string
	Location     string
	AreaSize     float64
	SpeciesCount int
}

// LifecycleService governs credit status transitions.
type LifecycleService interface {
	Verify(ctx context.Context, caller string, id string) (*domain.Credit, error)
	Reject(ctx context.Context, caller string, id string) (*domain.Credit, error)
}

// Signer is the wallet/identity provider. Sign blocks until the holder
// signs or declines; declining is reported as an error.
type Signer interface {
	Sign(ctx context.Context, message string) (domain.Signature, error)
}

// SignatureVerifier recovers the address that produced a signature.
type SignatureVerifier interface {
	RecoverAddress(message string, sig domain.Signature) (string, error)
}

// IdentityContext is who is asking for a decryption and how to reach their wallet.
type IdentityContext struct {
	Address string
	Session domain.SessionContext
	Signer  Signer
}

// DecryptionService reveals a plaintext score after a signature challenge.
type DecryptionService interface {
	RequestDecryption(ctx context.Context, value domain.EncryptedValue, identity IdentityContext) (float64, error)
}

// CreditFilter narrows a credit listing. Zero values match everything.
type CreditFilter struct {
	Status *domain.CreditStatus
	Owner  string
}

// ReportingService provides read models over the registry.
type ReportingService interface {
	ListCredits(ctx context.Context, filter CreditFilter) ([]domain.Credit, error)
	GetStats(ctx context.Context) (*domain.CreditStats, error)
}

// TokenService issues session tokens for authenticated wallets.
type TokenService interface {
	Generate(address string, session domain.SessionContext) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session token.
type TokenClaims struct {
	Address string
	Session domain.SessionContext
}

// AuthService opens wallet sessions.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

// LoginRequest is a signed login message.
type LoginRequest struct {
	Address   string
	Timestamp int64
	Nonce     string
	Signature domain.Signature
}

// LoginResult is an issued session.
type LoginResult struct {
	Token   string
	Expiry  time.Time
	Session domain.SessionContext
}

// AuditService records audited actions (fire-and-forget).
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
