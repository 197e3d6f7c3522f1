package dto

import "biodiversity-credits/internal/core/domain"

// LoginRequest is a wallet-signed login message.
type LoginRequest struct {
	Address   string `json:"address" binding:"required,eth_addr"`
	Timestamp int64  `json:"timestamp" binding:"required,gt=0"`
	Nonce     string `json:"nonce" binding:"required,max=128,safe_id"`
	Signature string `json:"signature" binding:"required,hex_signature"`
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	Token   string                `json:"token"`
	Expiry  int64                 `json:"expiry"` // Unix timestamp
	Session domain.SessionContext `json:"session"`
}

// SessionResponse describes the caller's signing session.
type SessionResponse struct {
	Address   string                `json:"address"`
	Session   domain.SessionContext `json:"session"`
	Challenge string                `json:"challenge"`
	ExpiresAt int64                 `json:"expires_at"` // Unix timestamp
}

// CreateCreditRequest is the request body for registering a credit. The
// owner is always the authenticated wallet.
type CreateCreditRequest struct {
	Location     string  `json:"location" binding:"required,min=1,max=200"`
	AreaSize     float64 `json:"area_size" binding:"required,gt=0"`
	SpeciesCount int     `json:"species_count" binding:"required,gt=0"`
}

// DecryptRequest carries the wallet signature over the session challenge.
type DecryptRequest struct {
	Signature string `json:"signature" binding:"required,hex_signature"`
}

// DecryptResponse is the revealed score of a credit.
type DecryptResponse struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// CreditResponse is the public view of a credit record.
type CreditResponse struct {
	ID             string  `json:"id"`
	EncryptedScore string  `json:"encrypted_score"`
	Owner          string  `json:"owner"`
	Location       string  `json:"location"`
	AreaSize       float64 `json:"area_size"`
	SpeciesCount   int     `json:"species_count"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

// CreditListResponse wraps a credit listing.
type CreditListResponse struct {
	Items []CreditResponse `json:"items"`
	Total int              `json:"total"`
}

// StatsResponse is the response for registry statistics.
type StatsResponse struct {
	Total     int      `json:"total"`
	Verified  int      `json:"verified"`
	Pending   int      `json:"pending"`
	Rejected  int      `json:"rejected"`
	Locations []string `json:"locations"`
}
