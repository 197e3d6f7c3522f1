package domain

import (
	"math"
	"strings"
	"time"
)

// EncryptedValue is an opaque encoded scalar. It is only produced and
// consumed through a ports.ScalarCodec or ports.TransformEngine.
type EncryptedValue string

// CreditStatus represents the lifecycle state of a credit.
type CreditStatus string

const (
	CreditStatusPending  CreditStatus = "pending"
	CreditStatusVerified CreditStatus = "verified"
	CreditStatusRejected CreditStatus = "rejected"
)

// transitions is the complete lifecycle graph. Terminal states have no entry.
var transitions = map[CreditStatus][]CreditStatus{
	CreditStatusPending: {CreditStatusVerified, CreditStatusRejected},
}

// IsValid reports whether s is one of the known statuses.
func (s CreditStatus) IsValid() bool {
	switch s {
	case CreditStatusPending, CreditStatusVerified, CreditStatusRejected:
		return true
	}
	return false
}

// IsTerminal returns true if no transition leaves s.
func (s CreditStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransition reports whether the lifecycle allows moving from one status to another.
func CanTransition(from, to CreditStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Credit is a registry record representing a claimed ecological contribution.
type Credit struct {
	ID             string         `json:"id"`
	EncryptedScore EncryptedValue `json:"encrypted_score"`
	Owner          string         `json:"owner"`
	Location       string         `json:"location"`
	AreaSize       float64        `json:"area_size"`
	SpeciesCount   int            `json:"species_count"`
	Timestamp      int64          `json:"timestamp"` // Unix seconds
	Status         CreditStatus   `json:"status"`
}

// IsOwnedBy compares owner identities case-insensitively, as wallet
// addresses are checksummed inconsistently across providers.
func (c *Credit) IsOwnedBy(identity string) bool {
	return identity != "" && strings.EqualFold(c.Owner, identity)
}

// CreatedAt returns the creation time in UTC.
func (c *Credit) CreatedAt() time.Time {
	return time.Unix(c.Timestamp, 0).UTC()
}

// ComputeScore is the biodiversity score: speciesCount × √areaSize.
// Inputs are validated by the caller.
func ComputeScore(speciesCount int, areaSize float64) float64 {
	return float64(speciesCount) * math.Sqrt(areaSize)
}

// CreditStats aggregates a credit listing for dashboards.
type CreditStats struct {
	Total     int      `json:"total"`
	Verified  int      `json:"verified"`
	Pending   int      `json:"pending"`
	Rejected  int      `json:"rejected"`
	Locations []string `json:"locations"` // distinct, first-seen order
}

// Registry storage keys.
const (
	IndexKey        = "credit_keys"
	CreditKeyPrefix = "credit_"
)

// CreditKey returns the byte-store key of a credit record.
func CreditKey(id string) string {
	return CreditKeyPrefix + id
}
