package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// SessionContext holds the parameters of a signing session. It is built once
// per client session and passed explicitly into the decryption protocol.
type SessionContext struct {
	PublicKey       string `json:"public_key"`
	RegistryAddress string `json:"registry_address"`
	ChainID         int64  `json:"chain_id"`
	StartTimestamp  int64  `json:"start_timestamp"` // Unix seconds
	DurationDays    int    `json:"duration_days"`
}

// ChallengeMessage renders the canonical message a wallet signs before a
// value is revealed. Field order and labels are fixed so signers can audit
// and replay it.
func (s SessionContext) ChallengeMessage() string {
	return strings.Join([]string{
		"publickey:" + s.PublicKey,
		"contractAddresses:" + s.RegistryAddress,
		fmt.Sprintf("contractsChainId:%d", s.ChainID),
		fmt.Sprintf("startTimestamp:%d", s.StartTimestamp),
		fmt.Sprintf("durationDays:%d", s.DurationDays),
	}, "\n")
}

// ExpiresAt is the end of the session validity window.
func (s SessionContext) ExpiresAt() time.Time {
	return time.Unix(s.StartTimestamp, 0).UTC().AddDate(0, 0, s.DurationDays)
}

// IsExpired reports whether now falls outside the validity window.
func (s SessionContext) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt())
}

// Signature is a wallet signature in Ethereum R||S||V layout (65 bytes).
type Signature []byte

// Hex returns the 0x-prefixed hex encoding.
func (s Signature) Hex() string {
	return "0x" + hex.EncodeToString(s)
}

// ParseSignature decodes a hex signature with or without the 0x prefix.
func ParseSignature(raw string) (Signature, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(raw), "0x"))
	if err != nil {
		return nil, fmt.Errorf("decoding signature: %w", err)
	}
	return Signature(b), nil
}

// LoginMessage is the canonical message a wallet signs to open a session.
func LoginMessage(address string, timestamp int64, nonce string) string {
	return fmt.Sprintf("biodiversity-credits login\naddress:%s\ntimestamp:%d\nnonce:%s",
		strings.ToLower(address), timestamp, nonce)
}
