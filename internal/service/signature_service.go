package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"biodiversity-credits/internal/core/domain"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

const signatureLength = 65

// ErrSignatureDeclined is returned when the wallet holder refuses to sign.
var ErrSignatureDeclined = errors.New("signature request declined")

// HashPersonalMessage returns the Keccak-256 digest of an EIP-191
// personal_sign message, the format browser wallets sign.
func HashPersonalMessage(message string) []byte {
	h := sha3.NewLegacyKeccak256()
	fmt.Fprintf(h, "\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return h.Sum(nil)
}

// PublicKeyToAddress derives the 0x-prefixed lowercase account address.
func PublicKeyToAddress(pub *secp256k1.PublicKey) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(pub.SerializeUncompressed()[1:])
	return "0x" + hex.EncodeToString(h.Sum(nil)[12:])
}

// EthereumVerifier implements ports.SignatureVerifier for personal_sign
// signatures in R||S||V layout.
type EthereumVerifier struct{}

// NewEthereumVerifier creates a signature verifier.
func NewEthereumVerifier() *EthereumVerifier {
	return &EthereumVerifier{}
}

// RecoverAddress returns the address whose key produced sig over message.
func (v *EthereumVerifier) RecoverAddress(message string, sig domain.Signature) (string, error) {
	if len(sig) != signatureLength {
		return "", fmt.Errorf("signature must be %d bytes, got %d", signatureLength, len(sig))
	}

	// Wallets emit V as 0/1 or 27/28; the compact form wants 27+recid first.
	recovery := sig[64]
	if recovery < 27 {
		recovery += 27
	}
	if recovery != 27 && recovery != 28 {
		return "", fmt.Errorf("invalid recovery id %d", sig[64])
	}

	compact := make([]byte, signatureLength)
	compact[0] = recovery
	copy(compact[1:], sig[:64])

	pub, _, err := ecdsa.RecoverCompact(compact, HashPersonalMessage(message))
	if err != nil {
		return "", fmt.Errorf("recovering public key: %w", err)
	}
	return PublicKeyToAddress(pub), nil
}

// WalletSigner holds a local secp256k1 key and signs like a browser wallet.
type WalletSigner struct {
	key *secp256k1.PrivateKey
}

// NewWalletSigner loads a hex-encoded 32-byte private key.
func NewWalletSigner(hexKey string) (*WalletSigner, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key hex: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("private key must be 32 bytes, got %d", len(raw))
	}
	return &WalletSigner{key: secp256k1.PrivKeyFromBytes(raw)}, nil
}

// GenerateWalletSigner creates a signer with a fresh random key.
func GenerateWalletSigner() (*WalletSigner, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generating private key: %w", err)
	}
	return &WalletSigner{key: key}, nil
}

// PrivateKeyHex returns the 0x-prefixed private key.
func (w *WalletSigner) PrivateKeyHex() string {
	return "0x" + hex.EncodeToString(w.key.Serialize())
}

// Address returns the account address of the signing key.
func (w *WalletSigner) Address() string {
	return PublicKeyToAddress(w.key.PubKey())
}

// Sign implements ports.Signer.
func (w *WalletSigner) Sign(ctx context.Context, message string) (domain.Signature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return w.SignMessage(message), nil
}

// SignMessage produces an R||S||V signature with V in {27, 28}.
func (w *WalletSigner) SignMessage(message string) domain.Signature {
	compact := ecdsa.SignCompact(w.key, HashPersonalMessage(message), false)

	sig := make(domain.Signature, signatureLength)
	copy(sig, compact[1:])
	sig[64] = compact[0]
	return sig
}

// PresignedSigner replays a signature the wallet produced client-side.
// An empty signature means the holder declined.
type PresignedSigner struct {
	sig domain.Signature
}

// NewPresignedSigner wraps a client-submitted signature.
func NewPresignedSigner(sig domain.Signature) *PresignedSigner {
	return &PresignedSigner{sig: sig}
}

// Sign implements ports.Signer.
func (p *PresignedSigner) Sign(ctx context.Context, _ string) (domain.Signature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(p.sig) == 0 {
		return nil, ErrSignatureDeclined
	}
	return p.sig, nil
}
