package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/core/ports"
	"biodiversity-credits/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	loginMaxDrift = 60 * time.Second
	loginNonceTTL = 5 * time.Minute
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// SessionSettings are the deployment-wide parts of every SessionContext.
type SessionSettings struct {
	RegistryAddress string
	ChainID         int64
	DurationDays    int
}

// NewSession opens a signing session starting at now with a fresh random
// public key.
func NewSession(settings SessionSettings, now time.Time) (domain.SessionContext, error) {
	publicKey, err := generateRandomHex(32)
	if err != nil {
		return domain.SessionContext{}, fmt.Errorf("generate session key: %w", err)
	}
	return domain.SessionContext{
		PublicKey:       publicKey,
		RegistryAddress: settings.RegistryAddress,
		ChainID:         settings.ChainID,
		StartTimestamp:  now.Unix(),
		DurationDays:    settings.DurationDays,
	}, nil
}

// AuthServiceImpl implements ports.AuthService. A wallet proves control of
// its address by signing domain.LoginMessage.
type AuthServiceImpl struct {
	verifier ports.SignatureVerifier
	nonces   ports.NonceStore
	tokenSvc ports.TokenService
	settings SessionSettings
	now      func() time.Time
	log      zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	verifier ports.SignatureVerifier,
	nonces ports.NonceStore,
	tokenSvc ports.TokenService,
	settings SessionSettings,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		verifier: verifier,
		nonces:   nonces,
		tokenSvc: tokenSvc,
		settings: settings,
		now:      time.Now,
		log:      log,
	}
}

// Login checks the signed login message and returns a token carrying a new
// signing session.
func (s *AuthServiceImpl) Login(ctx context.Context, req ports.LoginRequest) (*ports.LoginResult, error) {
	if !addressPattern.MatchString(req.Address) {
		return nil, apperror.Validation("address must be a 0x-prefixed 20-byte hex string")
	}
	if strings.TrimSpace(req.Nonce) == "" {
		return nil, apperror.Validation("nonce is required")
	}

	now := s.now()
	drift := now.Sub(time.Unix(req.Timestamp, 0))
	if drift < -loginMaxDrift || drift > loginMaxDrift {
		return nil, apperror.ErrTimestampExpired()
	}

	// Verify the signature before consuming the nonce so forged requests
	// cannot burn a wallet's nonces.
	recovered, err := s.verifier.RecoverAddress(domain.LoginMessage(req.Address, req.Timestamp, req.Nonce), req.Signature)
	if err != nil {
		return nil, apperror.ErrInvalidSignature(err)
	}
	if !strings.EqualFold(recovered, req.Address) {
		s.log.Warn().Str("address", req.Address).Str("recovered", recovered).Msg("login signed by another key")
		return nil, apperror.ErrInvalidSignature(fmt.Errorf("recovered %s", recovered))
	}

	address := strings.ToLower(req.Address)
	fresh, err := s.nonces.CheckAndSet(ctx, address, req.Nonce, loginNonceTTL)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check nonce: %w", err))
	}
	if !fresh {
		return nil, apperror.ErrNonceUsed()
	}

	session, err := NewSession(s.settings, now)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	token, expiry, err := s.tokenSvc.Generate(address, session)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	s.log.Info().Str("address", address).Msg("wallet logged in")
	return &ports.LoginResult{
		Token:   token,
		Expiry:  expiry,
		Session: session,
	}, nil
}

// generateRandomHex generates a random hex string of n bytes.
func generateRandomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
