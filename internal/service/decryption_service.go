package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/core/ports"
	"biodiversity-credits/pkg/apperror"

	"github.com/rs/zerolog"
)

// DecryptionService implements ports.DecryptionService. Every call builds
// the session challenge, asks the identity's wallet for a fresh signature
// and only then decodes the value. Nothing is cached between calls.
type DecryptionService struct {
	codec    ports.ScalarCodec
	verifier ports.SignatureVerifier
	now      func() time.Time
	log      zerolog.Logger
}

// NewDecryptionService creates the protocol. With a nil verifier any
// signature the wallet returns is accepted and session expiry is not checked.
func NewDecryptionService(codec ports.ScalarCodec, verifier ports.SignatureVerifier, log zerolog.Logger) *DecryptionService {
	return &DecryptionService{
		codec:    codec,
		verifier: verifier,
		now:      time.Now,
		log:      log,
	}
}

// RequestDecryption reveals value to identity after a successful signature.
func (s *DecryptionService) RequestDecryption(ctx context.Context, value domain.EncryptedValue, identity ports.IdentityContext) (float64, error) {
	if identity.Signer == nil {
		return 0, apperror.ErrAuthorizationDenied(errors.New("no signer for identity"))
	}

	session := identity.Session
	if s.verifier != nil && session.IsExpired(s.now()) {
		return 0, apperror.ErrAuthorizationDenied(fmt.Errorf("session expired at %s", session.ExpiresAt().Format(time.RFC3339)))
	}

	challenge := session.ChallengeMessage()
	sig, err := signWithContext(ctx, identity.Signer, challenge)
	if err != nil {
		s.log.Info().Err(err).Str("address", identity.Address).Msg("decryption signature not obtained")
		return 0, apperror.ErrAuthorizationDenied(err)
	}

	if s.verifier != nil {
		signer, err := s.verifier.RecoverAddress(challenge, sig)
		if err != nil {
			return 0, apperror.ErrAuthorizationDenied(err)
		}
		if identity.Address == "" || !strings.EqualFold(signer, identity.Address) {
			s.log.Warn().
				Str("address", identity.Address).
				Str("recovered", signer).
				Msg("decryption challenge signed by another key")
			return 0, apperror.ErrAuthorizationDenied(errors.New("signature does not match identity"))
		}
	}

	return s.codec.Decode(value)
}

// signWithContext waits for the wallet but gives up as soon as ctx is done,
// even if the signer itself ignores cancellation.
func signWithContext(ctx context.Context, signer ports.Signer, message string) (domain.Signature, error) {
	type result struct {
		sig domain.Signature
		err error
	}

	done := make(chan result, 1)
	go func() {
		sig, err := signer.Sign(ctx, message)
		done <- result{sig: sig, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err == nil && len(r.sig) == 0 {
			return nil, ErrSignatureDeclined
		}
		return r.sig, r.err
	}
}
