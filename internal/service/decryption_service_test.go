package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/core/ports"
	"biodiversity-credits/internal/core/ports/mocks"
	"biodiversity-credits/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

var testSession = domain.SessionContext{
	PublicKey:       "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
	RegistryAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
	ChainID:         11155111,
	StartTimestamp:  testClock.Unix(),
	DurationDays:    30,
}

// blockingSigner waits for release or cancellation.
type blockingSigner struct {
	started chan struct{}
	release chan struct{}
	honour  bool
}

func (b *blockingSigner) Sign(ctx context.Context, _ string) (domain.Signature, error) {
	close(b.started)
	if b.honour {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-b.release:
		}
	} else {
		<-b.release
	}
	return domain.Signature{1}, nil
}

func newTestDecryption(verifier ports.SignatureVerifier) *DecryptionService {
	svc := NewDecryptionService(NewTaggedCodec(), verifier, zerolog.Nop())
	svc.now = func() time.Time { return testClock.Add(time.Hour) }
	return svc
}

func encoded(t *testing.T, v float64) domain.EncryptedValue {
	t.Helper()
	enc, err := NewTaggedCodec().Encode(v)
	require.NoError(t, err)
	return enc
}

func TestDecryptionService_WalletSignature(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	wallet, err := GenerateWalletSigner()
	require.NoError(t, err)
	svc := newTestDecryption(NewEthereumVerifier())

	got, err := svc.RequestDecryption(context.Background(), encoded(t, 66.00000000000001), ports.IdentityContext{
		Address: wallet.Address(),
		Session: testSession,
		Signer:  wallet,
	})
	require.NoError(t, err)
	assert.Equal(t, 66.00000000000001, got)
}

func TestDecryptionService_SignsChallengeEveryCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	signer := mocks.NewMockSigner(ctrl)
	svc := newTestDecryption(nil)
	identity := ports.IdentityContext{Address: testOwner, Session: testSession, Signer: signer}

	signer.EXPECT().Sign(gomock.Any(), testSession.ChallengeMessage()).
		Return(domain.Signature{0xaa}, nil).Times(2)

	for i := 0; i < 2; i++ {
		got, err := svc.RequestDecryption(context.Background(), encoded(t, 60), identity)
		require.NoError(t, err)
		assert.Equal(t, 60.0, got)
	}
}

func TestDecryptionService_Declined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	signer := mocks.NewMockSigner(ctrl)
	codec := mocks.NewMockScalarCodec(ctrl)
	svc := NewDecryptionService(codec, nil, zerolog.Nop())

	signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return(nil, errors.New("user rejected the request"))

	_, err := svc.RequestDecryption(context.Background(), "FHE-NjA=", ports.IdentityContext{
		Address: testOwner, Session: testSession, Signer: signer,
	})
	assert.True(t, apperror.HasCode(err, apperror.CodeAuthorizationDenied))
}

func TestDecryptionService_EmptySignatureIsDecline(t *testing.T) {
	svc := newTestDecryption(nil)

	_, err := svc.RequestDecryption(context.Background(), encoded(t, 60), ports.IdentityContext{
		Address: testOwner, Session: testSession, Signer: NewPresignedSigner(nil),
	})
	assert.True(t, apperror.HasCode(err, apperror.CodeAuthorizationDenied))
	assert.ErrorIs(t, err, ErrSignatureDeclined)
}

func TestDecryptionService_NoSigner(t *testing.T) {
	_, err := newTestDecryption(nil).RequestDecryption(context.Background(), "FHE-NjA=", ports.IdentityContext{
		Address: testOwner, Session: testSession,
	})
	assert.True(t, apperror.HasCode(err, apperror.CodeAuthorizationDenied))
}

func TestDecryptionService_CancelledWhileWaiting(t *testing.T) {
	for _, honour := range []bool{true, false} {
		t.Run(map[bool]string{true: "signer honours context", false: "signer ignores context"}[honour], func(t *testing.T) {
			defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

			signer := &blockingSigner{started: make(chan struct{}), release: make(chan struct{}), honour: honour}
			svc := newTestDecryption(nil)
			ctx, cancel := context.WithCancel(context.Background())

			errc := make(chan error, 1)
			go func() {
				_, err := svc.RequestDecryption(ctx, "FHE-NjA=", ports.IdentityContext{
					Address: testOwner, Session: testSession, Signer: signer,
				})
				errc <- err
			}()

			<-signer.started
			cancel()

			select {
			case err := <-errc:
				assert.True(t, apperror.HasCode(err, apperror.CodeAuthorizationDenied))
				assert.ErrorIs(t, err, context.Canceled)
			case <-time.After(2 * time.Second):
				t.Fatal("decryption did not return after cancellation")
			}

			close(signer.release)
		})
	}
}

func TestDecryptionService_SignatureFromOtherKey(t *testing.T) {
	wallet, err := GenerateWalletSigner()
	require.NoError(t, err)
	impostor, err := GenerateWalletSigner()
	require.NoError(t, err)

	_, err = newTestDecryption(NewEthereumVerifier()).RequestDecryption(context.Background(), encoded(t, 60), ports.IdentityContext{
		Address: wallet.Address(),
		Session: testSession,
		Signer:  impostor,
	})
	assert.True(t, apperror.HasCode(err, apperror.CodeAuthorizationDenied))
}

func TestDecryptionService_ExpiredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	signer := mocks.NewMockSigner(ctrl)
	verifier := mocks.NewMockSignatureVerifier(ctrl)
	svc := newTestDecryption(verifier)
	svc.now = func() time.Time { return testSession.ExpiresAt() }

	_, err := svc.RequestDecryption(context.Background(), encoded(t, 60), ports.IdentityContext{
		Address: testOwner, Session: testSession, Signer: signer,
	})
	assert.True(t, apperror.HasCode(err, apperror.CodeAuthorizationDenied))
}

func TestDecryptionService_DecodeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	signer := mocks.NewMockSigner(ctrl)
	verifier := mocks.NewMockSignatureVerifier(ctrl)
	svc := newTestDecryption(verifier)

	signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return(domain.Signature{1}, nil)
	verifier.EXPECT().RecoverAddress(testSession.ChallengeMessage(), domain.Signature{1}).Return(testOwner, nil)

	_, err := svc.RequestDecryption(context.Background(), "not a number", ports.IdentityContext{
		Address: testOwner, Session: testSession, Signer: signer,
	})
	assert.True(t, apperror.HasCode(err, apperror.CodeDecode))
}
