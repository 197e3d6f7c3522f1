package service

import (
	"context"
	"strings"
	"testing"

	"biodiversity-credits/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Known account from the web3.js accounts documentation.
const (
	knownPrivateKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	knownAddress    = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
	knownSignature  = "0xb91467e570a6466aa9e9876cbcd013baba02900b8979d43fe208a4a4f339f5fd6007e74cd82e037b800186422fc2da167c747ef045e5d18a5f5d4300f8e1a0291c"
)

func TestWalletSigner_Address(t *testing.T) {
	signer, err := NewWalletSigner(knownPrivateKey)
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(knownAddress), signer.Address())
	assert.Equal(t, knownPrivateKey, signer.PrivateKeyHex())
}

func TestEthereumVerifier_RecoverKnownSignature(t *testing.T) {
	sig, err := domain.ParseSignature(knownSignature)
	require.NoError(t, err)

	addr, err := NewEthereumVerifier().RecoverAddress("Some data", sig)
	require.NoError(t, err)
	assert.True(t, strings.EqualFold(knownAddress, addr))
}

func TestWalletSigner_SignAndRecover(t *testing.T) {
	signer, err := GenerateWalletSigner()
	require.NoError(t, err)
	verifier := NewEthereumVerifier()

	msg := domain.SessionContext{
		PublicKey:       "ab12",
		RegistryAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		ChainID:         11155111,
		StartTimestamp:  1700000000,
		DurationDays:    30,
	}.ChallengeMessage()

	sig, err := signer.Sign(context.Background(), msg)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	assert.Contains(t, []byte{27, 28}, sig[64])

	addr, err := verifier.RecoverAddress(msg, sig)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), addr)

	// A signature over another message recovers some other address.
	other, err := verifier.RecoverAddress(msg+"\n", sig)
	if err == nil {
		assert.NotEqual(t, signer.Address(), other)
	}
}

func TestEthereumVerifier_AcceptsZeroBasedV(t *testing.T) {
	signer, err := GenerateWalletSigner()
	require.NoError(t, err)

	sig := signer.SignMessage("hello")
	sig[64] -= 27

	addr, err := NewEthereumVerifier().RecoverAddress("hello", sig)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), addr)
}

func TestEthereumVerifier_Malformed(t *testing.T) {
	verifier := NewEthereumVerifier()

	_, err := verifier.RecoverAddress("m", domain.Signature{1, 2, 3})
	assert.Error(t, err)

	bad := make(domain.Signature, 65)
	bad[64] = 31
	_, err = verifier.RecoverAddress("m", bad)
	assert.Error(t, err)
}

func TestNewWalletSigner_InvalidKey(t *testing.T) {
	_, err := NewWalletSigner("zz")
	assert.Error(t, err)

	_, err = NewWalletSigner("0x0102")
	assert.Error(t, err)
}

func TestWalletSigner_CancelledContext(t *testing.T) {
	signer, err := GenerateWalletSigner()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = signer.Sign(ctx, "m")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPresignedSigner(t *testing.T) {
	sig := domain.Signature{1, 2, 3}
	got, err := NewPresignedSigner(sig).Sign(context.Background(), "ignored")
	require.NoError(t, err)
	assert.Equal(t, sig, got)

	_, err = NewPresignedSigner(nil).Sign(context.Background(), "ignored")
	assert.ErrorIs(t, err, ErrSignatureDeclined)
}
