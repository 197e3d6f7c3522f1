package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey     = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testAddress = "0x2c7536e3605d9c16a7a3d7b1898e529396a65c23"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"keygen", "address", "sign", "login"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestAddress(t *testing.T) {
	out, err := run(t, "", "address", "--key", testKey)
	require.NoError(t, err)
	assert.Equal(t, testAddress+"\n", out)
}

func TestAddress_KeyFromEnv(t *testing.T) {
	t.Setenv(KeyEnv, testKey)

	out, err := run(t, "", "address", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"address":"`+testAddress+`"}`, out)
}

func TestAddress_NoKey(t *testing.T) {
	t.Setenv(KeyEnv, "")

	_, err := run(t, "", "address")
	assert.ErrorContains(t, err, KeyEnv)
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, "", "address", "--key", testKey, "--format", "yaml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestSign_ChallengeFromStdin(t *testing.T) {
	session := domain.SessionContext{PublicKey: "ab", ChainID: 1, StartTimestamp: 1709294400, DurationDays: 30}
	challenge := session.ChallengeMessage()

	out, err := run(t, challenge+"\n", "sign", "--key", testKey)
	require.NoError(t, err)

	sig, err := domain.ParseSignature(strings.TrimSpace(out))
	require.NoError(t, err)
	addr, err := service.NewEthereumVerifier().RecoverAddress(challenge, sig)
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr)
}

func TestSign_KnownVector(t *testing.T) {
	out, err := run(t, "", "sign", "Some data", "--key", testKey)
	require.NoError(t, err)
	assert.Equal(t, "0xb91467e570a6466aa9e9876cbcd013baba02900b8979d43fe208a4a4f339f5fd6007e74cd82e037b800186422fc2da167c747ef045e5d18a5f5d4300f8e1a0291c\n", out)
}

func TestLogin(t *testing.T) {
	out, err := run(t, "", "login", "--key", testKey, "--nonce", "n-1", "--timestamp", "1709294400")
	require.NoError(t, err)

	var body loginBody
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, testAddress, body.Address)
	assert.Equal(t, int64(1709294400), body.Timestamp)
	assert.Equal(t, "n-1", body.Nonce)

	sig, err := domain.ParseSignature(body.Signature)
	require.NoError(t, err)
	addr, err := service.NewEthereumVerifier().RecoverAddress(domain.LoginMessage(testAddress, 1709294400, "n-1"), sig)
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr)
}

func TestKeygen(t *testing.T) {
	out, err := run(t, "", "keygen", "--format", "json")
	require.NoError(t, err)

	var kp map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &kp))
	w, err := service.NewWalletSigner(kp["private_key"])
	require.NoError(t, err)
	assert.Equal(t, kp["address"], w.Address())
}
