package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newKeygenCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a fresh private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := service.GenerateWalletSigner()
			if err != nil {
				return err
			}
			return opts.emit(cmd.OutOrStdout(), map[string]string{
				"address":     w.Address(),
				"private_key": w.PrivateKeyHex(),
			}, fmt.Sprintf("address:     %s\nprivate key: %s", w.Address(), w.PrivateKeyHex()))
		},
	}
}

func newAddressCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Print the address of the signing key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := opts.wallet()
			if err != nil {
				return err
			}
			return opts.emit(cmd.OutOrStdout(), map[string]string{"address": w.Address()}, w.Address())
		},
	}
}

func newSignCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sign [message]",
		Short: "Sign a message, e.g. the challenge from GET /api/v1/session",
		Long: `Sign a message as an EIP-191 personal message.

Without an argument the message is read from stdin, so a multi-line
decryption challenge can be piped in unchanged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := opts.wallet()
			if err != nil {
				return err
			}

			var message string
			if len(args) == 1 {
				message = args[0]
			} else {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading message: %w", err)
				}
				message = strings.TrimRight(string(raw), "\n")
			}

			sig := w.SignMessage(message).Hex()
			return opts.emit(cmd.OutOrStdout(), map[string]string{"signature": sig}, sig)
		},
	}
}

// loginBody mirrors the POST /api/v1/auth/login request.
type loginBody struct {
	Address   string `json:"address"`
	Timestamp int64  `json:"timestamp"`
	Nonce     string `json:"nonce"`
	Signature string `json:"signature"`
}

func newLoginCommand(opts *RootOptions) *cobra.Command {
	var (
		nonce     string
		timestamp int64
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Print a signed login request body",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := opts.wallet()
			if err != nil {
				return err
			}
			if nonce == "" {
				nonce = uuid.NewString()
			}
			if timestamp == 0 {
				timestamp = time.Now().Unix()
			}

			body := loginBody{
				Address:   w.Address(),
				Timestamp: timestamp,
				Nonce:     nonce,
				Signature: w.SignMessage(domain.LoginMessage(w.Address(), timestamp, nonce)).Hex(),
			}
			// The request body is JSON in either format.
			jsonOpts := *opts
			jsonOpts.Format = "json"
			return jsonOpts.emit(cmd.OutOrStdout(), body, "")
		},
	}

	cmd.Flags().StringVar(&nonce, "nonce", "", "login nonce (default: random uuid)")
	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "unix timestamp (default: now)")
	return cmd
}
