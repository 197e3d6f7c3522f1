// Package cli implements walletctl, a local wallet for driving the registry
// API: it derives addresses and signs login messages and decryption
// challenges the way a browser wallet would.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"biodiversity-credits/internal/service"

	"github.com/spf13/cobra"
)

// KeyEnv is read when --key is not given.
const KeyEnv = "BDC_WALLET_KEY"

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Key    string
	Format string // "json" | "text"
}

// NewRootCommand creates the walletctl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "walletctl",
		Short: "Local wallet for the biodiversity credit registry",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error
	}

	cmd.PersistentFlags().StringVar(&opts.Key, "key", "", "hex private key (default $"+KeyEnv+")")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(newKeygenCommand(opts))
	cmd.AddCommand(newAddressCommand(opts))
	cmd.AddCommand(newSignCommand(opts))
	cmd.AddCommand(newLoginCommand(opts))

	return cmd
}

// wallet loads the signing key from --key or the environment.
func (o *RootOptions) wallet() (*service.WalletSigner, error) {
	key := o.Key
	if key == "" {
		key = os.Getenv(KeyEnv)
	}
	if key == "" {
		return nil, errors.New("no private key: pass --key or set " + KeyEnv)
	}
	return service.NewWalletSigner(key)
}

// emit writes v as indented JSON, or text() in text mode.
func (o *RootOptions) emit(w io.Writer, v interface{}, text string) error {
	if o.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(text, "\n"))
	return err
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
