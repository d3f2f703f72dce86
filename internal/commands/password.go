package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/internal/logic"
	"github.com/idelchi/symcrypt/pkg/crypt"
)

// ErrNoPassphrase is returned by the password and text commands when --passphrase is empty.
var ErrNoPassphrase = errors.New("--passphrase is required")

// NewPasswordCommand creates the password command group.
// The passphrase is used as both key and IV of a DES CBC cipher and must be 8 bytes.
func NewPasswordCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Encrypt or decrypt values with an 8-byte password",
		Long: `Encrypt or decrypt values with DES in CBC mode, using the 8-byte passphrase
as both key and IV. Empty values are passed through unchanged.`,
	}

	cmd.AddCommand(
		pairCommand(cfg, "encrypt", "Encrypt values with a password", crypt.PasswordEncrypt),
		pairCommand(cfg, "decrypt", "Decrypt values with a password", crypt.PasswordDecrypt),
	)

	return cmd
}

// NewTextCommand creates the text command group.
// The key is derived from the passphrase and the cipher is Triple-DES in ECB mode.
func NewTextCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Encrypt or decrypt values with a passphrase-derived Triple-DES key",
	}

	cmd.AddCommand(
		pairCommand(cfg, "encrypt", "Encrypt values with a passphrase", func(in, pass string) (string, error) {
			return crypt.EncryptText(in, pass, cfg.Hash)
		}),
		pairCommand(cfg, "decrypt", "Decrypt values with a passphrase", func(in, pass string) (string, error) {
			return crypt.DecryptText(in, pass, cfg.Hash)
		}),
	)

	return cmd
}

func pairCommand(cfg *config.Config, use, short string, fn func(in, pass string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:     use + " [flags] values...",
		Short:   short,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: runEach(cfg, func() (logic.Operation, error) {
			if cfg.Passphrase == "" {
				return nil, ErrNoPassphrase
			}

			pass := cfg.Passphrase

			return func(in string) (string, error) {
				return fn(in, pass)
			}, nil
		}),
	}
}
