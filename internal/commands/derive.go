package commands

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/internal/logic"
	"github.com/idelchi/symcrypt/pkg/crypt"
)

// NewDeriveCommand creates a new cobra command for the derive subcommand.
func NewDeriveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive [flags] passphrases...",
		Short: "Derive cipher keys from passphrases and print them as hex",
		Long: `Derive cipher keys from passphrases and print them as hex.
Without --salt the key is the MD5 digest of the passphrase (with --hash) or the raw
passphrase, fitted to --length. With --salt, PBKDF2-HMAC-SHA256 is used instead.
Without arguments, --passphrase is used.`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE: runEach(cfg, func() (logic.Operation, error) {
			if len(cfg.Inputs) == 0 {
				if cfg.Passphrase == "" {
					return nil, ErrNoPassphrase
				}

				cfg.Inputs = []string{cfg.Passphrase}
				cfg.Files = false
			}

			return func(in string) (string, error) {
				var (
					key []byte
					err error
				)

				if cfg.Salt != "" {
					key, err = crypt.DeriveKeyPBKDF2([]byte(in), []byte(cfg.Salt), cfg.Iterations, cfg.Length)
				} else {
					key, err = crypt.DeriveKey([]byte(in), cfg.Hash, cfg.Length)
				}

				if err != nil {
					return "", err
				}

				return hex.EncodeToString(key), nil
			}, nil
		}),
	}

	cmd.Flags().String("salt", "", "Salt for PBKDF2 key derivation")
	cmd.Flags().Int("iterations", DefaultIterations, "PBKDF2 iteration count")

	return cmd
}
