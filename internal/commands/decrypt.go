package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/internal/logic"
	"github.com/idelchi/symcrypt/pkg/crypt"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] values...",
		Aliases: []string{"dec"},
		Short:   "Decrypt base64 values",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: runEach(cfg, func() (logic.Operation, error) {
			key, iv, cipherCfg, err := material(cfg)
			if err != nil {
				return nil, err
			}

			return func(in string) (string, error) {
				ciphertext, err := crypt.Decode(in)
				if err != nil {
					return "", err
				}

				plaintext, err := crypt.Decrypt(ciphertext, key, iv, cipherCfg)
				if err != nil {
					return "", err
				}

				return string(plaintext), nil
			}, nil
		}),
	}
}
