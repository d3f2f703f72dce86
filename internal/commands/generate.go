package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/pkg/crypt"
)

// NewGenerateCommand creates a new cobra command for the generate subcommand.
func NewGenerateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a random cipher key",
		Long: `Generate a random cipher key of --length bytes and print it as hex.
With --with-iv a random IV is printed on a second line.`,
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Show {
				return show(cmd, cfg)
			}

			key, err := random(cfg.Length)
			if err != nil {
				return fmt.Errorf("generating key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), key)

			if cfg.WithIV {
				iv, err := random(crypt.BlockSize)
				if err != nil {
					return fmt.Errorf("generating IV: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), iv)
			}

			return nil
		},
	}

	cmd.Flags().Bool("with-iv", false, "Also generate an initialization vector")

	return cmd
}

func random(n int) (string, error) {
	buf := make([]byte, n)

	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
