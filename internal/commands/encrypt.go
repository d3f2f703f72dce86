package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/internal/logic"
	"github.com/idelchi/symcrypt/pkg/crypt"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] values...",
		Aliases: []string{"enc"},
		Short:   "Encrypt values and print them as base64",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: runEach(cfg, func() (logic.Operation, error) {
			key, iv, cipherCfg, err := material(cfg)
			if err != nil {
				return nil, err
			}

			return func(in string) (string, error) {
				ciphertext, err := crypt.Encrypt([]byte(in), key, iv, cipherCfg)
				if err != nil {
					return "", err
				}

				return crypt.Encode(ciphertext), nil
			}, nil
		}),
	}
}

// material resolves the key, IV and cipher configuration once per invocation.
func material(cfg *config.Config) ([]byte, []byte, crypt.Config, error) {
	key, err := cfg.KeyBytes()
	if err != nil {
		return nil, nil, crypt.Config{}, err
	}

	iv, err := cfg.IVBytes()
	if err != nil {
		return nil, nil, crypt.Config{}, err
	}

	cipherCfg, err := cfg.CipherConfig()
	if err != nil {
		return nil, nil, crypt.Config{}, fmt.Errorf("cipher configuration: %w", err)
	}

	return key, iv, cipherCfg, nil
}
