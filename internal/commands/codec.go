package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/internal/logic"
	"github.com/idelchi/symcrypt/pkg/crypt"
)

// NewEncodeCommand creates a new cobra command for the encode subcommand.
func NewEncodeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encode [flags] values...",
		Short:   "Encode values as base64",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: runEach(cfg, func() (logic.Operation, error) {
			return func(in string) (string, error) {
				return crypt.Encode([]byte(in)), nil
			}, nil
		}),
	}
}

// NewDecodeCommand creates a new cobra command for the decode subcommand.
func NewDecodeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decode [flags] values...",
		Short:   "Decode base64 values",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: runEach(cfg, func() (logic.Operation, error) {
			return func(in string) (string, error) {
				raw, err := crypt.Decode(in)
				if err != nil {
					return "", err
				}

				return string(raw), nil
			}, nil
		}),
	}
}
