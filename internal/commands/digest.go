package commands

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/internal/logic"
	"github.com/idelchi/symcrypt/pkg/crypt"
)

// NewDigestCommand creates a new cobra command for the digest subcommand.
func NewDigestCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest [flags] values...",
		Short: "Hash values and print the digest as base64",
		Long: `Hash values with SHA-1 or SHA-256 and print the digest as base64.
With --unwrap the values are taken to be digests and printed as hex.`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: runEach(cfg, func() (logic.Operation, error) {
			if cfg.Unwrap {
				return func(in string) (string, error) {
					raw, err := crypt.UnwrapDigest(in)
					if err != nil {
						return "", err
					}

					return hex.EncodeToString(raw), nil
				}, nil
			}

			alg, err := crypt.ParseAlgorithm(cfg.Algorithm)
			if err != nil {
				return nil, err
			}

			enc, err := crypt.ParseTextEncoding(cfg.Encoding)
			if err != nil {
				return nil, err
			}

			return func(in string) (string, error) {
				return crypt.DigestText(alg, in, enc)
			}, nil
		}),
	}

	cmd.Flags().StringP("algorithm", "a", crypt.SHA1.String(), "Digest algorithm (sha1, sha256)")
	cmd.Flags().StringP("encoding", "e", crypt.UTF8.String(), "Text encoding of the input (utf-8, windows-1252)")
	cmd.Flags().BoolP("unwrap", "u", false, "Decode digests back to their raw bytes, printed as hex")

	return cmd
}
