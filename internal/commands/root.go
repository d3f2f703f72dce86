package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/pkg/crypt"
)

// Default values of the persistent flags.
const (
	DefaultLength     = crypt.TripleDESKeySize
	DefaultIterations = 10000
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "symcrypt [flags] command [flags]"
	root.Short = "DES and Triple-DES encryption and hashing utility"
	root.Long = `A symmetric encryption and hashing utility for DES and Triple-DES.
Provides commands for encryption, decryption, digests, base64 encoding,
key derivation and key generation.

Every flag can also be set through an environment variable prefixed with
SYMCRYPT_, with dashes replaced by underscores (e.g. SYMCRYPT_PASSPHRASE).`

	defaults := crypt.DefaultConfig()

	flags := root.PersistentFlags()

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.Bool("stats", false, "Print a summary to stderr when done")
	flags.Bool("verbose", false, "Enable debug logging on stderr")
	flags.Bool("files", false, "Treat arguments as file paths and process their contents")
	flags.StringP("output", "o", "", "Write the results to this file instead of stdout")

	flags.StringP("key", "k", "", "Cipher key (8 or 24 bytes, hex-encoded)")
	flags.StringP("passphrase", "p", "", "Passphrase to derive the key from")
	flags.Bool("hash", true, "Derive the key from the MD5 digest of the passphrase")
	flags.IntP("length", "l", DefaultLength, "Key length in bytes (8 for DES, 24 for Triple-DES)")
	flags.String("iv", "", "Initialization vector (8 bytes, hex-encoded)")
	flags.StringP("mode", "m", defaults.Mode.String(), "Block mode (ECB, CBC, CFB, OFB, CTS)")
	flags.String("padding", defaults.Padding.String(), "Padding (None, Zeros, PKCS7, ANSIX923, ISO10126)")
	flags.String("profile", "", "Name of the cipher profile to apply")
	flags.String("profiles", "", "Path to the JSONC file with cipher profiles")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewDigestCommand(cfg),
		NewEncodeCommand(cfg),
		NewDecodeCommand(cfg),
		NewPasswordCommand(cfg),
		NewTextCommand(cfg),
		NewDeriveCommand(cfg),
		NewGenerateCommand(cfg),
	)

	return root
}
