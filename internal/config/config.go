// Package config holds the runtime configuration shared by all symcrypt commands.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/key"
	"github.com/idelchi/gogen/pkg/validator"
	"github.com/idelchi/symcrypt/pkg/crypt"
)

// ErrNoKeyMaterial is returned when neither a key nor a passphrase was supplied.
var ErrNoKeyMaterial = errors.New("either --key or --passphrase is required")

// Config is populated from flags and SYMCRYPT_* environment variables.
type Config struct {
	// Key material
	Key        string `label:"--key"        validate:"omitempty,hexadecimal" yaml:"key"`
	Passphrase string `label:"--passphrase" validate:"exclusive=Key"         yaml:"passphrase"`
	Hash       bool   `yaml:"hash"`
	IV         string `label:"--iv"         validate:"omitempty,hexadecimal" yaml:"iv"`
	Length     int    `label:"--length"     validate:"oneof=8 24"            yaml:"length"`
	Salt       string `yaml:"salt"`
	Iterations int    `label:"--iterations" validate:"omitempty,min=1"       yaml:"iterations"`

	// Cipher configuration
	Mode     string `yaml:"mode"`
	Padding  string `yaml:"padding"`
	Profile  string `yaml:"profile"`
	Profiles string `label:"--profiles" validate:"required_with=Profile" yaml:"profiles"`

	// Digest
	Algorithm string `yaml:"algorithm"`
	Encoding  string `yaml:"encoding"`
	Unwrap    bool   `yaml:"unwrap"`

	// Generate
	WithIV bool `mapstructure:"with-iv" yaml:"with-iv"`

	// Input and output
	Files    bool   `yaml:"files"`
	Output   string `yaml:"output"`
	Parallel int    `label:"--parallel" validate:"min=1" yaml:"parallel"`
	Quiet    bool   `yaml:"quiet"`
	Stats    bool   `yaml:"stats"`
	Verbose  bool   `yaml:"verbose"`
	Show     bool   `yaml:"-"`

	// Positional arguments
	Inputs []string `yaml:"inputs"`
}

// Validate checks the struct tags and the cipher settings.
// Tag violations wrap validator.ErrValidation.
func (c *Config) Validate() error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	switch errs := validator.Validate(c); {
	case len(errs) == 1:
		return fmt.Errorf("validating configuration: %w", errs[0])
	case len(errs) > 1:
		return fmt.Errorf("validating configuration:\n%w", errors.Join(errs...))
	}

	if _, err := c.CipherConfig(); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

// CipherConfig parses the mode and padding names.
func (c *Config) CipherConfig() (crypt.Config, error) {
	mode, err := crypt.ParseMode(c.Mode)
	if err != nil {
		return crypt.Config{}, err
	}

	padding, err := crypt.ParsePadding(c.Padding)
	if err != nil {
		return crypt.Config{}, err
	}

	cfg := crypt.Config{Mode: mode, Padding: padding}

	return cfg, cfg.Validate()
}

// KeyBytes returns the cipher key: the hex --key if given, otherwise the passphrase
// run through crypt.DeriveKey with --hash and --length.
func (c *Config) KeyBytes() ([]byte, error) {
	switch {
	case c.Key != "":
		raw, err := key.FromHex(c.Key)
		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}

		if _, err := crypt.CipherForKey(raw); err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}

		return raw, nil
	case c.Passphrase != "":
		derived, err := crypt.DeriveKey([]byte(c.Passphrase), c.Hash, c.Length)
		if err != nil {
			return nil, fmt.Errorf("deriving key: %w", err)
		}

		return derived, nil
	default:
		return nil, ErrNoKeyMaterial
	}
}

// IVBytes returns the decoded --iv, or nil when none was given.
func (c *Config) IVBytes() ([]byte, error) {
	if c.IV == "" {
		return nil, nil
	}

	iv, err := key.FromHex(c.IV)
	if err != nil {
		return nil, fmt.Errorf("reading IV: %w", err)
	}

	return iv, nil
}

// Redacted returns a copy that is safe to print.
func (c Config) Redacted() Config {
	const mask = "********"

	if c.Key != "" {
		c.Key = mask
	}

	if c.Passphrase != "" {
		c.Passphrase = mask
	}

	return c
}
