// Package commands provides the command-line interface for the symcrypt tool.
//
// It implements commands for:
//   - encryption and decryption with DES and Triple-DES
//   - digests and base64 encoding
//   - the password and text convenience paths
//   - key derivation and generation
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/internal/logic"
	"github.com/idelchi/symcrypt/internal/profile"
)

// EnvPrefix is the prefix of the environment variables mirroring the flags.
const EnvPrefix = "SYMCRYPT"

// preRun returns a PreRunE handler that loads flags and SYMCRYPT_* variables into cfg,
// applies the selected profile and validates the result.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		v := viper.New()

		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := v.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Inputs = args

		if err := applyProfile(cmd, cfg); err != nil {
			return err
		}

		return cfg.Validate()
	}
}

// applyProfile copies mode and padding from the selected profile, unless they were
// given explicitly on the command line.
func applyProfile(cmd *cobra.Command, cfg *config.Config) error {
	if cfg.Profile == "" || cfg.Profiles == "" {
		return nil
	}

	p, err := profile.Lookup(cfg.Profiles, cfg.Profile)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	if !cmd.Flags().Changed("mode") {
		cfg.Mode = p.Mode
	}

	if !cmd.Flags().Changed("padding") {
		cfg.Padding = p.Padding
	}

	return nil
}

// show prints the redacted configuration as YAML.
func show(cmd *cobra.Command, cfg *config.Config) error {
	out, err := yaml.Marshal(cfg.Redacted())
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))

	return nil
}

// runner returns a logic.Runner bound to the command's output streams.
func runner(cmd *cobra.Command, cfg *config.Config) *logic.Runner {
	return &logic.Runner{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: logic.NewLogger(cmd.ErrOrStderr(), cfg.Verbose),
	}
}

// runEach returns a RunE handler that builds an operation once and applies it to every input.
// With --show it prints the configuration instead.
func runEach(cfg *config.Config, build func() (logic.Operation, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if cfg.Show {
			return show(cmd, cfg)
		}

		op, err := build()
		if err != nil {
			return err
		}

		return runner(cmd, cfg).Run(cfg, op)
	}
}
