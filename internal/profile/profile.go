// Package profile loads named cipher configurations from a JSONC file.
//
// A profiles file maps names to mode/padding pairs, for example:
//
//	{
//	  // values written by the legacy mailer
//	  "mailer": {"mode": "ECB", "padding": "PKCS7"},
//	  "ftp":    {"mode": "CBC", "padding": "ISO10126"},
//	}
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/idelchi/symcrypt/pkg/crypt"
)

// ErrUnknownProfile is returned when a profile name is not present in the file.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile is a named cipher configuration.
type Profile struct {
	Mode        string `json:"mode"`
	Padding     string `json:"padding"`
	Description string `json:"description,omitempty"`
}

// Config parses the profile into a validated crypt.Config.
func (p Profile) Config() (crypt.Config, error) {
	mode, err := crypt.ParseMode(p.Mode)
	if err != nil {
		return crypt.Config{}, err
	}

	padding, err := crypt.ParsePadding(p.Padding)
	if err != nil {
		return crypt.Config{}, err
	}

	cfg := crypt.Config{Mode: mode, Padding: padding}

	return cfg, cfg.Validate()
}

// Load reads a JSONC file of profiles keyed by name.
func Load(path string) (map[string]Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading profiles file %q: %w", path, err)
	}

	clean := jsonc.ToJSONInPlace(data)

	var profiles map[string]Profile
	if err := json.Unmarshal(clean, &profiles); err != nil {
		return nil, fmt.Errorf("parsing profiles file %q: %w", path, err)
	}

	for name, p := range profiles {
		if _, err := p.Config(); err != nil {
			return nil, fmt.Errorf("profile %q in %q: %w", name, path, err)
		}
	}

	return profiles, nil
}

// Lookup loads path and returns the named profile.
func Lookup(path, name string) (Profile, error) {
	profiles, err := Load(path)
	if err != nil {
		return Profile{}, err
	}

	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q in %q", ErrUnknownProfile, name, path)
	}

	return p, nil
}
