// Command symcrypt encrypts, decrypts and hashes values with DES and Triple-DES.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/symcrypt/internal/commands"
	"github.com/idelchi/symcrypt/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
