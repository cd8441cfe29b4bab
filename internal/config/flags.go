package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/passvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-v string   vault name (default from Config)
//	-b string   storage backend, sqlite or postgres
//	-d string   database DSN override
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-v", "-b", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.VaultName, "v", cfg.VaultName, "vault name")
	fs.StringVar(&cfg.DatabaseBackend, "b", cfg.DatabaseBackend, "storage backend (sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN override")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
