// Package config handles runtime configuration for the PassVault CLI,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for PassVault.
//
// Fields:
//   - VaultName: namespaces the storage location (one directory per vault).
//   - BaseDir: parent directory holding all vault directories.
//   - DatabaseBackend: "sqlite" (default, local file) or "postgres".
//   - DatabaseDSN: optional DSN override; when empty the sqlite backend
//     derives a file path under the vault directory.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings for
//     export uploads. Uploads are disabled while S3Bucket is empty.
type Config struct {
	VaultName       string
	BaseDir         string
	DatabaseBackend string
	DatabaseDSN     string
	S3RootUser      string
	S3RootPassword  string
	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.VaultName = "default_vault"
	c.BaseDir = "password_vaults"
	c.DatabaseBackend = "sqlite"
	c.S3Region = "us-east-1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
